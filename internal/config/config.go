package config

import (
	"time"

	"github.com/heartmarshall/word-definition/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Resolver   ResolverConfig   `yaml:"resolver"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings for the public API.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// RateLimitConfig bounds lookups per client, each of which costs several
// upstream requests. PerMinute 0 disables limiting.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// WiktionaryConfig holds upstream MediaWiki API settings.
// "{lang}" in Endpoint and WikiURL is replaced with the language code.
type WiktionaryConfig struct {
	Endpoint     string        `yaml:"endpoint"      env:"WIKTIONARY_ENDPOINT"      env-default:"https://{lang}.wiktionary.org/w/api.php"`
	WikiURL      string        `yaml:"wiki_url"      env:"WIKTIONARY_WIKI_URL"      env-default:"https://{lang}.wiktionary.org/wiki/"`
	UserAgent    string        `yaml:"user_agent"    env:"WIKTIONARY_USER_AGENT"    env-default:"word-definition/1.0 (+https://github.com/heartmarshall/word-definition)"`
	Timeout      time.Duration `yaml:"timeout"       env:"WIKTIONARY_TIMEOUT"       env-default:"10s"`
	PingLanguage string        `yaml:"ping_language" env:"WIKTIONARY_PING_LANGUAGE" env-default:"en"`
}

// ResolverConfig holds definition resolution settings.
type ResolverConfig struct {
	MaxHops int `yaml:"max_hops" env:"RESOLVER_MAX_HOPS" env-default:"10"`
	// Concurrency bounds the words resolved at once by batch callers.
	Concurrency int `yaml:"concurrency" env:"RESOLVER_CONCURRENCY" env-default:"4"`
	// DefaultLanguage is used when a request names no language.
	DefaultLanguage string `yaml:"default_language" env:"RESOLVER_DEFAULT_LANGUAGE" env-default:"fr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Domain returns the resolver settings in the form the definition service takes.
func (c *Config) Domain() domain.ResolverConfig {
	return domain.ResolverConfig{
		MaxHops: c.Resolver.MaxHops,
		WikiURL: c.Wiktionary.WikiURL,
	}
}
