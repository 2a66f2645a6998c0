package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const maxHopsLimit = 100

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Wiktionary.validate(); err != nil {
		return fmt.Errorf("wiktionary: %w", err)
	}

	if c.Resolver.MaxHops < 1 || c.Resolver.MaxHops > maxHopsLimit {
		return fmt.Errorf("resolver.max_hops must be in [1, %d] (got %d)", maxHopsLimit, c.Resolver.MaxHops)
	}
	if c.Resolver.Concurrency < 1 {
		return fmt.Errorf("resolver.concurrency must be >= 1 (got %d)", c.Resolver.Concurrency)
	}
	if strings.TrimSpace(c.Resolver.DefaultLanguage) == "" {
		return fmt.Errorf("resolver.default_language is required")
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	return nil
}

func (w *WiktionaryConfig) validate() error {
	if err := validateURLTemplate(w.Endpoint); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if err := validateURLTemplate(w.WikiURL); err != nil {
		return fmt.Errorf("wiki_url: %w", err)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}
	if strings.TrimSpace(w.PingLanguage) == "" {
		return fmt.Errorf("ping_language is required")
	}
	return nil
}

// validateURLTemplate checks that raw is an absolute http(s) URL once its
// {lang} placeholder is filled in.
func validateURLTemplate(raw string) error {
	u, err := url.Parse(strings.ReplaceAll(raw, "{lang}", "en"))
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
