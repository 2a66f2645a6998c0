// Command define prints Wiktionary definitions for the words given on the
// command line.
//
//	define --lang=fr chat chien
//	define --lang=de --section=etymology Haus
//
// Exit codes: 0 = every word resolved, 1 = at least one lookup failed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/word-definition/internal/app"
	"github.com/heartmarshall/word-definition/internal/config"
	"github.com/heartmarshall/word-definition/internal/domain"
)

// CLI defines the command-line interface.
type CLI struct {
	Config  string   `name:"config" short:"c" help:"Config file (default: CONFIG_PATH or ./config.yaml)" type:"path"`
	Lang    string   `name:"lang" short:"l" help:"Wiktionary edition (default: resolver.default_language)"`
	Links   string   `name:"links" default:"none" enum:"none,brackets,html" help:"Hyperlink rendering: none, brackets or html"`
	Section string   `name:"section" short:"s" help:"Print a page section (etymology or synonyms) instead of the definition"`
	Version bool     `name:"version" help:"Print version information and exit"`
	Words   []string `arg:"" optional:"" help:"Words to look up"`
}

// Run resolves every word and prints one line per word in input order.
func (c *CLI) Run() error {
	if c.Version {
		fmt.Println(app.BuildVersion())
		return nil
	}
	if len(c.Words) == 0 {
		return fmt.Errorf("expected at least one word")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)
	_, svc := app.NewResolver(cfg, logger)

	lang := domain.ParseLanguage(c.Lang)
	if lang == "" {
		lang = domain.ParseLanguage(cfg.Resolver.DefaultLanguage)
	}
	style, err := domain.ParseHyperlinkStyle(c.Links)
	if err != nil {
		return err
	}
	section := domain.SectionKind(c.Section)
	if section != "" && !section.IsValid() {
		return fmt.Errorf("--section must be etymology or synonyms (got %q)", c.Section)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := request{
		lang:        lang,
		opts:        domain.Options{Hyperlinks: style},
		section:     section,
		concurrency: cfg.Resolver.Concurrency,
	}
	results, err := lookupAll(ctx, svc, c.Words, req)

	failed := printResults(os.Stdout, results, lang)
	if err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(results))
	}
	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config != "" {
		return config.LoadFrom(c.Config)
	}
	return config.Load()
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("define"),
		kong.Description("Look up word definitions on Wiktionary."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(kctx.Run())
}
