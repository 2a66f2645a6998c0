// Package definition resolves a word to a short definition by walking
// Wiktionary search results, page redirects and cross-references.
package definition

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/lexicon"
	"github.com/heartmarshall/word-definition/internal/markup"
	"github.com/heartmarshall/word-definition/internal/provider"
)

const (
	defaultMaxHops = 10
	defaultWikiURL = "https://{lang}.wiktionary.org/wiki/"
)

type sourceClient interface {
	SearchTitles(ctx context.Context, lang domain.Language, word string, mode provider.SearchMode) ([]string, error)
	FetchPage(ctx context.Context, lang domain.Language, title string) (string, error)
}

// Service resolves definitions and page sections. It keeps no per-request
// state and is safe for concurrent use.
type Service struct {
	log      *slog.Logger
	source   sourceClient
	maxHops  int
	cleaners map[domain.Language]*markup.Cleaner
}

// NewService creates a new definition service.
func NewService(logger *slog.Logger, source sourceClient, cfg domain.ResolverConfig) *Service {
	if cfg.MaxHops <= 0 {
		cfg.MaxHops = defaultMaxHops
	}
	if cfg.WikiURL == "" {
		cfg.WikiURL = defaultWikiURL
	}

	cleaners := make(map[domain.Language]*markup.Cleaner)
	for _, lang := range lexicon.Languages() {
		wikiURL := strings.ReplaceAll(cfg.WikiURL, "{lang}", lang.String())
		cleaners[lang] = markup.NewCleaner(lang, wikiURL)
	}

	return &Service{
		log:      logger.With("service", "definition"),
		source:   source,
		maxHops:  cfg.MaxHops,
		cleaners: cleaners,
	}
}

// Languages lists the languages the service can resolve.
func (s *Service) Languages() []domain.Language {
	return lexicon.Languages()
}

func (s *Service) notFound(word string) error {
	return &domain.LookupError{Word: word, Err: domain.ErrNotFound}
}

func (s *Service) requestFailed(ctx context.Context, word string, err error) error {
	s.log.ErrorContext(ctx, "definition request failed",
		slog.String("word", word),
		slog.String("error", err.Error()),
	)
	return &domain.LookupError{Word: word, Err: err}
}
