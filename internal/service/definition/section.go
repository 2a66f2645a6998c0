package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/lexicon"
	"github.com/heartmarshall/word-definition/internal/provider"
)

// minEtymologyLen is the shortest etymology worth returning.
const minEtymologyLen = 6

var (
	lineMarkerRe   = regexp.MustCompile(`^[*#:]+\s*`)
	senseNumberRe  = regexp.MustCompile(`^\[[0-9, –-]+\]\s*`)
	etymologyNumRe = regexp.MustCompile(`\([0-9]+\)`)
	spaceBeforeRe  = regexp.MustCompile(`\s+([.,;:])`)

	// Link templates carry the only useful text of a synonym line.
	enLinkTemplateRe = regexp.MustCompile(`\{\{l\|[a-z-]+\|([^}|]+)[^}]*\}\}`)
	frLinkTemplateRe = regexp.MustCompile(`\{\{lien\|([^}|]+)[^}]*\}\}`)
)

// Section extracts the etymology or the synonyms of the best full-text
// match for word. The section's headword is reported in the result.
func (s *Service) Section(ctx context.Context, word string, lang domain.Language, kind domain.SectionKind) (*domain.Section, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of etymology, synonyms")
	}

	profile, ok := lexicon.Lookup(lang)
	if !ok {
		return nil, &domain.LookupError{Word: word, Err: domain.ErrUnsupportedLanguage}
	}

	titles, err := s.source.SearchTitles(ctx, lang, word, provider.SearchFullText)
	if err != nil {
		return nil, s.requestFailed(ctx, word, err)
	}
	if len(titles) == 0 {
		return nil, s.notFound(word)
	}

	title, page, err := s.fetchFollowing(ctx, lang, titles[0])
	if err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			return nil, s.notFound(title)
		}
		return nil, s.requestFailed(ctx, word, err)
	}

	raw, ok := profile.Section(page, kind)
	if !ok {
		s.log.DebugContext(ctx, "section missing",
			slog.String("title", title),
			slog.String("kind", kind.String()),
		)
		return nil, s.notFound(title)
	}

	var text string
	switch kind {
	case domain.SectionEtymology:
		text = s.etymology(lang, raw)
	case domain.SectionSynonyms:
		text = s.synonyms(lang, raw)
	}
	if text == "" {
		return nil, s.notFound(title)
	}

	return &domain.Section{Word: title, Kind: kind, Text: text}, nil
}

// fetchFollowing fetches title, following whole-page redirects within the
// hop budget. It returns the title of the page actually read.
func (s *Service) fetchFollowing(ctx context.Context, lang domain.Language, title string) (string, string, error) {
	for hops := 0; ; hops++ {
		page, err := s.source.FetchPage(ctx, lang, title)
		if err != nil {
			return title, "", err
		}

		target, ok := pageRedirect(page)
		if !ok {
			return title, page, nil
		}
		if hops >= s.maxHops {
			return title, "", fmt.Errorf("%w: %w after %d hops", domain.ErrRequestFailed, domain.ErrRedirectLimit, s.maxHops)
		}
		title = target
	}
}

func (s *Service) etymology(lang domain.Language, raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = lineMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
	}

	text, err := s.cleaners[lang].Clean(strings.Join(lines, " "), domain.HyperlinkNone)
	if err != nil {
		return ""
	}

	text = etymologyNumRe.ReplaceAllString(text, "")
	text = spaceBeforeRe.ReplaceAllString(text, "$1")
	text = strings.Join(strings.Fields(text), " ")
	if len([]rune(text)) < minEtymologyLen {
		return ""
	}
	return text
}

func (s *Service) synonyms(lang domain.Language, raw string) string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !lineMarkerRe.MatchString(line) {
			continue
		}
		line = lineMarkerRe.ReplaceAllString(line, "")
		line = senseNumberRe.ReplaceAllString(line, "")
		line = enLinkTemplateRe.ReplaceAllString(line, "[[$1]]")
		line = frLinkTemplateRe.ReplaceAllString(line, "[[$1]]")

		text, err := s.cleaners[lang].Clean(line, domain.HyperlinkNone)
		if err != nil {
			continue
		}
		words = append(words, text)
	}
	return strings.Join(words, ", ")
}
