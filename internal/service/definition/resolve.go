package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/lexicon"
	"github.com/heartmarshall/word-definition/internal/markup"
	"github.com/heartmarshall/word-definition/internal/provider"
)

// pageRedirectRe matches a whole-page "#REDIRECT [[X]]" directive,
// including localized forms such as "#REDIRECTION".
var pageRedirectRe = regexp.MustCompile(`(?i)^\s*#REDIRECT[^\[]*\[\[([^\]]+)\]\]\s*$`)

// resolution is the state of one Resolve call.
type resolution struct {
	word    string
	lang    domain.Language
	profile lexicon.Profile
	style   domain.HyperlinkStyle

	titles []string
	mode   provider.SearchMode
	hint   lexicon.Hint

	// previousTitle and lastGloss remember the page a cross-reference
	// was followed from.
	previousTitle string
	lastGloss     string
	hops          int
}

// Resolve returns the first usable definition of word in lang.
//
// Failures are *domain.LookupError values wrapping domain.ErrNotFound,
// domain.ErrUnsupportedLanguage or domain.ErrRequestFailed. A blank word
// is a validation error.
func (s *Service) Resolve(ctx context.Context, word string, lang domain.Language, opts domain.Options) (*domain.Definition, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	style := opts.Hyperlinks
	if style == "" {
		style = domain.HyperlinkNone
	}
	if !style.IsValid() {
		return nil, domain.NewValidationError("links", "must be one of none, brackets, html")
	}

	profile, ok := lexicon.Lookup(lang)
	if !ok {
		return nil, &domain.LookupError{Word: word, Err: domain.ErrUnsupportedLanguage}
	}

	r := &resolution{
		word:    word,
		lang:    lang,
		profile: profile,
		style:   style,
		mode:    provider.SearchNearMatch,
	}

	if err := s.search(ctx, r); err != nil {
		return nil, err
	}

	for {
		title := r.titles[0]

		page, err := s.source.FetchPage(ctx, r.lang, title)
		switch {
		case errors.Is(err, domain.ErrPageNotFound):
			if r.previousTitle != "" && r.hint.Category != "" {
				return s.fallback(ctx, r)
			}
			s.log.DebugContext(ctx, "page not found", slog.String("title", title))
			return nil, s.notFound(r.word)
		case err != nil:
			return nil, s.requestFailed(ctx, r.word, err)
		}

		if target, ok := pageRedirect(page); ok {
			if err := s.hop(ctx, r, target); err != nil {
				return nil, err
			}
			r.titles[0] = target
			continue
		}

		ext := r.profile.SearchDef(page, r.hint)
		switch ext.Kind {
		case lexicon.ExtractionRedirect:
			if err := s.hop(ctx, r, ext.Target); err != nil {
				return nil, err
			}
			if ext.Category != "" || ext.Pattern != "" {
				r.hint = lexicon.Hint{Category: ext.Category, Pattern: ext.Pattern}
			}
			r.titles[0] = ext.Target

		case lexicon.ExtractionGloss:
			r.hint = lexicon.Hint{Category: ext.Category}

			if target, ok := r.profile.Variant(ext.Gloss); ok {
				if err := s.hop(ctx, r, target); err != nil {
					return nil, err
				}
				r.previousTitle = title
				r.lastGloss = ext.Gloss
				r.titles[0] = target
				continue
			}

			return s.cleanup(ctx, r, title, ext.Category, ext.Gender, ext.Gloss)

		default:
			s.log.DebugContext(ctx, "no definition on page",
				slog.String("title", title),
				slog.String("mode", r.mode.String()),
			)
			r.hint = lexicon.Hint{}

			if r.mode == provider.SearchNearMatch {
				r.mode = provider.SearchFullText
				if err := s.search(ctx, r); err != nil {
					return nil, err
				}
				continue
			}

			r.titles = r.titles[1:]
			if len(r.titles) == 0 {
				return nil, s.notFound(r.word)
			}
		}
	}
}

// search fills r.titles, widening a near-match search to full text when it
// comes back empty. The title being abandoned and the title a cross-reference
// came from are never candidates again.
func (s *Service) search(ctx context.Context, r *resolution) error {
	for {
		titles, err := s.source.SearchTitles(ctx, r.lang, r.word, r.mode)
		if err != nil {
			return s.requestFailed(ctx, r.word, err)
		}

		s.log.DebugContext(ctx, "search",
			slog.String("word", r.word),
			slog.String("mode", r.mode.String()),
			slog.Int("titles", len(titles)),
		)

		if len(titles) == 0 {
			if r.mode == provider.SearchNearMatch {
				r.mode = provider.SearchFullText
				continue
			}
			return s.notFound(r.word)
		}

		var exclude []string
		if len(r.titles) > 0 {
			exclude = append(exclude, r.titles[0])
		}
		if r.previousTitle != "" {
			exclude = append(exclude, r.previousTitle)
		}

		candidates := make([]string, 0, len(titles))
		for _, t := range titles {
			if !slices.Contains(exclude, t) {
				candidates = append(candidates, t)
			}
		}

		r.previousTitle = ""
		if len(candidates) == 0 {
			return s.notFound(r.word)
		}
		r.titles = candidates
		return nil
	}
}

// hop accounts for one followed redirect.
func (s *Service) hop(ctx context.Context, r *resolution, target string) error {
	r.hops++
	s.log.DebugContext(ctx, "redirect",
		slog.String("from", r.titles[0]),
		slog.String("to", target),
		slog.Int("hop", r.hops),
	)
	if r.hops > s.maxHops {
		return s.requestFailed(ctx, r.word,
			fmt.Errorf("%w: %w after %d hops", domain.ErrRequestFailed, domain.ErrRedirectLimit, s.maxHops))
	}
	return nil
}

// cleanup renders gloss and builds the result.
func (s *Service) cleanup(ctx context.Context, r *resolution, word, category string, gender domain.Gender, gloss string) (*domain.Definition, error) {
	text, err := s.cleaners[r.lang].Clean(gloss, r.style)
	if err != nil {
		s.log.DebugContext(ctx, "gloss cleaned to nothing",
			slog.String("title", word),
			slog.String("gloss", gloss),
		)
		return nil, s.notFound(word)
	}

	return &domain.Definition{
		Word:       word,
		Category:   markup.NormalizeCategory(category),
		Definition: text,
		Gender:     gender,
	}, nil
}

// fallback answers with the page a cross-reference was followed from when
// its target does not exist. The gloss that pointed away is used as the
// definition; if nothing is left of it once cleaned, the missing title is.
func (s *Service) fallback(ctx context.Context, r *resolution) (*domain.Definition, error) {
	s.log.DebugContext(ctx, "cross-reference target missing",
		slog.String("title", r.titles[0]),
		slog.String("previous_title", r.previousTitle),
	)

	def, err := s.cleanup(ctx, r, r.previousTitle, r.hint.Category, domain.GenderUnknown, r.lastGloss)
	if err == nil {
		return def, nil
	}
	return s.cleanup(ctx, r, r.previousTitle, r.hint.Category, domain.GenderUnknown, r.titles[0])
}

// pageRedirect reports the target of a whole-page redirect. A section
// fragment in the target is dropped.
func pageRedirect(page string) (string, bool) {
	m := pageRedirectRe.FindStringSubmatch(page)
	if m == nil {
		return "", false
	}
	target, _, _ := strings.Cut(m[1], "#")
	target, _, _ = strings.Cut(target, "|")
	target = strings.TrimSpace(target)
	return target, target != ""
}
