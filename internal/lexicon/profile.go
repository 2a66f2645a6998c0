// Package lexicon holds the per-language rules used to pull a definition out
// of a Wiktionary page: where the grammatical sections are, which line is the
// first gloss, and which glosses merely point at another headword.
package lexicon

import (
	"regexp"
	"slices"

	"github.com/heartmarshall/word-definition/internal/domain"
)

// Profile is the capability every supported language provides.
// Implementations are stateless and safe for concurrent use.
type Profile interface {
	Language() domain.Language
	// SearchDef locates the first grammatical section compatible with hint
	// and extracts its first gloss.
	SearchDef(page string, hint Hint) Extraction
	// Variant reports whether gloss only points at another headword and,
	// if so, which one.
	Variant(gloss string) (target string, ok bool)
	// Section returns the raw body of an etymology or synonyms section.
	Section(page string, kind domain.SectionKind) (string, bool)
}

// Hint restricts SearchDef to a grammatical category found on an earlier page.
// Pattern, when set, is a regular expression that takes precedence over Category.
type Hint struct {
	Category string
	Pattern  string
}

// IsZero reports whether the hint places no restriction.
func (h Hint) IsZero() bool { return h.Category == "" && h.Pattern == "" }

// alternation returns the category alternation to embed in a section pattern.
func (h Hint) alternation(fallback string) string {
	switch {
	case h.Pattern != "":
		return h.Pattern
	case h.Category != "":
		return regexp.QuoteMeta(h.Category)
	default:
		return fallback
	}
}

// ExtractionKind tells the resolver what SearchDef found.
type ExtractionKind int

const (
	// ExtractionEmpty means no compatible section or gloss was found.
	ExtractionEmpty ExtractionKind = iota
	// ExtractionGloss carries a gloss, possibly itself a cross-reference.
	ExtractionGloss
	// ExtractionRedirect asks for the current title to be replaced by Target,
	// e.g. an inflected form pointing at its lemma.
	ExtractionRedirect
)

func (k ExtractionKind) String() string {
	switch k {
	case ExtractionGloss:
		return "gloss"
	case ExtractionRedirect:
		return "redirect"
	default:
		return "empty"
	}
}

// Extraction is the result of SearchDef.
type Extraction struct {
	Kind     ExtractionKind
	Gloss    string
	Target   string
	Category string
	// Pattern constrains the next page to a set of categories.
	Pattern string
	Gender  domain.Gender
}

var profiles = map[domain.Language]Profile{
	domain.LanguageEnglish: english{},
	domain.LanguageFrench:  french{},
	domain.LanguageGerman:  german{},
}

// Lookup returns the profile registered for lang.
func Lookup(lang domain.Language) (Profile, bool) {
	p, ok := profiles[lang]
	return p, ok
}

// Languages lists the supported languages in a stable order.
func Languages() []domain.Language {
	langs := make([]domain.Language, 0, len(profiles))
	for lang := range profiles {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// firstVariant applies patterns in order; the last capture group of the
// first match is the target headword.
func firstVariant(patterns []*regexp.Regexp, gloss string) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(gloss)
		if m == nil {
			continue
		}
		if target := m[len(m)-1]; target != "" {
			return target, true
		}
	}
	return "", false
}
