package lexicon

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
)

// germanCategories ends with a catch-all group so that adverb, particle and
// pronoun families ("Temporaladverb", "Personalpronomen") are recognized.
const germanCategories = `(Konjugierte Form)|(Deklinierte Form)|(Substantiv)|(Verb)|(Partizip[^|]*)|` +
	`(Adjektiv)|(Konjunktion)|(Subjunktion)|(Artikel)|(Numerale)|(Onomatopoetikum)|(Interjektion)|(.+)`

var (
	germanSectionRe     = regexp.MustCompile(germanSectionPattern(germanCategories))
	germanCatchAllRe    = regexp.MustCompile(`(?i)(adverb)|(partikel)|(pronomen)`)
	germanNewSpellingRe = regexp.MustCompile(`\{\{Alte Schreibweise\|([^|]+)\|`)
	germanLemmaRe       = regexp.MustCompile(`\{\{Grammatische Merkmale\}\}\n+[^\[]+\[\[([^\]|]+)`)
	germanNonLetterRe   = regexp.MustCompile(`(?i)[^a-zäöüß]`)
	germanMeaningRe     = regexp.MustCompile(`\n\{\{Bedeutungen\}\}\n:\[1\](.*)`)

	germanSections = map[domain.SectionKind]sectionRule{
		domain.SectionEtymology: {
			scope:       "({{Sprache|Deutsch}})",
			heading:     regexp.MustCompile(`\{\{Herkunft\}\}`),
			terminators: []string{"\n{{", "\n\n", "\n="},
		},
		domain.SectionSynonyms: {
			scope:       "({{Sprache|Deutsch}})",
			heading:     regexp.MustCompile(`\{\{Synonyme\}\}`),
			terminators: []string{"\n{{", "\n\n", "\n="},
		},
	}
)

func germanSectionPattern(categories string) string {
	return `\{\{Wortart\|(` + categories + `)\|Deutsch\}\}[\s\S]+`
}

type german struct{}

func (german) Language() domain.Language { return domain.LanguageGerman }

func (german) SearchDef(page string, hint Hint) Extraction {
	// Pages in the old orthography only point at the current spelling.
	if ns := germanNewSpellingRe.FindStringSubmatch(page); ns != nil {
		return Extraction{Kind: ExtractionRedirect, Target: strings.TrimSpace(ns[1])}
	}

	re := germanSectionRe
	if !hint.IsZero() {
		var err error
		if re, err = regexp.Compile(germanSectionPattern(hint.alternation(germanCategories))); err != nil {
			return Extraction{}
		}
	}

	m := re.FindStringSubmatch(page)
	if m == nil {
		return Extraction{}
	}

	if hint.IsZero() {
		if catchAll := m[len(m)-1]; catchAll != "" && !germanCatchAllRe.MatchString(catchAll) {
			return Extraction{}
		}
	}

	switch m[1] {
	case "Konjugierte Form", "Deklinierte Form":
		lemma := germanLemmaRe.FindStringSubmatch(m[0])
		if lemma == nil {
			return Extraction{}
		}
		target := germanNonLetterRe.ReplaceAllString(lemma[1], "")
		if target == "" {
			return Extraction{}
		}
		return Extraction{Kind: ExtractionRedirect, Target: target}

	default:
		meaning := germanMeaningRe.FindStringSubmatch(m[0])
		if meaning == nil {
			return Extraction{}
		}
		def := strings.TrimSpace(meaning[1])
		if def == "" {
			return Extraction{}
		}
		return Extraction{Kind: ExtractionGloss, Gloss: def, Category: m[1]}
	}
}

// Variant always reports false: German glosses are never bare cross-references.
func (german) Variant(string) (string, bool) { return "", false }

func (german) Section(page string, kind domain.SectionKind) (string, bool) {
	rule, ok := germanSections[kind]
	if !ok {
		return "", false
	}
	return rule.extract(page)
}
