package lexicon

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
)

const frenchCategories = `(nom)|(verbe)|(adjectif([^|]*))|(adverbe)|(conjonction[^|]*)|` +
	`(article[^|]*)|(pronom[^|]*)|(interjection)|(préposition)|(onomatopée)|(variante typographique)`

// frenchVerbOrAdjective lets an inflected verb or adjective land on either
// kind of lemma, since participles are often filed as adjectives.
const frenchVerbOrAdjective = `(verbe(\|num=\d+)*)|(adjectif)`

var (
	frenchSectionRe = regexp.MustCompile(frenchSectionPattern(frenchCategories))
	frenchTemplate  = regexp.MustCompile(`\{\{[^}]*\}\}`)
	frenchLemmaRe   = regexp.MustCompile(`\[\[([^#\-|\]]+)[^\]]*\]\]['\s.]*$`)
	frenchVerbAdjRe = regexp.MustCompile(`^(verbe)|(adjectif)$`)
	frenchGenderRe  = regexp.MustCompile(`\{\{(mf|m|f)(\|[^}]*)?\}\}`)

	frenchVariants = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\{\{variante [^|]*\|([^|}]+)`),
		regexp.MustCompile(`(?i)^\{\{cf\|([^}]+)\}\}\s*\.*$`),
		regexp.MustCompile(`(?i)^(\{\{[^}]+\}\}\s*)*'*((Variante)|(Autre)|(Voir)|(Synonyme)|(Mauvaise orthographe))[^\[]+\[\[([^\]#|]+)\]\]`),
		regexp.MustCompile(`(?i)^(\{\{[^}]+\}\}\s*)*\[\[([^\]#|]+)[^\]]*\]\]\.*$`),
	}

	frenchSections = map[domain.SectionKind]sectionRule{
		domain.SectionEtymology: {
			scope:       "{{langue|fr}}",
			heading:     regexp.MustCompile(`=+\s*\{\{S\|étymologie\}\}\s*=+`),
			terminators: []string{"\n="},
		},
		domain.SectionSynonyms: {
			scope:       "{{langue|fr}}",
			heading:     regexp.MustCompile(`=+\s*\{\{S\|synonymes\}\}\s*=+`),
			terminators: []string{"\n="},
		},
	}
)

// frenchSectionPattern matches a "{{S|<category>|fr...}}" header, the lines up
// to the first "#" gloss, and an optional "##" sub-gloss right after it.
// Groups are addressed from the end because the category alternation has a
// variable number of groups.
func frenchSectionPattern(categories string) string {
	return `\{\{S\|(` + categories +
		`)(\|num=\d+)*\|fr(\|num=\d+)*(\|flexion)*.+(\n[^#].+)*\n#\s*(.+)(\n##(.+))?`
}

type french struct{}

func (french) Language() domain.Language { return domain.LanguageFrench }

func (french) SearchDef(page string, hint Hint) Extraction {
	re := frenchSectionRe
	if !hint.IsZero() {
		var err error
		if re, err = regexp.Compile(frenchSectionPattern(hint.alternation(frenchCategories))); err != nil {
			return Extraction{}
		}
	}

	m := re.FindStringSubmatch(page)
	if m == nil {
		return Extraction{}
	}
	n := len(m)

	def := strings.TrimSpace(m[n-3])
	// A "#" line made only of templates defers to its first "##" sub-gloss.
	if m[n-1] != "" && strings.TrimSpace(frenchTemplate.ReplaceAllString(def, "")) == "" {
		def = strings.TrimSpace(m[n-1])
	}
	if def == "" {
		return Extraction{}
	}

	cat := m[1]
	if cat == "variante typographique" {
		cat = ""
	}

	if m[n-5] != "" {
		if lemma := frenchLemmaRe.FindStringSubmatch(def); lemma != nil {
			ext := Extraction{Kind: ExtractionRedirect, Target: lemma[1], Category: cat}
			if frenchVerbAdjRe.MatchString(cat) {
				ext.Pattern = frenchVerbOrAdjective
			}
			return ext
		}
	}

	ext := Extraction{Kind: ExtractionGloss, Gloss: def, Category: cat}
	if cat == "nom" {
		ext.Gender = frenchGender(m[0])
	}
	return ext
}

func (french) Variant(gloss string) (string, bool) {
	return firstVariant(frenchVariants, gloss)
}

func (french) Section(page string, kind domain.SectionKind) (string, bool) {
	rule, ok := frenchSections[kind]
	if !ok {
		return "", false
	}
	return rule.extract(page)
}

// frenchGender reads the gender template on the headword line, which sits
// between the section header and the first gloss.
func frenchGender(section string) domain.Gender {
	header, _, _ := strings.Cut(section, "\n#")
	m := frenchGenderRe.FindStringSubmatch(header)
	if m == nil {
		return domain.GenderUnknown
	}
	switch m[1] {
	case "m":
		return domain.GenderMasculine
	case "f":
		return domain.GenderFeminine
	default:
		return domain.GenderCommon
	}
}
