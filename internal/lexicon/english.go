package lexicon

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/word-definition/internal/domain"
)

const englishCategories = `(Verb)|(Noun)|(Adjective)|(Adverb)|(Conjunction)|(Preposition)|` +
	`(Determiner)|(Article)|(Pronoun)|(Interjection)`

var (
	englishSectionRe = regexp.MustCompile(englishSectionPattern(englishCategories))
	englishHeadRe    = regexp.MustCompile(`\n\{\{((en-)|(head\|en)).+([\s\S]+)`)
	englishGlossRe   = regexp.MustCompile(`\n#\s(.+)`)
	englishNonGloss  = regexp.MustCompile(`\{\{(?:non-gloss definition|non-gloss|n-g)\|([^}]+)\}\}`)

	englishVariants = []*regexp.Regexp{
		// the whole gloss is a single link: "[[colour]]."
		regexp.MustCompile(`(?i)^(\{\{[^}]+\}\}\s*)*\[\[([^\]#|]+)[^\]]*\]\]\.*$`),
		// "{{plural of|en|cat}}", "{{alt form|colour}}"
		regexp.MustCompile(`\s*\{\{(([^|]+ of)|(alt form))\|(en\|)?([^}|]+)`),
	}

	englishSections = map[domain.SectionKind]sectionRule{
		domain.SectionEtymology: {
			scope:       "==English==",
			heading:     regexp.MustCompile(`===\s*Etymology(\s+\d+)?\s*===`),
			terminators: []string{"\n="},
		},
		domain.SectionSynonyms: {
			scope:       "==English==",
			heading:     regexp.MustCompile(`=+\s*Synonyms\s*=+`),
			terminators: []string{"\n="},
		},
	}
)

func englishSectionPattern(categories string) string {
	return `===(` + categories + `)===[\s\S]+`
}

type english struct{}

func (english) Language() domain.Language { return domain.LanguageEnglish }

func (english) SearchDef(page string, hint Hint) Extraction {
	re := englishSectionRe
	if !hint.IsZero() {
		var err error
		if re, err = regexp.Compile(englishSectionPattern(hint.alternation(englishCategories))); err != nil {
			return Extraction{}
		}
	}

	section := re.FindStringSubmatch(page)
	if section == nil {
		return Extraction{}
	}

	head := englishHeadRe.FindStringSubmatch(section[0])
	if head == nil {
		return Extraction{}
	}

	gloss := englishGlossRe.FindStringSubmatch(head[4])
	if gloss == nil {
		return Extraction{}
	}

	def := strings.TrimSpace(gloss[1])
	if def == "" {
		return Extraction{}
	}

	cat := section[1]
	if ng := englishNonGloss.FindStringSubmatch(def); ng != nil {
		def = cat + " " + ng[1]
	}

	return Extraction{Kind: ExtractionGloss, Gloss: def, Category: cat}
}

func (english) Variant(gloss string) (string, bool) {
	return firstVariant(englishVariants, gloss)
}

func (english) Section(page string, kind domain.SectionKind) (string, bool) {
	rule, ok := englishSections[kind]
	if !ok {
		return "", false
	}
	return rule.extract(page)
}
