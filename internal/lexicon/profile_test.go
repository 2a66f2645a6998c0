package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/word-definition/internal/domain"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageFrench, domain.LanguageGerman} {
		p, ok := Lookup(lang)
		require.True(t, ok, "language %s", lang)
		assert.Equal(t, lang, p.Language())
	}

	_, ok := Lookup("es")
	assert.False(t, ok)
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []domain.Language{"de", "en", "fr"}, Languages())
}

func TestHint_Alternation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(a)|(b)", Hint{}.alternation("(a)|(b)"))
	assert.Equal(t, "Noun", Hint{Category: "Noun"}.alternation("x"))
	assert.Equal(t, `adjectif\(x\)`, Hint{Category: "adjectif(x)"}.alternation("x"))
	assert.Equal(t, "(verbe)|(adjectif)", Hint{Category: "verbe", Pattern: "(verbe)|(adjectif)"}.alternation("x"))
}

func TestExtractionKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", ExtractionEmpty.String())
	assert.Equal(t, "gloss", ExtractionGloss.String())
	assert.Equal(t, "redirect", ExtractionRedirect.String())
}
