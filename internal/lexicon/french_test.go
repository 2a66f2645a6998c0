package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/word-definition/internal/domain"
)

func TestFrench_SearchDef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
		hint Hint
		want Extraction
	}{
		{
			name: "noun with gender",
			page: frenchChat,
			want: Extraction{
				Kind:     ExtractionGloss,
				Gloss:    "[[Petit]] [[mammifère]] [[carnivore]] domestique.",
				Category: "nom",
				Gender:   domain.GenderMasculine,
			},
		},
		{
			name: "category hint honoured",
			page: frenchChat,
			hint: Hint{Category: "nom"},
			want: Extraction{
				Kind:     ExtractionGloss,
				Gloss:    "[[Petit]] [[mammifère]] [[carnivore]] domestique.",
				Category: "nom",
				Gender:   domain.GenderMasculine,
			},
		},
		{
			name: "incompatible hint yields nothing",
			page: frenchChat,
			hint: Hint{Category: "verbe"},
			want: Extraction{},
		},
		{
			name: "plural noun redirects to lemma",
			page: frenchChats,
			want: Extraction{Kind: ExtractionRedirect, Target: "chat", Category: "nom"},
		},
		{
			name: "conjugated verb redirects with verb-or-adjective constraint",
			page: frenchMangeons,
			want: Extraction{
				Kind:     ExtractionRedirect,
				Target:   "manger",
				Category: "verbe",
				Pattern:  frenchVerbOrAdjective,
			},
		},
		{
			name: "template-only gloss falls back to sub-gloss",
			page: frenchSubGloss,
			want: Extraction{Kind: ExtractionGloss, Gloss: "Qui est de la couleur de l’herbe.", Category: "adjectif"},
		},
		{
			name: "verb-or-adjective pattern matches adjective lemma",
			page: frenchSubGloss,
			hint: Hint{Category: "verbe", Pattern: frenchVerbOrAdjective},
			want: Extraction{Kind: ExtractionGloss, Gloss: "Qui est de la couleur de l’herbe.", Category: "adjectif"},
		},
		{
			name: "typographic variant has no category",
			page: frenchTypo,
			want: Extraction{Kind: ExtractionGloss, Gloss: "Variante typographique de [[œuvre]].", Category: ""},
		},
		{
			name: "feminine noun",
			page: frenchClef,
			want: Extraction{Kind: ExtractionGloss, Gloss: "{{variante de|clé}}.", Category: "nom", Gender: domain.GenderFeminine},
		},
		{
			name: "no french section",
			page: englishCat,
			want: Extraction{},
		},
	}

	p := french{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.SearchDef(tt.page, tt.hint))
		})
	}
}

func TestFrench_Variant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gloss  string
		target string
		ok     bool
	}{
		{gloss: "{{variante de|clé}}.", target: "clé", ok: true},
		{gloss: "{{variante ortho de|clé|fr}}", target: "clé", ok: true},
		{gloss: "{{cf|chien}}.", target: "chien", ok: true},
		{gloss: "Variante typographique de [[œuvre]].", target: "œuvre", ok: true},
		{gloss: "{{vieilli|fr}} ''Voir'' [[clé]]", target: "clé", ok: true},
		{gloss: "Mauvaise orthographe de [[événement]].", target: "événement", ok: true},
		{gloss: "[[chien]]", target: "chien", ok: true},
		{gloss: "{{familier|fr}} [[chien#fr|chien]].", target: "chien", ok: true},
		{gloss: "Petit [[mammifère]] carnivore.", ok: false},
		{gloss: "[[Petit]] [[mammifère]].", ok: false},
	}

	p := french{}
	for _, tt := range tests {
		target, ok := p.Variant(tt.gloss)
		assert.Equal(t, tt.ok, ok, "Variant(%q)", tt.gloss)
		assert.Equal(t, tt.target, target, "Variant(%q)", tt.gloss)
	}
}

func TestFrench_Section(t *testing.T) {
	t.Parallel()

	p := french{}

	ety, ok := p.Section(frenchChat, domain.SectionEtymology)
	require.True(t, ok)
	assert.Equal(t, ": Du {{étyl|la|fr|mot=cattus}}. (1) Attesté au XIIe siècle.", ety)

	syn, ok := p.Section(frenchChat, domain.SectionSynonyms)
	require.True(t, ok)
	assert.Equal(t, "* [[matou]]\n* [[minet]]", syn)

	_, ok = p.Section(frenchChats, domain.SectionSynonyms)
	assert.False(t, ok)
}
