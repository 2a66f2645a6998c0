package domain

import "strings"

// Language is a Wiktionary language edition code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageGerman  Language = "de"
)

func (l Language) String() string { return string(l) }

// ParseLanguage lowercases and trims s. Support is decided by the lexicon,
// not here: an unknown code is still a well-formed Language.
func ParseLanguage(s string) Language {
	return Language(strings.ToLower(strings.TrimSpace(s)))
}

// HyperlinkStyle controls how internal wiki links are rendered in a definition.
type HyperlinkStyle string

const (
	HyperlinkNone     HyperlinkStyle = "none"
	HyperlinkBrackets HyperlinkStyle = "brackets"
	HyperlinkHTML     HyperlinkStyle = "html"
)

func (s HyperlinkStyle) String() string { return string(s) }

func (s HyperlinkStyle) IsValid() bool {
	switch s {
	case HyperlinkNone, HyperlinkBrackets, HyperlinkHTML:
		return true
	}
	return false
}

// ParseHyperlinkStyle maps a user-supplied value to a HyperlinkStyle.
// An empty string selects HyperlinkNone.
func ParseHyperlinkStyle(s string) (HyperlinkStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return HyperlinkNone, nil
	}
	style := HyperlinkStyle(s)
	if !style.IsValid() {
		return "", NewValidationError("links", "must be one of none, brackets, html")
	}
	return style, nil
}

// Gender is the grammatical gender of a noun, when the source page states it.
type Gender string

const (
	GenderUnknown   Gender = ""
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderCommon    Gender = "common"
)

func (g Gender) String() string { return string(g) }

// SectionKind names a page section that can be extracted besides the definition.
type SectionKind string

const (
	SectionEtymology SectionKind = "etymology"
	SectionSynonyms  SectionKind = "synonyms"
)

func (k SectionKind) String() string { return string(k) }

func (k SectionKind) IsValid() bool {
	switch k {
	case SectionEtymology, SectionSynonyms:
		return true
	}
	return false
}
