// Package presenter renders resolver results and failures as user-facing text.
package presenter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/word-definition/internal/domain"
)

type messages struct {
	notFound            string
	invalidInput        string
	unsupportedLanguage string
	unknown             string
}

var (
	frenchMessages = messages{
		notFound:            "Désolé, je n'ai pas trouvé de définition :( !",
		invalidInput:        "Il y a des caractères que Wiktionnaire ne gère pas dans ton mot",
		unsupportedLanguage: "Désolé, cette langue n'est pas prise en charge.",
		unknown:             "Une erreur inconnue est survenue, réessaie plus tard.",
	}
	englishMessages = messages{
		notFound:            "Sorry, I wasn't able to find a definition :( !",
		invalidInput:        "There are characters Wiktionary does not understand in your word",
		unsupportedLanguage: "Sorry, this language is not supported.",
		unknown:             "An unknown error occurred, please try again later.",
	}
)

// ErrorMessage returns the message shown to a user for err. French is used
// for fr, English for every other language. A nil error yields "".
func ErrorMessage(err error, lang domain.Language) string {
	m := englishMessages
	if lang == domain.LanguageFrench {
		m = frenchMessages
	}

	switch domain.Kind(err) {
	case domain.KindNone:
		return ""
	case domain.KindNotFound:
		return m.notFound
	case domain.KindInvalidInput:
		return m.invalidInput
	case domain.KindUnsupportedLanguage:
		return m.unsupportedLanguage
	default:
		return m.unknown
	}
}

// FormatDefinition renders def as a chat line:
//
//	__chat__, nom masculin (le chat; un chat) : `Petit mammifère carnivore domestique.`
//
// The gender part is only present when the gender is known.
func FormatDefinition(def *domain.Definition) string {
	var b strings.Builder
	b.WriteString("__" + def.Word + "__, " + def.Category)

	if def.Gender != domain.GenderUnknown {
		if label := genderLabel(def.Gender); label != "" {
			b.WriteString(" " + label)
		}
		definite, indefinite := articles(def.Word, def.Gender)
		b.WriteString(" (" + definite + "; " + indefinite + ")")
	}

	b.WriteString(" : `" + def.Definition + "`")
	return b.String()
}

// FormatSection renders an etymology or synonyms section, labelled in lang.
func FormatSection(sec *domain.Section, lang domain.Language) string {
	return "(" + sectionLabel(sec.Kind, lang) + ") __" + sec.Word + "__ : `" + sec.Text + "`"
}

func sectionLabel(kind domain.SectionKind, lang domain.Language) string {
	switch lang {
	case domain.LanguageFrench:
		if kind == domain.SectionSynonyms {
			return "synonymes"
		}
		return "étymologie"
	case domain.LanguageGerman:
		if kind == domain.SectionSynonyms {
			return "Synonyme"
		}
		return "Herkunft"
	default:
		return kind.String()
	}
}

func genderLabel(g domain.Gender) string {
	switch g {
	case domain.GenderMasculine:
		return "masculin"
	case domain.GenderFeminine:
		return "féminin"
	default:
		return ""
	}
}

// articles returns word preceded by its French definite and indefinite articles.
func articles(word string, g domain.Gender) (definite, indefinite string) {
	switch g {
	case domain.GenderMasculine:
		definite, indefinite = "le ", "un "
	case domain.GenderFeminine:
		definite, indefinite = "la ", "une "
	default:
		definite, indefinite = "le ou la ", "un ou une "
	}
	if elides(word) {
		definite = "l'"
	}
	return definite + word, indefinite + word
}

// elides reports whether word takes "l'" instead of "le"/"la". Every initial
// h is treated as mute.
func elides(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ContainsRune("aàâäeéèêëiîïoôöuùûüyœæh", unicode.ToLower(r))
}
