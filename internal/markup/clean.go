package markup

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/heartmarshall/word-definition/internal/domain"
)

// ErrNoDefinition is returned when nothing usable is left after cleanup.
var ErrNoDefinition = errors.New("no usable definition")

var (
	templateRe    = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	boldRe        = regexp.MustCompile(`'''([^']+)'''`)
	italicRe      = regexp.MustCompile(`''([^']+)''`)
	pipedLinkRe   = regexp.MustCompile(`\[\[([^\]|]+)\|([^\]]+)\]\]`)
	plainLinkRe   = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	displayLinkRe = regexp.MustCompile(`\[\[([^\]|]+\|)*([^\]]+)\]\]`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)

	// RE2 has no backreferences; the closing tag must match the opening one.
	pairedTagRe = func() *regexp2.Regexp {
		re := regexp2.MustCompile(`<(\w+)>[^<]*</\1>`, regexp2.None)
		re.MatchTimeout = time.Second
		return re
	}()
)

// Cleaner turns a raw wikitext gloss into display text for one language edition.
// It holds no mutable state and is safe for concurrent use.
type Cleaner struct {
	langTemplateRe *regexp.Regexp
	wikiURL        string
}

// NewCleaner creates a Cleaner. wikiURL is the article base used by
// HyperlinkHTML, e.g. "https://fr.wiktionary.org/wiki/".
func NewCleaner(lang domain.Language, wikiURL string) *Cleaner {
	return &Cleaner{
		// {{a|b|...|lang}}: the last argument before the language code survives.
		langTemplateRe: regexp.MustCompile(`\{\{(([^{}|]+)\|)+` + regexp.QuoteMeta(lang.String()) + `\}\}`),
		wikiURL:        wikiURL,
	}
}

// Clean normalizes raw into plain text, rendering internal links per style.
// The steps are order-sensitive. Returns ErrNoDefinition when only blanks
// or punctuation remain once templates and tags are gone.
func (c *Cleaner) Clean(raw string, style domain.HyperlinkStyle) (string, error) {
	s := c.langTemplateRe.ReplaceAllString(raw, "(${2})")
	s = stripTemplates(s)
	s = stripPairedTag(s)
	s = strings.TrimSpace(s)

	if isBlank(s) {
		return "", ErrNoDefinition
	}

	s = boldRe.ReplaceAllString(s, "${1}")
	s = italicRe.ReplaceAllString(s, "${1}")

	switch style {
	case domain.HyperlinkBrackets:
	case domain.HyperlinkHTML:
		s = pipedLinkRe.ReplaceAllStringFunc(s, func(m string) string {
			sub := pipedLinkRe.FindStringSubmatch(m)
			return c.anchor(sub[1], sub[2])
		})
		s = plainLinkRe.ReplaceAllStringFunc(s, func(m string) string {
			sub := plainLinkRe.FindStringSubmatch(m)
			return c.anchor(sub[1], sub[1])
		})
	default:
		s = displayLinkRe.ReplaceAllString(s, "${2}")
	}

	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s), nil
}

func (c *Cleaner) anchor(target, text string) string {
	return "<a href='" + c.wikiURL + linkPath(target) + "' target='_blank'>" + text + "</a>"
}

// NormalizeCategory lowercases a category and drops template arguments.
func NormalizeCategory(cat string) string {
	cat, _, _ = strings.Cut(cat, "|")
	return strings.ToLower(strings.TrimSpace(cat))
}

// stripTemplates removes templates innermost-first so nested templates
// leave no stray braces behind.
func stripTemplates(s string) string {
	for {
		next := templateRe.ReplaceAllString(s, "")
		if next == s {
			return next
		}
		s = next
	}
}

// stripPairedTag removes the first <tag>...</tag> pair and its content.
func stripPairedTag(s string) string {
	out, err := pairedTagRe.Replace(s, "", -1, 1)
	if err != nil {
		return s
	}
	return out
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// linkPath escapes a wiki title for use in an article URL, keeping any
// #section fragment intact.
func linkPath(target string) string {
	title, fragment, hasFragment := strings.Cut(target, "#")
	path := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
	if hasFragment {
		path += "#" + url.PathEscape(fragment)
	}
	return path
}
