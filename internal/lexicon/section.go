package lexicon

import (
	"regexp"
	"strings"
)

// sectionRule describes where a section starts and what ends it.
type sectionRule struct {
	// scope, when found, is where the language's part of the page begins.
	scope       string
	heading     *regexp.Regexp
	terminators []string
}

func (r sectionRule) extract(page string) (string, bool) {
	if r.scope != "" {
		if idx := strings.Index(page, r.scope); idx >= 0 {
			page = page[idx:]
		}
	}

	loc := r.heading.FindStringIndex(page)
	if loc == nil {
		return "", false
	}

	body := page[loc[1]:]
	end := len(body)
	for _, t := range r.terminators {
		if idx := strings.Index(body, t); idx >= 0 && idx < end {
			end = idx
		}
	}

	body = strings.TrimSpace(body[:end])
	return body, body != ""
}
