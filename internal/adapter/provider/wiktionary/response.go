package wiktionary

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/word-definition/internal/domain"
)

// Revision content moves between these fields depending on the API version
// and on whether rvslots was honoured. `*` is escaped for gjson.
var contentPaths = []string{
	`revisions.0.slots.main.\*`,
	`revisions.0.slots.main.content`,
	`revisions.0.\*`,
	`revisions.0.content`,
}

// decodeTitles extracts query.search[].title.
func decodeTitles(body []byte) ([]string, error) {
	if err := checkBody(body); err != nil {
		return nil, err
	}

	search := gjson.GetBytes(body, "query.search")
	if !search.IsArray() {
		return nil, errMalformed
	}

	titles := make([]string, 0, len(search.Array()))
	for _, hit := range search.Array() {
		title := hit.Get("title").String()
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// decodePage extracts the content of the single page in query.pages.
// A page keyed "-1" (or any negative id), or flagged missing or invalid,
// does not exist.
func decodePage(body []byte) (string, error) {
	if err := checkBody(body); err != nil {
		return "", err
	}

	pages := gjson.GetBytes(body, "query.pages")
	if !pages.IsObject() {
		return "", errMalformed
	}

	var (
		content string
		found   bool
		decErr  error = errMalformed
	)
	pages.ForEach(func(key, page gjson.Result) bool {
		if strings.HasPrefix(key.String(), "-") || page.Get("missing").Exists() || page.Get("invalid").Exists() {
			decErr = domain.ErrPageNotFound
			return false
		}
		for _, path := range contentPaths {
			if v := page.Get(path); v.Exists() {
				content, found = v.String(), true
				return false
			}
		}
		return false
	})

	if !found {
		return "", decErr
	}
	return content, nil
}

func decodeSiteinfo(body []byte) error {
	if err := checkBody(body); err != nil {
		return err
	}
	if !gjson.GetBytes(body, "query.general").Exists() {
		return errMalformed
	}
	return nil
}

// checkBody rejects bodies that are not JSON or that carry an API error.
func checkBody(body []byte) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("decode json: %w", errMalformed)
	}
	if apiErr := gjson.GetBytes(body, "error"); apiErr.Exists() {
		return fmt.Errorf("api error %s: %s", apiErr.Get("code").String(), apiErr.Get("info").String())
	}
	return nil
}
