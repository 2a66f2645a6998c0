package definition

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/provider"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSource struct {
	SearchTitlesFunc func(ctx context.Context, lang domain.Language, word string, mode provider.SearchMode) ([]string, error)
	FetchPageFunc    func(ctx context.Context, lang domain.Language, title string) (string, error)
}

func (m *mockSource) SearchTitles(ctx context.Context, lang domain.Language, word string, mode provider.SearchMode) ([]string, error) {
	return m.SearchTitlesFunc(ctx, lang, word, mode)
}

func (m *mockSource) FetchPage(ctx context.Context, lang domain.Language, title string) (string, error) {
	return m.FetchPageFunc(ctx, lang, title)
}

// fakeWiki is an in-memory wiki: search results per mode and word, pages per title.
type fakeWiki struct {
	near  map[string][]string
	text  map[string][]string
	pages map[string]string

	mu       sync.Mutex
	searches []provider.SearchMode
	fetches  []string
}

func (w *fakeWiki) SearchTitles(_ context.Context, _ domain.Language, word string, mode provider.SearchMode) ([]string, error) {
	w.mu.Lock()
	w.searches = append(w.searches, mode)
	w.mu.Unlock()

	if mode == provider.SearchNearMatch {
		return w.near[word], nil
	}
	return w.text[word], nil
}

func (w *fakeWiki) FetchPage(_ context.Context, _ domain.Language, title string) (string, error) {
	w.mu.Lock()
	w.fetches = append(w.fetches, title)
	w.mu.Unlock()

	page, ok := w.pages[title]
	if !ok {
		return "", fmt.Errorf("fake: %q: %w", title, domain.ErrPageNotFound)
	}
	return page, nil
}

func (w *fakeWiki) searchCalls() []provider.SearchMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]provider.SearchMode(nil), w.searches...)
}

func (w *fakeWiki) fetchCalls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.fetches...)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(source sourceClient) *Service {
	return NewService(newTestLogger(), source, domain.ResolverConfig{})
}

// ---------------------------------------------------------------------------
// Pages
// ---------------------------------------------------------------------------

const pageChat = `== {{langue|fr}} ==
=== {{S|étymologie}} ===
: Du {{étyl|la|fr|mot=cattus}}. (1) Attesté au XIIe siècle.

=== {{S|nom|fr}} ===
'''chat''' {{pron|ʃa|fr}} {{m}}
# [[Petit]] [[mammifère]] [[carnivore]] domestique.

==== {{S|synonymes}} ====
* [[matou]]
* {{lien|minet|fr}}
`

const pageChats = `== {{langue|fr}} ==
=== {{S|nom|fr|flexion}} ===
'''chats''' {{pron|ʃa|fr}} {{m}}
# ''Pluriel de'' [[chat]].
`

const pageChien = `== {{langue|fr}} ==
=== {{S|nom|fr}} ===
'''chien''' {{pron|ʃjɛ̃|fr}} {{m}}
# [[mammifère|Mammifère]] domestique de la famille des canidés.
`

const pageChienVerbFirst = `== {{langue|fr}} ==
=== {{S|verbe|fr}} ===
'''chiener''' {{pron|ʃjə.ne|fr}}
# Suivre de près.

=== {{S|nom|fr}} ===
'''chien''' {{pron|ʃjɛ̃|fr}} {{m}}
# [[mammifère|Mammifère]] domestique.
`

const pageChienVerbOnly = `== {{langue|fr}} ==
=== {{S|verbe|fr}} ===
'''chien''' {{pron|ʃjɛ̃|fr}}
# Suivre de près.
`

const pageToutouner = `== {{langue|fr}} ==
=== {{S|verbe|fr}} ===
'''toutouner''' {{pron|tu.tu.ne|fr}}
# Se comporter en chien fidèle.
`

const pageToutou = `== {{langue|fr}} ==
=== {{S|nom|fr}} ===
'''toutou''' {{pron|tu.tu|fr}} {{m}}
# {{enfantin|fr}} [[chien]].
`

const pageClef = `== {{langue|fr}} ==
=== {{S|nom|fr}} ===
'''clef''' {{pron|kle|fr}} {{f}}
# {{variante de|clé}}.
`

const pageEnglishOnly = `== {{langue|en}} ==
=== {{S|nom|en}} ===
'''Chat'''
# [[bavardage|Bavardage]].
`

const pageShortEtymology = `== {{langue|fr}} ==
=== {{S|étymologie}} ===
: {{ébauche-étym}} (1)

=== {{S|nom|fr}} ===
'''bidule''' {{m}}
# Chose.
`

func englishLoopPage(target string) string {
	return "==English==\n===Noun===\n{{en-noun}}\n\n# [[" + target + "]]\n"
}
