package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/provider"
)

// DefaultEndpoint is the MediaWiki API of each Wiktionary edition.
// The {lang} placeholder is replaced with the language code.
const DefaultEndpoint = "https://{lang}.wiktionary.org/w/api.php"

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "word-definition/1.0 (+https://github.com/heartmarshall/word-definition)"
	maxBodyBytes     = 16 << 20
)

var errMalformed = errors.New("malformed response")

// Options configures a Client. Zero values select the defaults.
type Options struct {
	Endpoint     string
	UserAgent    string
	Timeout      time.Duration
	PingLanguage domain.Language
}

// Client queries the search and revision APIs of a MediaWiki installation.
// It is safe for concurrent use and never retries on its own.
type Client struct {
	endpoint   string
	userAgent  string
	pingLang   domain.Language
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.PingLanguage == "" {
		opts.PingLanguage = domain.LanguageEnglish
	}
	return &Client{
		endpoint:   opts.Endpoint,
		userAgent:  opts.UserAgent,
		pingLang:   opts.PingLanguage,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// NewClientWithURL creates a Client with a custom endpoint (for testing).
func NewClientWithURL(endpoint string, logger *slog.Logger) *Client {
	return NewClient(Options{Endpoint: endpoint}, logger)
}

// SearchTitles returns the titles matching word, in the order the API ranks them.
// An empty slice is a valid result.
func (c *Client) SearchTitles(ctx context.Context, lang domain.Language, word string, mode provider.SearchMode) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("format", "json")
	params.Set("utf8", "1")
	params.Set("srprop", "")
	params.Set("srsearch", word)
	params.Set("srwhat", mode.String())

	c.log.DebugContext(ctx, "wiktionary search",
		slog.String("lang", lang.String()),
		slog.String("word", word),
		slog.String("mode", mode.String()),
	)

	body, err := c.get(ctx, lang, params)
	if err != nil {
		return nil, requestFailed("search", err)
	}

	titles, err := decodeTitles(body)
	if err != nil {
		return nil, requestFailed("search", err)
	}

	c.log.DebugContext(ctx, "wiktionary search response",
		slog.String("word", word),
		slog.Int("titles", len(titles)),
	)

	return titles, nil
}

// FetchPage returns the raw wikitext of the latest revision of title.
// Returns domain.ErrPageNotFound if the page does not exist.
func (c *Client) FetchPage(ctx context.Context, lang domain.Language, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")
	params.Set("format", "json")
	params.Set("titles", title)

	c.log.DebugContext(ctx, "wiktionary page request",
		slog.String("lang", lang.String()),
		slog.String("title", title),
	)

	body, err := c.get(ctx, lang, params)
	if err != nil {
		return "", requestFailed("fetch page", err)
	}

	content, err := decodePage(body)
	if errors.Is(err, domain.ErrPageNotFound) {
		return "", fmt.Errorf("wiktionary: %q: %w", title, err)
	}
	if err != nil {
		return "", requestFailed("fetch page", err)
	}

	return content, nil
}

// Ping checks that the API answers a siteinfo query.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("meta", "siteinfo")
	params.Set("format", "json")

	body, err := c.get(ctx, c.pingLang, params)
	if err != nil {
		return requestFailed("ping", err)
	}
	if err := decodeSiteinfo(body); err != nil {
		return requestFailed("ping", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, lang domain.Language, params url.Values) ([]byte, error) {
	reqURL := c.endpointFor(lang) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "wiktionary request failed",
			slog.String("lang", lang.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (c *Client) endpointFor(lang domain.Language) string {
	return strings.ReplaceAll(c.endpoint, "{lang}", url.PathEscape(lang.String()))
}

func requestFailed(op string, err error) error {
	return fmt.Errorf("wiktionary: %s: %w: %w", op, domain.ErrRequestFailed, err)
}
