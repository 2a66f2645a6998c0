package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/word-definition/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/word-definition/internal/domain"
)

type upstreamPingerMock struct {
	err error
}

func (m *upstreamPingerMock) Ping(_ context.Context) error {
	return m.err
}

// newSiteinfoServer serves a MediaWiki API that answers siteinfo queries
// with the given status and body.
func newSiteinfoServer(t *testing.T, status int, body string) *wiktionary.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("meta") != "siteinfo" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return wiktionary.NewClientWithURL(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&upstreamPingerMock{err: context.DeadlineExceeded}, "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Components != nil {
		t.Errorf("liveness must not probe the upstream, got %v", resp.Components)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestHealth_WiktionaryUpstream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   int
		wantStatus string
		wantError  domain.ErrorKind
	}{
		{
			name:       "siteinfo answered",
			status:     http.StatusOK,
			body:       `{"query":{"general":{"sitename":"Wiktionary","lang":"en"}}}`,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "upstream returns 503",
			status:     http.StatusServiceUnavailable,
			body:       `Service Unavailable`,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
			wantError:  domain.KindRequestFailed,
		},
		{
			name:       "api error document",
			status:     http.StatusOK,
			body:       `{"error":{"code":"readonly","info":"The wiki is currently in read-only mode."}}`,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
			wantError:  domain.KindRequestFailed,
		},
		{
			name:       "siteinfo missing",
			status:     http.StatusOK,
			body:       `{"batchcomplete":""}`,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
			wantError:  domain.KindRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(newSiteinfoServer(t, tt.status, tt.body), "v1.0.0")

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}

			resp := decodeHealth(t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
			if resp.Version != "v1.0.0" {
				t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
			}

			comp, ok := resp.Components["wiktionary"]
			if !ok {
				t.Fatal("expected 'wiktionary' component in response")
			}
			if comp.Status != tt.wantStatus {
				t.Errorf("expected wiktionary status %q, got %q", tt.wantStatus, comp.Status)
			}
			if comp.Error != tt.wantError {
				t.Errorf("expected wiktionary error %q, got %q", tt.wantError, comp.Error)
			}
			if tt.wantStatus == "ok" && comp.Latency == "" {
				t.Error("expected latency for a healthy upstream")
			}
			if tt.wantStatus == "down" && comp.Latency != "" {
				t.Errorf("expected no latency for a down upstream, got %q", comp.Latency)
			}
		})
	}
}

func TestReady_WiktionaryUpstream(t *testing.T) {
	t.Parallel()

	up := NewHealthHandler(newSiteinfoServer(t, http.StatusOK, `{"query":{"general":{}}}`), "v1.0.0")
	rec := httptest.NewRecorder()
	up.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if resp := decodeHealth(t, rec); resp.Version != "" {
		t.Errorf("readiness should not report the version, got %q", resp.Version)
	}

	down := NewHealthHandler(newSiteinfoServer(t, http.StatusBadGateway, ``), "v1.0.0")
	rec = httptest.NewRecorder()
	down.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if resp := decodeHealth(t, rec); resp.Components["wiktionary"].Error != domain.KindRequestFailed {
		t.Errorf("expected request_failed, got %q", resp.Components["wiktionary"].Error)
	}
}

type deadlineRecorder struct {
	deadline time.Time
}

func (d *deadlineRecorder) Ping(ctx context.Context) error {
	d.deadline, _ = ctx.Deadline()
	return nil
}

func TestHealth_BoundsPing(t *testing.T) {
	t.Parallel()

	pinger := &deadlineRecorder{}
	h := NewHealthHandler(pinger, "v1.0.0")

	start := time.Now()
	h.Health(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if pinger.deadline.IsZero() {
		t.Fatal("expected the ping to run under a deadline")
	}
	if got := pinger.deadline.Sub(start); got > pingTimeout+time.Second {
		t.Errorf("ping deadline %v exceeds the ping timeout", got)
	}
}
