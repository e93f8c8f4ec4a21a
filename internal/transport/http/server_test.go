package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
)

func TestHandleRSSFeed_ServesFeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.xml")
	if err := os.WriteFile(path, []byte("<rss><channel></channel></rss>"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := New(&config.Config{FeedPath: path})
	rec := httptest.NewRecorder()
	srv.handleRSSFeed(rec, httptest.NewRequest(http.MethodGet, "/rss", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/rss+xml; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if rec.Body.String() != "<rss><channel></channel></rss>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleRSSFeed_NotConfigured(t *testing.T) {
	srv := New(&config.Config{})
	rec := httptest.NewRecorder()
	srv.handleRSSFeed(rec, httptest.NewRequest(http.MethodGet, "/rss", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleRSSFeed_FeedNotWrittenYet(t *testing.T) {
	srv := New(&config.Config{FeedPath: filepath.Join(t.TempDir(), "deals.xml")})
	rec := httptest.NewRecorder()
	srv.handleRSSFeed(rec, httptest.NewRequest(http.MethodGet, "/rss", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := New(&config.Config{})
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}
