package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
)

var testDeal = domain.Deal{
	Origin:       "BUD",
	Destination:  "VIE",
	DepartureAt:  "2025-06-01T10:00:00+02:00",
	Price:        18,
	Currency:     "EUR",
	Threshold:    20,
	DurationMin:  80,
	Transfers:    0,
	Airline:      "W6",
	FlightNumber: "2315",
	Link:         "/search/BUD0106VIE1",
	Fingerprint:  "abc123def456",
}

func TestBuildFeed(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	feed := New().BuildFeed([]domain.Deal{testDeal}, now)

	if feed.Title != "Flight Deals" {
		t.Errorf("Title = %q", feed.Title)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(feed.Items))
	}

	item := feed.Items[0]
	if item.Title != "BUD → VIE for 18 EUR" {
		t.Errorf("item title = %q", item.Title)
	}
	if item.Id != testDeal.Fingerprint {
		t.Errorf("item id = %q, want fingerprint", item.Id)
	}
	if item.Link.Href != "https://www.aviasales.com/search/BUD0106VIE1" {
		t.Errorf("item link = %q", item.Link.Href)
	}
}

func TestWriteRSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.xml")
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	if err := New().WriteRSS(path, []domain.Deal{testDeal}, now); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	if !strings.Contains(body, "<rss") {
		t.Error("output is not an RSS document")
	}
	if !strings.Contains(body, "BUD → VIE for 18 EUR") {
		t.Errorf("missing deal item:\n%s", body)
	}
}

func TestWriteRSS_BadPath(t *testing.T) {
	err := New().WriteRSS(filepath.Join(t.TempDir(), "missing", "deals.xml"), nil, time.Now())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
