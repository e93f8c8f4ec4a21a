package service

import (
	"fmt"
	"os"
	"time"

	"github.com/gorilla/feeds"
	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	"github.com/samber/oops"
)

// Service renders a run's new deals as an RSS document. The batch job
// writes it next to the state file so a CI pipeline can publish it as
// a static artifact.
type Service struct{}

// New creates a new feed service
func New() *Service {
	return &Service{}
}

// BuildFeed generates an RSS feed from the deals found in one run.
func (s *Service) BuildFeed(deals []domain.Deal, now time.Time) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "Flight Deals",
		Link:        &feeds.Link{Href: "https://www.aviasales.com"},
		Description: "Cheap flights matching the configured price/duration thresholds",
		Created:     now,
		Updated:     now,
	}

	var items []*feeds.Item
	for _, d := range deals {
		items = append(items, s.dealToFeedItem(d, now))
	}

	feed.Items = items
	return feed
}

// WriteRSS renders the feed for the deals and writes it to path.
func (s *Service) WriteRSS(path string, deals []domain.Deal, now time.Time) error {
	feed := s.BuildFeed(deals, now)

	rss, err := feed.ToRss()
	if err != nil {
		return oops.With("context", "rendering rss").Wrap(err)
	}

	if err := os.WriteFile(path, []byte(rss), 0644); err != nil {
		return oops.With("path", path, "context", "failed to write feed").Wrap(err)
	}
	return nil
}

func (s *Service) dealToFeedItem(d domain.Deal, now time.Time) *feeds.Item {
	link := "https://www.aviasales.com" + d.Link

	description := fmt.Sprintf("%s → %s on %s, %d %s (limit %.0f), %d transfer(s), %s %s",
		d.Origin, d.Destination, d.DepartureAt, d.Price, d.Currency, d.Threshold, d.Transfers, d.Airline, d.FlightNumber)

	return &feeds.Item{
		Title:       fmt.Sprintf("%s → %s for %d %s", d.Origin, d.Destination, d.Price, d.Currency),
		Link:        &feeds.Link{Href: link},
		Description: description,
		Created:     now,
		Id:          d.Fingerprint,
	}
}
