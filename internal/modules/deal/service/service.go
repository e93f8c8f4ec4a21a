package service

import (
	"math"
	"strings"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	userDomain "github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	"github.com/samber/lo"
)

// Service implements the deal evaluation engine: the duration/price
// threshold model, the ticket filter and the dedup partition. All
// methods are pure transformations.
type Service struct{}

// New creates a new deal service
func New() *Service {
	return &Service{}
}

// MaxPrice returns the maximum acceptable price for a flight of the
// given duration. Durations up to BaseDuration cost BasePrice; beyond
// that every started StepMinutes window adds one PriceIncrement.
func (s *Service) MaxPrice(durationMinutes int, settings userDomain.Settings) float64 {
	if durationMinutes <= settings.BaseDuration {
		return float64(settings.BasePrice)
	}
	extraSteps := math.Ceil(float64(durationMinutes-settings.BaseDuration) / float64(settings.StepMinutes))
	return float64(settings.BasePrice) + extraSteps*float64(settings.PriceIncrement)
}

// FilterDeals returns the tickets that pass the threshold test as
// normalized deals. Tickets without a positive duration are skipped.
func (s *Service) FilterDeals(tickets []domain.Ticket, settings userDomain.Settings) []domain.Deal {
	return lo.FilterMap(tickets, func(t domain.Ticket, _ int) (domain.Deal, bool) {
		duration := t.EffectiveDuration()
		if duration <= 0 {
			return domain.Deal{}, false
		}

		threshold := s.MaxPrice(duration, settings)
		if float64(t.Price) > threshold {
			return domain.Deal{}, false
		}

		origin := t.Origin
		if origin == "" {
			origin = settings.Origin
		}
		destination := t.Destination
		if destination == "" {
			destination = "???"
		}

		return domain.Deal{
			Origin:       origin,
			Destination:  destination,
			DepartureAt:  t.DepartureAt,
			Price:        t.Price,
			Currency:     strings.ToUpper(settings.Currency),
			DurationMin:  duration,
			Threshold:    threshold,
			Airline:      t.Airline,
			FlightNumber: t.FlightNumber,
			Transfers:    t.Transfers,
			Link:         t.Link,
			Fingerprint:  domain.Fingerprint(origin, destination, t.DepartureAt, t.Price),
		}, true
	})
}

// PartitionNew returns the deals whose fingerprint is not in the
// already-sent set. It never mutates the set; callers record the
// fingerprints after the notification is actually sent.
func (s *Service) PartitionNew(deals []domain.Deal, sent map[string]struct{}) []domain.Deal {
	return lo.Filter(deals, func(d domain.Deal, _ int) bool {
		_, seen := sent[d.Fingerprint]
		return !seen
	})
}
