package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	dealDomain "github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	dealService "github.com/aboutmisha/flight-deals-bot/internal/modules/deal/service"
	feedService "github.com/aboutmisha/flight-deals-bot/internal/modules/feed/service"
	userDomain "github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	userRepo "github.com/aboutmisha/flight-deals-bot/internal/modules/user/repository"
	userService "github.com/aboutmisha/flight-deals-bot/internal/modules/user/service"
	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// PriceSource fetches raw tickets for one departure date.
type PriceSource interface {
	Search(ctx context.Context, departureDate string, settings userDomain.Settings) ([]dealDomain.Ticket, error)
}

// Notifier delivers a deal notification to a chat.
type Notifier interface {
	NotifyDeals(ctx context.Context, chatID string, deals []dealDomain.Deal) error
}

// CommandDrainer applies all queued inbound commands.
type CommandDrainer interface {
	DrainCommands(ctx context.Context)
}

// Service is the per-run orchestrator: drain commands, search flights
// for every approved user, notify, export the feed, persist state.
type Service struct {
	cfg      *config.Config
	registry *userService.Service
	deals    *dealService.Service
	prices   PriceSource
	notifier Notifier
	commands CommandDrainer
	repo     userRepo.Repository
	feed     *feedService.Service
	now      func() time.Time
}

// New creates a new search service
func New(cfg *config.Config, registry *userService.Service, deals *dealService.Service, prices PriceSource, notifier Notifier, commands CommandDrainer, repo userRepo.Repository, feed *feedService.Service) *Service {
	return &Service{
		cfg:      cfg,
		registry: registry,
		deals:    deals,
		prices:   prices,
		notifier: notifier,
		commands: commands,
		repo:     repo,
		feed:     feed,
		now:      time.Now,
	}
}

// Run executes one complete invocation. A failure for one user never
// stops the others; only a failed state save is reported to the
// operator as the run's error.
func (s *Service) Run(ctx context.Context) error {
	s.registry.EnsureAdmin()

	s.commands.DrainCommands(ctx)

	userIDs := s.registry.ListUserIDs()
	slog.Info("Searching flights", "users", len(userIDs))

	var allNew []dealDomain.Deal
	for _, chatID := range userIDs {
		newDeals, err := s.SearchUser(ctx, chatID)
		if err != nil {
			slog.Error("Search failed for user", "chat_id", chatID, "error", err)
			continue
		}
		allNew = append(allNew, newDeals...)
	}

	if s.cfg.FeedPath != "" {
		if err := s.feed.WriteRSS(s.cfg.FeedPath, allNew, s.now()); err != nil {
			slog.Error("Failed to write deal feed", "path", s.cfg.FeedPath, "error", err)
		}
	}

	if err := s.repo.Save(s.registry.State()); err != nil {
		return oops.With("context", "saving state").Wrap(err)
	}

	slog.Info("Run complete", "new_deals", len(allNew))
	return nil
}

// SearchUser runs the fetch → filter → dedup → notify pipeline for one
// user and returns the newly found deals. Fingerprints are recorded
// after the send attempt regardless of its outcome, mirroring the
// at-most-once cursor semantics of command processing.
func (s *Service) SearchUser(ctx context.Context, chatID string) ([]dealDomain.Deal, error) {
	settings := s.registry.EffectiveSettings(chatID)
	sent := s.registry.SentSet(chatID)

	today := s.now().UTC()
	var newDeals []dealDomain.Deal

	for delta := 0; delta < settings.DaysAhead; delta++ {
		date := today.AddDate(0, 0, delta).Format("2006-01-02")

		tickets, err := s.prices.Search(ctx, date, settings)
		if err != nil {
			return nil, oops.With("departure_at", date).Wrap(err)
		}

		deals := s.deals.FilterDeals(tickets, settings)
		newDeals = append(newDeals, s.deals.PartitionNew(deals, sent)...)
	}

	slog.Info("User search done", "chat_id", chatID, "new_deals", len(newDeals))

	if len(newDeals) == 0 {
		return nil, nil
	}

	sort.Slice(newDeals, func(i, j int) bool {
		return newDeals[i].Price < newDeals[j].Price
	})

	if err := s.notifier.NotifyDeals(ctx, chatID, newDeals); err != nil {
		slog.Error("Failed to notify user", "chat_id", chatID, "error", err)
	}

	s.registry.MarkSent(chatID, lo.Map(newDeals, func(d dealDomain.Deal, _ int) string {
		return d.Fingerprint
	}))

	return newDeals, nil
}
