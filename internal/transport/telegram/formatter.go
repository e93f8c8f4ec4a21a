package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	"github.com/samber/lo"
)

// maxMessageLen is the Telegram message size ceiling. An overflowing
// notification is truncated with a continuation marker rather than
// split into multiple messages.
const maxMessageLen = 4096

// FormatDeals renders a price-sorted deal list into one notification.
func FormatDeals(deals []domain.Deal) string {
	header := fmt.Sprintf("🔥 %d new cheap flight(s)!\n\n", len(deals))
	blocks := lo.Map(deals, func(d domain.Deal, _ int) string {
		return formatDeal(d)
	})

	text := header + strings.Join(blocks, "\n\n")
	if utf8.RuneCountInString(text) > maxMessageLen {
		runes := []rune(text)
		text = string(runes[:maxMessageLen-6]) + "\n…"
	}
	return text
}

func formatDeal(d domain.Deal) string {
	dep := "?"
	if d.DepartureAt != "" {
		dep = d.DepartureAt
		if len(dep) > 16 {
			dep = dep[:16]
		}
		dep = strings.Replace(dep, "T", " ", 1)
	}

	stops := "direct"
	if d.Transfers > 0 {
		stops = fmt.Sprintf("%d stop(s)", d.Transfers)
	}

	link := ""
	if d.Link != "" {
		link = "\nhttps://www.aviasales.com" + d.Link
	}

	return fmt.Sprintf(
		"✈️ %s → %s\n   %s | %dh%02dm | %s\n   💰 %d %s (limit %.0f %s)\n   %s %s%s",
		d.Origin, d.Destination,
		dep, d.DurationMin/60, d.DurationMin%60, stops,
		d.Price, d.Currency, d.Threshold, d.Currency,
		d.Airline, d.FlightNumber, link,
	)
}
