package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Ticket is a raw record as returned by the price source
type Ticket struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepartureAt  string `json:"departure_at"`
	Price        int    `json:"price"`
	Duration     int    `json:"duration"`
	DurationTo   int    `json:"duration_to"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Transfers    int    `json:"transfers"`
	Link         string `json:"link"`
}

// EffectiveDuration returns the flight duration in minutes. The price
// source populates either duration_to or duration depending on the
// endpoint version; the first non-empty one wins.
func (t Ticket) EffectiveDuration() int {
	if t.DurationTo > 0 {
		return t.DurationTo
	}
	return t.Duration
}

// Deal is a ticket that passed the price/duration threshold test.
// Deals are ephemeral — only their fingerprint is persisted.
type Deal struct {
	Origin       string
	Destination  string
	DepartureAt  string
	Price        int
	Currency     string
	DurationMin  int
	Threshold    float64
	Airline      string
	FlightNumber string
	Transfers    int
	Link         string
	Fingerprint  string
}

// Fingerprint computes a short deterministic digest identifying a deal
// for deduplication. It depends only on origin, destination, departure
// timestamp and price, so the same offer seen on a later run maps to
// the same value.
func Fingerprint(origin, destination, departureAt string, price int) string {
	key := fmt.Sprintf("%s-%s-%s-%d", origin, destination, departureAt, price)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}
