package service

import (
	"sort"
	"strings"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
)

// AccessResult is the outcome of a registration attempt.
type AccessResult int

const (
	AccessAlreadyApproved AccessResult = iota
	AccessAlreadyPending
	AccessRequested
)

// Service is the user registry and access state machine. It owns the
// in-memory application state for the duration of a run; persistence
// happens at the run boundary through the repository.
type Service struct {
	state   *domain.State
	adminID string
}

// New creates a new registry service over the loaded state
func New(state *domain.State, adminID string) *Service {
	state.Normalize()
	return &Service{state: state, adminID: adminID}
}

// State returns the underlying application state.
func (s *Service) State() *domain.State {
	return s.state
}

// AdminID returns the configured admin chat id.
func (s *Service) AdminID() string {
	return s.adminID
}

// EnsureAdmin guarantees the admin identity exists as an approved user.
func (s *Service) EnsureAdmin() {
	if s.adminID == "" {
		return
	}
	if _, ok := s.state.Users[s.adminID]; !ok {
		s.state.Users[s.adminID] = &domain.User{Name: "Admin", SentDeals: []string{}}
	}
}

// IsApproved reports whether the id belongs to an approved user.
func (s *Service) IsApproved(chatID string) bool {
	_, ok := s.state.Users[chatID]
	return ok
}

// IsAdmin reports whether the id is the configured admin.
func (s *Service) IsAdmin(chatID string) bool {
	return s.adminID != "" && chatID == s.adminID
}

// IsPending reports whether the id has an unresolved request.
func (s *Service) IsPending(chatID string) bool {
	_, ok := s.state.Pending[chatID]
	return ok
}

// RequestAccess registers first contact from an identity. Approved and
// already-pending identities are left untouched.
func (s *Service) RequestAccess(chatID, name, username string) AccessResult {
	if s.IsApproved(chatID) {
		return AccessAlreadyApproved
	}
	if s.IsPending(chatID) {
		return AccessAlreadyPending
	}
	s.state.Pending[chatID] = &domain.PendingRequest{Name: name, Username: username}
	return AccessRequested
}

// Approve promotes a pending request to an approved user with empty
// settings and an empty ledger. Returns false when the id is not
// pending.
func (s *Service) Approve(chatID string) (*domain.PendingRequest, bool) {
	req, ok := s.state.Pending[chatID]
	if !ok {
		return nil, false
	}
	delete(s.state.Pending, chatID)
	s.state.Users[chatID] = &domain.User{
		Name:      req.Name,
		Username:  req.Username,
		SentDeals: []string{},
	}
	return req, true
}

// Reject drops a pending request without keeping any trace. Returns
// false when the id is not pending.
func (s *Service) Reject(chatID string) (*domain.PendingRequest, bool) {
	req, ok := s.state.Pending[chatID]
	if !ok {
		return nil, false
	}
	delete(s.state.Pending, chatID)
	return req, true
}

// EffectiveSettings returns defaults merged with the user's overrides.
// Unknown ids get plain defaults.
func (s *Service) EffectiveSettings(chatID string) domain.Settings {
	if u, ok := s.state.Users[chatID]; ok {
		return u.EffectiveSettings()
	}
	return domain.DefaultSettings()
}

// SetOrigin sets the departure IATA code (upper-cased).
func (s *Service) SetOrigin(chatID, origin string) {
	if u, ok := s.state.Users[chatID]; ok {
		v := strings.ToUpper(origin)
		u.Settings.Origin = &v
	}
}

// SetDaysAhead sets the search horizon in days.
func (s *Service) SetDaysAhead(chatID string, days int) {
	if u, ok := s.state.Users[chatID]; ok {
		u.Settings.DaysAhead = &days
	}
}

// SetBasePrice sets the base price.
func (s *Service) SetBasePrice(chatID string, price int) {
	if u, ok := s.state.Users[chatID]; ok {
		u.Settings.BasePrice = &price
	}
}

// SetBaseDuration sets the duration covered by the base price.
func (s *Service) SetBaseDuration(chatID string, minutes int) {
	if u, ok := s.state.Users[chatID]; ok {
		u.Settings.BaseDuration = &minutes
	}
}

// SetPriceIncrement sets the price added per extra duration step.
func (s *Service) SetPriceIncrement(chatID string, increment int) {
	if u, ok := s.state.Users[chatID]; ok {
		u.Settings.PriceIncrement = &increment
	}
}

// ToggleDirect flips the direct-only flag and returns the new value.
func (s *Service) ToggleDirect(chatID string) bool {
	u, ok := s.state.Users[chatID]
	if !ok {
		return false
	}
	next := !u.EffectiveSettings().DirectOnly
	u.Settings.DirectOnly = &next
	return next
}

// ResetHistory clears the user's sent-deals ledger.
func (s *Service) ResetHistory(chatID string) {
	if u, ok := s.state.Users[chatID]; ok {
		u.SentDeals = []string{}
	}
}

// SentCount returns the number of fingerprints in the user's ledger.
func (s *Service) SentCount(chatID string) int {
	if u, ok := s.state.Users[chatID]; ok {
		return len(u.SentDeals)
	}
	return 0
}

// SentSet returns the membership-test view of the user's ledger.
func (s *Service) SentSet(chatID string) map[string]struct{} {
	if u, ok := s.state.Users[chatID]; ok {
		return u.SentSet()
	}
	return map[string]struct{}{}
}

// MarkSent records notified fingerprints in the user's ledger,
// evicting the oldest entries beyond the cap.
func (s *Service) MarkSent(chatID string, fingerprints []string) {
	if u, ok := s.state.Users[chatID]; ok {
		u.AppendSent(fingerprints)
	}
}

// ListUserIDs returns approved user ids in stable order.
func (s *Service) ListUserIDs() []string {
	ids := make([]string, 0, len(s.state.Users))
	for id := range s.state.Users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ListPendingIDs returns pending ids in stable order.
func (s *Service) ListPendingIDs() []string {
	ids := make([]string, 0, len(s.state.Pending))
	for id := range s.state.Pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// User returns the approved user record for the id, if any.
func (s *Service) User(chatID string) (*domain.User, bool) {
	u, ok := s.state.Users[chatID]
	return u, ok
}

// Pending returns the pending request for the id, if any.
func (s *Service) Pending(chatID string) (*domain.PendingRequest, bool) {
	req, ok := s.state.Pending[chatID]
	return req, ok
}
