package repository

import (
	"encoding/json"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	"github.com/samber/oops"
)

// statePayload is the on-disk state shape. It is a superset of the
// current multi-user format: the legacy single-user fields are kept so
// that old state files decode and migrate in place.
type statePayload struct {
	Users        map[string]*domain.User           `json:"users,omitempty"`
	Pending      map[string]*domain.PendingRequest `json:"pending,omitempty"`
	LastUpdateID int64                             `json:"last_update_id"`

	// Legacy single-user format
	Settings  *domain.SettingsOverride `json:"settings,omitempty"`
	SentDeals []string                 `json:"sent_deals,omitempty"`
}

// decodeState parses persisted state bytes, migrating the legacy
// single-user format by assigning its settings and ledger to the admin.
func decodeState(data []byte, adminID string) (*domain.State, error) {
	var payload statePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, oops.With("context", "unmarshaling state").Wrap(err)
	}

	state := domain.NewState()
	state.LastUpdateID = payload.LastUpdateID

	if payload.Users != nil || payload.Pending != nil {
		if payload.Users != nil {
			state.Users = payload.Users
		}
		if payload.Pending != nil {
			state.Pending = payload.Pending
		}
		state.Normalize()
		return state, nil
	}

	// Legacy format: the stored settings and ledger belonged to the
	// single admin user.
	if adminID != "" && (payload.Settings != nil || payload.SentDeals != nil) {
		user := &domain.User{Name: "Admin", SentDeals: payload.SentDeals}
		if payload.Settings != nil {
			user.Settings = *payload.Settings
		}
		state.Users[adminID] = user
	}
	state.Normalize()
	return state, nil
}

func encodeState(state *domain.State) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, oops.With("context", "marshaling state").Wrap(err)
	}
	return data, nil
}
