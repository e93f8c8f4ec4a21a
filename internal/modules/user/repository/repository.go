package repository

import (
	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
)

// Repository defines the interface for application state persistence.
// The whole state is loaded once per run and saved back atomically;
// the core never depends on which backend is active.
type Repository interface {
	Load() (*domain.State, error)
	Save(state *domain.State) error
}
