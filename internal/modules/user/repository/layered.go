package repository

import (
	"log/slog"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
)

// Layered combines the gist backend with the local file. Loads prefer
// the gist and fall back to the file; saves always write the file and
// push to the gist best-effort. Remote failures never abort the run.
type Layered struct {
	remote Repository
	local  Repository
}

// NewLayered creates a layered repository. remote may be nil, in which
// case only the local file is used.
func NewLayered(remote, local Repository) *Layered {
	return &Layered{remote: remote, local: local}
}

func (s *Layered) Load() (*domain.State, error) {
	if s.remote != nil {
		state, err := s.remote.Load()
		if err == nil {
			return state, nil
		}
		slog.Warn("Remote state load failed, falling back to file", "error", err)
	}
	return s.local.Load()
}

func (s *Layered) Save(state *domain.State) error {
	err := s.local.Save(state)

	if s.remote != nil {
		if remoteErr := s.remote.Save(state); remoteErr != nil {
			slog.Warn("Remote state save failed", "error", remoteErr)
		}
	}

	return err
}
