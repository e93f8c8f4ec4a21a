package repository

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	"github.com/samber/oops"
)

const stateFileName = "state.json"

// FileStorage persists the application state as a single JSON file
type FileStorage struct {
	path    string
	adminID string
	mu      sync.RWMutex
}

// NewFileStorage creates a file-based state repository under basePath
func NewFileStorage(basePath, adminID string) (*FileStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	return &FileStorage{
		path:    filepath.Join(basePath, stateFileName),
		adminID: adminID,
	}, nil
}

// Load reads the state file. A missing or corrupt file yields an empty
// state rather than an error, so a bad blob never aborts the run.
func (s *FileStorage) Load() (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewState(), nil
		}
		slog.Warn("State file unreadable, starting empty", "path", s.path, "error", err)
		return domain.NewState(), nil
	}

	state, err := decodeState(data, s.adminID)
	if err != nil {
		slog.Warn("State file corrupt, starting empty", "path", s.path, "error", err)
		return domain.NewState(), nil
	}

	slog.Info("State loaded from file", "path", s.path, "users", len(state.Users))
	return state, nil
}

// Save writes the whole state back to the file.
func (s *FileStorage) Save(state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return oops.With("path", s.path, "context", "failed to write state").Wrap(err)
	}
	return nil
}
