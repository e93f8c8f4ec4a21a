package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	"github.com/samber/oops"
)

// GistStorage persists the application state as a GitHub gist holding
// a single state.json file. Intended for runs from CI where no local
// disk survives between invocations.
type GistStorage struct {
	apiURL  string
	gistID  string
	token   string
	adminID string
	client  *http.Client
}

// NewGistStorage creates a gist-backed state repository
func NewGistStorage(apiURL, gistID, token, adminID string) *GistStorage {
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	return &GistStorage{
		apiURL:  apiURL,
		gistID:  gistID,
		token:   token,
		adminID: adminID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type gistPayload struct {
	Files map[string]gistFile `json:"files"`
}

type gistFile struct {
	Content string `json:"content"`
}

// Load fetches the gist and decodes the embedded state.json content.
func (s *GistStorage) Load() (*domain.State, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s/gists/%s", s.apiURL, s.gistID))
	if err != nil {
		return nil, oops.With("gist_id", s.gistID, "context", "failed to fetch gist").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oops.With("gist_id", s.gistID, "status", resp.StatusCode).Errorf("gist load returned status %d", resp.StatusCode)
	}

	var payload gistPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, oops.With("gist_id", s.gistID, "context", "failed to decode gist response").Wrap(err)
	}

	file, ok := payload.Files[stateFileName]
	if !ok {
		return nil, oops.With("gist_id", s.gistID).Errorf("gist has no %s file", stateFileName)
	}

	state, err := decodeState([]byte(file.Content), s.adminID)
	if err != nil {
		return nil, err
	}

	slog.Info("State loaded from gist", "gist_id", s.gistID, "users", len(state.Users))
	return state, nil
}

// Save patches the gist with the serialized state. Requires a bearer
// token with the gist scope.
func (s *GistStorage) Save(state *domain.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	body, err := json.Marshal(gistPayload{
		Files: map[string]gistFile{stateFileName: {Content: string(data)}},
	})
	if err != nil {
		return oops.With("context", "marshaling gist payload").Wrap(err)
	}

	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/gists/%s", s.apiURL, s.gistID), bytes.NewReader(body))
	if err != nil {
		return oops.With("gist_id", s.gistID, "context", "building gist request").Wrap(err)
	}
	req.Header.Set("Authorization", "token "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return oops.With("gist_id", s.gistID, "context", "failed to patch gist").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return oops.With("gist_id", s.gistID, "status", resp.StatusCode).Errorf("gist save returned status %d", resp.StatusCode)
	}

	slog.Info("State saved to gist", "gist_id", s.gistID)
	return nil
}
