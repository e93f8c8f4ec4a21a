package aviasales

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	userDomain "github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
	"github.com/samber/oops"
)

// Client queries the Aviasales prices-for-dates endpoint. One call per
// departure date; the caller drives the per-day loop.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates an Aviasales client
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://api.travelpayouts.com/aviasales/v3/prices_for_dates"
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type searchResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Ticket `json:"data"`
}

// Search returns one-way tickets departing on the given date
// (YYYY-MM-DD) from the settings' origin. An unsuccessful API payload
// yields an empty result, not an error.
func (c *Client) Search(ctx context.Context, departureDate string, settings userDomain.Settings) ([]domain.Ticket, error) {
	params := url.Values{}
	params.Set("origin", settings.Origin)
	params.Set("departure_at", departureDate)
	params.Set("one_way", "true")
	params.Set("currency", settings.Currency)
	params.Set("market", settings.Market)
	params.Set("limit", strconv.Itoa(settings.Limit))
	params.Set("sorting", "price")
	params.Set("token", c.token)
	if settings.DirectOnly {
		params.Set("direct", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, oops.With("context", "building search request").Wrap(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, oops.With("origin", settings.Origin, "departure_at", departureDate, "context", "search request failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oops.With("origin", settings.Origin, "departure_at", departureDate, "status", resp.StatusCode).Errorf("search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, oops.With("context", "decoding search response").Wrap(err)
	}

	if !payload.Success {
		slog.Warn("Search reported failure", "origin", settings.Origin, "departure_at", departureDate)
		return nil, nil
	}

	return payload.Data, nil
}
