package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
	"github.com/samber/oops"
)

// Every outbound message carries the attribution footer.
const footer = "\n\n_by aboutmisha.com_"

// Client wraps the Telegram Bot API for the batch flow: plain sends
// plus a single-shot getUpdates drain. A client without a token is
// inert — sends are dropped and drains return nothing, so the search
// pipeline still runs without a bot configured.
type Client struct {
	b      *bot.Bot
	token  string
	apiURL string
	client *http.Client
}

// NewClient creates a Telegram client from the config
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{
		token:  cfg.TelegramBotToken,
		apiURL: cfg.TelegramAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	if c.apiURL == "" {
		c.apiURL = "https://api.telegram.org"
	}
	if c.token == "" {
		return c, nil
	}

	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithServerURL(c.apiURL),
	}
	b, err := bot.New(c.token, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	c.b = b
	return c, nil
}

// Enabled reports whether a bot token is configured.
func (c *Client) Enabled() bool {
	return c.b != nil
}

// Send delivers a Markdown message to the chat, appending the footer.
func (c *Client) Send(ctx context.Context, chatID, text string) error {
	if c.b == nil || chatID == "" {
		return nil
	}

	_, err := c.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text + footer,
		ParseMode: models.ParseModeMarkdownV1,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	})
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to send message").Wrap(err)
	}
	return nil
}

type updatesResponse struct {
	OK          bool             `json:"ok"`
	Result      []*models.Update `json:"result"`
	Description string           `json:"description"`
}

// GetUpdates fetches all queued updates past the offset in a single
// non-blocking poll. The go-telegram/bot library only exposes updates
// through its long-polling loop, so the one-shot drain talks to the
// API directly and decodes into the library's models.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]*models.Update, error) {
	if c.token == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=0", c.apiURL, c.token, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.With("context", "building getUpdates request").Wrap(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, oops.With("context", "getUpdates request failed").Wrap(err)
	}
	defer resp.Body.Close()

	var payload updatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, oops.With("context", "decoding getUpdates response").Wrap(err)
	}
	if !payload.OK {
		return nil, oops.With("description", payload.Description).Errorf("telegram getUpdates error")
	}

	return payload.Result, nil
}
