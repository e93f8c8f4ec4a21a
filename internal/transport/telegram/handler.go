package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/aboutmisha/flight-deals-bot/internal/modules/deal/domain"
	userService "github.com/aboutmisha/flight-deals-bot/internal/modules/user/service"
	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
)

const helpText = `🤖 *Commands:*

/origin XXX — departure city (IATA)
/days N — days ahead to search
/price N — base price (€)
/duration N — max duration for the base price (min)
/increment N — extra € per duration step
/direct — toggle direct flights only
/settings — current settings
/reset — clear sent-deals history
/help — this message`

const adminHelpText = `

👑 *Admin commands:*
/approve ID — approve a user
/reject ID — reject a request
/users — list users`

// Handler processes inbound commands against the user registry and
// sends the replies. All user-visible texts live here; the state
// transitions live in the registry service.
type Handler struct {
	cfg      *config.Config
	registry *userService.Service
	client   *Client
}

// New creates a new Telegram handler
func New(cfg *config.Config, registry *userService.Service, client *Client) *Handler {
	return &Handler{
		cfg:      cfg,
		registry: registry,
		client:   client,
	}
}

// DrainCommands fetches every queued update past the stored cursor and
// applies it. The cursor advances as soon as an update is read, so a
// command is handled at most once even when its replies fail to send.
func (h *Handler) DrainCommands(ctx context.Context) {
	state := h.registry.State()

	updates, err := h.client.GetUpdates(ctx, state.LastUpdateID+1)
	if err != nil {
		slog.Error("Failed to fetch updates", "error", err)
		return
	}

	for _, upd := range updates {
		if upd.ID > state.LastUpdateID {
			state.LastUpdateID = upd.ID
		}
		if upd.Message == nil {
			continue
		}
		h.handleMessage(ctx, upd.Message)
	}

	if len(updates) > 0 {
		slog.Info("Processed inbound messages", "count", len(updates))
	}
}

// NotifyDeals formats and delivers a deal notification.
func (h *Handler) NotifyDeals(ctx context.Context, chatID string, deals []domain.Deal) error {
	return h.client.Send(ctx, chatID, FormatDeals(deals))
}

func (h *Handler) handleMessage(ctx context.Context, msg *models.Message) {
	if msg.Chat.ID == 0 {
		return
	}
	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	cmd := ParseCommand(msg.Text)
	if !cmd.IsCommand {
		return
	}

	name := "?"
	username := ""
	if msg.From != nil {
		if msg.From.FirstName != "" {
			name = msg.From.FirstName
		}
		username = msg.From.Username
	}

	if cmd.Kind == CommandKindStart {
		h.handleStart(ctx, chatID, name, username)
		return
	}

	if !h.registry.IsApproved(chatID) {
		h.reply(ctx, chatID, "⛔ You are not authorized. Send /start to request access.")
		return
	}

	isAdmin := h.registry.IsAdmin(chatID)

	switch cmd.Kind {
	case CommandKindHelp:
		h.sendHelp(ctx, chatID, isAdmin)
	case CommandKindSettings:
		h.handleSettings(ctx, chatID)
	case CommandKindDirect:
		h.handleDirect(ctx, chatID)
	case CommandKindReset:
		h.registry.ResetHistory(chatID)
		h.reply(ctx, chatID, "🗑 History cleared.")
	case CommandKindOrigin, CommandKindDays, CommandKindPrice, CommandKindDuration, CommandKindIncrement:
		h.handleSetting(ctx, chatID, cmd)
	case CommandKindApprove:
		if isAdmin {
			h.handleApprove(ctx, chatID, cmd.Arg)
			return
		}
		h.replyUnknown(ctx, chatID)
	case CommandKindReject:
		if isAdmin {
			h.handleReject(ctx, chatID, cmd.Arg)
			return
		}
		h.replyUnknown(ctx, chatID)
	case CommandKindUsers:
		if isAdmin {
			h.handleUsers(ctx, chatID)
			return
		}
		h.replyUnknown(ctx, chatID)
	default:
		h.replyUnknown(ctx, chatID)
	}
}

func (h *Handler) handleStart(ctx context.Context, chatID, name, username string) {
	switch h.registry.RequestAccess(chatID, name, username) {
	case userService.AccessAlreadyApproved:
		h.sendHelp(ctx, chatID, h.registry.IsAdmin(chatID))
	case userService.AccessAlreadyPending:
		h.reply(ctx, chatID, "⏳ Your request is already pending. Wait for approval.")
	case userService.AccessRequested:
		h.reply(ctx, chatID, "📨 Request sent! Wait for the admin to approve it.")
		uname := ""
		if username != "" {
			uname = fmt.Sprintf(" (@%s)", username)
		}
		h.reply(ctx, h.cfg.AdminChatID, fmt.Sprintf(
			"🆕 New request from *%s*%s\nID: `%s`\n\nApprove: `/approve %s`\nReject: `/reject %s`",
			name, uname, chatID, chatID, chatID,
		))
	}
}

func (h *Handler) sendHelp(ctx context.Context, chatID string, isAdmin bool) {
	text := helpText
	if isAdmin {
		text += adminHelpText
	}
	h.reply(ctx, chatID, text)
}

func (h *Handler) handleSettings(ctx context.Context, chatID string) {
	s := h.registry.EffectiveSettings(chatID)
	direct := "no"
	if s.DirectOnly {
		direct = "yes"
	}
	lines := []string{
		fmt.Sprintf("🏙 Origin: `%s`", s.Origin),
		fmt.Sprintf("📅 Days ahead: `%d`", s.DaysAhead),
		fmt.Sprintf("💰 Base price: `%d€`", s.BasePrice),
		fmt.Sprintf("⏱ Duration: `%d min`", s.BaseDuration),
		fmt.Sprintf("📈 Step: `+%d€ / %d min`", s.PriceIncrement, s.StepMinutes),
		fmt.Sprintf("✈️ Direct only: `%s`", direct),
		fmt.Sprintf("📊 Sent: `%d`", h.registry.SentCount(chatID)),
	}
	h.reply(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *Handler) handleDirect(ctx context.Context, chatID string) {
	if h.registry.ToggleDirect(chatID) {
		h.reply(ctx, chatID, "✅ Direct flights only")
		return
	}
	h.reply(ctx, chatID, "❌ All flights")
}

func (h *Handler) handleSetting(ctx context.Context, chatID string, cmd Command) {
	if cmd.Arg == "" {
		h.reply(ctx, chatID, fmt.Sprintf("⚠️ `/%s <value>`", cmd.Kind))
		return
	}

	if cmd.Kind == CommandKindOrigin {
		h.registry.SetOrigin(chatID, cmd.Arg)
		h.reply(ctx, chatID, fmt.Sprintf("✅ `origin` = `%s`", strings.ToUpper(cmd.Arg)))
		return
	}

	value, err := strconv.Atoi(cmd.Arg)
	if err != nil {
		h.reply(ctx, chatID, fmt.Sprintf("⚠️ Invalid value: %s", cmd.Arg))
		return
	}

	var key string
	switch cmd.Kind {
	case CommandKindDays:
		h.registry.SetDaysAhead(chatID, value)
		key = "days_ahead"
	case CommandKindPrice:
		h.registry.SetBasePrice(chatID, value)
		key = "base_price_eur"
	case CommandKindDuration:
		h.registry.SetBaseDuration(chatID, value)
		key = "base_duration_minutes"
	case CommandKindIncrement:
		h.registry.SetPriceIncrement(chatID, value)
		key = "price_increment_eur"
	}
	h.reply(ctx, chatID, fmt.Sprintf("✅ `%s` = `%d`", key, value))
}

func (h *Handler) handleApprove(ctx context.Context, chatID, arg string) {
	if arg == "" {
		h.reply(ctx, chatID, "⚠️ `/approve <chat_id>`")
		return
	}
	req, ok := h.registry.Approve(arg)
	if !ok {
		h.reply(ctx, chatID, fmt.Sprintf("❓ ID `%s` not found among pending.", arg))
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf("✅ User %s approved.", req.Name))
	h.reply(ctx, arg, "🎉 You are approved! Send /help for the command list.")
}

func (h *Handler) handleReject(ctx context.Context, chatID, arg string) {
	if arg == "" {
		h.reply(ctx, chatID, "⚠️ `/reject <chat_id>`")
		return
	}
	req, ok := h.registry.Reject(arg)
	if !ok {
		h.reply(ctx, chatID, fmt.Sprintf("❓ ID `%s` not found among pending.", arg))
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf("❌ Request from %s rejected.", req.Name))
	h.reply(ctx, arg, "❌ Your request was rejected by the admin.")
}

func (h *Handler) handleUsers(ctx context.Context, chatID string) {
	lines := []string{"👥 *Users:*"}
	for _, id := range h.registry.ListUserIDs() {
		u, _ := h.registry.User(id)
		s := u.EffectiveSettings()
		adminTag := ""
		if h.registry.IsAdmin(id) {
			adminTag = " 👑"
		}
		lines = append(lines, fmt.Sprintf("• %s%s — `%s`, %dd, %d€", u.Name, adminTag, s.Origin, s.DaysAhead, s.BasePrice))
	}

	pending := h.registry.ListPendingIDs()
	if len(pending) > 0 {
		lines = append(lines, fmt.Sprintf("\n⏳ *Pending (%d):*", len(pending)))
		for _, id := range pending {
			req, _ := h.registry.Pending(id)
			lines = append(lines, fmt.Sprintf("• %s — `/approve %s`", req.Name, id))
		}
	}

	h.reply(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *Handler) replyUnknown(ctx context.Context, chatID string) {
	h.reply(ctx, chatID, "❓ Unknown command. /help")
}

// reply is best-effort: a failed send is logged and the run continues,
// the command's state change is already applied.
func (h *Handler) reply(ctx context.Context, chatID, text string) {
	if err := h.client.Send(ctx, chatID, text); err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}
