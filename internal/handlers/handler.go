package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Lina3386/accounting-bot/internal/client"
	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/Lina3386/accounting-bot/internal/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ChatSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type BotHandler struct {
	chat       ChatSender
	accounting client.AccountingAPI
	sessions   state.SessionStore
	logger     *slog.Logger
	commands   []command
}

func NewBotHandler(
	chat ChatSender,
	accounting client.AccountingAPI,
	sessions state.SessionStore,
	logger *slog.Logger,
) *BotHandler {
	h := &BotHandler{
		chat:       chat,
		accounting: accounting,
		sessions:   sessions,
		logger:     logger,
	}
	h.commands = h.buildCommands()
	return h
}

func (h *BotHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		h.HandleMessage(ctx, update.Message)
	}
}

// HandleMessage находит (или создает) сессию отправителя и выполняет команду
func (h *BotHandler) HandleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}

	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}
	chatID := message.Chat.ID

	session := h.sessions.GetOrCreate(
		strconv.FormatInt(message.From.ID, 10),
		username,
		strconv.FormatInt(chatID, 10),
	)

	logger := h.logger.With(slog.String("user_id", session.UserID), slog.Int64("chat_id", chatID))
	logger.Debug("message received", slog.String("text", message.Text))

	if !message.IsCommand() {
		h.sendMessage(ctx, chatID, "Unknown command. Use /help to see the list.")
		return
	}

	cmd, ok := h.lookupCommand(message.Command())
	if !ok {
		h.sendMessage(ctx, chatID, "Unknown command. Use /help to see the list.")
		return
	}

	req := commandRequest{
		session: session,
		chatID:  chatID,
		args:    message.CommandArguments(),
		logger:  logger.With(slog.String("command", cmd.name)),
	}
	cmd.run(ctx, req)
}

type commandRequest struct {
	session models.Session
	chatID  int64
	args    string
	logger  *slog.Logger
}

func (h *BotHandler) sendMessage(ctx context.Context, chatID int64, text string) {
	if err := h.chat.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Error("failed to send message", slog.Int64("chat_id", chatID), slog.Any("error", err))
	}
}
