package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Lina3386/accounting-bot/internal/client"
	"github.com/Lina3386/accounting-bot/internal/models"
)

func (h *BotHandler) handleHelp(ctx context.Context, req commandRequest) {
	h.sendMessage(ctx, req.chatID, h.helpText())
}

func (h *BotHandler) handleUsername(ctx context.Context, req commandRequest) {
	h.sendMessage(ctx, req.chatID, fmt.Sprintf("Your username is @%s.", req.session.Username))
}

func (h *BotHandler) handleUsernameAndAge(ctx context.Context, req commandRequest) {
	args := strings.Fields(req.args)
	if len(args) != 2 {
		h.sendMessage(ctx, req.chatID, "Usage: /usernameandage <username> <age>")
		return
	}

	age, err := ParseAge(args[1])
	if err != nil {
		h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
		return
	}

	h.sendMessage(ctx, req.chatID, fmt.Sprintf("Your username is @%s and age is %d.", args[0], age))
}

func (h *BotHandler) handleLogin(ctx context.Context, req commandRequest) {
	cred, err := h.accounting.LoginTelegram(ctx, req.session.UserID, req.session.Username)
	if err != nil {
		req.logger.Warn("login failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Login failed: "+describeError(err))
		return
	}

	attach := func(s *models.Session) { s.Credential = &cred }
	if _, ok := h.sessions.Update(req.session.UserID, attach); !ok {
		// сессию удалили между GetOrCreate и ответом сервиса
		session := req.session
		attach(&session)
		h.sessions.Set(session.UserID, session)
	}

	req.logger.Info("user logged in")
	h.sendMessage(ctx, req.chatID, fmt.Sprintf("✅ Logged in as @%s.", req.session.Username))
}

func (h *BotHandler) handleLogout(ctx context.Context, req commandRequest) {
	h.sessions.Remove(req.session.UserID)
	req.logger.Info("session removed")
	h.sendMessage(ctx, req.chatID, "👋 Session cleared. Use /login to sign in again.")
}

func (h *BotHandler) handleStatus(ctx context.Context, req commandRequest) {
	if !req.session.LoggedIn() {
		h.sendMessage(ctx, req.chatID, fmt.Sprintf("@%s, you are not logged in. Use /login.", req.session.Username))
		return
	}

	text := fmt.Sprintf("@%s, you are logged in.", req.session.Username)
	if exp, ok := req.session.Credential.AccessTokenExpiry(); ok {
		text += fmt.Sprintf("\nAccess token expires at %s.", exp.UTC().Format(time.RFC3339))
	}
	h.sendMessage(ctx, req.chatID, text)
}

// authorized прикрепляет токен сессии к ctx; без токена просит войти
func (h *BotHandler) authorized(ctx context.Context, req commandRequest) (context.Context, bool) {
	if !req.session.LoggedIn() {
		h.sendMessage(ctx, req.chatID, "🔒 Please /login first.")
		return ctx, false
	}
	return client.WithCredential(ctx, req.session.Credential), true
}

func describeError(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return "something went wrong, try again later"
	}

	switch apiErr.Kind {
	case client.KindTransport:
		return "the accounting service is unreachable, try again later"
	case client.KindDecode:
		return "the accounting service sent an unexpected response"
	case client.KindRejected:
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return "access denied, please /login again"
		}
		return apiErr.Message
	default:
		return apiErr.Error()
	}
}
