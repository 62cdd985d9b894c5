package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/Lina3386/accounting-bot/internal/models"
)

// LoginTelegram обменивает telegram id пользователя и секрет бота на токены
func (c *AccountingClient) LoginTelegram(ctx context.Context, telegramID, username string) (models.Credential, error) {
	data := models.LoginTelegramRequest{
		ClientID:   c.clientID,
		Secret:     c.clientSecret,
		TelegramID: telegramID,
		Username:   username,
	}

	var cred models.Credential
	if err := c.do(ctx, "login telegram", http.MethodPost, loginTelegramPath, nil, data, &cred); err != nil {
		return models.Credential{}, err
	}
	if cred.AccessToken == "" {
		return models.Credential{}, decodeError("login telegram", errors.New("response has no token"))
	}
	return cred, nil
}
