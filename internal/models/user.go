package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential - пара токенов, выданная сервисом учета после логина
type Credential struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessTokenExpiry читает claim exp, если access token - это JWT.
// Подпись не проверяется, значение только для отображения.
func (c Credential) AccessTokenExpiry() (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// LoginTelegramRequest - тело запроса логина от имени бота
type LoginTelegramRequest struct {
	ClientID   string `json:"client_id"`
	Secret     string `json:"secret"`
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username"`
}

// Session - состояние одного пользователя чата
type Session struct {
	UserID     string
	Username   string
	ChatID     string
	Credential *Credential
}

func NewSession(userID, username, chatID string) Session {
	return Session{
		UserID:   userID,
		Username: username,
		ChatID:   chatID,
	}
}

func (s Session) LoggedIn() bool {
	return s.Credential != nil
}

// Clone возвращает копию, не разделяющую Credential с оригиналом
func (s Session) Clone() Session {
	if s.Credential != nil {
		cred := *s.Credential
		s.Credential = &cred
	}
	return s
}
