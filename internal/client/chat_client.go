package client

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxMessageRunes = 4096

// BotSender - часть *tgbotapi.BotAPI, нужная для отправки сообщений
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type ChatClient struct {
	bot BotSender
}

func NewChatClient(bot BotSender) *ChatClient {
	return &ChatClient{bot: bot}
}

// SendMessage обрезает текст до лимита Telegram
func (c *ChatClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runes := []rune(text)
	if len(runes) > maxMessageRunes {
		text = string(runes[:maxMessageRunes-1]) + "…"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}
