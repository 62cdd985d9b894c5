package env

import (
	"errors"
	"os"
	"strings"

	"github.com/Lina3386/accounting-bot/internal/config"
)

const (
	botTokenEnvName = "BOT_TOKEN"
	botDebugEnvName = "LOG_LEVEL"
)

type botConfig struct {
	token string
	debug bool
}

func NewBotConfig() (config.BotConfig, error) {
	token := strings.TrimSpace(os.Getenv(botTokenEnvName))
	if token == "" {
		return nil, errors.New("BOT_TOKEN not found")
	}

	debug := strings.TrimSpace(os.Getenv(botDebugEnvName)) == "debug"

	return &botConfig{
		token: token,
		debug: debug,
	}, nil
}

func (cfg *botConfig) Token() string {
	return cfg.token
}

func (cfg *botConfig) Debug() bool {
	return cfg.debug
}
