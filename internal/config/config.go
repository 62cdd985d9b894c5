package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type BotConfig interface {
	Token() string
	Debug() bool
}

type AccountingConfig interface {
	BaseURL() string
	ClientID() string
	ClientSecret() string
}

type LogConfig interface {
	Level() string
	FilePath() string
}

type DigestConfig interface {
	Enabled() bool
	Hour() int
	Interval() time.Duration
}

// Load подгружает .env, если файл есть. Отсутствие файла не ошибка:
// переменные могут прийти из окружения.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
