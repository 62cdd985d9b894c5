package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Lina3386/accounting-bot/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 5
	logMaxAgeDays = 14
)

// New пишет JSON в stdout и, если задан LOG_FILE, в ротируемый файл.
// Возвращаемый io.Closer закрывает файл (или ничего не делает).
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	return newLogger(os.Stdout, cfg)
}

func newLogger(stdout io.Writer, cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var writer io.Writer = stdout
	var closer io.Closer = nopCloser{}

	if cfg.FilePath() != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath()), 0o755); err != nil {
			return nil, nil, err
		}
		rotatingWriter := &lumberjack.Logger{
			Filename:   cfg.FilePath(),
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   true,
		}
		writer = io.MultiWriter(stdout, rotatingWriter)
		closer = rotatingWriter
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(cfg.Level())})
	return slog.New(handler), closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
