package env

import (
	"os"
	"strings"

	"github.com/Lina3386/accounting-bot/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logFileEnvName  = "LOG_FILE"
)

type logConfig struct {
	level    string
	filePath string
}

func NewLogConfig() (config.LogConfig, error) {
	level := strings.ToLower(strings.TrimSpace(os.Getenv(logLevelEnvName)))
	if level == "" {
		level = "info"
	}

	return &logConfig{
		level:    level,
		filePath: strings.TrimSpace(os.Getenv(logFileEnvName)),
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) FilePath() string {
	return cfg.filePath
}
