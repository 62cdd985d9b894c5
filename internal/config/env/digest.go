package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Lina3386/accounting-bot/internal/config"
)

const (
	digestHourEnvName = "DIGEST_HOUR"
	digestInterval    = time.Hour
)

type digestConfig struct {
	hour int
}

// NewDigestConfig: пустое значение или -1 выключает ежедневную сводку
func NewDigestConfig() (config.DigestConfig, error) {
	raw := strings.TrimSpace(os.Getenv(digestHourEnvName))
	if raw == "" {
		return &digestConfig{hour: -1}, nil
	}

	hour, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be integer: %w", digestHourEnvName, err)
	}
	if hour < -1 || hour > 23 {
		return nil, fmt.Errorf("%s must be between 0 and 23 (or -1): got %d", digestHourEnvName, hour)
	}

	return &digestConfig{hour: hour}, nil
}

func (cfg *digestConfig) Enabled() bool {
	return cfg.hour >= 0
}

func (cfg *digestConfig) Hour() int {
	return cfg.hour
}

func (cfg *digestConfig) Interval() time.Duration {
	return digestInterval
}
