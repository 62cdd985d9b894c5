package env

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/Lina3386/accounting-bot/internal/config"
)

const (
	accountingURLEnvName    = "ACCOUNTING_CLIENT_API_URL"
	accountingClientEnvName = "TELEGRAM_BOT_CLIENT_ID"
	accountingSecretEnvName = "TELEGRAM_BOT_SECRET"
)

type accountingConfig struct {
	baseURL      string
	clientID     string
	clientSecret string
}

func NewAccountingConfig() (config.AccountingConfig, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv(accountingURLEnvName)), "/")
	clientID := strings.TrimSpace(os.Getenv(accountingClientEnvName))
	clientSecret := strings.TrimSpace(os.Getenv(accountingSecretEnvName))

	if baseURL == "" {
		return nil, errors.New("ACCOUNTING_CLIENT_API_URL not found")
	}
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("TELEGRAM_BOT_CLIENT_ID, TELEGRAM_BOT_SECRET are required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", accountingURLEnvName, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute http(s) URL: got %q", accountingURLEnvName, baseURL)
	}

	return &accountingConfig{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}, nil
}

func (cfg *accountingConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *accountingConfig) ClientID() string {
	return cfg.clientID
}

func (cfg *accountingConfig) ClientSecret() string {
	return cfg.clientSecret
}
