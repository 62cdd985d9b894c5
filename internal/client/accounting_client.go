package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Lina3386/accounting-bot/internal/config"
	"github.com/Lina3386/accounting-bot/internal/models"
)

const (
	loginTelegramPath       = "/users/login/telegram"
	categoriesPath          = "/categories"
	transactionsPath        = "/transactions"
	expenseTransactionsPath = "/transactions/expense"
	todayExpenseSummaryPath = "/transactions/expense/summary/today"
)

// AccountingAPI - операции удаленного сервиса учета
type AccountingAPI interface {
	// Users
	LoginTelegram(ctx context.Context, telegramID, username string) (models.Credential, error)

	// Categories
	CreateCategory(ctx context.Context, data models.CreateCategory) (models.Category, error)
	ListCategories(ctx context.Context, params models.Pagination) (models.PagedResponse[models.Category], error)

	// Transactions
	CreateExpenseTransaction(ctx context.Context, data models.CreateTransaction) (models.Transaction, error)
	SumTodayExpensesGroupedByCategory(ctx context.Context) ([]models.CategoryExpenseSummary, error)
	FindAllTransactionsByMonth(ctx context.Context, params models.MonthlyTransactionQuery) (models.PagedResponse[models.Transaction], error)
}

var _ AccountingAPI = (*AccountingClient)(nil)

// AccountingClient ходит в сервис учета по HTTP. Общего изменяемого
// состояния нет, один экземпляр обслуживает все сессии.
type AccountingClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client
	now          func() time.Time
}

func NewAccountingClient(cfg config.AccountingConfig, httpClient *http.Client) *AccountingClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &AccountingClient{
		baseURL:      strings.TrimRight(cfg.BaseURL(), "/"),
		clientID:     cfg.ClientID(),
		clientSecret: cfg.ClientSecret(),
		http:         httpClient,
		now:          time.Now,
	}
}

type credentialKey struct{}

// WithCredential прикрепляет токены сессии к запросам, сделанным с этим ctx
func WithCredential(ctx context.Context, cred *models.Credential) context.Context {
	if cred == nil {
		return ctx
	}
	return context.WithValue(ctx, credentialKey{}, *cred)
}

// CredentialFromContext возвращает токены, прикрепленные WithCredential
func CredentialFromContext(ctx context.Context) (models.Credential, bool) {
	cred, ok := ctx.Value(credentialKey{}).(models.Credential)
	return cred, ok && cred.AccessToken != ""
}

// do отправляет JSON (если body != nil) и декодирует ответ в out
func (c *AccountingClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Op: op, Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		payload = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return transportError(op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cred, ok := CredentialFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return transportError(op, err)
	}
	if res.StatusCode >= 400 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return rejectedError(op, res.StatusCode, msg)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return decodeError(op, err)
	}
	return nil
}
