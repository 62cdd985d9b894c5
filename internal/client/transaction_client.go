package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/Lina3386/accounting-bot/internal/models"
)

// CreateExpenseTransaction: без даты операция записывается на сегодня
func (c *AccountingClient) CreateExpenseTransaction(ctx context.Context, data models.CreateTransaction) (models.Transaction, error) {
	if data.Date == nil {
		today := models.DateOf(c.now())
		data.Date = &today
	}

	var tx models.Transaction
	if err := c.do(ctx, "create expense transaction", http.MethodPost, expenseTransactionsPath, nil, data, &tx); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// SumTodayExpensesGroupedByCategory принимает и массив, и одиночный объект
func (c *AccountingClient) SumTodayExpensesGroupedByCategory(ctx context.Context) ([]models.CategoryExpenseSummary, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "sum today expenses", http.MethodGet, todayExpenseSummaryPath, nil, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single models.CategoryExpenseSummary
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, decodeError("sum today expenses", err)
		}
		return []models.CategoryExpenseSummary{single}, nil
	}

	var summaries []models.CategoryExpenseSummary
	if err := json.Unmarshal(trimmed, &summaries); err != nil {
		return nil, decodeError("sum today expenses", err)
	}
	if summaries == nil {
		summaries = []models.CategoryExpenseSummary{}
	}
	return summaries, nil
}

func (c *AccountingClient) FindAllTransactionsByMonth(ctx context.Context, params models.MonthlyTransactionQuery) (models.PagedResponse[models.Transaction], error) {
	var page models.PagedResponse[models.Transaction]
	if err := c.do(ctx, "find transactions by month", http.MethodGet, transactionsPath, params.Values(), nil, &page); err != nil {
		return models.PagedResponse[models.Transaction]{}, err
	}
	return page, nil
}
