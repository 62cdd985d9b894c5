package models

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Amount       Amount          `json:"amount"`
	CategoryCode string          `json:"category"`
	Description  *string         `json:"description"`
	Date         time.Time       `json:"date"`
	Type         TransactionType `json:"type"`
}

// CreateTransaction - запрос на создание операции. Пустая дата значит "сегодня".
type CreateTransaction struct {
	Amount       Amount  `json:"amount"`
	CategoryCode string  `json:"category"`
	Description  *string `json:"description"`
	Date         *Date   `json:"date"`
}

type UpdateTransaction struct {
	Amount       Amount    `json:"amount"`
	CategoryCode string    `json:"category"`
	Description  *string   `json:"description"`
	Date         time.Time `json:"date"`
}

// MonthlyTransactionQuery - фильтр по году/месяцу, nil отдает выбор сервису
type MonthlyTransactionQuery struct {
	Year       *int
	Month      *int
	Pagination Pagination
}

func (q MonthlyTransactionQuery) Values() url.Values {
	v := q.Pagination.Values()
	if q.Year != nil {
		v.Set("year", strconv.Itoa(*q.Year))
	}
	if q.Month != nil {
		v.Set("month", strconv.Itoa(*q.Month))
	}
	return v
}

type CategoryExpenseSummary struct {
	CategoryCode string `json:"categoryCode"`
	TotalAmount  Amount `json:"totalAmount"`
}
