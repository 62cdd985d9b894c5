package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/shopspring/decimal"
)

const (
	MaxCodeLength = 32
	MaxNameLength = 50
	MaxAge        = 255
)

var maxAmount = decimal.NewFromInt(999_999_999)

func ValidateCategoryCode(code string) error {
	if code == "" {
		return fmt.Errorf("category code must not be empty")
	}
	if len(code) > MaxCodeLength {
		return fmt.Errorf("category code is too long (max %d characters)", MaxCodeLength)
	}
	for _, ch := range code {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '-' && ch != '_' {
			return fmt.Errorf("category code may contain only letters, digits, '-' and '_'")
		}
	}
	return nil
}

func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if len([]rune(name)) > MaxNameLength {
		return fmt.Errorf("category name is too long (max %d characters)", MaxNameLength)
	}
	return nil
}

// ParseExpenseAmount: сумма строго больше нуля и не больше maxAmount
func ParseExpenseAmount(s string) (models.Amount, error) {
	amount, err := models.ParseAmount(s)
	if err != nil {
		return models.Amount{}, fmt.Errorf("%q is not a valid amount", s)
	}
	if !amount.IsPositive() {
		return models.Amount{}, fmt.Errorf("amount must be greater than zero")
	}
	if amount.GreaterThan(maxAmount) {
		return models.Amount{}, fmt.Errorf("amount must not exceed %s", maxAmount)
	}
	return amount, nil
}

func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(s)
	if err != nil || age < 0 || age > MaxAge {
		return 0, fmt.Errorf("age must be a number from 0 to %d", MaxAge)
	}
	return age, nil
}

// ParsePage переводит номер страницы от пользователя (с 1) в номер API (с 0)
func ParsePage(s string) (int64, error) {
	page, err := strconv.ParseInt(s, 10, 64)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("page must be a positive number")
	}
	return page - 1, nil
}

func ParseYearMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("month must look like YYYY-MM")
	}
	return t.Year(), t.Month(), nil
}
