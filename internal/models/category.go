package models

import "fmt"

type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(s) {
	case CategoryIncome, CategoryExpense:
		return CategoryType(s), nil
	}
	return "", fmt.Errorf("unknown category type %q (want INCOME or EXPENSE)", s)
}

// CreateCategory - запрос на создание категории, id назначает сервер
type CreateCategory struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Type        CategoryType `json:"type"`
}

type Category struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Type        CategoryType `json:"type"`
}
