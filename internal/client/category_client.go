package client

import (
	"context"
	"net/http"

	"github.com/Lina3386/accounting-bot/internal/models"
)

func (c *AccountingClient) CreateCategory(ctx context.Context, data models.CreateCategory) (models.Category, error) {
	var category models.Category
	if err := c.do(ctx, "create category", http.MethodPost, categoriesPath, nil, data, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (c *AccountingClient) ListCategories(ctx context.Context, params models.Pagination) (models.PagedResponse[models.Category], error) {
	var page models.PagedResponse[models.Category]
	if err := c.do(ctx, "list categories", http.MethodGet, categoriesPath, params.Values(), nil, &page); err != nil {
		return models.PagedResponse[models.Category]{}, err
	}
	return page, nil
}
