package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/Lina3386/accounting-bot/internal/services"
)

func (h *BotHandler) handleListCategories(ctx context.Context, req commandRequest) {
	ctx, ok := h.authorized(ctx, req)
	if !ok {
		return
	}

	pagination := models.DefaultPagination()
	if arg := strings.TrimSpace(req.args); arg != "" {
		page, err := ParsePage(arg)
		if err != nil {
			h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
			return
		}
		pagination.Page = page
	}

	page, err := h.accounting.ListCategories(ctx, pagination)
	if err != nil {
		req.logger.Warn("list categories failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Failed to load categories: "+describeError(err))
		return
	}

	if len(page.Content) == 0 {
		h.sendMessage(ctx, req.chatID, "📂 No categories on this page.")
		return
	}

	text := fmt.Sprintf("📂 Categories (page %d/%d, %d total):\n\n",
		page.Page.Number+1, page.Page.TotalPages, page.Page.TotalElements)
	for _, category := range page.Content {
		text += fmt.Sprintf("• %s: %s [%s]", category.Code, category.Name, category.Type)
		if category.Description != nil && *category.Description != "" {
			text += " - " + *category.Description
		}
		text += "\n"
	}
	h.sendMessage(ctx, req.chatID, strings.TrimRight(text, "\n"))
}

func (h *BotHandler) handleCreateCategory(ctx context.Context, req commandRequest) {
	ctx, ok := h.authorized(ctx, req)
	if !ok {
		return
	}

	args := strings.Fields(req.args)
	if len(args) < 3 {
		h.sendMessage(ctx, req.chatID, "Usage: /addcategory <code> <INCOME|EXPENSE> <name>")
		return
	}

	code := args[0]
	name := strings.Join(args[2:], " ")
	if err := ValidateCategoryCode(code); err != nil {
		h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
		return
	}
	if err := ValidateCategoryName(name); err != nil {
		h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
		return
	}
	categoryType, err := models.ParseCategoryType(strings.ToUpper(args[1]))
	if err != nil {
		h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
		return
	}

	category, err := h.accounting.CreateCategory(ctx, models.CreateCategory{
		Code: code,
		Name: name,
		Type: categoryType,
	})
	if err != nil {
		req.logger.Warn("create category failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Failed to create category: "+describeError(err))
		return
	}

	req.logger.Info("category created", slog.String("category_id", category.ID))
	h.sendMessage(ctx, req.chatID, fmt.Sprintf("✅ Category %s (%s) created.", category.Code, category.Name))
}

func (h *BotHandler) handleCreateExpense(ctx context.Context, req commandRequest) {
	ctx, ok := h.authorized(ctx, req)
	if !ok {
		return
	}

	args := strings.Fields(req.args)
	if len(args) < 2 {
		h.sendMessage(ctx, req.chatID, "Usage: /expense <amount> <category> [description]")
		return
	}

	amount, err := ParseExpenseAmount(args[0])
	if err != nil {
		h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
		return
	}

	data := models.CreateTransaction{
		Amount:       amount,
		CategoryCode: args[1],
	}
	if len(args) > 2 {
		description := strings.Join(args[2:], " ")
		data.Description = &description
	}

	tx, err := h.accounting.CreateExpenseTransaction(ctx, data)
	if err != nil {
		req.logger.Warn("create expense failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Failed to save expense: "+describeError(err))
		return
	}

	req.logger.Info("expense created", slog.String("transaction_id", tx.ID.String()))
	h.sendMessage(ctx, req.chatID, fmt.Sprintf("✅ Saved expense %s in %s (%s).",
		tx.Amount.String(), tx.CategoryCode, tx.Date.Format("2006-01-02")))
}

func (h *BotHandler) handleTodaySummary(ctx context.Context, req commandRequest) {
	ctx, ok := h.authorized(ctx, req)
	if !ok {
		return
	}

	summaries, err := h.accounting.SumTodayExpensesGroupedByCategory(ctx)
	if err != nil {
		req.logger.Warn("today summary failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Failed to load today's expenses: "+describeError(err))
		return
	}

	h.sendMessage(ctx, req.chatID, services.FormatDailySummary(summaries))
}

func (h *BotHandler) handleMonthTransactions(ctx context.Context, req commandRequest) {
	ctx, ok := h.authorized(ctx, req)
	if !ok {
		return
	}

	query := models.MonthlyTransactionQuery{Pagination: models.DefaultPagination()}
	title := "this month"
	for _, arg := range strings.Fields(req.args) {
		if strings.Contains(arg, "-") {
			year, month, err := ParseYearMonth(arg)
			if err != nil {
				h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
				return
			}
			m := int(month)
			query.Year, query.Month = &year, &m
			title = arg
			continue
		}
		page, err := ParsePage(arg)
		if err != nil {
			h.sendMessage(ctx, req.chatID, "❌ "+err.Error())
			return
		}
		query.Pagination.Page = page
	}

	page, err := h.accounting.FindAllTransactionsByMonth(ctx, query)
	if err != nil {
		req.logger.Warn("month transactions failed", slog.Any("error", err))
		h.sendMessage(ctx, req.chatID, "❌ Failed to load transactions: "+describeError(err))
		return
	}

	if len(page.Content) == 0 {
		h.sendMessage(ctx, req.chatID, fmt.Sprintf("📅 No transactions for %s.", title))
		return
	}

	text := fmt.Sprintf("📅 Transactions for %s (page %d/%d):\n\n", title, page.Page.Number+1, page.Page.TotalPages)
	for _, tx := range page.Content {
		sign := "-"
		if tx.Type == models.TransactionIncome {
			sign = "+"
		}
		text += fmt.Sprintf("%s %s%s %s", tx.Date.Format("2006-01-02"), sign, tx.Amount.String(), tx.CategoryCode)
		if tx.Description != nil && *tx.Description != "" {
			text += " " + *tx.Description
		}
		text += "\n"
	}
	h.sendMessage(ctx, req.chatID, strings.TrimRight(text, "\n"))
}
