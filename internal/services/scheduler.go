package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Lina3386/accounting-bot/internal/client"
	"github.com/Lina3386/accounting-bot/internal/config"
	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/Lina3386/accounting-bot/internal/state"
	"github.com/shopspring/decimal"
)

type ChatSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Scheduler раз в день рассылает залогиненным пользователям сводку расходов
type Scheduler struct {
	chat       ChatSender
	accounting client.AccountingAPI
	sessions   state.SessionStore
	cfg        config.DigestConfig
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	lastSent string
}

func NewScheduler(
	chat ChatSender,
	accounting client.AccountingAPI,
	sessions state.SessionStore,
	cfg config.DigestConfig,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		chat:       chat,
		accounting: accounting,
		sessions:   sessions,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// Start блокируется до отмены ctx
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.Enabled() {
		s.logger.Info("daily digest disabled")
		return
	}

	ticker := time.NewTicker(s.cfg.Interval())
	defer ticker.Stop()

	s.checkDigest(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.checkDigest(ctx)
		}
	}
}

// checkDigest отправляет сводку не чаще раза в день и только в заданный час
func (s *Scheduler) checkDigest(ctx context.Context) bool {
	now := s.now()
	if now.Hour() != s.cfg.Hour() {
		return false
	}

	today := now.Format("2006-01-02")
	s.mu.Lock()
	if s.lastSent == today {
		s.mu.Unlock()
		return false
	}
	s.lastSent = today
	s.mu.Unlock()

	sent := s.SendDigest(ctx)
	s.logger.Info("daily digest sent", slog.String("date", today), slog.Int("recipients", sent))
	return true
}

// SendDigest возвращает число пользователей, которым ушла сводка
func (s *Scheduler) SendDigest(ctx context.Context) int {
	sent := 0
	for _, session := range s.sessions.Snapshot() {
		if !session.LoggedIn() {
			continue
		}

		logger := s.logger.With(slog.String("user_id", session.UserID))
		chatID, err := strconv.ParseInt(session.ChatID, 10, 64)
		if err != nil {
			logger.Warn("session has invalid chat id", slog.String("chat_id", session.ChatID))
			continue
		}

		summaries, err := s.accounting.SumTodayExpensesGroupedByCategory(client.WithCredential(ctx, session.Credential))
		if err != nil {
			logger.Warn("failed to load daily summary", slog.Any("error", err))
			continue
		}
		if len(summaries) == 0 {
			continue
		}

		if err := s.chat.SendMessage(ctx, chatID, FormatDailySummary(summaries)); err != nil {
			logger.Warn("failed to send daily summary", slog.Any("error", err))
			continue
		}
		sent++
	}
	return sent
}

// FormatDailySummary - текст сводки расходов за день
func FormatDailySummary(summaries []models.CategoryExpenseSummary) string {
	if len(summaries) == 0 {
		return "📊 No expenses today."
	}

	total := decimal.Zero
	text := "📊 Today's expenses:\n\n"
	for _, summary := range summaries {
		text += fmt.Sprintf("• %s: %s\n", summary.CategoryCode, summary.TotalAmount.String())
		total = total.Add(summary.TotalAmount.Decimal)
	}
	text += fmt.Sprintf("\nTotal: %s", total.String())
	return text
}
