package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Lina3386/accounting-bot/internal/client"
	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/Lina3386/accounting-bot/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	chatID int64
	text   string
}

type testChat struct {
	sent []sentMessage
}

func (c *testChat) SendMessage(_ context.Context, chatID int64, text string) error {
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

// testAccounting отвечает сводкой по access token из ctx
type testAccounting struct {
	client.AccountingAPI
	byToken map[string][]models.CategoryExpenseSummary
	calls   int
}

func (a *testAccounting) SumTodayExpensesGroupedByCategory(ctx context.Context) ([]models.CategoryExpenseSummary, error) {
	a.calls++
	cred, _ := client.CredentialFromContext(ctx)
	token := cred.AccessToken
	if token == "broken" {
		return nil, errors.New("boom")
	}
	return a.byToken[token], nil
}

type testDigestConfig struct {
	hour int
}

func (c testDigestConfig) Enabled() bool           { return c.hour >= 0 }
func (c testDigestConfig) Hour() int               { return c.hour }
func (c testDigestConfig) Interval() time.Duration { return time.Hour }

func setupTestScheduler(hour int) (*Scheduler, *testChat, *testAccounting, *state.InMemorySessionStore) {
	chat := &testChat{}
	accounting := &testAccounting{byToken: map[string][]models.CategoryExpenseSummary{
		"alice-token": {{CategoryCode: "food", TotalAmount: models.MustParseAmount("12.50")}},
	}}
	store := state.NewInMemorySessionStore()
	s := NewScheduler(chat, accounting, store, testDigestConfig{hour: hour}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s, chat, accounting, store
}

func TestSendDigestOnlyToLoggedInSessions(t *testing.T) {
	s, chat, accounting, store := setupTestScheduler(21)
	store.Set("1", models.Session{Username: "alice", ChatID: "10", Credential: &models.Credential{AccessToken: "alice-token"}})
	store.Set("2", models.Session{Username: "bob", ChatID: "20", Credential: &models.Credential{AccessToken: "bob-token"}})
	store.Set("3", models.Session{Username: "anon", ChatID: "30"})
	store.Set("4", models.Session{Username: "err", ChatID: "40", Credential: &models.Credential{AccessToken: "broken"}})
	store.Set("5", models.Session{Username: "odd", ChatID: "not-a-number", Credential: &models.Credential{AccessToken: "alice-token"}})

	sent := s.SendDigest(context.Background())

	assert.Equal(t, 1, sent)
	assert.Equal(t, 3, accounting.calls)
	require.Len(t, chat.sent, 1)
	assert.Equal(t, int64(10), chat.sent[0].chatID)
	assert.Contains(t, chat.sent[0].text, "• food: 12.5")
}

func TestCheckDigestOncePerDayAtConfiguredHour(t *testing.T) {
	s, chat, _, store := setupTestScheduler(21)
	store.Set("1", models.Session{Username: "alice", ChatID: "10", Credential: &models.Credential{AccessToken: "alice-token"}})

	now := time.Date(2026, time.October, 15, 20, 59, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	assert.False(t, s.checkDigest(context.Background()))

	now = now.Add(2 * time.Minute)
	assert.True(t, s.checkDigest(context.Background()))
	assert.False(t, s.checkDigest(context.Background()))

	now = now.Add(24 * time.Hour)
	assert.True(t, s.checkDigest(context.Background()))

	assert.Len(t, chat.sent, 2)
}

func TestStartDisabledReturnsImmediately(t *testing.T) {
	s, _, _, _ := setupTestScheduler(-1)

	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled scheduler did not return")
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	s, _, _, _ := setupTestScheduler(3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestFormatDailySummary(t *testing.T) {
	assert.Equal(t, "📊 No expenses today.", FormatDailySummary(nil))

	text := FormatDailySummary([]models.CategoryExpenseSummary{
		{CategoryCode: "food", TotalAmount: models.MustParseAmount("0.10")},
		{CategoryCode: "taxi", TotalAmount: models.MustParseAmount("0.20")},
	})
	assert.Equal(t, "📊 Today's expenses:\n\n• food: 0.1\n• taxi: 0.2\n\nTotal: 0.3", text)
}
