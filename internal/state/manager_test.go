package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Lina3386/accounting-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateKeepsOriginalFields(t *testing.T) {
	store := NewInMemorySessionStore()

	first := store.GetOrCreate("42", "alice", "100")
	second := store.GetOrCreate("42", "mallory", "200")

	assert.Equal(t, models.Session{UserID: "42", Username: "alice", ChatID: "100"}, first)
	assert.Equal(t, first, second)
	assert.Nil(t, second.Credential)
	assert.Equal(t, 1, store.Len())
}

func TestGetOrCreateConcurrentFirstContact(t *testing.T) {
	store := NewInMemorySessionStore()

	const n = 64
	results := make([]models.Session, n)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = store.GetOrCreate("7", fmt.Sprintf("user-%d", i), fmt.Sprintf("chat-%d", i))
		}(i)
	}
	close(start)
	wg.Wait()

	require.Equal(t, 1, store.Len())
	stored, ok := store.Get("7")
	require.True(t, ok)
	for _, got := range results {
		assert.Equal(t, stored, got)
	}
}

func TestGetOrCreateDoesNotDropCredentialSetByWinner(t *testing.T) {
	store := NewInMemorySessionStore()
	store.GetOrCreate("1", "bob", "10")

	_, ok := store.Update("1", func(s *models.Session) {
		s.Credential = &models.Credential{AccessToken: "abc", RefreshToken: "def"}
	})
	require.True(t, ok)

	again := store.GetOrCreate("1", "bob", "10")
	require.NotNil(t, again.Credential)
	assert.Equal(t, "abc", again.Credential.AccessToken)
}

func TestGetSetRemove(t *testing.T) {
	store := NewInMemorySessionStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("5", models.Session{UserID: "ignored", Username: "eve", ChatID: "55"})
	got, ok := store.Get("5")
	require.True(t, ok)
	assert.Equal(t, "5", got.UserID)
	assert.Equal(t, "eve", got.Username)

	store.Set("5", models.Session{Username: "eve2", ChatID: "56"})
	got, _ = store.Get("5")
	assert.Equal(t, "eve2", got.Username)

	store.Remove("5")
	_, ok = store.Get("5")
	assert.False(t, ok)

	store.Remove("5")
	assert.Equal(t, 0, store.Len())
}

func TestReturnedSessionIsACopy(t *testing.T) {
	store := NewInMemorySessionStore()
	store.Set("1", models.Session{Username: "bob", Credential: &models.Credential{AccessToken: "a"}})

	got, _ := store.Get("1")
	got.Username = "changed"
	got.Credential.AccessToken = "changed"

	again, _ := store.Get("1")
	assert.Equal(t, "bob", again.Username)
	assert.Equal(t, "a", again.Credential.AccessToken)
}

func TestUpdateMissing(t *testing.T) {
	store := NewInMemorySessionStore()

	called := false
	_, ok := store.Update("nope", func(*models.Session) { called = true })

	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateCannotChangeUserID(t *testing.T) {
	store := NewInMemorySessionStore()
	store.GetOrCreate("1", "bob", "10")

	updated, ok := store.Update("1", func(s *models.Session) {
		s.UserID = "2"
		s.Username = "robert"
	})

	require.True(t, ok)
	assert.Equal(t, "1", updated.UserID)
	assert.Equal(t, "robert", updated.Username)
	_, exists := store.Get("2")
	assert.False(t, exists)
}

func TestSnapshot(t *testing.T) {
	store := NewInMemorySessionStore()
	store.GetOrCreate("1", "a", "10")
	store.GetOrCreate("2", "b", "20")

	snap := store.Snapshot()

	assert.Len(t, snap, 2)
	assert.ElementsMatch(t, []string{"1", "2"}, []string{snap[0].UserID, snap[1].UserID})
}

func TestConcurrentMixedAccess(t *testing.T) {
	store := NewInMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("%d", i%5)
			store.GetOrCreate(id, "u", "c")
			store.Update(id, func(s *models.Session) { s.Username = fmt.Sprintf("u%d", i) })
			store.Get(id)
			store.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, store.Len())
}
