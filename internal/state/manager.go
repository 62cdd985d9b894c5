package state

import (
	"sync"

	"github.com/Lina3386/accounting-bot/internal/models"
)

// SessionStore хранит одну сессию на user id. Все методы возвращают копии.
type SessionStore interface {
	GetOrCreate(userID, username, chatID string) models.Session
	Get(userID string) (models.Session, bool)
	Set(userID string, session models.Session)
	Update(userID string, fn func(*models.Session)) (models.Session, bool)
	Remove(userID string)
	Snapshot() []models.Session
}

var _ SessionStore = (*InMemorySessionStore)(nil)

type InMemorySessionStore struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*models.Session),
	}
}

// GetOrCreate создает сессию только если ее еще нет. Проверка и вставка
// идут под одной блокировкой записи, так что при одновременном первом
// сообщении от пользователя вторая горутина увидит сессию первой.
func (s *InMemorySessionStore) GetOrCreate(userID, username, chatID string) models.Session {
	s.mu.RLock()
	if session, exists := s.sessions[userID]; exists {
		defer s.mu.RUnlock()
		return session.Clone()
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, exists := s.sessions[userID]; exists {
		return session.Clone()
	}

	session := models.NewSession(userID, username, chatID)
	s.sessions[userID] = &session
	return session.Clone()
}

func (s *InMemorySessionStore) Get(userID string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if session, exists := s.sessions[userID]; exists {
		return session.Clone(), true
	}
	return models.Session{}, false
}

// Set заменяет запись целиком. UserID сессии всегда равен ключу.
func (s *InMemorySessionStore) Set(userID string, session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := session.Clone()
	stored.UserID = userID
	s.sessions[userID] = &stored
}

// Update меняет существующую сессию под блокировкой; false если сессии нет
func (s *InMemorySessionStore) Update(userID string, fn func(*models.Session)) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.sessions[userID]
	if !exists {
		return models.Session{}, false
	}

	next := current.Clone()
	fn(&next)
	next.UserID = userID
	s.sessions[userID] = &next
	return next.Clone(), true
}

func (s *InMemorySessionStore) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

func (s *InMemorySessionStore) Snapshot() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Clone())
	}
	return out
}

func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
