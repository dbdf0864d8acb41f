// Package marketing holds the storefront's marketing write paths:
// newsletter signups and contact-form messages.
package marketing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Subscribe(ctx context.Context, email string) error
	SaveMessage(ctx context.Context, m Message) error
	Ping(ctx context.Context) error
}

type MemStore struct {
	mu       sync.Mutex
	signups  map[string]time.Time
	messages []Message
}

func NewMemStore() *MemStore {
	return &MemStore{signups: make(map[string]time.Time)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Subscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.signups[email]; ok {
		return ErrAlreadySubscribed
	}
	s.signups[email] = time.Now().UTC()
	return nil
}

func (s *MemStore) SaveMessage(ctx context.Context, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, m)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
