package repository

import (
	"context"
	"sync"

	"github.com/Harry9429/Distro-app/internal/app/model"
)

// CartStore holds the in-progress order lines for a visit. Carts are
// ephemeral on purpose: nothing here survives the store's lifetime (memory)
// or TTL (Redis), and no database table backs them.
type CartStore interface {
	Get(ctx context.Context, userID uint) ([]model.CartLine, error)
	Put(ctx context.Context, userID uint, lines []model.CartLine) error
	Clear(ctx context.Context, userID uint) error
}

// memoryCartStore keeps carts in process memory; used in tests and when no
// Redis is configured.
type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[uint][]model.CartLine
}

func NewMemoryCartStore() CartStore {
	return &memoryCartStore{
		carts: make(map[uint][]model.CartLine),
	}
}

func (s *memoryCartStore) Get(_ context.Context, userID uint) ([]model.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *memoryCartStore) Put(_ context.Context, userID uint, lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CartLine, len(lines))
	copy(stored, lines)
	s.carts[userID] = stored
	return nil
}

func (s *memoryCartStore) Clear(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
