package wallet

import (
	"context"
	"fmt"
	"sync"
)

// Store persists diamond balances per session.
type Store interface {
	// Balance returns the current diamond balance.
	Balance(ctx context.Context, sessionID string) (int, error)
	// Credit adds diamonds and returns the new balance.
	Credit(ctx context.Context, sessionID string, amount int) (int, error)
	// Debit removes diamonds and returns the new balance. Fails when
	// the balance cannot cover the amount.
	Debit(ctx context.Context, sessionID string, amount int) (int, error)
}

// InsufficientDiamondsError reports a debit that exceeds the balance.
type InsufficientDiamondsError struct {
	Need int
	Have int
}

func (e *InsufficientDiamondsError) Error() string {
	return fmt.Sprintf("not enough diamonds: need %d but only have %d", e.Need, e.Have)
}

// MemoryStore keeps balances in memory. The default when no database
// is configured.
type MemoryStore struct {
	mu       sync.Mutex
	balances map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{balances: make(map[string]int)}
}

// Balance implements Store.
func (s *MemoryStore) Balance(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[sessionID], nil
}

// Credit implements Store.
func (s *MemoryStore) Credit(_ context.Context, sessionID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("credit amount must be non-negative, got %d", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[sessionID] += amount
	return s.balances[sessionID], nil
}

// Debit implements Store.
func (s *MemoryStore) Debit(_ context.Context, sessionID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("debit amount must be non-negative, got %d", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	have := s.balances[sessionID]
	if have < amount {
		return have, &InsufficientDiamondsError{Need: amount, Have: have}
	}
	s.balances[sessionID] = have - amount
	return s.balances[sessionID], nil
}
