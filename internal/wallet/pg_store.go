package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists diamond balances in the wallets table.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store over an existing connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Balance implements Store. A session with no wallet row has balance
// zero.
func (s *PGStore) Balance(ctx context.Context, sessionID string) (int, error) {
	var balance int
	err := s.pool.QueryRow(ctx,
		`SELECT balance FROM wallets WHERE session_id = $1`, sessionID,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query wallet %s: %w", sessionID, err)
	}
	return balance, nil
}

// Credit implements Store.
func (s *PGStore) Credit(ctx context.Context, sessionID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("credit amount must be non-negative, got %d", amount)
	}
	var balance int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO wallets (session_id, balance)
		 VALUES ($1, $2)
		 ON CONFLICT (session_id)
		 DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
		 RETURNING balance`, sessionID, amount,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("credit wallet %s: %w", sessionID, err)
	}
	return balance, nil
}

// Debit implements Store. The balance check and deduction happen in a
// single statement so concurrent debits cannot overdraw.
func (s *PGStore) Debit(ctx context.Context, sessionID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("debit amount must be non-negative, got %d", amount)
	}
	var balance int
	err := s.pool.QueryRow(ctx,
		`UPDATE wallets SET balance = balance - $2
		 WHERE session_id = $1 AND balance >= $2
		 RETURNING balance`, sessionID, amount,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		have, balErr := s.Balance(ctx, sessionID)
		if balErr != nil {
			return 0, balErr
		}
		return have, &InsufficientDiamondsError{Need: amount, Have: have}
	}
	if err != nil {
		return 0, fmt.Errorf("debit wallet %s: %w", sessionID, err)
	}
	return balance, nil
}
