package wallet

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_CreditAndBalance(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	balance, err := store.Credit(ctx, "s1", 100)
	if err != nil {
		t.Fatalf("Unexpected credit error: %v", err)
	}
	if balance != 100 {
		t.Errorf("Expected balance 100, got %d", balance)
	}

	balance, err = store.Credit(ctx, "s1", 20)
	if err != nil {
		t.Fatalf("Unexpected credit error: %v", err)
	}
	if balance != 120 {
		t.Errorf("Expected balance 120, got %d", balance)
	}
}

func TestMemoryStore_BalanceDefaultsToZero(t *testing.T) {
	store := NewMemoryStore()

	balance, err := store.Balance(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Unexpected balance error: %v", err)
	}
	if balance != 0 {
		t.Errorf("Expected zero balance for unknown session, got %d", balance)
	}
}

func TestMemoryStore_Debit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Credit(ctx, "s1", 50); err != nil {
		t.Fatalf("Unexpected credit error: %v", err)
	}

	balance, err := store.Debit(ctx, "s1", 30)
	if err != nil {
		t.Fatalf("Unexpected debit error: %v", err)
	}
	if balance != 20 {
		t.Errorf("Expected balance 20, got %d", balance)
	}
}

func TestMemoryStore_DebitOverdraw(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Credit(ctx, "s1", 10); err != nil {
		t.Fatalf("Unexpected credit error: %v", err)
	}

	_, err := store.Debit(ctx, "s1", 25)
	if err == nil {
		t.Fatal("Expected overdraw to fail")
	}

	var insufficient *InsufficientDiamondsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Expected InsufficientDiamondsError, got %T", err)
	}
	if insufficient.Need != 25 || insufficient.Have != 10 {
		t.Errorf("Unexpected error details: %+v", insufficient)
	}

	// Balance unchanged after the failed debit.
	balance, _ := store.Balance(ctx, "s1")
	if balance != 10 {
		t.Errorf("Expected balance untouched at 10, got %d", balance)
	}
}

func TestMemoryStore_NegativeAmountsRejected(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Credit(ctx, "s1", -5); err == nil {
		t.Error("Expected negative credit to fail")
	}
	if _, err := store.Debit(ctx, "s1", -5); err == nil {
		t.Error("Expected negative debit to fail")
	}
}
