package resources

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	TxProduction TransactionKind = "production"
	TxCost       TransactionKind = "cost"
	TxTrade      TransactionKind = "trade"
	TxEffect     TransactionKind = "effect"
)

// Transaction is an immutable record of a single resource delta. The
// history exists for observability only and is never consulted by game
// logic.
type Transaction struct {
	ID        string
	Resource  Type
	Amount    int
	Kind      TransactionKind
	Timestamp time.Time
}

// InsufficientError reports a spend that could not be covered.
type InsufficientError struct {
	Resource Type
	Need     int
	Have     int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("not enough %s: need %d but only have %d", e.Resource, e.Need, e.Have)
}

// Ledger tracks current balances, per-turn production rates, and a
// bounded most-recent-first transaction history.
type Ledger struct {
	mu sync.Mutex

	balances *Pool
	rates    *Pool

	history      []Transaction
	historyLimit int
}

// NewLedger creates a ledger with the given starting balances and
// production rates. historyLimit caps the retained transaction records.
func NewLedger(balances, rates map[Type]int, historyLimit int) *Ledger {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &Ledger{
		balances:     NewPool(balances),
		rates:        NewPool(rates),
		history:      make([]Transaction, 0, historyLimit),
		historyLimit: historyLimit,
	}
}

// Balances returns a snapshot of the current balances.
func (l *Ledger) Balances() map[Type]int {
	return l.balances.Snapshot()
}

// Rates returns a snapshot of the per-turn production rates.
func (l *Ledger) Rates() map[Type]int {
	return l.rates.Snapshot()
}

// Balance returns the current amount of one resource type.
func (l *Ledger) Balance(kind Type) int {
	return l.balances.Get(kind)
}

// BalancePool exposes the balance pool for read-only checks such as
// play validation. Callers must not mutate it directly.
func (l *Ledger) BalancePool() *Pool {
	return l.balances
}

// ApplyProduction adds the given production rates to the balances and
// records one production transaction per resource type, zero-valued
// rates included. Passing nil applies the ledger's own rates.
func (l *Ledger) ApplyProduction(rates map[Type]int) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rates == nil {
		rates = l.rates.Snapshot()
	}

	applied := make([]Transaction, 0, len(Kinds()))
	for _, kind := range Kinds() {
		amount := rates[kind]
		l.balances.Add(kind, amount)
		applied = append(applied, l.record(kind, amount, TxProduction))
	}
	return applied
}

// Spend deducts the cost from the balances. The deduction is
// all-or-nothing: when any component cannot be covered the balances are
// left untouched and an InsufficientError is returned.
func (l *Ledger) Spend(cost Cost) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if kind, need, have, short := cost.Shortfall(l.balances); short {
		return &InsufficientError{Resource: kind, Need: need, Have: have}
	}

	for _, kind := range Kinds() {
		amount := cost.Get(kind)
		if amount <= 0 {
			continue
		}
		l.balances.Add(kind, -amount)
		l.record(kind, -amount, TxCost)
	}
	return nil
}

// Refund credits the cost back to the balances, recording positive cost
// transactions. Used only when the undo refund policy is enabled.
func (l *Ledger) Refund(cost Cost) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, kind := range Kinds() {
		amount := cost.Get(kind)
		if amount <= 0 {
			continue
		}
		l.balances.Add(kind, amount)
		l.record(kind, amount, TxCost)
	}
}

// History returns the retained transactions, most recent first.
func (l *Ledger) History() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Transaction, len(l.history))
	copy(out, l.history)
	return out
}

// record prepends a transaction and truncates to the history limit.
// Caller must hold l.mu.
func (l *Ledger) record(kind Type, amount int, txKind TransactionKind) Transaction {
	tx := Transaction{
		ID:        uuid.NewString(),
		Resource:  kind,
		Amount:    amount,
		Kind:      txKind,
		Timestamp: time.Now(),
	}
	l.history = append([]Transaction{tx}, l.history...)
	if len(l.history) > l.historyLimit {
		l.history = l.history[:l.historyLimit]
	}
	return tx
}
