package resources

import (
	"sync"
)

// Type represents one of the five national resources.
type Type string

const (
	Gold       Type = "gold"
	Steel      Type = "steel"
	Food       Type = "food"
	Energy     Type = "energy"
	Technology Type = "technology"
)

// Kinds returns all resource types in display order.
func Kinds() []Type {
	return []Type{Gold, Steel, Food, Energy, Technology}
}

// Valid reports whether t is one of the five known resource types.
func (t Type) Valid() bool {
	switch t {
	case Gold, Steel, Food, Energy, Technology:
		return true
	}
	return false
}

// Pool holds an amount of each resource type. It is used both for
// current balances and for per-turn production rates.
type Pool struct {
	mu sync.RWMutex

	Gold       int
	Steel      int
	Food       int
	Energy     int
	Technology int
}

// NewPool creates a pool seeded from the given amounts. Unknown keys
// are ignored; missing keys start at zero.
func NewPool(amounts map[Type]int) *Pool {
	p := &Pool{}
	for kind, amount := range amounts {
		p.set(kind, amount)
	}
	return p
}

func (p *Pool) set(kind Type, amount int) {
	switch kind {
	case Gold:
		p.Gold = amount
	case Steel:
		p.Steel = amount
	case Food:
		p.Food = amount
	case Energy:
		p.Energy = amount
	case Technology:
		p.Technology = amount
	}
}

// Get returns the current amount of a resource type.
func (p *Pool) Get(kind Type) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch kind {
	case Gold:
		return p.Gold
	case Steel:
		return p.Steel
	case Food:
		return p.Food
	case Energy:
		return p.Energy
	case Technology:
		return p.Technology
	default:
		return 0
	}
}

// Add adds amount to a resource type. Negative amounts subtract; the
// caller is responsible for not driving a balance below zero.
func (p *Pool) Add(kind Type, amount int) {
	if amount == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	switch kind {
	case Gold:
		p.Gold += amount
	case Steel:
		p.Steel += amount
	case Food:
		p.Food += amount
	case Energy:
		p.Energy += amount
	case Technology:
		p.Technology += amount
	}
}

// Total returns the sum across all resource types.
func (p *Pool) Total() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Gold + p.Steel + p.Food + p.Energy + p.Technology
}

// Snapshot returns the pool contents as a map keyed by resource type.
func (p *Pool) Snapshot() map[Type]int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return map[Type]int{
		Gold:       p.Gold,
		Steel:      p.Steel,
		Food:       p.Food,
		Energy:     p.Energy,
		Technology: p.Technology,
	}
}

// Copy creates a deep copy of the pool.
func (p *Pool) Copy() *Pool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &Pool{
		Gold:       p.Gold,
		Steel:      p.Steel,
		Food:       p.Food,
		Energy:     p.Energy,
		Technology: p.Technology,
	}
}
