package catalog

import (
	"fmt"
)

// Provider exposes the card catalog. Implementations must return the
// same ordered sequence for the lifetime of the process.
type Provider interface {
	// AllCards returns every card definition in catalog order.
	AllCards() []Card
	// Find returns the card with the given ID.
	Find(id string) (Card, bool)
}

// StaticProvider serves the built-in base set.
type StaticProvider struct {
	cards []Card
	byID  map[string]Card
}

// NewStaticProvider creates a provider over the built-in base set.
func NewStaticProvider() *StaticProvider {
	return newStaticProvider(baseSet)
}

// NewProviderFromCards creates a provider over an explicit card list,
// mostly useful in tests.
func NewProviderFromCards(cards []Card) (*StaticProvider, error) {
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if c.ID == "" {
			return nil, fmt.Errorf("card %q has no ID", c.Name)
		}
		if !c.Type.Valid() {
			return nil, fmt.Errorf("card %s has unknown type %q", c.ID, c.Type)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate card ID %s", c.ID)
		}
		seen[c.ID] = true
	}
	return newStaticProvider(cards), nil
}

func newStaticProvider(cards []Card) *StaticProvider {
	byID := make(map[string]Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}
	return &StaticProvider{cards: cards, byID: byID}
}

// AllCards returns a copy of the catalog in order.
func (p *StaticProvider) AllCards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Find returns the card with the given ID.
func (p *StaticProvider) Find(id string) (Card, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// Size returns the number of cards in the catalog.
func (p *StaticProvider) Size() int {
	return len(p.cards)
}
