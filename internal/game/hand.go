package game

import (
	"github.com/wealthofnations/game-server-go/internal/catalog"
)

// Hand is the player's ordered card hand, bounded by the configured
// maximum hand size. The bound is enforced by the draw path, not here.
type Hand struct {
	cards []catalog.Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{cards: []catalog.Card{}}
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Add appends drawn cards to the end of the hand.
func (h *Hand) Add(cards ...catalog.Card) {
	h.cards = append(h.cards, cards...)
}

// RemoveByID removes the card with the given ID and returns it along
// with the index it occupied, for a later undo reinsert.
func (h *Hand) RemoveByID(cardID string) (catalog.Card, int, bool) {
	for i, c := range h.cards {
		if c.ID == cardID {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return c, i, true
		}
	}
	return catalog.Card{}, -1, false
}

// InsertAt reinserts a card at a specific position. Used only by undo;
// an out-of-range index clamps to the nearest end.
func (h *Hand) InsertAt(card catalog.Card, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(h.cards) {
		index = len(h.cards)
	}
	h.cards = append(h.cards, catalog.Card{})
	copy(h.cards[index+1:], h.cards[index:])
	h.cards[index] = card
}

// Cards returns a copy of the hand in order.
func (h *Hand) Cards() []catalog.Card {
	out := make([]catalog.Card, len(h.cards))
	copy(out, h.cards)
	return out
}
