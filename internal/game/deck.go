package game

import (
	"math/rand"

	"github.com/wealthofnations/game-server-go/internal/catalog"
)

// Shuffle returns a uniformly random permutation of cards using the
// Fisher-Yates walk from the last index down to 1. The input slice is
// not modified. Deterministic for a seeded rng.
func Shuffle(cards []catalog.Card, rng *rand.Rand) []catalog.Card {
	shuffled := make([]catalog.Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deck is an ordered pile of cards. It shrinks as cards are drawn and
// never replenishes.
type Deck struct {
	cards []catalog.Card
}

// NewDeck builds a deck from an already ordered card sequence.
func NewDeck(cards []catalog.Card) *Deck {
	d := &Deck{cards: make([]catalog.Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewShuffledDeck builds a deck as a shuffled copy of the catalog.
func NewShuffledDeck(cards []catalog.Card, rng *rand.Rand) *Deck {
	return &Deck{cards: Shuffle(cards, rng)}
}

// Remaining returns how many cards are left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// DrawResult reports the outcome of a draw request.
type DrawResult struct {
	Drawn     []catalog.Card
	Requested int
	// Shortfall is how many requested cards could not be drawn.
	Shortfall int
	// DeckEmpty is set when the deck held no cards before the draw.
	DeckEmpty bool
	// HandFull is set when hand capacity truncated the request,
	// whether the draw was partial or drew nothing at all.
	HandFull bool
	// LowDeck is set when the remaining deck is at or below the
	// warning threshold. Observability only, non-fatal.
	LowDeck bool
}

// Draw removes up to requested cards from the front of the deck,
// honoring the hand capacity: min(requested, maxHandSize-handSize,
// remaining). An empty deck draws nothing and flags DeckEmpty; any
// request truncated by hand capacity flags HandFull, including a full
// hand drawing nothing.
func (d *Deck) Draw(requested, handSize, maxHandSize, lowThreshold int) DrawResult {
	res := DrawResult{Requested: requested}

	if len(d.cards) == 0 {
		res.DeckEmpty = true
		res.Shortfall = requested
		return res
	}

	available := maxHandSize - handSize
	if available <= 0 {
		res.HandFull = true
		res.Shortfall = requested
		return res
	}

	count := requested
	if count > available {
		count = available
		res.HandFull = true
	}
	if count > len(d.cards) {
		count = len(d.cards)
	}

	res.Drawn = make([]catalog.Card, count)
	copy(res.Drawn, d.cards[:count])
	d.cards = d.cards[count:]

	res.Shortfall = requested - count
	res.LowDeck = len(d.cards) <= lowThreshold
	return res
}
