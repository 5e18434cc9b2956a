package game

import (
	"time"

	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

// Snapshot is a point-in-time, read-only view of a session, shaped for
// JSON serialization over the gateway.
type Snapshot struct {
	SessionID       string                          `json:"session_id"`
	Turn            int                             `json:"turn"`
	Phase           string                          `json:"phase"`
	CardsPlayed     int                             `json:"cards_played"`
	MaxCardsPerTurn int                             `json:"max_cards_per_turn"`
	Resources       map[resources.Type]int          `json:"resources"`
	Rates           map[resources.Type]int          `json:"production_rates"`
	Hand            []CardView                      `json:"hand"`
	DeckCount       int                             `json:"deck_count"`
	Zones           map[catalog.CardType][]CardView `json:"zones"`
	CanUndo         bool                            `json:"can_undo"`
	History         []TransactionView               `json:"history"`
}

// CardView is the serializable projection of a catalog card.
type CardView struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Type        catalog.CardType       `json:"type"`
	Tags        []catalog.Tag          `json:"tags,omitempty"`
	Cost        map[resources.Type]int `json:"cost"`
	Description string                 `json:"description"`
	Rarity      catalog.Rarity         `json:"rarity"`
}

// TransactionView is the serializable projection of a ledger entry.
type TransactionView struct {
	ID        string                    `json:"id"`
	Resource  resources.Type            `json:"resource"`
	Amount    int                       `json:"amount"`
	Kind      resources.TransactionKind `json:"kind"`
	Timestamp time.Time                 `json:"timestamp"`
}

// snapshotLocked builds a snapshot of the session. Caller must hold
// e.mu.
func (e *Engine) snapshotLocked(sess *session) *Snapshot {
	zones := make(map[catalog.CardType][]CardView, len(catalog.CardTypes()))
	for _, t := range catalog.CardTypes() {
		zones[t] = cardViews(sess.zones.Cards(t))
	}

	history := sess.ledger.History()
	historyViews := make([]TransactionView, len(history))
	for i, tx := range history {
		historyViews[i] = TransactionView{
			ID:        tx.ID,
			Resource:  tx.Resource,
			Amount:    tx.Amount,
			Kind:      tx.Kind,
			Timestamp: tx.Timestamp,
		}
	}

	return &Snapshot{
		SessionID:       sess.id,
		Turn:            sess.turn.TurnNumber(),
		Phase:           sess.turn.CurrentPhase().String(),
		CardsPlayed:     sess.turn.CardsPlayed(),
		MaxCardsPerTurn: sess.turn.MaxCardsPerTurn(),
		Resources:       sess.ledger.Balances(),
		Rates:           sess.ledger.Rates(),
		Hand:            cardViews(sess.hand.Cards()),
		DeckCount:       sess.deck.Remaining(),
		Zones:           zones,
		CanUndo:         sess.undo != nil,
		History:         historyViews,
	}
}

func cardViews(cards []catalog.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = NewCardView(c)
	}
	return views
}

// NewCardView projects a catalog card for serialization. Zero cost
// components are omitted.
func NewCardView(c catalog.Card) CardView {
	cost := make(map[resources.Type]int)
	for _, kind := range resources.Kinds() {
		if amount := c.Cost.Get(kind); amount > 0 {
			cost[kind] = amount
		}
	}
	return CardView{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Tags:        c.Tags,
		Cost:        cost,
		Description: c.Description,
		Rarity:      c.Rarity,
	}
}
