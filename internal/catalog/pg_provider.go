package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

// effectRecord is the JSON shape effects are stored in. The tagged
// union target flattens to a kind plus a single value column.
type effectRecord struct {
	Type        string   `json:"type"`
	TargetKind  string   `json:"target_kind"`
	TargetValue string   `json:"target_value"`
	Value       float64  `json:"value"`
	Condition   *struct {
		RequiresTag  string `json:"requires_tag,omitempty"`
		RequiresType string `json:"requires_type,omitempty"`
		MinimumCards int    `json:"minimum_cards,omitempty"`
	} `json:"condition,omitempty"`
}

// LoadFromDB reads the full catalog from the cards table and returns a
// static provider over it. The query runs once at startup; the catalog
// is immutable afterwards.
func LoadFromDB(ctx context.Context, pool *pgxpool.Pool) (*StaticProvider, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, name, card_type, tags, description, rarity,
		       cost_gold, cost_steel, cost_food, cost_energy, cost_technology,
		       effects
		FROM cards
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var (
			c          Card
			cardType   string
			tags       []string
			rarity     string
			effectsRaw []byte
		)
		err := rows.Scan(
			&c.ID, &c.Name, &cardType, &tags, &c.Description, &rarity,
			&c.Cost.Gold, &c.Cost.Steel, &c.Cost.Food, &c.Cost.Energy, &c.Cost.Technology,
			&effectsRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}

		c.Type = CardType(cardType)
		c.Rarity = Rarity(rarity)
		for _, tag := range tags {
			c.Tags = append(c.Tags, Tag(tag))
		}

		if len(effectsRaw) > 0 {
			effects, err := decodeEffects(effectsRaw)
			if err != nil {
				return nil, fmt.Errorf("card %s: %w", c.ID, err)
			}
			c.Effects = effects
		}

		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}

	return NewProviderFromCards(cards)
}

func decodeEffects(raw []byte) ([]Effect, error) {
	var records []effectRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode effects: %w", err)
	}

	effects := make([]Effect, 0, len(records))
	for _, r := range records {
		e := Effect{Type: EffectType(r.Type), Value: r.Value}

		switch TargetKind(r.TargetKind) {
		case TargetResource:
			e.Target = ResourceTarget(resources.Type(r.TargetValue))
		case TargetCardType:
			e.Target = CardTypeTarget(CardType(r.TargetValue))
		case TargetTag:
			e.Target = TagTarget(Tag(r.TargetValue))
		default:
			return nil, fmt.Errorf("unknown effect target kind %q", r.TargetKind)
		}

		if r.Condition != nil {
			e.Condition = &Condition{
				RequiresTag:  Tag(r.Condition.RequiresTag),
				RequiresType: CardType(r.Condition.RequiresType),
				MinimumCards: r.Condition.MinimumCards,
			}
		}

		effects = append(effects, e)
	}
	return effects, nil
}

// EncodeEffects serializes effects to the stored JSON shape. Used by
// the catalog seeding tool.
func EncodeEffects(effects []Effect) ([]byte, error) {
	records := make([]effectRecord, 0, len(effects))
	for _, e := range effects {
		r := effectRecord{
			Type:       string(e.Type),
			TargetKind: string(e.Target.Kind),
			Value:      e.Value,
		}
		switch e.Target.Kind {
		case TargetResource:
			r.TargetValue = string(e.Target.Resource)
		case TargetCardType:
			r.TargetValue = string(e.Target.CardType)
		case TargetTag:
			r.TargetValue = string(e.Target.Tag)
		}
		if e.Condition != nil {
			r.Condition = &struct {
				RequiresTag  string `json:"requires_tag,omitempty"`
				RequiresType string `json:"requires_type,omitempty"`
				MinimumCards int    `json:"minimum_cards,omitempty"`
			}{
				RequiresTag:  string(e.Condition.RequiresTag),
				RequiresType: string(e.Condition.RequiresType),
				MinimumCards: e.Condition.MinimumCards,
			}
		}
		records = append(records, r)
	}
	return json.Marshal(records)
}
