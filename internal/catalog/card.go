package catalog

import (
	"fmt"

	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

// CardType determines which play zone a card occupies.
type CardType string

const (
	TypeLeader   CardType = "leader"
	TypeIndustry CardType = "industry"
	TypePolicy   CardType = "policy"
	TypeEvent    CardType = "event"
)

// CardTypes returns all card types in display order.
func CardTypes() []CardType {
	return []CardType{TypeLeader, TypeIndustry, TypePolicy, TypeEvent}
}

// Valid reports whether t is a known card type.
func (t CardType) Valid() bool {
	switch t {
	case TypeLeader, TypeIndustry, TypePolicy, TypeEvent:
		return true
	}
	return false
}

// Tag is a thematic card tag from the fixed vocabulary.
type Tag string

const (
	TagIndustrial Tag = "industrial"
	TagEconomic   Tag = "economic"
	TagScientific Tag = "scientific"
	TagPolitical  Tag = "political"
	TagMilitary   Tag = "military"
)

// Rarity grades how rare a card is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// EffectType identifies the mechanic an effect declares.
type EffectType string

const (
	EffectBoostProduction  EffectType = "boost_production"
	EffectReduceCost       EffectType = "reduce_cost"
	EffectMultiplyResource EffectType = "multiply_resource"
	EffectCardInteraction  EffectType = "card_interaction"
)

// TargetKind discriminates what an effect target points at.
type TargetKind string

const (
	TargetResource TargetKind = "resource"
	TargetCardType TargetKind = "card_type"
	TargetTag      TargetKind = "tag"
)

// Target is a tagged union: exactly one of Resource, CardType, or Tag
// is meaningful, selected by Kind.
type Target struct {
	Kind     TargetKind
	Resource resources.Type
	CardType CardType
	Tag      Tag
}

// ResourceTarget builds a target pointing at a resource type.
func ResourceTarget(r resources.Type) Target {
	return Target{Kind: TargetResource, Resource: r}
}

// CardTypeTarget builds a target pointing at a card type.
func CardTypeTarget(t CardType) Target {
	return Target{Kind: TargetCardType, CardType: t}
}

// TagTarget builds a target pointing at a card tag.
func TagTarget(tag Tag) Target {
	return Target{Kind: TargetTag, Tag: tag}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetResource:
		return string(t.Resource)
	case TargetCardType:
		return string(t.CardType)
	case TargetTag:
		return string(t.Tag)
	default:
		return fmt.Sprintf("target(%s)", t.Kind)
	}
}

// Condition restricts when an effect applies. Zero-valued fields mean
// no restriction of that sort.
type Condition struct {
	RequiresTag  Tag
	RequiresType CardType
	MinimumCards int
}

// Effect is a declared card mechanic. Effects are catalog data only:
// nothing in the engine executes them today. Resolution hooks in
// through the game package's EffectResolver extension point.
type Effect struct {
	Type      EffectType
	Target    Target
	Value     float64
	Condition *Condition
}

// Card is an immutable catalog entry. Cards are never mutated after
// catalog load.
type Card struct {
	ID          string
	Name        string
	Type        CardType
	Tags        []Tag
	Cost        resources.Cost
	Description string
	Rarity      Rarity
	Effects     []Effect
}
