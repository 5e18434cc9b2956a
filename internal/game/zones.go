package game

import (
	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/game/rules"
)

// PlayZones holds the cards committed to each of the four typed zones.
// Capacity checks belong to the validation layer; Play assumes the
// caller already validated.
type PlayZones struct {
	zones map[catalog.CardType][]catalog.Card
}

// NewPlayZones creates empty play zones.
func NewPlayZones() *PlayZones {
	zones := make(map[catalog.CardType][]catalog.Card, len(catalog.CardTypes()))
	for _, t := range catalog.CardTypes() {
		zones[t] = []catalog.Card{}
	}
	return &PlayZones{zones: zones}
}

// Play appends the card to the zone keyed by its type.
func (pz *PlayZones) Play(card catalog.Card) {
	pz.zones[card.Type] = append(pz.zones[card.Type], card)
}

// RemoveLast removes the most recently appended card from the given
// zone. Only ever called symmetrically with the hand's undo insert.
func (pz *PlayZones) RemoveLast(cardType catalog.CardType) (catalog.Card, bool) {
	zone := pz.zones[cardType]
	if len(zone) == 0 {
		return catalog.Card{}, false
	}
	card := zone[len(zone)-1]
	pz.zones[cardType] = zone[:len(zone)-1]
	return card, true
}

// Count returns the occupancy of one zone.
func (pz *PlayZones) Count(cardType catalog.CardType) int {
	return len(pz.zones[cardType])
}

// Counts returns the occupancy of every zone, in the shape the
// validation engine consumes.
func (pz *PlayZones) Counts() map[catalog.CardType]int {
	counts := make(map[catalog.CardType]int, len(pz.zones))
	for t, cards := range pz.zones {
		counts[t] = len(cards)
	}
	return counts
}

// Total returns the number of cards across all zones.
func (pz *PlayZones) Total() int {
	total := 0
	for _, cards := range pz.zones {
		total += len(cards)
	}
	return total
}

// Cards returns a copy of one zone's ordered card sequence.
func (pz *PlayZones) Cards(cardType catalog.CardType) []catalog.Card {
	zone := pz.zones[cardType]
	out := make([]catalog.Card, len(zone))
	copy(out, zone)
	return out
}

// Remaining returns how many more cards the zone can take.
func (pz *PlayZones) Remaining(cardType catalog.CardType) int {
	return rules.ZoneLimit(cardType) - len(pz.zones[cardType])
}
