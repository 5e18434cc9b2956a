package rules

import (
	"fmt"

	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

// ErrorKind classifies a rejected intent.
type ErrorKind string

const (
	ErrResource      ErrorKind = "resource"
	ErrCapacity      ErrorKind = "capacity"
	ErrInvalidMove   ErrorKind = "invalid_move"
	ErrDeckExhausted ErrorKind = "deck_exhausted"
	ErrHandFull      ErrorKind = "hand_full"
	ErrNothingToUndo ErrorKind = "nothing_to_undo"
)

// GameError is a structured, recoverable rejection. The state machine
// is always left untouched when one is returned.
type GameError struct {
	Kind    ErrorKind
	Message string
}

// NewGameError creates a game error with the given kind and message.
func NewGameError(kind ErrorKind, message string) *GameError {
	return &GameError{Kind: kind, Message: message}
}

func (e *GameError) Error() string {
	return e.Message
}

// ZoneLimits fixes the capacity of each play zone.
var ZoneLimits = map[catalog.CardType]int{
	catalog.TypeLeader:   1,
	catalog.TypeIndustry: 6,
	catalog.TypePolicy:   3,
	catalog.TypeEvent:    4,
}

// ZoneLimit returns the capacity for a card type.
func ZoneLimit(t catalog.CardType) int {
	return ZoneLimits[t]
}

// ValidatePlay decides whether a card may legally be played given the
// current balances and zone occupancy. Checks short-circuit in a fixed
// order: resource shortfall first, then zone capacity. Phase and
// play-limit checks happen at the engine call site before any mutation,
// so a resource error always outranks a capacity error for the same
// card. Returns nil when the play is legal.
func ValidatePlay(card catalog.Card, balances *resources.Pool, zoneCounts map[catalog.CardType]int) *GameError {
	if err := validateResources(card.Cost, balances); err != nil {
		return err
	}
	if err := validateZoneCapacity(card.Type, zoneCounts); err != nil {
		return err
	}
	return nil
}

func validateResources(cost resources.Cost, balances *resources.Pool) *GameError {
	if kind, need, have, short := cost.Shortfall(balances); short {
		return NewGameError(ErrResource,
			fmt.Sprintf("Not enough %s. Need %d but only have %d.", kind, need, have))
	}
	return nil
}

func validateZoneCapacity(cardType catalog.CardType, zoneCounts map[catalog.CardType]int) *GameError {
	limit := ZoneLimit(cardType)
	if zoneCounts[cardType] >= limit {
		return NewGameError(ErrCapacity,
			fmt.Sprintf("%s zone is full. Maximum of %d cards allowed.", cardType, limit))
	}
	return nil
}
