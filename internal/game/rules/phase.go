package rules

import (
	"fmt"
)

// Phase represents the phases of a Wealth of Nations turn.
type Phase int

const (
	PhaseAction Phase = iota
	PhaseTrade
	PhaseProduction
)

var phaseNames = map[Phase]string{
	PhaseAction:     "ACTION",
	PhaseTrade:      "TRADE",
	PhaseProduction: "PRODUCTION",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// phaseCycle is the fixed turn structure. Ending the production phase
// wraps around to the action phase of the next turn.
var phaseCycle = []Phase{PhaseAction, PhaseTrade, PhaseProduction}

// TurnManager tracks the current phase, turn number, and per-turn play
// count. It knows nothing about cards or resources; the engine drives
// the side effects of each transition.
type TurnManager struct {
	orderIndex      int
	turnNumber      int
	cardsPlayed     int
	maxCardsPerTurn int
}

// NewTurnManager creates a turn manager at turn 1, action phase.
func NewTurnManager(maxCardsPerTurn int) *TurnManager {
	return &TurnManager{
		orderIndex:      0,
		turnNumber:      1,
		maxCardsPerTurn: maxCardsPerTurn,
	}
}

// CurrentPhase returns the phase currently in progress.
func (tm *TurnManager) CurrentPhase() Phase {
	return phaseCycle[tm.orderIndex]
}

// TurnNumber returns the current turn number (1-based).
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// CardsPlayed returns how many cards were played this turn.
func (tm *TurnManager) CardsPlayed() int {
	return tm.cardsPlayed
}

// MaxCardsPerTurn returns the per-turn play limit.
func (tm *TurnManager) MaxCardsPerTurn() int {
	return tm.maxCardsPerTurn
}

// CanPlay reports whether a card play is legal right now. Plays are
// legal only during the action phase and below the per-turn limit.
func (tm *TurnManager) CanPlay() *GameError {
	if tm.CurrentPhase() != PhaseAction {
		return NewGameError(ErrInvalidMove,
			fmt.Sprintf("cards can only be played during the action phase, current phase is %s", tm.CurrentPhase()))
	}
	if tm.cardsPlayed >= tm.maxCardsPerTurn {
		return NewGameError(ErrInvalidMove,
			fmt.Sprintf("can only play %d cards per turn", tm.maxCardsPerTurn))
	}
	return nil
}

// RecordPlay increments the per-turn play counter.
func (tm *TurnManager) RecordPlay() {
	tm.cardsPlayed++
}

// UnrecordPlay decrements the per-turn play counter, used by undo.
func (tm *TurnManager) UnrecordPlay() {
	if tm.cardsPlayed > 0 {
		tm.cardsPlayed--
	}
}

// Advance moves to the next phase in the cycle. When the production
// phase ends, the turn number is incremented, the play counter resets,
// and newTurn is true.
func (tm *TurnManager) Advance() (phase Phase, newTurn bool) {
	tm.orderIndex++
	if tm.orderIndex >= len(phaseCycle) {
		tm.orderIndex = 0
		tm.turnNumber++
		tm.cardsPlayed = 0
		newTurn = true
	}
	return tm.CurrentPhase(), newTurn
}
