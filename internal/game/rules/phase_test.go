package rules

import (
	"testing"
)

func TestTurnManager_PhaseCycle(t *testing.T) {
	tm := NewTurnManager(3)

	if tm.CurrentPhase() != PhaseAction {
		t.Errorf("Expected action phase at start, got %s", tm.CurrentPhase())
	}
	if tm.TurnNumber() != 1 {
		t.Errorf("Expected turn 1 at start, got %d", tm.TurnNumber())
	}

	phase, newTurn := tm.Advance()
	if phase != PhaseTrade || newTurn {
		t.Errorf("Expected trade phase same turn, got %s newTurn=%v", phase, newTurn)
	}

	phase, newTurn = tm.Advance()
	if phase != PhaseProduction || newTurn {
		t.Errorf("Expected production phase same turn, got %s newTurn=%v", phase, newTurn)
	}

	phase, newTurn = tm.Advance()
	if phase != PhaseAction || !newTurn {
		t.Errorf("Expected wrap to action phase of new turn, got %s newTurn=%v", phase, newTurn)
	}
	if tm.TurnNumber() != 2 {
		t.Errorf("Expected turn 2 after wrap, got %d", tm.TurnNumber())
	}
}

func TestTurnManager_PlayLimit(t *testing.T) {
	tm := NewTurnManager(3)

	for i := 0; i < 3; i++ {
		if err := tm.CanPlay(); err != nil {
			t.Fatalf("Expected play %d to be legal: %v", i+1, err)
		}
		tm.RecordPlay()
	}

	err := tm.CanPlay()
	if err == nil {
		t.Fatal("Expected fourth play to be rejected")
	}
	if err.Kind != ErrInvalidMove {
		t.Errorf("Expected invalid_move kind, got %s", err.Kind)
	}
}

func TestTurnManager_PlayLimitResetsOnNewTurn(t *testing.T) {
	tm := NewTurnManager(3)

	tm.RecordPlay()
	tm.RecordPlay()
	tm.RecordPlay()

	tm.Advance() // trade
	tm.Advance() // production
	tm.Advance() // action, new turn

	if tm.CardsPlayed() != 0 {
		t.Errorf("Expected play counter reset on new turn, got %d", tm.CardsPlayed())
	}
	if err := tm.CanPlay(); err != nil {
		t.Errorf("Expected play legal on new turn: %v", err)
	}
}

func TestTurnManager_NoPlaysOutsideActionPhase(t *testing.T) {
	tm := NewTurnManager(3)
	tm.Advance() // trade

	if err := tm.CanPlay(); err == nil {
		t.Error("Expected play rejected during trade phase")
	}

	tm.Advance() // production
	if err := tm.CanPlay(); err == nil {
		t.Error("Expected play rejected during production phase")
	}
}

func TestTurnManager_UnrecordPlay(t *testing.T) {
	tm := NewTurnManager(3)

	tm.RecordPlay()
	tm.UnrecordPlay()
	if tm.CardsPlayed() != 0 {
		t.Errorf("Expected 0 plays after unrecord, got %d", tm.CardsPlayed())
	}

	// Never goes negative.
	tm.UnrecordPlay()
	if tm.CardsPlayed() != 0 {
		t.Errorf("Expected counter floored at 0, got %d", tm.CardsPlayed())
	}
}

func TestPhase_String(t *testing.T) {
	cases := map[Phase]string{
		PhaseAction:     "ACTION",
		PhaseTrade:      "TRADE",
		PhaseProduction: "PRODUCTION",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}
