package game

import (
	"testing"

	"github.com/wealthofnations/game-server-go/internal/catalog"
)

func TestPlayZones_Play(t *testing.T) {
	zones := NewPlayZones()

	zones.Play(catalog.Card{ID: "i1", Type: catalog.TypeIndustry})
	zones.Play(catalog.Card{ID: "i2", Type: catalog.TypeIndustry})
	zones.Play(catalog.Card{ID: "l1", Type: catalog.TypeLeader})

	if zones.Count(catalog.TypeIndustry) != 2 {
		t.Errorf("Expected 2 industry cards, got %d", zones.Count(catalog.TypeIndustry))
	}
	if zones.Count(catalog.TypeLeader) != 1 {
		t.Errorf("Expected 1 leader card, got %d", zones.Count(catalog.TypeLeader))
	}
	if zones.Total() != 3 {
		t.Errorf("Expected 3 cards total, got %d", zones.Total())
	}
}

func TestPlayZones_RemoveLast(t *testing.T) {
	zones := NewPlayZones()
	zones.Play(catalog.Card{ID: "i1", Type: catalog.TypeIndustry})
	zones.Play(catalog.Card{ID: "i2", Type: catalog.TypeIndustry})

	card, ok := zones.RemoveLast(catalog.TypeIndustry)
	if !ok {
		t.Fatal("Expected removal to succeed")
	}
	if card.ID != "i2" {
		t.Errorf("Expected most recent card removed, got %s", card.ID)
	}
	if zones.Count(catalog.TypeIndustry) != 1 {
		t.Errorf("Expected 1 industry card left, got %d", zones.Count(catalog.TypeIndustry))
	}
}

func TestPlayZones_RemoveLastEmpty(t *testing.T) {
	zones := NewPlayZones()

	if _, ok := zones.RemoveLast(catalog.TypePolicy); ok {
		t.Error("Expected removal from empty zone to fail")
	}
}

func TestPlayZones_Counts(t *testing.T) {
	zones := NewPlayZones()
	zones.Play(catalog.Card{ID: "e1", Type: catalog.TypeEvent})

	counts := zones.Counts()
	if counts[catalog.TypeEvent] != 1 {
		t.Errorf("Expected 1 event in counts, got %d", counts[catalog.TypeEvent])
	}
	if counts[catalog.TypeLeader] != 0 {
		t.Errorf("Expected 0 leaders in counts, got %d", counts[catalog.TypeLeader])
	}
}

func TestPlayZones_Remaining(t *testing.T) {
	zones := NewPlayZones()
	zones.Play(catalog.Card{ID: "l1", Type: catalog.TypeLeader})

	if zones.Remaining(catalog.TypeLeader) != 0 {
		t.Errorf("Expected leader zone full, remaining %d", zones.Remaining(catalog.TypeLeader))
	}
	if zones.Remaining(catalog.TypeIndustry) != 6 {
		t.Errorf("Expected 6 industry slots, got %d", zones.Remaining(catalog.TypeIndustry))
	}
}
