package game

import (
	"testing"

	"github.com/wealthofnations/game-server-go/internal/catalog"
)

func TestHand_RemoveByID(t *testing.T) {
	hand := NewHand()
	hand.Add(
		catalog.Card{ID: "a"},
		catalog.Card{ID: "b"},
		catalog.Card{ID: "c"},
	)

	card, index, ok := hand.RemoveByID("b")
	if !ok {
		t.Fatal("Expected removal to succeed")
	}
	if card.ID != "b" || index != 1 {
		t.Errorf("Expected card b at index 1, got %s at %d", card.ID, index)
	}
	if hand.Len() != 2 {
		t.Errorf("Expected 2 cards left, got %d", hand.Len())
	}
}

func TestHand_RemoveByIDMissing(t *testing.T) {
	hand := NewHand()
	hand.Add(catalog.Card{ID: "a"})

	if _, _, ok := hand.RemoveByID("z"); ok {
		t.Error("Expected removal of missing card to fail")
	}
	if hand.Len() != 1 {
		t.Errorf("Expected hand untouched, got %d cards", hand.Len())
	}
}

func TestHand_InsertAtRestoresPosition(t *testing.T) {
	hand := NewHand()
	hand.Add(
		catalog.Card{ID: "a"},
		catalog.Card{ID: "b"},
		catalog.Card{ID: "c"},
	)

	card, index, _ := hand.RemoveByID("b")
	hand.InsertAt(card, index)

	cards := hand.Cards()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if cards[i].ID != id {
			t.Errorf("Expected %s at index %d, got %s", id, i, cards[i].ID)
		}
	}
}

func TestHand_InsertAtClampsIndex(t *testing.T) {
	hand := NewHand()
	hand.Add(catalog.Card{ID: "a"})

	hand.InsertAt(catalog.Card{ID: "z"}, 99)
	cards := hand.Cards()
	if cards[len(cards)-1].ID != "z" {
		t.Error("Expected out-of-range insert to clamp to the end")
	}

	hand.InsertAt(catalog.Card{ID: "y"}, -5)
	if hand.Cards()[0].ID != "y" {
		t.Error("Expected negative insert to clamp to the front")
	}
}

func TestHand_CardsIsCopy(t *testing.T) {
	hand := NewHand()
	hand.Add(catalog.Card{ID: "a"})

	cards := hand.Cards()
	cards[0].ID = "mutated"

	if hand.Cards()[0].ID != "a" {
		t.Error("Expected Cards to return a copy")
	}
}
