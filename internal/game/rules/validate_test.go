package rules

import (
	"testing"

	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

func industryCard(cost map[resources.Type]int) catalog.Card {
	return catalog.Card{
		ID:   "test-industry",
		Name: "Test Factory",
		Type: catalog.TypeIndustry,
		Cost: resources.CostOf(cost),
	}
}

func emptyCounts() map[catalog.CardType]int {
	return map[catalog.CardType]int{}
}

func TestValidatePlay_Legal(t *testing.T) {
	balances := resources.NewPool(map[resources.Type]int{resources.Gold: 10})
	card := industryCard(map[resources.Type]int{resources.Gold: 3})

	if err := ValidatePlay(card, balances, emptyCounts()); err != nil {
		t.Errorf("Expected legal play, got %v", err)
	}
}

func TestValidatePlay_ResourceShortfall(t *testing.T) {
	balances := resources.NewPool(map[resources.Type]int{resources.Gold: 2})
	card := industryCard(map[resources.Type]int{resources.Gold: 3})

	err := ValidatePlay(card, balances, emptyCounts())
	if err == nil {
		t.Fatal("Expected resource rejection")
	}
	if err.Kind != ErrResource {
		t.Errorf("Expected resource kind, got %s", err.Kind)
	}
	if err.Message != "Not enough gold. Need 3 but only have 2." {
		t.Errorf("Unexpected message: %q", err.Message)
	}
}

func TestValidatePlay_ZoneFull(t *testing.T) {
	balances := resources.NewPool(map[resources.Type]int{resources.Gold: 100})
	card := industryCard(map[resources.Type]int{resources.Gold: 3})
	counts := map[catalog.CardType]int{catalog.TypeIndustry: 6}

	err := ValidatePlay(card, balances, counts)
	if err == nil {
		t.Fatal("Expected capacity rejection")
	}
	if err.Kind != ErrCapacity {
		t.Errorf("Expected capacity kind, got %s", err.Kind)
	}
	if err.Message != "industry zone is full. Maximum of 6 cards allowed." {
		t.Errorf("Unexpected message: %q", err.Message)
	}
}

func TestValidatePlay_ResourceCheckedBeforeCapacity(t *testing.T) {
	// Both checks would fail; the resource error must win.
	balances := resources.NewPool(nil)
	card := industryCard(map[resources.Type]int{resources.Gold: 3})
	counts := map[catalog.CardType]int{catalog.TypeIndustry: 6}

	err := ValidatePlay(card, balances, counts)
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if err.Kind != ErrResource {
		t.Errorf("Expected resource error to outrank capacity, got %s", err.Kind)
	}
}

func TestValidatePlay_FreeCardOnlyNeedsZoneSpace(t *testing.T) {
	balances := resources.NewPool(nil)
	card := catalog.Card{ID: "free", Name: "Free Event", Type: catalog.TypeEvent}

	if err := ValidatePlay(card, balances, emptyCounts()); err != nil {
		t.Errorf("Expected free card playable with empty balances, got %v", err)
	}
}

func TestZoneLimits(t *testing.T) {
	cases := map[catalog.CardType]int{
		catalog.TypeLeader:   1,
		catalog.TypeIndustry: 6,
		catalog.TypePolicy:   3,
		catalog.TypeEvent:    4,
	}
	for cardType, want := range cases {
		if got := ZoneLimit(cardType); got != want {
			t.Errorf("Expected %s limit %d, got %d", cardType, want, got)
		}
	}
}
