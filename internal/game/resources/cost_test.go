package resources

import (
	"testing"
)

func TestCost_Shortfall(t *testing.T) {
	pool := NewPool(map[Type]int{Gold: 2, Energy: 5})
	cost := CostOf(map[Type]int{Gold: 3, Energy: 1})

	kind, need, have, short := cost.Shortfall(pool)
	if !short {
		t.Fatal("Expected a shortfall")
	}
	if kind != Gold || need != 3 || have != 2 {
		t.Errorf("Expected gold 3/2 shortfall, got %s %d/%d", kind, need, have)
	}
}

func TestCost_ShortfallReportsFirstInDisplayOrder(t *testing.T) {
	pool := NewPool(nil)
	cost := CostOf(map[Type]int{Technology: 2, Steel: 1})

	kind, _, _, short := cost.Shortfall(pool)
	if !short {
		t.Fatal("Expected a shortfall")
	}
	if kind != Steel {
		t.Errorf("Expected steel reported first, got %s", kind)
	}
}

func TestCost_CanPay(t *testing.T) {
	pool := NewPool(map[Type]int{Gold: 3, Energy: 1})
	cost := CostOf(map[Type]int{Gold: 3, Energy: 1})

	if !cost.CanPay(pool) {
		t.Error("Expected exact balance to cover the cost")
	}

	pool.Add(Energy, -1)
	if cost.CanPay(pool) {
		t.Error("Expected cost to be unpayable after deduction")
	}
}

func TestCost_IsFree(t *testing.T) {
	if !(Cost{}).IsFree() {
		t.Error("Expected zero cost to be free")
	}
	if CostOf(map[Type]int{Food: 1}).IsFree() {
		t.Error("Expected non-zero cost to not be free")
	}
}

func TestCost_String(t *testing.T) {
	cost := CostOf(map[Type]int{Gold: 3, Energy: 1})
	if got := cost.String(); got != "3 gold, 1 energy" {
		t.Errorf("Unexpected cost string: %q", got)
	}
	if got := (Cost{}).String(); got != "free" {
		t.Errorf("Unexpected free cost string: %q", got)
	}
}
