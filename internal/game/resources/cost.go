package resources

import (
	"fmt"
	"strings"
)

// Cost represents the price of playing a card. A zero field means the
// resource is not part of the cost.
type Cost struct {
	Gold       int
	Steel      int
	Food       int
	Energy     int
	Technology int
}

// CostOf builds a Cost from a partial map. Unknown keys are ignored.
func CostOf(amounts map[Type]int) Cost {
	var c Cost
	for kind, amount := range amounts {
		switch kind {
		case Gold:
			c.Gold = amount
		case Steel:
			c.Steel = amount
		case Food:
			c.Food = amount
		case Energy:
			c.Energy = amount
		case Technology:
			c.Technology = amount
		}
	}
	return c
}

// Get returns the cost amount for a resource type.
func (c Cost) Get(kind Type) int {
	switch kind {
	case Gold:
		return c.Gold
	case Steel:
		return c.Steel
	case Food:
		return c.Food
	case Energy:
		return c.Energy
	case Technology:
		return c.Technology
	default:
		return 0
	}
}

// IsFree reports whether the cost demands no resources at all.
func (c Cost) IsFree() bool {
	return c.Gold == 0 && c.Steel == 0 && c.Food == 0 && c.Energy == 0 && c.Technology == 0
}

// Shortfall returns the first resource type (in display order) for
// which the pool cannot cover the cost, along with the needed and held
// amounts. ok is false when every requirement is met.
func (c Cost) Shortfall(pool *Pool) (kind Type, need, have int, ok bool) {
	for _, k := range Kinds() {
		required := c.Get(k)
		if required <= 0 {
			continue
		}
		held := pool.Get(k)
		if held < required {
			return k, required, held, true
		}
	}
	return "", 0, 0, false
}

// CanPay checks whether the pool covers every component of the cost.
func (c Cost) CanPay(pool *Pool) bool {
	_, _, _, short := c.Shortfall(pool)
	return !short
}

// String renders the cost like "3 gold, 1 energy".
func (c Cost) String() string {
	parts := make([]string, 0, 5)
	for _, k := range Kinds() {
		if amount := c.Get(k); amount > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", amount, k))
		}
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ", ")
}
