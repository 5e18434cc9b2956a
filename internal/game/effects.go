package game

import (
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

// EffectResolver is the extension point for executing declared card
// effects. It consumes the current play zones and the base production
// rates and returns the adjusted rates the production phase should
// apply. Card effects are declarative catalog data today; the default
// resolver applies none of them, matching the observed behavior.
type EffectResolver interface {
	AdjustedRates(zones *PlayZones, base map[resources.Type]int) map[resources.Type]int
}

// NoopResolver returns the base production rates untouched.
type NoopResolver struct{}

// AdjustedRates implements EffectResolver.
func (NoopResolver) AdjustedRates(_ *PlayZones, base map[resources.Type]int) map[resources.Type]int {
	return base
}
