package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wealthofnations/game-server-go/internal/game/rules"
)

func TestOptions(t *testing.T) {
	options := Options()
	require.Len(t, options, 4)

	assert.Equal(t, 100, options[0].Total())
	assert.Equal(t, 220, options[1].Total())
	assert.Equal(t, 575, options[2].Total())
	assert.Equal(t, 1200, options[3].Total())
}

func TestFindOption(t *testing.T) {
	option, ok := FindOption("diamonds_500")
	require.True(t, ok)
	assert.Equal(t, 500, option.Diamonds)
	assert.Equal(t, 75, option.Bonus)
	assert.Equal(t, 499, option.PriceCents)

	_, ok = FindOption("diamonds_9999")
	assert.False(t, ok)
}

func TestService_BuySettles(t *testing.T) {
	store := NewMemoryStore()
	bus := rules.NewEventBus()

	var settled []rules.Event
	bus.SubscribeTyped(rules.EventPurchaseSettled, func(e rules.Event) {
		settled = append(settled, e)
	})

	checker := func(string) (int, bool) { return 1, true }
	// Zero delay settles synchronously.
	svc := NewService(store, bus, zap.NewNop(), checker, 0)

	receipt, err := svc.Buy(context.Background(), "s1", "diamonds_200")
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.PurchaseID)
	assert.Equal(t, 220, receipt.Option.Total())

	balance, err := svc.Balance(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 220, balance)

	require.Len(t, settled, 1)
	assert.Equal(t, 220, settled[0].Amount)
}

func TestService_BuyUnknownOption(t *testing.T) {
	svc := NewService(NewMemoryStore(), rules.NewEventBus(), zap.NewNop(), nil, 0)

	_, err := svc.Buy(context.Background(), "s1", "diamonds_9999")
	assert.Error(t, err)
}

func TestService_BuyUnknownSession(t *testing.T) {
	checker := func(string) (int, bool) { return 0, false }
	svc := NewService(NewMemoryStore(), rules.NewEventBus(), zap.NewNop(), checker, 0)

	_, err := svc.Buy(context.Background(), "gone", "diamonds_100")
	assert.Error(t, err)
}

func TestService_StalePurchaseNotCredited(t *testing.T) {
	store := NewMemoryStore()
	bus := rules.NewEventBus()

	var stale []rules.Event
	bus.SubscribeTyped(rules.EventPurchaseStale, func(e rules.Event) {
		stale = append(stale, e)
	})

	// The session restarted between initiation and settlement: the
	// current generation no longer matches the one the purchase saw.
	checker := func(string) (int, bool) { return 2, true }
	svc := NewService(store, bus, zap.NewNop(), checker, 0)

	option, _ := FindOption("diamonds_100")
	svc.settle("s1", 1, "purchase-1", option)

	balance, err := store.Balance(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
	require.Len(t, stale, 1)
}
