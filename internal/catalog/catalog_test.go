package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

func TestStaticProvider_BaseSet(t *testing.T) {
	provider := NewStaticProvider()

	assert.Equal(t, 38, provider.Size())

	counts := make(map[CardType]int)
	for _, c := range provider.AllCards() {
		counts[c.Type]++
	}
	assert.Equal(t, 4, counts[TypeLeader])
	assert.Equal(t, 20, counts[TypeIndustry])
	assert.Equal(t, 8, counts[TypePolicy])
	assert.Equal(t, 6, counts[TypeEvent])
}

func TestStaticProvider_BaseSetIsValid(t *testing.T) {
	provider := NewStaticProvider()

	seen := make(map[string]bool)
	for _, c := range provider.AllCards() {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Name)
		require.True(t, c.Type.Valid(), "card %s has invalid type %q", c.ID, c.Type)
		require.NotEmpty(t, c.Rarity, "card %s has no rarity", c.ID)
		require.False(t, seen[c.ID], "duplicate card ID %s", c.ID)
		seen[c.ID] = true
	}
}

func TestStaticProvider_Find(t *testing.T) {
	provider := NewStaticProvider()

	card, ok := provider.Find("I1")
	require.True(t, ok)
	assert.Equal(t, "Steel Mill", card.Name)
	assert.Equal(t, TypeIndustry, card.Type)
	assert.Equal(t, 3, card.Cost.Get(resources.Gold))
	assert.Equal(t, 1, card.Cost.Get(resources.Energy))

	_, ok = provider.Find("no-such-card")
	assert.False(t, ok)
}

func TestStaticProvider_AllCardsIsCopy(t *testing.T) {
	provider := NewStaticProvider()

	cards := provider.AllCards()
	cards[0].Name = "mutated"

	fresh, _ := provider.Find(cards[0].ID)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestNewProviderFromCards_RejectsDuplicates(t *testing.T) {
	_, err := NewProviderFromCards([]Card{
		{ID: "x", Name: "A", Type: TypeEvent},
		{ID: "x", Name: "B", Type: TypeEvent},
	})
	assert.Error(t, err)
}

func TestNewProviderFromCards_RejectsInvalidType(t *testing.T) {
	_, err := NewProviderFromCards([]Card{
		{ID: "x", Name: "A", Type: CardType("artifact")},
	})
	assert.Error(t, err)
}

func TestEffectEncodingRoundTrip(t *testing.T) {
	card, ok := NewStaticProvider().Find("L4")
	require.True(t, ok)
	require.NotEmpty(t, card.Effects)

	raw, err := EncodeEffects(card.Effects)
	require.NoError(t, err)

	decoded, err := decodeEffects(raw)
	require.NoError(t, err)
	require.Len(t, decoded, len(card.Effects))

	for i, e := range card.Effects {
		assert.Equal(t, e.Type, decoded[i].Type)
		assert.Equal(t, e.Target, decoded[i].Target)
		assert.Equal(t, e.Value, decoded[i].Value)
	}
}

func TestEffectEncodingKeepsConditions(t *testing.T) {
	effects := []Effect{
		{
			Type:   EffectBoostProduction,
			Target: ResourceTarget(resources.Gold),
			Value:  2,
			Condition: &Condition{
				RequiresTag:  TagIndustrial,
				MinimumCards: 3,
			},
		},
	}

	raw, err := EncodeEffects(effects)
	require.NoError(t, err)

	decoded, err := decodeEffects(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.NotNil(t, decoded[0].Condition)
	assert.Equal(t, TagIndustrial, decoded[0].Condition.RequiresTag)
	assert.Equal(t, 3, decoded[0].Condition.MinimumCards)
}
