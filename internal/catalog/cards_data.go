package catalog

import (
	"github.com/wealthofnations/game-server-go/internal/game/resources"
)

func boost(r resources.Type, value float64) Effect {
	return Effect{Type: EffectBoostProduction, Target: ResourceTarget(r), Value: value}
}

func boostIf(r resources.Type, value float64, cond Condition) Effect {
	e := boost(r, value)
	e.Condition = &cond
	return e
}

func reduceCost(t CardType, value float64) Effect {
	return Effect{Type: EffectReduceCost, Target: CardTypeTarget(t), Value: value}
}

func multiply(target Target, value float64) Effect {
	return Effect{Type: EffectMultiplyResource, Target: target, Value: value}
}

func interact(t CardType, value float64) Effect {
	return Effect{Type: EffectCardInteraction, Target: CardTypeTarget(t), Value: value}
}

// baseSet is the complete Wealth of Nations base set: 4 leaders,
// 20 industry cards, 8 policies, and 6 events.
var baseSet = []Card{
	// Leaders
	{
		ID: "L1", Name: "Industrial Pioneer", Type: TypeLeader,
		Cost:        resources.Cost{Gold: 5, Technology: 2},
		Description: "Increases steel production by 2 per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects:     []Effect{boost(resources.Steel, 2)},
	},
	{
		ID: "L2", Name: "Trade Magnate", Type: TypeLeader,
		Cost:        resources.Cost{Gold: 6, Technology: 1},
		Description: "All trade costs reduced by 1.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{reduceCost(TypeIndustry, 1)},
	},
	{
		ID: "L3", Name: "Tech Visionary", Type: TypeLeader,
		Cost:        resources.Cost{Gold: 8, Energy: 2},
		Description: "Gain 1 extra technology per turn.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects:     []Effect{boost(resources.Technology, 1)},
	},
	{
		ID: "L4", Name: "Resource Baron", Type: TypeLeader,
		Cost:        resources.Cost{Gold: 7, Steel: 3},
		Description: "All resource production +1.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects: []Effect{
			boost(resources.Gold, 1),
			boost(resources.Steel, 1),
			boost(resources.Food, 1),
			boost(resources.Energy, 1),
		},
	},

	// Industry
	{
		ID: "I1", Name: "Steel Mill", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 3, Energy: 1},
		Description: "Produces 2 steel per turn.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{boost(resources.Steel, 2)},
	},
	{
		ID: "I2", Name: "Power Plant", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 4, Steel: 2},
		Description: "Produces 2 energy per turn.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{boost(resources.Energy, 2)},
	},
	{
		ID: "I3", Name: "Farm Complex", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 3, Energy: 1},
		Description: "Produces 2 food per turn.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{boost(resources.Food, 2)},
	},
	{
		ID: "I4", Name: "Research Lab", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 5, Energy: 2},
		Description: "Produces 1 technology per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects:     []Effect{boost(resources.Technology, 1)},
	},
	{
		ID: "I5", Name: "Gold Mine", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 4, Steel: 2},
		Description: "Produces 3 gold per turn.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects:     []Effect{boost(resources.Gold, 3)},
	},
	{
		ID: "I6", Name: "Advanced Factory", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 6, Energy: 2, Technology: 1},
		Description: "Produces 3 steel per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{boost(resources.Steel, 3)},
	},
	{
		ID: "I7", Name: "Solar Farm", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 5, Technology: 1},
		Description: "Produces 3 energy per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagScientific},
		Effects:     []Effect{boost(resources.Energy, 3)},
	},
	{
		ID: "I8", Name: "Hydroponics Bay", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 5, Technology: 1, Energy: 1},
		Description: "Produces 3 food per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagScientific},
		Effects:     []Effect{boost(resources.Food, 3)},
	},
	{
		ID: "I9", Name: "Tech Hub", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 7, Energy: 2, Technology: 1},
		Description: "Produces 2 technology per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects:     []Effect{boost(resources.Technology, 2)},
	},
	{
		ID: "I10", Name: "Automated Mine", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 6, Technology: 2},
		Description: "Produces 4 gold per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects:     []Effect{boost(resources.Gold, 4)},
	},
	{
		ID: "I11", Name: "Fusion Reactor", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 8, Technology: 3, Steel: 2},
		Description: "Produces 5 energy per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial, TagScientific},
		Effects:     []Effect{boost(resources.Energy, 5)},
	},
	{
		ID: "I12", Name: "Vertical Farm", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 7, Technology: 2, Energy: 1},
		Description: "Produces 4 food per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial, TagScientific},
		Effects:     []Effect{boost(resources.Food, 4)},
	},
	{
		ID: "I13", Name: "Quantum Lab", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 10, Energy: 3, Technology: 2},
		Description: "Produces 3 technology per turn.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects:     []Effect{boost(resources.Technology, 3)},
	},
	{
		ID: "I14", Name: "Recycling Plant", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 4, Energy: 1},
		Description: "Produces 1 of each resource per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects: []Effect{
			boost(resources.Gold, 1),
			boost(resources.Steel, 1),
			boost(resources.Food, 1),
			boost(resources.Energy, 1),
		},
	},
	{
		ID: "I15", Name: "Trade Port", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 5, Steel: 2},
		Description: "Produces 3 gold and 1 food per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects: []Effect{
			boost(resources.Gold, 3),
			boost(resources.Food, 1),
		},
	},
	{
		ID: "I16", Name: "Military Factory", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 6, Steel: 3, Energy: 1},
		Description: "Produces 4 steel per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{boost(resources.Steel, 4)},
	},
	{
		ID: "I17", Name: "Space Station", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 12, Steel: 4, Technology: 3},
		Description: "Produces 2 of each resource per turn.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects: []Effect{
			boost(resources.Gold, 2),
			boost(resources.Steel, 2),
			boost(resources.Food, 2),
			boost(resources.Energy, 2),
			boost(resources.Technology, 2),
		},
	},
	{
		ID: "I18", Name: "Nanotech Facility", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 8, Technology: 2, Energy: 2},
		Description: "Produces 2 technology and 2 steel per turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagScientific, TagIndustrial},
		Effects: []Effect{
			boost(resources.Technology, 2),
			boost(resources.Steel, 2),
		},
	},
	{
		ID: "I19", Name: "Agricultural Complex", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 5, Energy: 2},
		Description: "Produces 3 food and 1 gold per turn.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects: []Effect{
			boost(resources.Food, 3),
			boost(resources.Gold, 1),
		},
	},
	{
		ID: "I20", Name: "Resource Converter", Type: TypeIndustry,
		Cost:        resources.Cost{Gold: 7, Technology: 2},
		Description: "Convert 1 resource into 2 of another each turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects:     []Effect{interact(TypeIndustry, 2)},
	},

	// Policies
	{
		ID: "P1", Name: "Free Trade Agreement", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 3, Technology: 1},
		Description: "Reduce all trade costs by 1.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{reduceCost(TypeIndustry, 1)},
	},
	{
		ID: "P2", Name: "Research Grant", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 4},
		Description: "Technology production +1 for all buildings.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagScientific, TagPolitical},
		Effects:     []Effect{boostIf(resources.Technology, 1, Condition{RequiresType: TypeIndustry})},
	},
	{
		ID: "P3", Name: "Industrial Revolution", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 5, Technology: 2},
		Description: "All industry cards cost 1 less gold.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagIndustrial, TagPolitical},
		Effects:     []Effect{reduceCost(TypeIndustry, 1)},
	},
	{
		ID: "P4", Name: "Resource Stockpile", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 3},
		Description: "Store 50% more resources.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{multiply(ResourceTarget(resources.Gold), 1.5)},
	},
	{
		ID: "P5", Name: "Technological Edge", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 6, Technology: 2},
		Description: "All technology production doubled.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagScientific, TagPolitical},
		Effects:     []Effect{multiply(ResourceTarget(resources.Technology), 2)},
	},
	{
		ID: "P6", Name: "Economic Stimulus", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 4},
		Description: "Gold production +1 for all buildings.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{boostIf(resources.Gold, 1, Condition{RequiresType: TypeIndustry})},
	},
	{
		ID: "P7", Name: "Military Contract", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 5, Steel: 2},
		Description: "Steel production +2 for military buildings.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial, TagPolitical},
		Effects:     []Effect{boostIf(resources.Steel, 2, Condition{RequiresTag: TagMilitary})},
	},
	{
		ID: "P10", Name: "Trade Federation", Type: TypePolicy,
		Cost:        resources.Cost{Gold: 8, Technology: 2},
		Description: "Can trade resources at 1:1 ratio.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{interact(TypeIndustry, 1)},
	},

	// Events
	{
		ID: "E1", Name: "Market Boom", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 3},
		Description: "Gain 10 gold immediately.",
		Rarity:      RarityCommon,
		Tags:        []Tag{TagEconomic},
		Effects:     []Effect{boost(resources.Gold, 10)},
	},
	{
		ID: "E2", Name: "Resource Discovery", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 4},
		Description: "Gain 5 of any basic resource.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagIndustrial},
		Effects:     []Effect{interact(TypeIndustry, 5)},
	},
	{
		ID: "E3", Name: "Technological Breakthrough", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 5, Technology: 1},
		Description: "Gain 3 technology immediately.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagScientific},
		Effects:     []Effect{boost(resources.Technology, 3)},
	},
	{
		ID: "E4", Name: "Trade Summit", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 3},
		Description: "All trades this turn are free.",
		Rarity:      RarityUncommon,
		Tags:        []Tag{TagEconomic, TagPolitical},
		Effects:     []Effect{reduceCost(TypeIndustry, 999)},
	},
	{
		ID: "E5", Name: "Golden Age", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 8, Technology: 2},
		Description: "Double all production this turn.",
		Rarity:      RarityLegendary,
		Tags:        []Tag{TagIndustrial, TagEconomic},
		Effects:     []Effect{multiply(CardTypeTarget(TypeIndustry), 2)},
	},
	{
		ID: "E6", Name: "Emergency Powers", Type: TypeEvent,
		Cost:        resources.Cost{Gold: 5},
		Description: "Play an additional card this turn.",
		Rarity:      RarityRare,
		Tags:        []Tag{TagPolitical},
		Effects:     []Effect{interact(TypeIndustry, 1)},
	},
}
