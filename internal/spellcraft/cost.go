// Package spellcraft prices Vagabond spell configurations and decides whether
// an actor can afford to cast them. Everything here is pure and deterministic.
package spellcraft

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
)

// CalculateCost derives the mana cost of a spell configuration. The first
// damage die is free, the effect only costs when it rides on damage, and the
// actor's reductions are applied to the delivery base and then to the total.
func CalculateCost(
	def *vagabond.SpellDefinition,
	state *vagabond.SpellState,
	bonuses vagabond.Bonuses,
	rules ruleset.Ruleset,
) vagabond.CostBreakdown {
	hasDamage := def.HasDamageType() && state.DamageDice >= 1

	var costs vagabond.CostBreakdown
	if hasDamage && state.DamageDice > 1 {
		costs.DamageCost = state.DamageDice - 1
	}
	if hasDamage && state.UseFx {
		costs.FxCost = 1
	}

	if delivery, ok := rules.Delivery(state.DeliveryType); ok {
		costs.DeliveryBaseCost = max(0, delivery.Cost-bonuses.DeliveryManaCostReduction)
		costs.DeliveryIncreaseCost = state.DeliveryIncrease * delivery.IncreaseCost
	}

	subtotal := costs.DamageCost + costs.FxCost + costs.DeliveryBaseCost + costs.DeliveryIncreaseCost
	costs.TotalCost = max(0, subtotal-bonuses.SpellManaCostReduction)

	return costs
}
