package spellcraft

import (
	"fmt"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
)

// CanIncreaseDelivery reports whether the selected delivery can be grown.
// Deliveries with no per-step cost have nothing to buy.
func CanIncreaseDelivery(state *vagabond.SpellState, rules ruleset.Ruleset) bool {
	delivery, ok := rules.Delivery(state.DeliveryType)
	return ok && delivery.IncreaseCost > 0
}

// SizeHint describes the grown delivery, e.g. "(3 targets)" or
// "(15-foot radius)". It is empty until at least one step is bought.
func SizeHint(state *vagabond.SpellState, rules ruleset.Ruleset) string {
	delivery, ok := rules.Delivery(state.DeliveryType)
	if !ok || state.DeliveryIncrease == 0 {
		return ""
	}
	if !delivery.HasMagnitude() || delivery.Increment == 0 {
		return ""
	}

	v := delivery.MagnitudeAt(state.DeliveryIncrease)
	switch delivery.Base.Kind {
	case ruleset.KindCount:
		return fmt.Sprintf("(%d %s)", v, plural(delivery.Base.Unit, v))
	case ruleset.KindRadius:
		return fmt.Sprintf("(%d-%s radius)", v, delivery.Base.Unit)
	default:
		return fmt.Sprintf("(%d-%s)", v, delivery.Base.Unit)
	}
}

// DeliveryText is the delivery line of a cast record, e.g. "Remote 2 targets"
// or "Aura 15'". Deliveries without a magnitude are just their name.
func DeliveryText(state *vagabond.SpellState, rules ruleset.Ruleset) string {
	delivery, ok := rules.Delivery(state.DeliveryType)
	if !ok {
		return state.DeliveryType
	}
	if !delivery.HasMagnitude() {
		return delivery.Name
	}

	v := delivery.MagnitudeAt(state.DeliveryIncrease)
	if v <= 0 {
		return delivery.Name
	}
	if delivery.Base.Kind == ruleset.KindCount {
		return fmt.Sprintf("%s %d %s", delivery.Name, v, plural("target", v))
	}
	return fmt.Sprintf("%s %d'", delivery.Name, v)
}

func plural(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}
