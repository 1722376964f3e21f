package spellcraft

import (
	"fmt"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

// Verdict is the outcome of an affordability check
type Verdict struct {
	CanCast bool
	Reason  vagabond.RejectionReason
	Message string
}

// CheckAffordability decides whether a priced configuration can be cast from
// the pool. A delivery must be selected and the total must fit both the
// current mana and the casting max.
func CheckAffordability(state *vagabond.SpellState, costs vagabond.CostBreakdown, pool vagabond.ResourcePool) Verdict {
	switch {
	case !state.HasDelivery():
		return Verdict{
			Reason:  vagabond.RejectionNoDeliverySelected,
			Message: "select a delivery type first",
		}
	case costs.TotalCost > pool.Current:
		return Verdict{
			Reason:  vagabond.RejectionInsufficientResource,
			Message: fmt.Sprintf("not enough mana: need %d, have %d", costs.TotalCost, pool.Current),
		}
	case costs.TotalCost > pool.CastingMax:
		return Verdict{
			Reason:  vagabond.RejectionExceedsCastingCeiling,
			Message: fmt.Sprintf("exceeds casting max of %d", pool.CastingMax),
		}
	}

	return Verdict{CanCast: true}
}
