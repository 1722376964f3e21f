package spellcraft

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

// Settings are the table-wide options that change how casts resolve
type Settings struct {
	RollDamageWithCheck bool
	AlwaysRollDamage    bool

	// ShowUnequippedWeapons is only carried through for the action-list glue
	ShowUnequippedWeapons bool
}

// ShouldRollDamage decides whether damage is rolled together with the check.
// Without settings damage is never rolled automatically.
func ShouldRollDamage(settings *Settings, isHit bool) bool {
	if settings == nil || !settings.RollDamageWithCheck {
		return false
	}
	return settings.AlwaysRollDamage || isHit
}

// BaseCritThreshold is the natural d20 face that crits without bonuses
const BaseCritThreshold = 20

// CritThreshold returns the lowest d20 face that makes a spell check critical
func CritThreshold(actor *vagabond.Actor) int {
	return max(1, BaseCritThreshold-actor.Bonuses.SpellCritBonus)
}
