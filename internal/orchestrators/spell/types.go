package spell

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/spellcraft"
)

// GetSpellStateInput identifies an actor's spell
type GetSpellStateInput struct {
	ActorID string
	SpellID string
}

// GetSpellStateOutput contains the current configuration
type GetSpellStateOutput struct {
	Spell *vagabond.SpellDefinition
	State *vagabond.SpellState
	// IsDefault is true when nothing has been stored for the spell yet
	IsDefault bool
}

// UpdateSpellStateInput applies a single configuration transition
type UpdateSpellStateInput struct {
	ActorID string
	SpellID string
	Action  vagabond.SpellStateAction
	// DeliveryType is read by the select_delivery action; empty clears it
	DeliveryType string
}

// UpdateSpellStateOutput contains the persisted state and a fresh preview
type UpdateSpellStateOutput struct {
	State   *vagabond.SpellState
	Preview *Preview
}

// PreviewCastInput identifies the spell to price
type PreviewCastInput struct {
	ActorID string
	SpellID string
}

// PreviewCastOutput contains the preview
type PreviewCastOutput struct {
	Preview *Preview
}

// Preview is the priced view of a configuration shown before casting
type Preview struct {
	Spell               *vagabond.SpellDefinition
	State               *vagabond.SpellState
	Costs               vagabond.CostBreakdown
	Verdict             spellcraft.Verdict
	SizeHint            string
	DeliveryText        string
	CanIncreaseDelivery bool
	HasDamage           bool
	Mana                vagabond.ResourcePool
	FavorHinder         vagabond.FavorHinder
	Deliveries          []*ruleset.Delivery
}

// CastInput requests a cast of the stored configuration
type CastInput struct {
	ActorID string
	SpellID string
	// Shift and Ctrl carry the caster's favor and hinder intent
	Shift   bool
	Ctrl    bool
	Targets []vagabond.Target
}

// Rejection explains a cast that ended in the rejected stage
type Rejection struct {
	Reason  vagabond.RejectionReason
	Message string
}

// CastOutput is the terminal stage of a cast. Result is set when Stage is
// resolved and Rejection when it is rejected.
type CastOutput struct {
	Stage vagabond.CastStage
	// Path lists the stages passed through, ending with Stage
	Path      []vagabond.CastStage
	Rejection *Rejection
	Result    *vagabond.CastResult
}

// SetFavorHinderInput replaces the actor's persistent favor/hinder status
type SetFavorHinderInput struct {
	ActorID     string
	FavorHinder vagabond.FavorHinder
}

// SetFavorHinderOutput echoes the stored value
type SetFavorHinderOutput struct {
	FavorHinder vagabond.FavorHinder
}

// AdjustLuckInput spends (negative) or regains (positive) luck
type AdjustLuckInput struct {
	ActorID string
	Delta   int
}

// AdjustLuckOutput contains the clamped pool
type AdjustLuckOutput struct {
	Luck    vagabond.LuckPool
	Changed bool
}

// RollSkillInput requests a skill check
type RollSkillInput struct {
	ActorID  string
	SkillKey string
	Shift    bool
	Ctrl     bool
}

// RollSaveInput requests a saving throw
type RollSaveInput struct {
	ActorID string
	SaveKey string
	Shift   bool
	Ctrl    bool
}

// CheckOutput contains a resolved skill or save check
type CheckOutput struct {
	Result *vagabond.CheckResult
}
