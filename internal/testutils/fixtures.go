package testutils

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

// Spell IDs used across test fixtures
const (
	TestFireboltID = "spell-firebolt"
	TestLightID    = "spell-light"
	TestWardID     = "spell-ward"

	// TestActorID is the default actor ID for test fixtures
	TestActorID = "actor-test-123"
)

// CreateTestFirebolt returns a damaging spell that requires a roll
func CreateTestFirebolt() *vagabond.SpellDefinition {
	return &vagabond.SpellDefinition{
		ID:         TestFireboltID,
		Name:       "Firebolt",
		Effect:     "A mote of fire streaks toward the target.",
		DamageType: "fire",
	}
}

// CreateTestLight returns a non-damaging spell
func CreateTestLight() *vagabond.SpellDefinition {
	return &vagabond.SpellDefinition{
		ID:         TestLightID,
		Name:       "Light",
		Effect:     "An object sheds bright light.",
		DamageType: vagabond.DamageTypeNone,
	}
}

// CreateTestWard returns a non-damaging spell that succeeds without a roll
func CreateTestWard() *vagabond.SpellDefinition {
	return &vagabond.SpellDefinition{
		ID:             TestWardID,
		Name:           "Ward",
		Effect:         "A shimmering barrier surrounds the target.",
		DamageType:     vagabond.DamageTypeNone,
		NoRollRequired: true,
	}
}
