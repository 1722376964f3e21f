// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

// ActorBuilder provides a fluent interface for building test Actor instances
type ActorBuilder struct {
	actor *vagabond.Actor
}

// NewActorBuilder returns a trained spellcaster with a full mana pool,
// an arcana skill at difficulty 10 and no spells.
func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &vagabond.Actor{
			ID:   "actor-test-123",
			Name: "Test Wizard",
			Type: vagabond.ActorTypeCharacter,
			Mana: vagabond.ResourcePool{Current: 10, CastingMax: 10},
			Luck: vagabond.LuckPool{Current: 3, Max: 3},
			ClassData: vagabond.ClassData{
				IsSpellcaster: true,
				ManaSkill:     "arcana",
			},
			Skills: map[string]vagabond.Skill{
				"arcana": {Difficulty: 10, Trained: true, Stat: "reason"},
			},
			Stats: map[string]int{
				"reason": 4,
			},
			FavorHinder: vagabond.FavorHinderNone,
			Spells:      map[string]*vagabond.SpellDefinition{},
		},
	}
}

// WithID sets the actor ID
func (b *ActorBuilder) WithID(id string) *ActorBuilder {
	b.actor.ID = id
	return b
}

// WithName sets the actor name
func (b *ActorBuilder) WithName(name string) *ActorBuilder {
	b.actor.Name = name
	return b
}

// WithMana sets the current mana and casting max
func (b *ActorBuilder) WithMana(current, castingMax int) *ActorBuilder {
	b.actor.Mana = vagabond.ResourcePool{Current: current, CastingMax: castingMax}
	return b
}

// WithLuck sets the luck pool
func (b *ActorBuilder) WithLuck(current, maxLuck int) *ActorBuilder {
	b.actor.Luck = vagabond.LuckPool{Current: current, Max: maxLuck}
	return b
}

// WithBonuses replaces the actor bonuses
func (b *ActorBuilder) WithBonuses(bonuses vagabond.Bonuses) *ActorBuilder {
	b.actor.Bonuses = bonuses
	return b
}

// WithManaSkill points the class at a skill and defines it
func (b *ActorBuilder) WithManaSkill(key string, skill vagabond.Skill) *ActorBuilder {
	b.actor.ClassData.ManaSkill = key
	if key != "" {
		b.actor.Skills[key] = skill
	}
	return b
}

// WithoutManaSkill clears the class mana skill
func (b *ActorBuilder) WithoutManaSkill() *ActorBuilder {
	b.actor.ClassData.ManaSkill = ""
	return b
}

// WithUndefinedManaSkill points the class at a skill the actor does not have
func (b *ActorBuilder) WithUndefinedManaSkill(key string) *ActorBuilder {
	b.actor.ClassData.ManaSkill = key
	delete(b.actor.Skills, key)
	return b
}

// WithSkill adds or replaces a skill
func (b *ActorBuilder) WithSkill(key string, skill vagabond.Skill) *ActorBuilder {
	b.actor.Skills[key] = skill
	return b
}

// WithSave adds or replaces a save
func (b *ActorBuilder) WithSave(key string, difficulty int) *ActorBuilder {
	if b.actor.Saves == nil {
		b.actor.Saves = map[string]vagabond.Save{}
	}
	b.actor.Saves[key] = vagabond.Save{Difficulty: difficulty}
	return b
}

// WithCheckBonus sets the flat bonus added to every d20 check
func (b *ActorBuilder) WithCheckBonus(bonus int) *ActorBuilder {
	b.actor.Bonuses.CheckBonus = bonus
	return b
}

// AsNonCaster marks the actor's class as unable to cast
func (b *ActorBuilder) AsNonCaster() *ActorBuilder {
	b.actor.ClassData.IsSpellcaster = false
	return b
}

// WithStat sets a single stat value
func (b *ActorBuilder) WithStat(key string, value int) *ActorBuilder {
	b.actor.Stats[key] = value
	return b
}

// WithFavorHinder sets the system favor/hinder status
func (b *ActorBuilder) WithFavorHinder(fh vagabond.FavorHinder) *ActorBuilder {
	b.actor.FavorHinder = fh
	return b
}

// WithAutoFail sets the auto-fail-all-rolls status
func (b *ActorBuilder) WithAutoFail() *ActorBuilder {
	b.actor.AutoFailAllRolls = true
	return b
}

// WithSpell adds a spell the actor knows
func (b *ActorBuilder) WithSpell(spell *vagabond.SpellDefinition) *ActorBuilder {
	b.actor.Spells[spell.ID] = spell
	return b
}

// Build returns the built actor
func (b *ActorBuilder) Build() *vagabond.Actor {
	return b.actor
}
