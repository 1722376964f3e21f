package vagabond

// ActorType distinguishes player characters from NPCs
type ActorType string

// Actor types
const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeNPC       ActorType = "npc"
)

// ResourcePool is the actor's mana. CastingMax caps what a single cast may spend.
type ResourcePool struct {
	Current    int `json:"current"`
	CastingMax int `json:"casting_max"`
}

// LuckPool tracks spendable luck
type LuckPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Bonuses are the actor's cost and roll adjustments granted by perks and effects
type Bonuses struct {
	SpellManaCostReduction    int `json:"spell_mana_cost_reduction"`
	DeliveryManaCostReduction int `json:"delivery_mana_cost_reduction"`
	SpellCritBonus            int `json:"spell_crit_bonus"`

	// CheckBonus is added to every d20 check the actor makes, including the
	// spell check. Item and perk effects fold into it.
	CheckBonus int `json:"check_bonus"`
}

// ClassData holds the class facts that gate spellcasting
type ClassData struct {
	IsSpellcaster bool   `json:"is_spellcaster"`
	ManaSkill     string `json:"mana_skill,omitempty"`
}

// Skill is a trained or untrained skill and the stat it keys off
type Skill struct {
	Difficulty int    `json:"difficulty"`
	Trained    bool   `json:"trained"`
	Stat       string `json:"stat,omitempty"`
}

// Save is a saving throw such as reflex or will
type Save struct {
	Difficulty int `json:"difficulty"`
}

// DefaultCheckDifficulty applies to skills and saves the actor has no entry for
const DefaultCheckDifficulty = 10

// Actor is the subset of actor state the spellcraft core reads.
type Actor struct {
	ID               string                      `json:"id"`
	Name             string                      `json:"name"`
	Type             ActorType                   `json:"type"`
	Mana             ResourcePool                `json:"mana"`
	Luck             LuckPool                    `json:"luck"`
	Bonuses          Bonuses                     `json:"bonuses"`
	ClassData        ClassData                   `json:"class_data"`
	Skills           map[string]Skill            `json:"skills,omitempty"`
	Saves            map[string]Save             `json:"saves,omitempty"`
	Stats            map[string]int              `json:"stats,omitempty"`
	FavorHinder      FavorHinder                 `json:"favor_hinder"`
	AutoFailAllRolls bool                        `json:"auto_fail_all_rolls"`
	Spells           map[string]*SpellDefinition `json:"spells,omitempty"`
}

// DefaultCastingStat is used when the mana skill names no stat
const DefaultCastingStat = "reason"

// Spell looks up one of the actor's spells
func (a *Actor) Spell(spellID string) (*SpellDefinition, bool) {
	def, ok := a.Spells[spellID]
	return def, ok && def != nil
}

// ManaSkill returns the class mana skill key and its definition. ok is false
// when the class names no skill or names one the actor does not have.
func (a *Actor) ManaSkill() (key string, skill Skill, ok bool) {
	key = a.ClassData.ManaSkill
	if key == "" {
		return "", Skill{}, false
	}
	skill, ok = a.Skills[key]
	return key, skill, ok
}

// SkillDifficulty is the check difficulty of a skill, DefaultCheckDifficulty
// when the actor has no entry for it
func (a *Actor) SkillDifficulty(key string) int {
	if skill, ok := a.Skills[key]; ok {
		return skill.Difficulty
	}
	return DefaultCheckDifficulty
}

// SaveDifficulty is SkillDifficulty for saves
func (a *Actor) SaveDifficulty(key string) int {
	if save, ok := a.Saves[key]; ok {
		return save.Difficulty
	}
	return DefaultCheckDifficulty
}

// CastingStat returns the stat key and value that back the mana skill
func (a *Actor) CastingStat() (string, int) {
	_, skill, _ := a.ManaSkill()
	stat := skill.Stat
	if stat == "" {
		stat = DefaultCastingStat
	}
	return stat, a.Stats[stat]
}

// Target is a snapshot of a targeted token at cast time
type Target struct {
	TokenID   string `json:"token_id"`
	SceneID   string `json:"scene_id,omitempty"`
	ActorID   string `json:"actor_id,omitempty"`
	ActorName string `json:"actor_name,omitempty"`
	ActorImg  string `json:"actor_img,omitempty"`
}
