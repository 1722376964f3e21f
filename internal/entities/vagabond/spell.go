// Package vagabond holds the Vagabond RPG entities shared by the spellcraft
// repositories, orchestrators and handlers.
package vagabond

// DamageTypeNone marks a spell that deals no damage.
const DamageTypeNone = "-"

// SpellDefinition is the read-only view of a spell item owned by the actor.
type SpellDefinition struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Effect         string `json:"effect,omitempty"`
	DamageType     string `json:"damage_type"`
	NoRollRequired bool   `json:"no_roll_required"`
}

// HasDamageType reports whether the spell can deal damage at all.
func (d *SpellDefinition) HasDamageType() bool {
	return d.DamageType != DamageTypeNone
}

// SpellState is the per actor+spell casting configuration a player dials in
// before casting. It is persisted after every transition.
type SpellState struct {
	DamageDice       int    `json:"damage_dice"`
	UseFx            bool   `json:"use_fx"`
	DeliveryType     string `json:"delivery_type,omitempty"` // empty means no delivery selected
	DeliveryIncrease int    `json:"delivery_increase"`
}

// NewSpellState returns the defaults for a spell that has never been configured.
func NewSpellState(def *SpellDefinition) *SpellState {
	return &SpellState{
		DamageDice: 1,
		UseFx:      !def.HasDamageType(),
	}
}

// HasDelivery reports whether a delivery method is selected.
func (s *SpellState) HasDelivery() bool {
	return s.DeliveryType != ""
}

// IncreaseDamageDice adds a damage die. Leaving zero dice turns the effect off
// first so the spell ramps up as a damage spell.
func (s *SpellState) IncreaseDamageDice() {
	if s.DamageDice == 0 {
		s.UseFx = false
	}
	s.DamageDice++
}

// DecreaseDamageDice removes a damage die; reaching zero restores the
// effect-only configuration.
func (s *SpellState) DecreaseDamageDice() {
	if s.DamageDice == 0 {
		return
	}
	s.DamageDice--
	if s.DamageDice == 0 {
		s.UseFx = true
	}
}

// ToggleFx flips the effect flag.
func (s *SpellState) ToggleFx() {
	s.UseFx = !s.UseFx
}

// SelectDelivery sets the delivery method and drops any size investment made
// for the previous one. An empty key clears the selection.
func (s *SpellState) SelectDelivery(key string) {
	s.DeliveryType = key
	s.DeliveryIncrease = 0
}

// IncreaseDeliveryStep adds one delivery increase step. Affordability is only
// enforced when casting.
func (s *SpellState) IncreaseDeliveryStep() {
	s.DeliveryIncrease++
}

// DecreaseDeliveryStep removes one delivery increase step.
func (s *SpellState) DecreaseDeliveryStep() {
	if s.DeliveryIncrease > 0 {
		s.DeliveryIncrease--
	}
}

// ResetAfterCast restores the per-cast dials while keeping the delivery choice.
func (s *SpellState) ResetAfterCast(def *SpellDefinition) {
	s.DamageDice = 1
	s.DeliveryIncrease = 0
	s.UseFx = !def.HasDamageType()
}

// Clone returns a copy of the state.
func (s *SpellState) Clone() *SpellState {
	c := *s
	return &c
}

// SpellStateAction names a single configuration transition.
type SpellStateAction string

// Configuration transitions
const (
	ActionIncreaseDamageDice   SpellStateAction = "increase_damage_dice"
	ActionDecreaseDamageDice   SpellStateAction = "decrease_damage_dice"
	ActionToggleFx             SpellStateAction = "toggle_fx"
	ActionSelectDelivery       SpellStateAction = "select_delivery"
	ActionIncreaseDeliveryStep SpellStateAction = "increase_delivery_step"
	ActionDecreaseDeliveryStep SpellStateAction = "decrease_delivery_step"
)

// Apply performs the named transition. deliveryKey is only read by
// ActionSelectDelivery. It returns false for an unknown action.
func (s *SpellState) Apply(action SpellStateAction, deliveryKey string) bool {
	switch action {
	case ActionIncreaseDamageDice:
		s.IncreaseDamageDice()
	case ActionDecreaseDamageDice:
		s.DecreaseDamageDice()
	case ActionToggleFx:
		s.ToggleFx()
	case ActionSelectDelivery:
		s.SelectDelivery(deliveryKey)
	case ActionIncreaseDeliveryStep:
		s.IncreaseDeliveryStep()
	case ActionDecreaseDeliveryStep:
		s.DecreaseDeliveryStep()
	default:
		return false
	}
	return true
}
