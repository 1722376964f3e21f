// Package spell configures Vagabond spells per actor and commits casts:
// validation, the check roll, damage, the mana debit and reporting. It also
// rolls the actor's plain skill and save checks.
package spell

//go:generate mockgen -destination=mock/mock_service.go -package=spellmock github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/idgen"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	spellstate "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/spellcraft"
)

// Service is the spellcasting surface exposed to handlers
type Service interface {
	// GetSpellState returns the stored configuration or the defaults
	GetSpellState(ctx context.Context, input *GetSpellStateInput) (*GetSpellStateOutput, error)

	// UpdateSpellState applies one transition and persists the result
	UpdateSpellState(ctx context.Context, input *UpdateSpellStateInput) (*UpdateSpellStateOutput, error)

	// PreviewCast prices the stored configuration without side effects
	PreviewCast(ctx context.Context, input *PreviewCastInput) (*PreviewCastOutput, error)

	// Cast commits the stored configuration. Rejections are reported in the
	// output, errors are reserved for missing data and storage failures.
	Cast(ctx context.Context, input *CastInput) (*CastOutput, error)

	// SetFavorHinder replaces the actor's persistent favor/hinder status,
	// which per-roll intent then modifies
	SetFavorHinder(ctx context.Context, input *SetFavorHinderInput) (*SetFavorHinderOutput, error)

	// AdjustLuck adds Delta to the luck pool, clamped to [0, max]. Changed is
	// false when the clamp absorbed the whole delta.
	AdjustLuck(ctx context.Context, input *AdjustLuckInput) (*AdjustLuckOutput, error)

	// RollSkill rolls a d20 check against the skill's difficulty
	RollSkill(ctx context.Context, input *RollSkillInput) (*CheckOutput, error)

	// RollSave rolls a d20 saving throw against the save's difficulty
	RollSave(ctx context.Context, input *RollSaveInput) (*CheckOutput, error)
}

// Config holds the dependencies for the spell orchestrator
type Config struct {
	ActorRepo      actorrepo.Repository
	SpellStateRepo spellstate.Repository
	DiceService    dice.Service
	Reporter       reporting.Reporter
	Ruleset        ruleset.Ruleset
	IDGenerator    idgen.Generator

	// Settings may be nil, damage is then never rolled with the check
	Settings *spellcraft.Settings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.SpellStateRepo == nil {
		vb.RequiredField("SpellStateRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.Reporter == nil {
		vb.RequiredField("Reporter")
	}
	if c.Ruleset == nil {
		vb.RequiredField("Ruleset")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo      actorrepo.Repository
	spellStateRepo spellstate.Repository
	diceService    dice.Service
	reporter       reporting.Reporter
	rules          ruleset.Ruleset
	idGen          idgen.Generator
	settings       *spellcraft.Settings
	casting        *inFlight
}

// NewOrchestrator creates a new spell orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo:      cfg.ActorRepo,
		spellStateRepo: cfg.SpellStateRepo,
		diceService:    cfg.DiceService,
		reporter:       cfg.Reporter,
		rules:          cfg.Ruleset,
		idGen:          cfg.IDGenerator,
		settings:       cfg.Settings,
		casting:        newInFlight(),
	}, nil
}

func (o *orchestrator) GetSpellState(ctx context.Context, input *GetSpellStateInput) (*GetSpellStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}

	actor, def, err := o.loadSpell(ctx, input.ActorID, input.SpellID)
	if err != nil {
		return nil, err
	}

	state, isDefault, err := o.loadState(ctx, actor.ID, def)
	if err != nil {
		return nil, err
	}

	return &GetSpellStateOutput{
		Spell:     def,
		State:     state,
		IsDefault: isDefault,
	}, nil
}

func (o *orchestrator) UpdateSpellState(ctx context.Context, input *UpdateSpellStateInput) (*UpdateSpellStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}

	actor, def, err := o.loadSpell(ctx, input.ActorID, input.SpellID)
	if err != nil {
		return nil, err
	}

	state, _, err := o.loadState(ctx, actor.ID, def)
	if err != nil {
		return nil, err
	}

	switch input.Action {
	case vagabond.ActionSelectDelivery:
		if input.DeliveryType != "" {
			if _, ok := o.rules.Delivery(input.DeliveryType); !ok {
				return nil, errors.InvalidArgumentf("unknown delivery type %q", input.DeliveryType).
					WithMeta("delivery_type", input.DeliveryType)
			}
		}
	case vagabond.ActionIncreaseDeliveryStep:
		if !spellcraft.CanIncreaseDelivery(state, o.rules) {
			return nil, errors.FailedPrecondition("selected delivery cannot be increased")
		}
	}

	if !state.Apply(input.Action, input.DeliveryType) {
		return nil, errors.InvalidArgumentf("unknown spell state action %q", input.Action)
	}

	if _, err := o.spellStateRepo.Save(ctx, spellstate.SaveInput{
		ActorID: actor.ID,
		SpellID: def.ID,
		State:   state,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to save spell state for spell %s", def.ID)
	}

	slog.Info("Spell state updated",
		"actor_id", actor.ID,
		"spell_id", def.ID,
		"action", string(input.Action),
		"damage_dice", state.DamageDice,
		"use_fx", state.UseFx,
		"delivery_type", state.DeliveryType,
		"delivery_increase", state.DeliveryIncrease,
	)

	return &UpdateSpellStateOutput{
		State:   state,
		Preview: o.preview(actor, def, state),
	}, nil
}

func (o *orchestrator) PreviewCast(ctx context.Context, input *PreviewCastInput) (*PreviewCastOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}

	actor, def, err := o.loadSpell(ctx, input.ActorID, input.SpellID)
	if err != nil {
		return nil, err
	}

	state, _, err := o.loadState(ctx, actor.ID, def)
	if err != nil {
		return nil, err
	}

	return &PreviewCastOutput{Preview: o.preview(actor, def, state)}, nil
}

func (o *orchestrator) SetFavorHinder(ctx context.Context, input *SetFavorHinderInput) (*SetFavorHinderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if !input.FavorHinder.IsValid() {
		return nil, errors.InvalidArgumentf("unknown favor/hinder value %q", input.FavorHinder)
	}

	if _, err := o.actorRepo.SetFavorHinder(ctx, actorrepo.SetFavorHinderInput{
		ActorID:     input.ActorID,
		FavorHinder: input.FavorHinder,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to set favor/hinder for actor %s", input.ActorID)
	}

	slog.Info("Favor/hinder set",
		"actor_id", input.ActorID,
		"favor_hinder", string(input.FavorHinder),
	)

	return &SetFavorHinderOutput{FavorHinder: input.FavorHinder}, nil
}

func (o *orchestrator) AdjustLuck(ctx context.Context, input *AdjustLuckInput) (*AdjustLuckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if input.Delta == 0 {
		return nil, errors.InvalidArgument("luck delta cannot be zero")
	}

	out, err := o.actorRepo.AdjustLuck(ctx, actorrepo.AdjustLuckInput{
		ActorID: input.ActorID,
		Delta:   input.Delta,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to adjust luck for actor %s", input.ActorID)
	}

	slog.Info("Luck adjusted",
		"actor_id", input.ActorID,
		"delta", input.Delta,
		"luck", out.Luck.Current,
		"changed", out.Changed,
	)

	return &AdjustLuckOutput{Luck: out.Luck, Changed: out.Changed}, nil
}

func (o *orchestrator) loadSpell(ctx context.Context, actorID, spellID string) (*vagabond.Actor, *vagabond.SpellDefinition, error) {
	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ActorID: actorID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get actor %s", actorID)
	}

	def, ok := out.Actor.Spell(spellID)
	if !ok {
		return nil, nil, errors.NotFoundf("actor %s does not know spell %s", actorID, spellID).
			WithMeta("actor_id", actorID).
			WithMeta("spell_id", spellID)
	}

	return out.Actor, def, nil
}

// loadState returns the stored configuration, or the defaults when the
// spell was never configured. A stored delivery that the ruleset no longer
// knows is dropped so the player has to pick again.
func (o *orchestrator) loadState(ctx context.Context, actorID string, def *vagabond.SpellDefinition) (*vagabond.SpellState, bool, error) {
	out, err := o.spellStateRepo.Get(ctx, spellstate.GetInput{ActorID: actorID, SpellID: def.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return vagabond.NewSpellState(def), true, nil
		}
		return nil, false, errors.Wrapf(err, "failed to load spell state for spell %s", def.ID)
	}

	state := out.State
	if state.HasDelivery() {
		if _, ok := o.rules.Delivery(state.DeliveryType); !ok {
			slog.Warn("Stored delivery no longer in ruleset",
				"actor_id", actorID,
				"spell_id", def.ID,
				"delivery_type", state.DeliveryType,
			)
			state.SelectDelivery("")
		}
	}

	return state, false, nil
}

func (o *orchestrator) preview(actor *vagabond.Actor, def *vagabond.SpellDefinition, state *vagabond.SpellState) *Preview {
	costs := spellcraft.CalculateCost(def, state, actor.Bonuses, o.rules)

	return &Preview{
		Spell:               def,
		State:               state,
		Costs:               costs,
		Verdict:             spellcraft.CheckAffordability(state, costs, actor.Mana),
		SizeHint:            spellcraft.SizeHint(state, o.rules),
		DeliveryText:        spellcraft.DeliveryText(state, o.rules),
		CanIncreaseDelivery: spellcraft.CanIncreaseDelivery(state, o.rules),
		HasDamage:           def.HasDamageType() && state.DamageDice > 0,
		Mana:                actor.Mana,
		FavorHinder:         actor.FavorHinder,
		Deliveries:          o.rules.Deliveries(),
	}
}

func validateIDs(actorID, spellID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", actorID, vb)
	errors.ValidateRequired("spell_id", spellID, vb)
	return vb.Build()
}
