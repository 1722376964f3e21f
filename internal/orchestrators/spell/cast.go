package spell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
	spellstate "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/spellcraft"
)

// RollContextPrefix prefixes the spell ID in the dice session context
const RollContextPrefix = "spell:"

// Cast runs Validating, then RollPending or AutoSuccess, and ends in
// Resolved or Rejected. Rolls happen before the debit so a failing roll
// service never leaves a partial debit, and only a successful cast pays.
func (o *orchestrator) Cast(ctx context.Context, input *CastInput) (*CastOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}

	release, ok := o.casting.acquire(input.ActorID, input.SpellID)
	if !ok {
		return nil, errors.Abortedf("a cast of spell %s is already in progress", input.SpellID).
			WithMeta("actor_id", input.ActorID).
			WithMeta("spell_id", input.SpellID)
	}
	defer release()

	actor, def, err := o.loadSpell(ctx, input.ActorID, input.SpellID)
	if err != nil {
		return nil, err
	}
	state, _, err := o.loadState(ctx, actor.ID, def)
	if err != nil {
		return nil, err
	}

	// Validating
	costs := spellcraft.CalculateCost(def, state, actor.Bonuses, o.rules)
	if verdict := spellcraft.CheckAffordability(state, costs, actor.Mana); !verdict.CanCast {
		return o.reject(actor, def, verdict.Reason, verdict.Message), nil
	}

	skillKey, skill, ok := actor.ManaSkill()
	if !ok {
		msg := "no mana skill configured"
		if skillKey != "" {
			msg = fmt.Sprintf("mana skill %s not defined", skillKey)
		}
		return o.reject(actor, def, vagabond.RejectionNotEligibleToCast, msg), nil
	}
	if !actor.ClassData.IsSpellcaster {
		return o.reject(actor, def, vagabond.RejectionNotEligibleToCast, "class cannot cast spells"), nil
	}

	if actor.AutoFailAllRolls {
		if err := o.reporter.ReportAutoFail(ctx, &reporting.AutoFailRecord{
			ActorID:   actor.ID,
			ActorName: actor.Name,
			ActorType: actor.Type,
			SpellID:   def.ID,
			SpellName: def.Name,
			RollType:  reporting.RollTypeSpell,
		}); err != nil {
			slog.Warn("Failed to report auto-fail",
				"actor_id", actor.ID,
				"spell_id", def.ID,
				"error", err,
			)
		}
		return o.reject(actor, def, vagabond.RejectionAutoFailStatus, "automatically fails all rolls"), nil
	}

	favorHinder := vagabond.CalculateFavorHinder(actor.FavorHinder, input.Shift, input.Ctrl)
	rollContext := RollContextPrefix + def.ID

	result := &vagabond.CastResult{
		CastID:       o.idGen.Generate(),
		Difficulty:   skill.Difficulty,
		FavorHinder:  favorHinder,
		DeliveryText: spellcraft.DeliveryText(state, o.rules),
		Costs:        costs,
		Mana:         actor.Mana,
		Targets:      input.Targets,
	}

	var stage vagabond.CastStage
	if def.NoRollRequired {
		stage = vagabond.CastStageAutoSuccess
		result.IsSuccess = true
	} else {
		stage = vagabond.CastStageRollPending
		check, err := o.diceService.RollCheck(ctx, &dice.RollCheckInput{
			EntityID:    actor.ID,
			Context:     rollContext,
			FavorHinder: favorHinder,
			Bonus:       actor.Bonuses.CheckBonus,
			Description: def.Name + " (" + skillKey + ")",
		})
		if err != nil {
			return o.serviceFailure(actor, def, stage, "check roll", err), nil
		}
		result.Roll = rollReference(check.Roll)
		result.IsSuccess = check.Total >= skill.Difficulty
		result.IsCritical = check.PrimaryFace >= spellcraft.CritThreshold(actor)
	}

	if def.HasDamageType() && state.DamageDice > 0 && spellcraft.ShouldRollDamage(o.settings, result.IsSuccess) {
		_, statValue := actor.CastingStat()
		damage, err := o.diceService.RollDamage(ctx, &dice.RollDamageInput{
			EntityID:       actor.ID,
			Context:        rollContext,
			DiceCount:      state.DamageDice,
			IsCritical:     result.IsCritical,
			AttributeValue: statValue,
			Description:    def.Name + " " + def.DamageType + " damage",
		})
		if err != nil {
			return o.serviceFailure(actor, def, stage, "damage roll", err), nil
		}
		result.DamageRoll = rollReference(damage.Roll)
	}

	if result.IsSuccess && costs.TotalCost > 0 {
		debit, err := o.actorRepo.DebitMana(ctx, actorrepo.DebitManaInput{
			ActorID: actor.ID,
			Amount:  costs.TotalCost,
		})
		if err != nil {
			if errors.IsResourceExhausted(err) {
				return o.reject(actor, def, vagabond.RejectionInsufficientResource, errors.GetMessage(err)), nil
			}
			return o.serviceFailure(actor, def, stage, "mana debit", err), nil
		}
		result.Mana = debit.Mana
	}

	// Resolved
	if err := o.reporter.ReportCast(ctx, &reporting.CastRecord{
		CastID:       result.CastID,
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		ActorType:    actor.Type,
		Spell:        def,
		State:        state.Clone(),
		Roll:         result.Roll,
		DamageRoll:   result.DamageRoll,
		Difficulty:   result.Difficulty,
		IsSuccess:    result.IsSuccess,
		IsCritical:   result.IsCritical,
		ManaSkill:    skillKey,
		FavorHinder:  favorHinder,
		Costs:        costs,
		DeliveryText: result.DeliveryText,
		Targets:      result.Targets,
	}); err != nil {
		slog.Warn("Failed to report cast",
			"actor_id", actor.ID,
			"spell_id", def.ID,
			"cast_id", result.CastID,
			"error", err,
		)
	}

	state.ResetAfterCast(def)
	if _, err := o.spellStateRepo.Save(ctx, spellstate.SaveInput{
		ActorID: actor.ID,
		SpellID: def.ID,
		State:   state,
	}); err != nil {
		slog.Warn("Failed to reset spell state after cast",
			"actor_id", actor.ID,
			"spell_id", def.ID,
			"error", err,
		)
	}

	slog.Info("Spell cast",
		"actor_id", actor.ID,
		"spell_id", def.ID,
		"cast_id", result.CastID,
		"path", string(stage),
		"is_success", result.IsSuccess,
		"is_critical", result.IsCritical,
		"total_cost", costs.TotalCost,
		"mana", result.Mana.Current,
	)

	return &CastOutput{
		Stage:  vagabond.CastStageResolved,
		Path:   []vagabond.CastStage{vagabond.CastStageValidating, stage, vagabond.CastStageResolved},
		Result: result,
	}, nil
}

func (o *orchestrator) reject(actor *vagabond.Actor, def *vagabond.SpellDefinition, reason vagabond.RejectionReason, message string) *CastOutput {
	slog.Info("Cast rejected",
		"actor_id", actor.ID,
		"spell_id", def.ID,
		"reason", string(reason),
		"message", message,
	)

	return &CastOutput{
		Stage: vagabond.CastStageRejected,
		Path:  []vagabond.CastStage{vagabond.CastStageValidating, vagabond.CastStageRejected},
		Rejection: &Rejection{
			Reason:  reason,
			Message: message,
		},
	}
}

func (o *orchestrator) serviceFailure(actor *vagabond.Actor, def *vagabond.SpellDefinition, stage vagabond.CastStage, what string, err error) *CastOutput {
	slog.Warn("Cast aborted by service failure",
		"actor_id", actor.ID,
		"spell_id", def.ID,
		"step", what,
		"error", err,
	)

	return &CastOutput{
		Stage: vagabond.CastStageRejected,
		Path:  []vagabond.CastStage{vagabond.CastStageValidating, stage, vagabond.CastStageRejected},
		Rejection: &Rejection{
			Reason:  vagabond.RejectionExternalServiceFailure,
			Message: what + " failed: " + errors.GetMessage(err),
		},
	}
}

func rollReference(roll *dicesession.DiceRoll) *vagabond.RollReference {
	if roll == nil {
		return nil
	}
	return &vagabond.RollReference{
		RollID:      roll.RollID,
		Notation:    roll.Notation,
		Dice:        roll.Dice,
		Total:       roll.Total,
		PrimaryFace: roll.PrimaryFace,
	}
}
