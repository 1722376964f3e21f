package spell

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
)

func (o *orchestrator) RollSkill(ctx context.Context, input *RollSkillInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", input.ActorID, vb)
	errors.ValidateRequired("skill_key", input.SkillKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.rollCheck(ctx, input.ActorID, vagabond.CheckKindSkill, input.SkillKey, input.Shift, input.Ctrl)
}

func (o *orchestrator) RollSave(ctx context.Context, input *RollSaveInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", input.ActorID, vb)
	errors.ValidateRequired("save_key", input.SaveKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.rollCheck(ctx, input.ActorID, vagabond.CheckKindSave, input.SaveKey, input.Shift, input.Ctrl)
}

// rollCheck rolls a d20 against the actor's difficulty for key. Keys the
// actor has no entry for use vagabond.DefaultCheckDifficulty.
func (o *orchestrator) rollCheck(ctx context.Context, actorID string, kind vagabond.CheckKind, key string, shift, ctrl bool) (*CheckOutput, error) {
	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ActorID: actorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", actorID)
	}
	actor := out.Actor

	difficulty := actor.SkillDifficulty(key)
	if kind == vagabond.CheckKindSave {
		difficulty = actor.SaveDifficulty(key)
	}
	favorHinder := vagabond.CalculateFavorHinder(actor.FavorHinder, shift, ctrl)

	check, err := o.diceService.RollCheck(ctx, &dice.RollCheckInput{
		EntityID:    actor.ID,
		Context:     string(kind) + ":" + key,
		FavorHinder: favorHinder,
		Bonus:       actor.Bonuses.CheckBonus,
		Description: key + " " + string(kind),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s check %s", kind, key)
	}

	result := &vagabond.CheckResult{
		Kind:        kind,
		Key:         key,
		Roll:        rollReference(check.Roll),
		Difficulty:  difficulty,
		IsSuccess:   check.Total >= difficulty,
		FavorHinder: favorHinder,
	}

	if err := o.reporter.ReportCheck(ctx, &reporting.CheckRecord{
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorType:   actor.Type,
		Kind:        kind,
		Key:         key,
		Roll:        result.Roll,
		Difficulty:  difficulty,
		IsSuccess:   result.IsSuccess,
		FavorHinder: favorHinder,
	}); err != nil {
		slog.Warn("Failed to report check",
			"actor_id", actor.ID,
			"kind", string(kind),
			"key", key,
			"error", err,
		)
	}

	slog.Info("Check rolled",
		"actor_id", actor.ID,
		"kind", string(kind),
		"key", key,
		"total", check.Total,
		"difficulty", difficulty,
		"is_success", result.IsSuccess,
	)

	return &CheckOutput{Result: result}, nil
}
