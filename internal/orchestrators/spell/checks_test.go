package spell_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestRollSkill() {
	actor := builders.NewActorBuilder().
		WithSkill("sneak", vagabond.Skill{Difficulty: 12, Stat: "dexterity"}).
		WithCheckBonus(1).
		Build()

	testCases := []struct {
		name        string
		key         string
		total       int
		shift       bool
		wantDiff    int
		wantSuccess bool
		wantFH      vagabond.FavorHinder
	}{
		{name: "meets difficulty", key: "sneak", total: 12, wantDiff: 12, wantSuccess: true, wantFH: vagabond.FavorHinderNone},
		{name: "below difficulty", key: "sneak", total: 11, wantDiff: 12, wantSuccess: false, wantFH: vagabond.FavorHinderNone},
		{name: "unknown skill uses default", key: "survival", total: 10, wantDiff: 10, wantSuccess: true, wantFH: vagabond.FavorHinderNone},
		{name: "shift grants favor", key: "sneak", total: 14, shift: true, wantDiff: 12, wantSuccess: true, wantFH: vagabond.FavorHinderFavor},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectActor(actor)
			s.mockDice.EXPECT().
				RollCheck(s.ctx, &dice.RollCheckInput{
					EntityID:    actor.ID,
					Context:     "skill:" + tc.key,
					FavorHinder: tc.wantFH,
					Bonus:       1,
					Description: tc.key + " skill",
				}).
				Return(checkOutput(tc.total-1, tc.total), nil)
			s.mockReporter.EXPECT().
				ReportCheck(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, record *reporting.CheckRecord) error {
					s.Equal(vagabond.CheckKindSkill, record.Kind)
					s.Equal(tc.key, record.Key)
					s.Equal(tc.wantSuccess, record.IsSuccess)
					return nil
				})

			out, err := s.svc.RollSkill(s.ctx, &spell.RollSkillInput{
				ActorID:  actor.ID,
				SkillKey: tc.key,
				Shift:    tc.shift,
			})
			s.Require().NoError(err)
			s.Equal(vagabond.CheckKindSkill, out.Result.Kind)
			s.Equal(tc.wantDiff, out.Result.Difficulty)
			s.Equal(tc.wantSuccess, out.Result.IsSuccess)
			s.Equal(tc.wantFH, out.Result.FavorHinder)
			s.Require().NotNil(out.Result.Roll)
			s.Equal(int32(tc.total), out.Result.Roll.Total)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollSave() {
	actor := builders.NewActorBuilder().
		WithSave("reflex", 14).
		WithFavorHinder(vagabond.FavorHinderHinder).
		Build()
	s.expectActor(actor)

	s.mockDice.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollCheckInput) (*dice.RollCheckOutput, error) {
			s.Equal("save:reflex", input.Context)
			s.Equal(vagabond.FavorHinderHinder, input.FavorHinder)
			return checkOutput(13, 13), nil
		})
	s.mockReporter.EXPECT().ReportCheck(s.ctx, gomock.Any()).Return(nil)

	out, err := s.svc.RollSave(s.ctx, &spell.RollSaveInput{ActorID: actor.ID, SaveKey: "reflex"})
	s.Require().NoError(err)
	s.Equal(vagabond.CheckKindSave, out.Result.Kind)
	s.Equal("reflex", out.Result.Key)
	s.Equal(14, out.Result.Difficulty)
	s.False(out.Result.IsSuccess)
}

func (s *OrchestratorTestSuite) TestChecksIgnoreAutoFailStatus() {
	actor := builders.NewActorBuilder().WithAutoFail().Build()
	s.expectActor(actor)
	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(15, 15), nil)
	s.mockReporter.EXPECT().ReportCheck(s.ctx, gomock.Any()).Return(nil)

	out, err := s.svc.RollSave(s.ctx, &spell.RollSaveInput{ActorID: actor.ID, SaveKey: "will"})
	s.Require().NoError(err)
	s.True(out.Result.IsSuccess)
}

func (s *OrchestratorTestSuite) TestCheckFailures() {
	s.Run("missing keys", func() {
		_, err := s.svc.RollSkill(s.ctx, &spell.RollSkillInput{ActorID: "actor-1"})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "skill_key")

		_, err = s.svc.RollSave(s.ctx, &spell.RollSaveInput{SaveKey: "will"})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "actor_id")

		_, err = s.svc.RollSave(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown actor", func() {
		s.mockActorRepo.EXPECT().
			Get(s.ctx, actorrepo.GetInput{ActorID: "actor-gone"}).
			Return(nil, errors.NotFound("actor not found"))

		_, err := s.svc.RollSkill(s.ctx, &spell.RollSkillInput{ActorID: "actor-gone", SkillKey: "sneak"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("dice failure is returned", func() {
		actor := builders.NewActorBuilder().Build()
		s.expectActor(actor)
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("dice offline"))

		_, err := s.svc.RollSkill(s.ctx, &spell.RollSkillInput{ActorID: actor.ID, SkillKey: "sneak"})
		s.True(errors.IsUnavailable(err))
	})

	s.Run("report failure still returns the result", func() {
		actor := builders.NewActorBuilder().Build()
		s.expectActor(actor)
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(4, 4), nil)
		s.mockReporter.EXPECT().ReportCheck(s.ctx, gomock.Any()).Return(errors.Internal("bus closed"))

		out, err := s.svc.RollSkill(s.ctx, &spell.RollSkillInput{ActorID: actor.ID, SkillKey: "arcana"})
		s.Require().NoError(err)
		s.False(out.Result.IsSuccess)
	})
}
