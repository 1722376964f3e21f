package spell_test

import (
	"context"
	"sync"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
	spellstate "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/spellcraft"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/testutils"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/testutils/builders"
)

func checkOutput(face, total int) *dice.RollCheckOutput {
	return &dice.RollCheckOutput{
		Roll: &dicesession.DiceRoll{
			RollID:      "roll-check",
			Kind:        dicesession.RollKindCheck,
			Notation:    "1d20",
			Dice:        []int32{int32(face)},
			Total:       int32(total),
			PrimaryFace: int32(face),
		},
		Total:       total,
		PrimaryFace: face,
	}
}

func damageOutput(faces ...int32) *dice.RollDamageOutput {
	total := int32(0)
	for _, f := range faces {
		total += f
	}
	return &dice.RollDamageOutput{
		Roll: &dicesession.DiceRoll{
			RollID: "roll-damage",
			Kind:   dicesession.RollKindDamage,
			Dice:   faces,
			Total:  total,
		},
		Total: int(total),
	}
}

func (s *OrchestratorTestSuite) castFirebolt(actor *vagabond.Actor) (*spell.CastOutput, error) {
	return s.svc.Cast(s.ctx, &spell.CastInput{
		ActorID: actor.ID,
		SpellID: testutils.TestFireboltID,
	})
}

func (s *OrchestratorTestSuite) TestCastRejectsBeforeAnySideEffect() {
	testCases := []struct {
		name    string
		actor   *vagabond.Actor
		state   *vagabond.SpellState
		reason  vagabond.RejectionReason
		message string
	}{
		{
			name:   "no delivery selected",
			actor:  builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build(),
			state:  nil,
			reason: vagabond.RejectionNoDeliverySelected,
		},
		{
			name: "cost exceeds current mana",
			actor: builders.NewActorBuilder().
				WithSpell(testutils.CreateTestFirebolt()).
				WithMana(3, 10).
				Build(),
			state:   &vagabond.SpellState{DamageDice: 3, DeliveryType: "area"},
			reason:  vagabond.RejectionInsufficientResource,
			message: "need 4, have 3",
		},
		{
			name: "cost exceeds casting max",
			actor: builders.NewActorBuilder().
				WithSpell(testutils.CreateTestFirebolt()).
				WithMana(10, 3).
				Build(),
			state:   &vagabond.SpellState{DamageDice: 3, DeliveryType: "area"},
			reason:  vagabond.RejectionExceedsCastingCeiling,
			message: "casting max of 3",
		},
		{
			name: "no mana skill",
			actor: builders.NewActorBuilder().
				WithSpell(testutils.CreateTestFirebolt()).
				WithoutManaSkill().
				Build(),
			state:   &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"},
			reason:  vagabond.RejectionNotEligibleToCast,
			message: "no mana skill configured",
		},
		{
			name: "mana skill not defined",
			actor: builders.NewActorBuilder().
				WithSpell(testutils.CreateTestFirebolt()).
				WithUndefinedManaSkill("mysticism").
				Build(),
			state:   &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"},
			reason:  vagabond.RejectionNotEligibleToCast,
			message: "mana skill mysticism not defined",
		},
		{
			name: "class cannot cast",
			actor: builders.NewActorBuilder().
				WithSpell(testutils.CreateTestFirebolt()).
				AsNonCaster().
				Build(),
			state:  &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"},
			reason: vagabond.RejectionNotEligibleToCast,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectActor(tc.actor)
			s.expectState(tc.actor.ID, testutils.TestFireboltID, tc.state)

			out, err := s.castFirebolt(tc.actor)
			s.Require().NoError(err)
			s.Equal(vagabond.CastStageRejected, out.Stage)
			s.Require().NotNil(out.Rejection)
			s.Equal(tc.reason, out.Rejection.Reason)
			if tc.message != "" {
				s.Contains(out.Rejection.Message, tc.message)
			}
			s.Nil(out.Result)
			s.Equal([]vagabond.CastStage{vagabond.CastStageValidating, vagabond.CastStageRejected}, out.Path)
		})
	}
}

func (s *OrchestratorTestSuite) TestCastAutoFail() {
	actor := builders.NewActorBuilder().
		WithSpell(testutils.CreateTestFirebolt()).
		WithAutoFail().
		Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
	s.mockReporter.EXPECT().
		ReportAutoFail(s.ctx, &reporting.AutoFailRecord{
			ActorID:   actor.ID,
			ActorName: actor.Name,
			ActorType: actor.Type,
			SpellID:   testutils.TestFireboltID,
			SpellName: "Firebolt",
			RollType:  reporting.RollTypeSpell,
		}).
		Return(nil)

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.Equal(vagabond.CastStageRejected, out.Stage)
	s.Equal(vagabond.RejectionAutoFailStatus, out.Rejection.Reason)
}

func (s *OrchestratorTestSuite) TestCastAutoFailReportErrorStillRejects() {
	actor := builders.NewActorBuilder().
		WithSpell(testutils.CreateTestFirebolt()).
		WithAutoFail().
		Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
	s.mockReporter.EXPECT().ReportAutoFail(s.ctx, gomock.Any()).Return(errors.Internal("bus closed"))

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.Equal(vagabond.RejectionAutoFailStatus, out.Rejection.Reason)
}

func (s *OrchestratorTestSuite) TestCastSuccess() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	targets := []vagabond.Target{{TokenID: "token-1", ActorName: "Goblin"}}

	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 2, DeliveryType: "touch"})

	gomock.InOrder(
		s.mockDice.EXPECT().
			RollCheck(s.ctx, &dice.RollCheckInput{
				EntityID:    actor.ID,
				Context:     "spell:" + testutils.TestFireboltID,
				FavorHinder: vagabond.FavorHinderNone,
				Description: "Firebolt (arcana)",
			}).
			Return(checkOutput(12, 12), nil),
		s.mockDice.EXPECT().
			RollDamage(s.ctx, &dice.RollDamageInput{
				EntityID:       actor.ID,
				Context:        "spell:" + testutils.TestFireboltID,
				DiceCount:      2,
				IsCritical:     false,
				AttributeValue: 4,
				Description:    "Firebolt fire damage",
			}).
			Return(damageOutput(3, 5), nil),
		s.mockActorRepo.EXPECT().
			DebitMana(s.ctx, actorrepo.DebitManaInput{ActorID: actor.ID, Amount: 2}).
			Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 8, CastingMax: 10}}, nil),
		s.mockReporter.EXPECT().
			ReportCast(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, record *reporting.CastRecord) error {
				s.Equal("cast_1", record.CastID)
				s.True(record.IsSuccess)
				s.Equal("arcana", record.ManaSkill)
				s.Equal("Touch", record.DeliveryText)
				s.Equal(2, record.State.DamageDice)
				s.Equal(int32(8), record.DamageRoll.Total)
				s.Equal(targets, record.Targets)
				return nil
			}),
		s.mockStateRepo.EXPECT().
			Save(s.ctx, spellstate.SaveInput{
				ActorID: actor.ID,
				SpellID: testutils.TestFireboltID,
				State:   &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"},
			}).
			Return(&spellstate.SaveOutput{}, nil),
	)

	out, err := s.svc.Cast(s.ctx, &spell.CastInput{
		ActorID: actor.ID,
		SpellID: testutils.TestFireboltID,
		Targets: targets,
	})
	s.Require().NoError(err)
	s.Equal(vagabond.CastStageResolved, out.Stage)
	s.Equal([]vagabond.CastStage{
		vagabond.CastStageValidating,
		vagabond.CastStageRollPending,
		vagabond.CastStageResolved,
	}, out.Path)
	s.Nil(out.Rejection)

	result := out.Result
	s.Require().NotNil(result)
	s.True(result.IsSuccess)
	s.False(result.IsCritical)
	s.Equal(10, result.Difficulty)
	s.Equal("roll-check", result.Roll.RollID)
	s.Equal(int32(12), result.Roll.PrimaryFace)
	s.Equal("roll-damage", result.DamageRoll.RollID)
	s.Equal(2, result.Costs.TotalCost)
	s.Equal(8, result.Mana.Current)
	s.Equal("Touch", result.DeliveryText)
}

func (s *OrchestratorTestSuite) TestCastFailedCheckIsFree() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 2, DeliveryType: "touch"})

	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(5, 5), nil)
	s.mockReporter.EXPECT().
		ReportCast(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *reporting.CastRecord) error {
			s.False(record.IsSuccess)
			s.Nil(record.DamageRoll)
			return nil
		})
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.Equal(vagabond.CastStageResolved, out.Stage)
	s.False(out.Result.IsSuccess)
	s.Nil(out.Result.DamageRoll)
	s.Equal(actor.Mana, out.Result.Mana)
}

func (s *OrchestratorTestSuite) TestCastAlwaysRollDamageOnMiss() {
	svc := s.newService(&spellcraft.Settings{RollDamageWithCheck: true, AlwaysRollDamage: true})
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(3, 3), nil)
	s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(damageOutput(4), nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := svc.Cast(s.ctx, &spell.CastInput{ActorID: actor.ID, SpellID: testutils.TestFireboltID})
	s.Require().NoError(err)
	s.False(out.Result.IsSuccess)
	s.Require().NotNil(out.Result.DamageRoll)
	s.Equal(actor.Mana, out.Result.Mana)
}

func (s *OrchestratorTestSuite) TestCastWithoutSettingsSkipsDamage() {
	svc := s.newService(nil)
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(15, 15), nil)
	s.mockActorRepo.EXPECT().DebitMana(s.ctx, gomock.Any()).
		Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 9, CastingMax: 10}}, nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := svc.Cast(s.ctx, &spell.CastInput{ActorID: actor.ID, SpellID: testutils.TestFireboltID})
	s.Require().NoError(err)
	s.True(out.Result.IsSuccess)
	s.Nil(out.Result.DamageRoll)
}

func (s *OrchestratorTestSuite) TestCastCritical() {
	actor := builders.NewActorBuilder().
		WithSpell(testutils.CreateTestFirebolt()).
		WithBonuses(vagabond.Bonuses{SpellCritBonus: 1}).
		WithFavorHinder(vagabond.FavorHinderFavor).
		Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	s.mockDice.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollCheckInput) (*dice.RollCheckOutput, error) {
			s.Equal(vagabond.FavorHinderFavor, input.FavorHinder)
			return checkOutput(19, 22), nil
		})
	s.mockDice.EXPECT().
		RollDamage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollDamageInput) (*dice.RollDamageOutput, error) {
			s.True(input.IsCritical)
			s.Equal(4, input.AttributeValue)
			return damageOutput(6), nil
		})
	s.mockActorRepo.EXPECT().DebitMana(s.ctx, gomock.Any()).
		Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 9, CastingMax: 10}}, nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.True(out.Result.IsCritical)
	s.Equal(vagabond.FavorHinderFavor, out.Result.FavorHinder)
}

func (s *OrchestratorTestSuite) TestCastOpposingIntentCancelsFavor() {
	actor := builders.NewActorBuilder().
		WithSpell(testutils.CreateTestFirebolt()).
		WithFavorHinder(vagabond.FavorHinderFavor).
		Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	s.mockDice.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollCheckInput) (*dice.RollCheckOutput, error) {
			s.Equal(vagabond.FavorHinderNone, input.FavorHinder)
			return checkOutput(2, 2), nil
		})
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := s.svc.Cast(s.ctx, &spell.CastInput{
		ActorID: actor.ID,
		SpellID: testutils.TestFireboltID,
		Ctrl:    true,
	})
	s.Require().NoError(err)
	s.Equal(vagabond.FavorHinderNone, out.Result.FavorHinder)
}

func (s *OrchestratorTestSuite) TestCastCheckBonusCountsTowardDifficulty() {
	actor := builders.NewActorBuilder().
		WithSpell(testutils.CreateTestFirebolt()).
		WithCheckBonus(2).
		Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	s.mockDice.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollCheckInput) (*dice.RollCheckOutput, error) {
			s.Equal(2, input.Bonus)
			return checkOutput(8, 8+input.Bonus), nil
		})
	s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(damageOutput(3), nil)
	s.mockActorRepo.EXPECT().DebitMana(s.ctx, gomock.Any()).
		Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 8, CastingMax: 10}}, nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.True(out.Result.IsSuccess)
	s.Equal(10, out.Result.Difficulty)
}

func (s *OrchestratorTestSuite) TestCastNoRollRequired() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestWard()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestWardID, &vagabond.SpellState{DamageDice: 1, UseFx: true, DeliveryType: "touch"})

	s.mockActorRepo.EXPECT().
		DebitMana(s.ctx, actorrepo.DebitManaInput{ActorID: actor.ID, Amount: 1}).
		Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 9, CastingMax: 10}}, nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().
		Save(s.ctx, spellstate.SaveInput{
			ActorID: actor.ID,
			SpellID: testutils.TestWardID,
			State:   &vagabond.SpellState{DamageDice: 1, UseFx: true, DeliveryType: "touch"},
		}).
		Return(&spellstate.SaveOutput{}, nil)

	out, err := s.svc.Cast(s.ctx, &spell.CastInput{ActorID: actor.ID, SpellID: testutils.TestWardID})
	s.Require().NoError(err)
	s.Equal(vagabond.CastStageResolved, out.Stage)
	s.Equal([]vagabond.CastStage{
		vagabond.CastStageValidating,
		vagabond.CastStageAutoSuccess,
		vagabond.CastStageResolved,
	}, out.Path)
	s.True(out.Result.IsSuccess)
	s.Nil(out.Result.Roll)
	s.Equal(9, out.Result.Mana.Current)
}

func (s *OrchestratorTestSuite) TestCastFreeConfigurationSkipsDebit() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestLight()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestLightID, &vagabond.SpellState{DamageDice: 1, UseFx: true, DeliveryType: "remote"})

	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(14, 14), nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	out, err := s.svc.Cast(s.ctx, &spell.CastInput{ActorID: actor.ID, SpellID: testutils.TestLightID})
	s.Require().NoError(err)
	s.True(out.Result.IsSuccess)
	s.Equal(0, out.Result.Costs.TotalCost)
	s.Equal("Remote 1 target", out.Result.DeliveryText)
}

func (s *OrchestratorTestSuite) TestCastServiceFailures() {
	s.Run("check roll fails", func() {
		actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
		s.expectActor(actor)
		s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("dice offline"))

		out, err := s.castFirebolt(actor)
		s.Require().NoError(err)
		s.Equal(vagabond.CastStageRejected, out.Stage)
		s.Equal(vagabond.RejectionExternalServiceFailure, out.Rejection.Reason)
		s.Contains(out.Rejection.Message, "dice offline")
		s.Equal([]vagabond.CastStage{
			vagabond.CastStageValidating,
			vagabond.CastStageRollPending,
			vagabond.CastStageRejected,
		}, out.Path)
	})

	s.Run("damage roll fails before the debit", func() {
		actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
		s.expectActor(actor)
		s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 2, DeliveryType: "touch"})
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(18, 18), nil)
		s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("dice offline"))

		out, err := s.castFirebolt(actor)
		s.Require().NoError(err)
		s.Equal(vagabond.RejectionExternalServiceFailure, out.Rejection.Reason)
		s.Nil(out.Result)
	})

	s.Run("debit refused by a concurrent spend", func() {
		actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
		s.expectActor(actor)
		s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(18, 18), nil)
		s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(damageOutput(2), nil)
		s.mockActorRepo.EXPECT().
			DebitMana(s.ctx, gomock.Any()).
			Return(nil, errors.ResourceExhausted("not enough mana: need 1, have 0"))

		out, err := s.castFirebolt(actor)
		s.Require().NoError(err)
		s.Equal(vagabond.RejectionInsufficientResource, out.Rejection.Reason)
		s.Equal("not enough mana: need 1, have 0", out.Rejection.Message)
	})

	s.Run("debit storage failure", func() {
		actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
		s.expectActor(actor)
		s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
		s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(18, 18), nil)
		s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(damageOutput(2), nil)
		s.mockActorRepo.EXPECT().DebitMana(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

		out, err := s.castFirebolt(actor)
		s.Require().NoError(err)
		s.Equal(vagabond.RejectionExternalServiceFailure, out.Rejection.Reason)
	})
}

func (s *OrchestratorTestSuite) TestCastSurvivesReportAndResetFailures() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})
	s.mockDice.EXPECT().RollCheck(s.ctx, gomock.Any()).Return(checkOutput(18, 18), nil)
	s.mockDice.EXPECT().RollDamage(s.ctx, gomock.Any()).Return(damageOutput(2), nil)
	s.mockActorRepo.EXPECT().DebitMana(s.ctx, gomock.Any()).
		Return(&actorrepo.DebitManaOutput{Mana: vagabond.ResourcePool{Current: 9, CastingMax: 10}}, nil)
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(errors.Internal("bus closed"))
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	out, err := s.castFirebolt(actor)
	s.Require().NoError(err)
	s.Equal(vagabond.CastStageResolved, out.Stage)
	s.Equal(9, out.Result.Mana.Current)
}

func (s *OrchestratorTestSuite) TestCastRefusesConcurrentCastOfSameSpell() {
	actor := builders.NewActorBuilder().WithSpell(testutils.CreateTestFirebolt()).Build()
	s.expectActor(actor)
	s.expectState(actor.ID, testutils.TestFireboltID, &vagabond.SpellState{DamageDice: 1, DeliveryType: "touch"})

	rolling := make(chan struct{})
	proceed := make(chan struct{})
	s.mockDice.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *dice.RollCheckInput) (*dice.RollCheckOutput, error) {
			close(rolling)
			<-proceed
			return checkOutput(2, 2), nil
		})
	s.mockReporter.EXPECT().ReportCast(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&spellstate.SaveOutput{}, nil)

	var wg sync.WaitGroup
	var first *spell.CastOutput
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = s.castFirebolt(actor)
	}()

	<-rolling
	_, err := s.castFirebolt(actor)
	s.True(errors.IsAborted(err))
	close(proceed)
	wg.Wait()

	s.Require().NoError(firstErr)
	s.Equal(vagabond.CastStageResolved, first.Stage)
}
