package dice_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session/mock"
)

// scriptedRoller returns predetermined faces in order
type scriptedRoller struct {
	faces []int
	sizes []int
	err   error
}

func (r *scriptedRoller) next(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.faces) == 0 {
		return 0, fmt.Errorf("no scripted faces left")
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	r.sizes = append(r.sizes, size)
	return face, nil
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	return r.next(size)
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *dicesessionmock.MockRepository
	roller   *scriptedRoller
	svc      dice.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = dicesessionmock.NewMockRepository(s.ctrl)
	s.roller = &scriptedRoller{}
	s.ctx = context.Background()

	svc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockRepo,
		IDGenerator:     idgen.NewSequential("roll"),
		Roller:          s.roller,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectAppend() {
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Equal(dice.DefaultSessionTTL, input.TTL)
			return &dicesession.AppendOutput{
				Session: &dicesession.DiceSession{
					EntityID: input.EntityID,
					Context:  input.Context,
					Rolls:    input.Rolls,
				},
			}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := dice.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(&dice.Config{})
	s.True(errors.IsInvalidArgument(err))

	svc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockRepo,
		IDGenerator:     idgen.NewSequential(""),
	})
	s.NoError(err)
	s.NotNil(svc)
}

func (s *OrchestratorTestSuite) TestRollCheck() {
	testCases := []struct {
		name        string
		favorHinder vagabond.FavorHinder
		bonus       int
		faces       []int
		total       int
		notation    string
		sizes       []int
	}{
		{
			name:        "plain d20",
			favorHinder: vagabond.FavorHinderNone,
			faces:       []int{14},
			total:       14,
			notation:    "1d20",
			sizes:       []int{20},
		},
		{
			name:        "favor adds a d6",
			favorHinder: vagabond.FavorHinderFavor,
			faces:       []int{9, 4},
			total:       13,
			notation:    "1d20+1d6",
			sizes:       []int{20, 6},
		},
		{
			name:        "hinder subtracts a d6",
			favorHinder: vagabond.FavorHinderHinder,
			faces:       []int{12, 5},
			total:       7,
			notation:    "1d20-1d6",
			sizes:       []int{20, 6},
		},
		{
			name:     "empty favor/hinder is none and bonus applies",
			bonus:    2,
			faces:    []int{10},
			total:    12,
			notation: "1d20+2",
			sizes:    []int{20},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.faces = tc.faces
			s.roller.sizes = nil
			s.expectAppend()

			out, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{
				EntityID:    "actor_1",
				Context:     "spell:firebolt",
				FavorHinder: tc.favorHinder,
				Bonus:       tc.bonus,
			})
			s.Require().NoError(err)
			s.Equal(tc.total, out.Total)
			s.Equal(tc.faces[0], out.PrimaryFace)
			s.Equal(tc.notation, out.Roll.Notation)
			s.Equal(dicesession.RollKindCheck, out.Roll.Kind)
			s.Equal(int32(tc.total), out.Roll.Total)
			s.Len(out.Roll.Dice, len(tc.faces))
			s.Equal(tc.sizes, s.roller.sizes)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollCheckErrors() {
	s.Run("roller failure is unavailable", func() {
		s.roller.err = fmt.Errorf("entropy exhausted")
		defer func() { s.roller.err = nil }()

		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{EntityID: "actor_1", Context: "c"})
		s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	})

	s.Run("record failure is returned", func() {
		s.roller.faces = []int{3}
		s.mockRepo.EXPECT().Append(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{EntityID: "actor_1", Context: "c"})
		s.Error(err)
	})

	s.Run("unknown favor/hinder is rejected", func() {
		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{EntityID: "actor_1", Context: "c", FavorHinder: "lucky"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("requires entity and context", func() {
		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{Context: "c"})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.svc.RollCheck(s.ctx, &dice.RollCheckInput{EntityID: "actor_1"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRollDamage() {
	s.Run("sums d6 faces", func() {
		s.roller.faces = []int{2, 6, 3}
		s.roller.sizes = nil
		s.expectAppend()

		out, err := s.svc.RollDamage(s.ctx, &dice.RollDamageInput{
			EntityID:       "actor_1",
			Context:        "spell:firebolt",
			DiceCount:      3,
			AttributeValue: 4,
		})
		s.Require().NoError(err)
		s.Equal(11, out.Total)
		s.Equal("3d6", out.Roll.Notation)
		s.Equal([]int32{2, 6, 3}, out.Roll.Dice)
		s.Equal([]int{6, 6, 6}, s.roller.sizes)
	})

	s.Run("critical adds the casting attribute", func() {
		s.roller.faces = []int{5, 1}
		s.expectAppend()

		out, err := s.svc.RollDamage(s.ctx, &dice.RollDamageInput{
			EntityID:       "actor_1",
			Context:        "spell:firebolt",
			DiceCount:      2,
			IsCritical:     true,
			AttributeValue: 4,
		})
		s.Require().NoError(err)
		s.Equal(10, out.Total)
		s.Equal("2d6+4", out.Roll.Notation)
		s.Equal(int32(6), out.Roll.DiceTotal)
		s.Equal(int32(4), out.Roll.Modifier)
	})

	s.Run("rejects zero dice", func() {
		_, err := s.svc.RollDamage(s.ctx, &dice.RollDamageInput{EntityID: "actor_1", Context: "c"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRollDice() {
	s.Run("rolls notation with a modifier", func() {
		s.roller.faces = []int{4, 5}
		s.expectAppend()

		out, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{
			EntityID: "actor_1",
			Context:  "generic",
			Notation: "2D8-3",
		})
		s.Require().NoError(err)
		s.Equal("2d8-3", out.Roll.Notation)
		s.Equal(int32(6), out.Roll.Total)
		s.Equal(int32(-3), out.Roll.Modifier)
		s.Len(out.Session.Rolls, 1)
	})

	invalid := []string{"", "d6", "2x6", "0d6", "1d0", "101d6", "1d6+"}
	for _, notation := range invalid {
		s.Run("rejects "+notation, func() {
			_, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{
				EntityID: "actor_1",
				Context:  "generic",
				Notation: notation,
			})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGetRollSession() {
	session := &dicesession.DiceSession{EntityID: "actor_1", Context: "generic"}
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "actor_1", Context: "generic"}).
		Return(&dicesession.GetOutput{Session: session}, nil)

	out, err := s.svc.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "actor_1", Context: "generic"})
	s.Require().NoError(err)
	s.Equal(session, out.Session)

	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("dice session not found"))

	_, err = s.svc.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "actor_1", Context: "other"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearRollSession() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, dicesession.DeleteInput{EntityID: "actor_1", Context: "generic"}).
		Return(&dicesession.DeleteOutput{RollsDeleted: 3}, nil)

	out, err := s.svc.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "actor_1", Context: "generic"})
	s.Require().NoError(err)
	s.Equal(int32(3), out.RollsDeleted)
}
