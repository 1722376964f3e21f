package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    dicesession.Repository
	ctx     context.Context
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	_, err := dicesession.NewRedisRepository(&dicesession.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestAppendAndGet() {
	check := dicesession.DiceRoll{
		RollID:      "roll_1",
		Kind:        dicesession.RollKindCheck,
		Notation:    "1d20",
		Dice:        []int32{14},
		Total:       14,
		PrimaryFace: 14,
		DiceTotal:   14,
	}
	damage := dicesession.DiceRoll{
		RollID:    "roll_2",
		Kind:      dicesession.RollKindDamage,
		Notation:  "2d6",
		Dice:      []int32{3, 5},
		Total:     8,
		DiceTotal: 8,
	}

	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "actor_1",
		Context:  "spell:firebolt",
		Rolls:    []dicesession.DiceRoll{check},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)
	s.Len(out.Session.Rolls, 1)
	s.Equal(s.now.Add(time.Minute), out.Session.ExpiresAt)

	out, err = s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "actor_1",
		Context:  "spell:firebolt",
		Rolls:    []dicesession.DiceRoll{damage},
	})
	s.Require().NoError(err)
	s.Equal([]dicesession.DiceRoll{check, damage}, out.Session.Rolls)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "actor_1", Context: "spell:firebolt"})
	s.Require().NoError(err)
	s.Equal([]dicesession.DiceRoll{check, damage}, got.Session.Rolls)
	s.Equal(15*time.Minute, s.mr.TTL("dice_session:actor_1:spell:firebolt"))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "actor_1",
		Context:  "spell:firebolt",
		Rolls:    []dicesession.DiceRoll{{RollID: "roll_1", Notation: "1d20"}},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "actor_1", Context: "spell:firebolt"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "actor_1",
		Context:  "generic",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "1d6"},
			{RollID: "roll_2", Notation: "1d6"},
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "actor_1", Context: "generic"})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "actor_1", Context: "generic"})
	s.Require().NoError(err)
	s.Equal(int32(0), out.RollsDeleted)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{Context: "c", Rolls: []dicesession.DiceRoll{{}}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "e", Rolls: []dicesession.DiceRoll{{}}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "e", Context: "c"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "e"})
	s.True(errors.IsInvalidArgument(err))
}
