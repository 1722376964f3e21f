package reporting_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/testutils"
)

type ReporterTestSuite struct {
	suite.Suite
	bus      *events.Bus
	reporter reporting.Reporter
	ctx      context.Context
}

func TestReporterSuite(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupTest() {
	s.bus = events.NewBus()
	reporter, err := reporting.NewEventReporter(&reporting.EventReporterConfig{Bus: s.bus})
	s.Require().NoError(err)
	s.reporter = reporter
	s.ctx = context.Background()
}

func (s *ReporterTestSuite) TestNewEventReporter() {
	_, err := reporting.NewEventReporter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = reporting.NewEventReporter(&reporting.EventReporterConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ReporterTestSuite) TestReportCastPublishesRecord() {
	var (
		got    *reporting.CastRecord
		source string
	)
	s.bus.SubscribeFunc(reporting.EventSpellCast, 10, func(_ context.Context, e events.Event) error {
		record, ok := reporting.CastRecordFrom(e)
		s.Require().True(ok)
		got = record
		source = e.Source().GetID()
		return nil
	})

	record := &reporting.CastRecord{
		CastID:       "cast_1",
		ActorID:      "actor_1",
		ActorName:    "Mirel",
		Spell:        testutils.CreateTestFirebolt(),
		State:        &vagabond.SpellState{DamageDice: 2, DeliveryType: "remote"},
		Roll:         &vagabond.RollReference{RollID: "roll_1", Total: 15, PrimaryFace: 15},
		Difficulty:   10,
		IsSuccess:    true,
		DeliveryText: "Remote 1 target",
		Targets:      []vagabond.Target{{TokenID: "tok_1", ActorName: "Goblin"}},
	}

	s.Require().NoError(s.reporter.ReportCast(s.ctx, record))
	s.Same(record, got)
	s.Equal("actor_1", source)
}

func (s *ReporterTestSuite) TestReportAutoFailDefaultsRollType() {
	var got *reporting.AutoFailRecord
	s.bus.SubscribeFunc(reporting.EventSpellAutoFail, 10, func(_ context.Context, e events.Event) error {
		got, _ = reporting.AutoFailRecordFrom(e)
		return nil
	})

	err := s.reporter.ReportAutoFail(s.ctx, &reporting.AutoFailRecord{
		ActorID:   "actor_1",
		SpellID:   testutils.TestFireboltID,
		SpellName: "Firebolt",
	})
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(reporting.RollTypeSpell, got.RollType)
}

func (s *ReporterTestSuite) TestReportCheckPublishesRecord() {
	var got *reporting.CheckRecord
	s.bus.SubscribeFunc(reporting.EventCheck, 10, func(_ context.Context, e events.Event) error {
		got, _ = reporting.CheckRecordFrom(e)
		return nil
	})

	record := &reporting.CheckRecord{
		ActorID:    "actor_1",
		Kind:       vagabond.CheckKindSave,
		Key:        "reflex",
		Roll:       &vagabond.RollReference{RollID: "roll_2", Total: 9, PrimaryFace: 9},
		Difficulty: 12,
	}
	s.Require().NoError(s.reporter.ReportCheck(s.ctx, record))
	s.Same(record, got)

	_, ok := reporting.CastRecordFrom(events.NewGameEvent(reporting.EventCheck, nil, nil))
	s.False(ok)
}

func (s *ReporterTestSuite) TestEventsAreNotCrossDelivered() {
	castCalls := 0
	s.bus.SubscribeFunc(reporting.EventSpellCast, 10, func(_ context.Context, _ events.Event) error {
		castCalls++
		return nil
	})

	s.Require().NoError(s.reporter.ReportAutoFail(s.ctx, &reporting.AutoFailRecord{ActorID: "actor_1"}))
	s.Equal(0, castCalls)
}

func (s *ReporterTestSuite) TestNilRecords() {
	s.True(errors.IsInvalidArgument(s.reporter.ReportCast(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.reporter.ReportAutoFail(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.reporter.ReportCheck(s.ctx, nil)))

	_, ok := reporting.CastRecordFrom(nil)
	s.False(ok)
}

func (s *ReporterTestSuite) TestSubscribeLogger() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	ids := reporting.SubscribeLogger(s.bus)
	s.Len(ids, 3)

	s.Require().NoError(s.reporter.ReportCast(s.ctx, &reporting.CastRecord{
		CastID:  "cast_9",
		ActorID: "actor_1",
		Spell:   testutils.CreateTestLight(),
	}))
	s.Require().NoError(s.reporter.ReportAutoFail(s.ctx, &reporting.AutoFailRecord{
		ActorID:   "actor_1",
		SpellName: "Light",
	}))

	s.Require().NoError(s.reporter.ReportCheck(s.ctx, &reporting.CheckRecord{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "sneak",
	}))

	s.Contains(buf.String(), "cast_id=cast_9")
	s.Contains(buf.String(), "key=sneak")
	s.Contains(buf.String(), "Spell auto-failed")

	for _, id := range ids {
		s.NoError(s.bus.Unsubscribe(id))
	}
}
