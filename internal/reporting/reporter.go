// Package reporting announces resolved casts, auto-failed attempts and
// skill or save checks.
// Presentation is left to whoever subscribes to the events.
package reporting

//go:generate mockgen -destination=mock/mock_reporter.go -package=reportingmock github.com/KirkDiggler/vagabond-spellcraft/internal/reporting Reporter

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
)

// Event types published on the bus
const (
	EventSpellCast     = "vagabond.spell.cast"
	EventSpellAutoFail = "vagabond.spell.autofail"
	EventCheck         = "vagabond.check"

	// ContextKeyRecord holds the *CastRecord, *AutoFailRecord or *CheckRecord
	ContextKeyRecord = "record"

	// RollTypeSpell is the roll type of an auto-failed spell check
	RollTypeSpell = "spell"
)

// CastRecord is everything a presenter needs to describe a resolved cast
type CastRecord struct {
	CastID       string
	ActorID      string
	ActorName    string
	ActorType    vagabond.ActorType
	Spell        *vagabond.SpellDefinition
	State        *vagabond.SpellState // configuration the cast was made with, before reset
	Roll         *vagabond.RollReference
	DamageRoll   *vagabond.RollReference
	Difficulty   int
	IsSuccess    bool
	IsCritical   bool
	ManaSkill    string
	FavorHinder  vagabond.FavorHinder
	Costs        vagabond.CostBreakdown
	DeliveryText string
	Targets      []vagabond.Target
}

// AutoFailRecord describes a cast attempt refused by an auto-fail status
type AutoFailRecord struct {
	ActorID   string
	ActorName string
	ActorType vagabond.ActorType
	SpellID   string
	SpellName string
	RollType  string
}

// CheckRecord describes a resolved skill or save check
type CheckRecord struct {
	ActorID     string
	ActorName   string
	ActorType   vagabond.ActorType
	Kind        vagabond.CheckKind
	Key         string
	Roll        *vagabond.RollReference
	Difficulty  int
	IsSuccess   bool
	FavorHinder vagabond.FavorHinder
}

// Reporter hands cast outcomes to the presentation layer
type Reporter interface {
	ReportCast(ctx context.Context, record *CastRecord) error
	ReportAutoFail(ctx context.Context, record *AutoFailRecord) error
	ReportCheck(ctx context.Context, record *CheckRecord) error
}

// EventReporterConfig configures the event bus reporter
type EventReporterConfig struct {
	Bus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *EventReporterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

type eventReporter struct {
	bus events.EventBus
}

// NewEventReporter publishes records on an rpg-toolkit event bus
func NewEventReporter(cfg *EventReporterConfig) (Reporter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &eventReporter{bus: cfg.Bus}, nil
}

func (r *eventReporter) ReportCast(ctx context.Context, record *CastRecord) error {
	if record == nil {
		return errors.InvalidArgument("cast record is required")
	}

	event := events.NewGameEvent(EventSpellCast, &actorEntity{id: record.ActorID, actorType: record.ActorType}, nil)
	event.Context().Set(ContextKeyRecord, record)

	if err := r.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish cast %s", record.CastID)
	}
	return nil
}

func (r *eventReporter) ReportAutoFail(ctx context.Context, record *AutoFailRecord) error {
	if record == nil {
		return errors.InvalidArgument("auto-fail record is required")
	}
	if record.RollType == "" {
		record.RollType = RollTypeSpell
	}

	event := events.NewGameEvent(EventSpellAutoFail, &actorEntity{id: record.ActorID, actorType: record.ActorType}, nil)
	event.Context().Set(ContextKeyRecord, record)

	if err := r.bus.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish auto-fail")
	}
	return nil
}

func (r *eventReporter) ReportCheck(ctx context.Context, record *CheckRecord) error {
	if record == nil {
		return errors.InvalidArgument("check record is required")
	}

	event := events.NewGameEvent(EventCheck, &actorEntity{id: record.ActorID, actorType: record.ActorType}, nil)
	event.Context().Set(ContextKeyRecord, record)

	if err := r.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s check %s", record.Kind, record.Key)
	}
	return nil
}

// CastRecordFrom extracts the record from a cast event
func CastRecordFrom(e events.Event) (*CastRecord, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.Context().Get(ContextKeyRecord)
	if !ok {
		return nil, false
	}
	record, ok := v.(*CastRecord)
	return record, ok
}

// AutoFailRecordFrom extracts the record from an auto-fail event
func AutoFailRecordFrom(e events.Event) (*AutoFailRecord, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.Context().Get(ContextKeyRecord)
	if !ok {
		return nil, false
	}
	record, ok := v.(*AutoFailRecord)
	return record, ok
}

// CheckRecordFrom extracts the record from a check event
func CheckRecordFrom(e events.Event) (*CheckRecord, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.Context().Get(ContextKeyRecord)
	if !ok {
		return nil, false
	}
	record, ok := v.(*CheckRecord)
	return record, ok
}

// actorEntity adapts an actor to core.Entity for event sources
type actorEntity struct {
	id        string
	actorType vagabond.ActorType
}

var _ core.Entity = (*actorEntity)(nil)

func (a *actorEntity) GetID() string {
	return a.id
}

func (a *actorEntity) GetType() string {
	if a.actorType == "" {
		return string(vagabond.ActorTypeCharacter)
	}
	return string(a.actorType)
}
