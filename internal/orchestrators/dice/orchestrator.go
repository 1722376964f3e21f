// Package dice rolls checks and damage for spellcasting and records every
// roll in a dice session
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/clock"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
)

const (
	// DefaultSessionTTL is how long a roll trail is kept after the last roll
	DefaultSessionTTL = 15 * time.Minute

	// CheckDie is the die every check is made with
	CheckDie = 20

	// FavorHinderDie is added for favor and subtracted for hinder
	FavorHinderDie = 6

	// DefaultDamageDie is the die size of a spell damage die
	DefaultDamageDie = 6

	maxDiceCount = 100
)

// Matches "2d6", "1d20+5", "3d8-1"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Service defines the interface for dice operations
type Service interface {
	// RollCheck rolls a d20 with favor/hinder applied
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)

	// RollDamage rolls spell damage dice
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)

	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// Clock defaults to the wall clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	clock           clock.Clock
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		clock:           clk,
	}, nil
}

func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	fh := input.FavorHinder
	if fh == "" {
		fh = vagabond.FavorHinderNone
	}
	if !fh.IsValid() {
		return nil, errors.InvalidArgumentf("unknown favor/hinder value %q", input.FavorHinder)
	}

	face, err := o.roller.Roll(CheckDie)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to roll check die")
	}

	faces := []int32{i32(face)}
	diceTotal := face
	notation := "1d20"

	switch fh {
	case vagabond.FavorHinderFavor, vagabond.FavorHinderHinder:
		extra, err := o.roller.Roll(FavorHinderDie)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to roll favor/hinder die")
		}
		faces = append(faces, i32(extra))
		if fh == vagabond.FavorHinderFavor {
			diceTotal += extra
			notation += "+1d6"
		} else {
			diceTotal -= extra
			notation += "-1d6"
		}
	}

	notation += formatModifier(input.Bonus)
	total := diceTotal + input.Bonus

	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Kind:        dicesession.RollKindCheck,
		Notation:    notation,
		Dice:        faces,
		Total:       i32(total),
		PrimaryFace: i32(face),
		Description: input.Description,
		DiceTotal:   i32(diceTotal),
		Modifier:    i32(input.Bonus),
		RolledAt:    o.clock.Now().Unix(),
	}

	if _, err := o.record(ctx, input.EntityID, input.Context, roll, 0); err != nil {
		return nil, err
	}

	slog.Info("Check rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"favor_hinder", string(fh),
		"face", face,
		"total", total,
		"roll_id", roll.RollID,
	)

	return &RollCheckOutput{
		Roll:        roll,
		Total:       total,
		PrimaryFace: face,
	}, nil
}

func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if input.DiceCount <= 0 || input.DiceCount > maxDiceCount {
		return nil, errors.InvalidArgumentf("damage dice count must be between 1 and %d, got %d", maxDiceCount, input.DiceCount)
	}

	size := input.DieSize
	if size == 0 {
		size = DefaultDamageDie
	}
	if size < 0 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	results, err := o.roller.RollN(input.DiceCount, size)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to roll damage dice")
	}

	faces, diceTotal := sumFaces(results)
	modifier := 0
	if input.IsCritical {
		modifier = input.AttributeValue
	}
	total := diceTotal + modifier

	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Kind:        dicesession.RollKindDamage,
		Notation:    fmt.Sprintf("%dd%d%s", input.DiceCount, size, formatModifier(modifier)),
		Dice:        faces,
		Total:       i32(total),
		Description: input.Description,
		DiceTotal:   i32(diceTotal),
		Modifier:    i32(modifier),
		RolledAt:    o.clock.Now().Unix(),
	}

	if _, err := o.record(ctx, input.EntityID, input.Context, roll, 0); err != nil {
		return nil, err
	}

	slog.Info("Damage rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"is_critical", input.IsCritical,
		"total", total,
		"roll_id", roll.RollID,
	)

	return &RollDamageOutput{
		Roll:  roll,
		Total: total,
	}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, modifier, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	results, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to roll dice")
	}

	faces, diceTotal := sumFaces(results)
	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Kind:        dicesession.RollKindGeneric,
		Notation:    strings.ToLower(input.Notation),
		Dice:        faces,
		Total:       i32(diceTotal + modifier),
		Description: input.Description,
		DiceTotal:   i32(diceTotal),
		Modifier:    i32(modifier),
		RolledAt:    o.clock.Now().Unix(),
	}

	session, err := o.record(ctx, input.EntityID, input.Context, roll, input.TTL)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

func (o *orchestrator) record(ctx context.Context, entityID, rollContext string, roll *dicesession.DiceRoll, ttl time.Duration) (*dicesession.DiceSession, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	out, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: entityID,
		Context:  rollContext,
		Rolls:    []dicesession.DiceRoll{*roll},
		TTL:      ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}
	return out.Session, nil
}

// parseDiceNotation parses notation like "2d6" or "1d20+5"
func parseDiceNotation(notation string) (count, size, modifier int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 4 {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > maxDiceCount {
		return 0, 0, 0, errors.InvalidArgumentf("at most %d dice per roll: %s", maxDiceCount, notation)
	}

	return count, size, modifier, nil
}

func sumFaces(results []int) ([]int32, int) {
	faces := make([]int32, len(results))
	total := 0
	for i, r := range results {
		faces[i] = i32(r)
		total += r
	}
	return faces, total
}

func i32(v int) int32 {
	return int32(v) // #nosec G115 -- dice values and counts are small
}

func formatModifier(m int) string {
	switch {
	case m > 0:
		return fmt.Sprintf("+%d", m)
	case m < 0:
		return strconv.Itoa(m)
	}
	return ""
}

func validateSession(entityID, rollContext string) error {
	if entityID == "" {
		return errors.InvalidArgument("entity ID is required")
	}
	if rollContext == "" {
		return errors.InvalidArgument("context is required")
	}
	return nil
}
