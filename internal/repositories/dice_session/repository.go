// Package dicesession keeps a short lived audit trail of dice rolls grouped
// by the entity that rolled and the context they were rolled for.
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session Repository

// RollKind tells check rolls from damage rolls in the trail
type RollKind string

// Roll kinds
const (
	RollKindGeneric RollKind = "generic"
	RollKindCheck   RollKind = "check"
	RollKindDamage  RollKind = "damage"
)

// DiceSession is every roll recorded for one entity and context
type DiceSession struct {
	// Entity that owns these rolls, an actor ID for spellcasting
	EntityID string

	// Context groups related rolls, e.g. "spell:firebolt"
	Context string

	Rolls []DiceRoll

	// ExpiresAt slides forward on every append
	ExpiresAt time.Time
}

// DiceRoll is a single recorded roll
type DiceRoll struct {
	RollID   string   `json:"roll_id"`
	Kind     RollKind `json:"kind"`
	Notation string   `json:"notation"`

	// Individual faces in roll order
	Dice []int32 `json:"dice"`

	// Final result after modifiers
	Total int32 `json:"total"`

	// Face of the d20 for checks, used for crit detection
	PrimaryFace int32 `json:"primary_face,omitempty"`

	Description string `json:"description,omitempty"`
	DiceTotal   int32  `json:"dice_total"`
	Modifier    int32  `json:"modifier"`
	RolledAt    int64  `json:"rolled_at"`
}

// AppendInput adds rolls to a session, creating it when absent
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration
}

// AppendOutput contains the session after the append
type AppendOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Append records rolls and refreshes the session TTL
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get returns NotFound for a missing or expired session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
