// Package actor stores Vagabond actors and their mutable resource pools
package actor

import (
	"context"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor Repository

// GetInput identifies an actor
type GetInput struct {
	ActorID string
}

// GetOutput contains the actor with current pools
type GetOutput struct {
	Actor *vagabond.Actor
}

// SaveInput replaces an actor's profile and pools
type SaveInput struct {
	Actor *vagabond.Actor
}

// SaveOutput is returned by Save
type SaveOutput struct{}

// DebitManaInput removes Amount from the actor's current mana
type DebitManaInput struct {
	ActorID string
	Amount  int
}

// DebitManaOutput contains the pool after the debit
type DebitManaOutput struct {
	Mana vagabond.ResourcePool
}

// SetFavorHinderInput replaces the persistent favor/hinder status
type SetFavorHinderInput struct {
	ActorID     string
	FavorHinder vagabond.FavorHinder
}

// SetFavorHinderOutput is returned by SetFavorHinder
type SetFavorHinderOutput struct{}

// AdjustLuckInput moves current luck by Delta
type AdjustLuckInput struct {
	ActorID string
	Delta   int
}

// AdjustLuckOutput contains the pool after clamping
type AdjustLuckOutput struct {
	Luck    vagabond.LuckPool
	Changed bool
}

// Repository reads actors and applies atomic pool updates
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// DebitMana re-reads the pool and refuses with ResourceExhausted when
	// current mana is below Amount. Nothing is written on refusal.
	DebitMana(ctx context.Context, input DebitManaInput) (*DebitManaOutput, error)

	SetFavorHinder(ctx context.Context, input SetFavorHinderInput) (*SetFavorHinderOutput, error)

	// AdjustLuck clamps the result to [0, max]
	AdjustLuck(ctx context.Context, input AdjustLuckInput) (*AdjustLuckOutput, error)
}
