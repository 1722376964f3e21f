// Package spellstate persists the per actor+spell casting configuration
package spellstate

import (
	"context"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spellstatemock github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state Repository

// GetInput identifies one stored configuration
type GetInput struct {
	ActorID string
	SpellID string
}

// GetOutput contains the stored configuration
type GetOutput struct {
	State *vagabond.SpellState
}

// SaveInput replaces the configuration for an actor+spell
type SaveInput struct {
	ActorID string
	SpellID string
	State   *vagabond.SpellState
}

// SaveOutput is returned by Save
type SaveOutput struct{}

// ListInput selects every stored configuration of an actor
type ListInput struct {
	ActorID string
}

// ListOutput maps spell ID to stored configuration
type ListOutput struct {
	States map[string]*vagabond.SpellState
}

// Repository stores spell configurations keyed by actor and spell.
// Entries are never deleted: a configuration for a spell the actor
// no longer owns is simply never read again.
type Repository interface {
	// Get returns NotFound when the spell has never been configured
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the whole configuration
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns all configurations stored for an actor
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
