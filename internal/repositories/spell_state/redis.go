package spellstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	redisclient "github.com/KirkDiggler/vagabond-spellcraft/internal/redis"
)

const (
	// Key pattern: spell_states:{actor_id}, one field per spell ID
	keyPrefix = "spell_states:"

	errActorIDEmpty = "actor ID cannot be empty"
	errSpellIDEmpty = "spell ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for spell configurations
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}

	data, err := r.client.HGet(ctx, buildKey(input.ActorID), input.SpellID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("spell state not found for spell %s", input.SpellID).
				WithMeta("actor_id", input.ActorID).
				WithMeta("spell_id", input.SpellID)
		}
		return nil, errors.Wrap(err, "failed to get spell state from Redis")
	}

	var state vagabond.SpellState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell state for spell %s", input.SpellID)
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateIDs(input.ActorID, input.SpellID); err != nil {
		return nil, err
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell state")
	}

	if err := r.client.HSet(ctx, buildKey(input.ActorID), input.SpellID, data).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store spell state in Redis")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, buildKey(input.ActorID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spell states from Redis")
	}

	states := make(map[string]*vagabond.SpellState, len(raw))
	for spellID, data := range raw {
		var state vagabond.SpellState
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell state for spell %s", spellID)
		}
		states[spellID] = &state
	}

	return &ListOutput{States: states}, nil
}

func validateIDs(actorID, spellID string) error {
	if actorID == "" {
		return errors.InvalidArgument(errActorIDEmpty)
	}
	if spellID == "" {
		return errors.InvalidArgument(errSpellIDEmpty)
	}
	return nil
}

func buildKey(actorID string) string {
	return fmt.Sprintf("%s%s", keyPrefix, actorID)
}
