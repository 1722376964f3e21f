package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vagabond-spellcraft/internal/redis"
)

const (
	// Key pattern: dice_session:{entity_id}:{context}, a list of roll JSON
	sessionKeyPrefix = "dice_session:"
	defaultTTL       = 15 * time.Minute

	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
	errNoRolls       = "at least one roll is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errNoRolls)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	values := make([]interface{}, 0, len(input.Rolls))
	for i := range input.Rolls {
		data, err := json.Marshal(&input.Rolls[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal roll")
		}
		values = append(values, data)
	}

	key := buildKey(input.EntityID, input.Context)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, ttl)
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to append rolls in Redis")
	}

	rolls, err := decodeRolls(rangeCmd.Val())
	if err != nil {
		return nil, err
	}

	return &AppendOutput{
		Session: &DiceSession{
			EntityID:  input.EntityID,
			Context:   input.Context,
			Rolls:     rolls,
			ExpiresAt: r.clock.Now().Add(ttl),
		},
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)
	pipe := r.client.Pipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	ttlCmd := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	raw := rangeCmd.Val()
	if len(raw) == 0 {
		return nil, errors.NotFoundf("dice session %s not found", input.Context).
			WithMeta("entity_id", input.EntityID)
	}

	rolls, err := decodeRolls(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		Session: &DiceSession{
			EntityID:  input.EntityID,
			Context:   input.Context,
			Rolls:     rolls,
			ExpiresAt: r.clock.Now().Add(ttlCmd.Val()),
		},
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)
	pipe := r.client.TxPipeline()
	lenCmd := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{
		// nolint:gosec // roll count is always small
		RollsDeleted: int32(lenCmd.Val()),
	}, nil
}

func decodeRolls(raw []string) ([]DiceRoll, error) {
	rolls := make([]DiceRoll, 0, len(raw))
	for _, item := range raw {
		var roll DiceRoll
		if err := json.Unmarshal([]byte(item), &roll); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal roll")
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

func validateKey(entityID, context string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

func buildKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
