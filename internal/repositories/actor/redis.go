package actor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	redisclient "github.com/KirkDiggler/vagabond-spellcraft/internal/redis"
)

const (
	// Key patterns:
	//   actor:{id}        profile JSON
	//   actor:{id}:mana   hash {current, casting_max}
	//   actor:{id}:luck   hash {current, max}
	actorKeyPrefix = "actor:"
	manaSuffix     = ":mana"
	luckSuffix     = ":luck"

	fieldCurrent    = "current"
	fieldCastingMax = "casting_max"
	fieldMax        = "max"

	errActorIDEmpty = "actor ID cannot be empty"
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

// NewRedisRepository creates a new Redis repository for actors
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

// profile is the stored JSON shape. Pools live in their own hashes so the
// debit scripts never rewrite the profile.
type profile struct {
	ID               string                               `json:"id"`
	Name             string                               `json:"name"`
	Type             vagabond.ActorType                   `json:"type"`
	Bonuses          vagabond.Bonuses                     `json:"bonuses"`
	ClassData        vagabond.ClassData                   `json:"class_data"`
	Skills           map[string]vagabond.Skill            `json:"skills,omitempty"`
	Saves            map[string]vagabond.Save             `json:"saves,omitempty"`
	Stats            map[string]int                       `json:"stats,omitempty"`
	FavorHinder      vagabond.FavorHinder                 `json:"favor_hinder"`
	AutoFailAllRolls bool                                 `json:"auto_fail_all_rolls"`
	Spells           map[string]*vagabond.SpellDefinition `json:"spells,omitempty"`
}

func toProfile(a *vagabond.Actor) *profile {
	return &profile{
		ID:               a.ID,
		Name:             a.Name,
		Type:             a.Type,
		Bonuses:          a.Bonuses,
		ClassData:        a.ClassData,
		Skills:           a.Skills,
		Saves:            a.Saves,
		Stats:            a.Stats,
		FavorHinder:      a.FavorHinder,
		AutoFailAllRolls: a.AutoFailAllRolls,
		Spells:           a.Spells,
	}
}

func (p *profile) toActor(mana vagabond.ResourcePool, luck vagabond.LuckPool) *vagabond.Actor {
	fh := p.FavorHinder
	if fh == "" {
		fh = vagabond.FavorHinderNone
	}
	return &vagabond.Actor{
		ID:               p.ID,
		Name:             p.Name,
		Type:             p.Type,
		Mana:             mana,
		Luck:             luck,
		Bonuses:          p.Bonuses,
		ClassData:        p.ClassData,
		Skills:           p.Skills,
		Saves:            p.Saves,
		Stats:            p.Stats,
		FavorHinder:      fh,
		AutoFailAllRolls: p.AutoFailAllRolls,
		Spells:           p.Spells,
	}
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	pipe := r.client.Pipeline()
	profileCmd := pipe.Get(ctx, profileKey(input.ActorID))
	manaCmd := pipe.HGetAll(ctx, manaKey(input.ActorID))
	luckCmd := pipe.HGetAll(ctx, luckKey(input.ActorID))
	// Exec reports the first failed command, which is redis.Nil for a
	// missing profile; inspect each command instead.
	_, _ = pipe.Exec(ctx)

	data, err := profileCmd.Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("actor %s not found", input.ActorID)
		}
		return nil, errors.Wrap(err, "failed to get actor from Redis")
	}

	var p profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor %s", input.ActorID)
	}

	manaFields, err := manaCmd.Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mana from Redis")
	}
	luckFields, err := luckCmd.Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get luck from Redis")
	}

	mana := vagabond.ResourcePool{
		Current:    atoi(manaFields[fieldCurrent]),
		CastingMax: atoi(manaFields[fieldCastingMax]),
	}
	luck := vagabond.LuckPool{
		Current: atoi(luckFields[fieldCurrent]),
		Max:     atoi(luckFields[fieldMax]),
	}

	return &GetOutput{Actor: p.toActor(mana, luck)}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	a := input.Actor
	if a.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	data, err := json.Marshal(toProfile(a))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, profileKey(a.ID), data, 0)
	pipe.HSet(ctx, manaKey(a.ID),
		fieldCurrent, a.Mana.Current,
		fieldCastingMax, a.Mana.CastingMax,
	)
	pipe.HSet(ctx, luckKey(a.ID),
		fieldCurrent, a.Luck.Current,
		fieldMax, a.Luck.Max,
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store actor in Redis")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) DebitMana(ctx context.Context, input DebitManaInput) (*DebitManaOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("debit amount must not be negative, got %d", input.Amount)
	}

	reply, err := debitManaScript.Run(ctx, r.client, []string{manaKey(input.ActorID)}, input.Amount).Int64Slice()
	if err != nil {
		return nil, errors.Wrap(err, "failed to debit mana")
	}
	if len(reply) != 3 {
		return nil, errors.Internalf("unexpected debit reply length %d", len(reply))
	}

	pool := vagabond.ResourcePool{Current: int(reply[1]), CastingMax: int(reply[2])}
	switch reply[0] {
	case scriptNoSuchKey:
		return nil, errors.NotFoundf("mana pool for actor %s not found", input.ActorID)
	case scriptRefused:
		return nil, errors.ResourceExhaustedf("not enough mana: need %d, have %d", input.Amount, pool.Current).
			WithMeta("required", input.Amount).
			WithMeta("available", pool.Current)
	}

	return &DebitManaOutput{Mana: pool}, nil
}

func (r *redisRepository) SetFavorHinder(ctx context.Context, input SetFavorHinderInput) (*SetFavorHinderOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if !input.FavorHinder.IsValid() {
		return nil, errors.InvalidArgumentf("unknown favor/hinder value %q", input.FavorHinder)
	}

	key := profileKey(input.ActorID)
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			return err
		}

		var p profile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return err
		}
		p.FavorHinder = input.FavorHinder

		updated, err := json.Marshal(&p)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		return &SetFavorHinderOutput{}, nil
	case err == redisclient.Nil:
		return nil, errors.NotFoundf("actor %s not found", input.ActorID)
	case err == redis.TxFailedErr:
		return nil, errors.Abortedf("actor %s was modified concurrently", input.ActorID)
	default:
		return nil, errors.Wrap(err, "failed to set favor/hinder")
	}
}

func (r *redisRepository) AdjustLuck(ctx context.Context, input AdjustLuckInput) (*AdjustLuckOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	reply, err := adjustLuckScript.Run(ctx, r.client, []string{luckKey(input.ActorID)}, input.Delta).Int64Slice()
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust luck")
	}
	if len(reply) != 3 {
		return nil, errors.Internalf("unexpected luck reply length %d", len(reply))
	}
	if reply[0] == scriptNoSuchKey {
		return nil, errors.NotFoundf("luck pool for actor %s not found", input.ActorID)
	}

	return &AdjustLuckOutput{
		Luck:    vagabond.LuckPool{Current: int(reply[1]), Max: int(reply[2])},
		Changed: reply[0] == scriptOK,
	}, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func profileKey(actorID string) string {
	return fmt.Sprintf("%s%s", actorKeyPrefix, actorID)
}

func manaKey(actorID string) string {
	return profileKey(actorID) + manaSuffix
}

func luckKey(actorID string) string {
	return profileKey(actorID) + luckSuffix
}
