// Package config loads server configuration from the environment
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/spellcraft"
)

// Config is everything the server reads at startup
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisTLS      bool   `env:"REDIS_TLS"`

	// RulesetPath overrides the built in delivery table
	RulesetPath string `env:"RULESET_PATH"`

	RollDamageWithCheck bool `env:"ROLL_DAMAGE_WITH_CHECK" envDefault:"true"`
	AlwaysRollDamage    bool `env:"ALWAYS_ROLL_DAMAGE"`

	// ShowUnequippedWeapons is only carried through for the action-list glue
	ShowUnequippedWeapons bool `env:"SHOW_UNEQUIPPED_WEAPONS"`
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the env tags cannot express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateNonNegative("REDIS_DB", c.RedisDB, vb)

	return vb.Build()
}

// Settings returns the cast settings
func (c *Config) Settings() *spellcraft.Settings {
	return &spellcraft.Settings{
		RollDamageWithCheck:   c.RollDamageWithCheck,
		AlwaysRollDamage:      c.AlwaysRollDamage,
		ShowUnequippedWeapons: c.ShowUnequippedWeapons,
	}
}
