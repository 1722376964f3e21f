package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	redisclient "github.com/KirkDiggler/vagabond-spellcraft/internal/redis"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	spellstate "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store an actor from a JSON file",
	Long:  `Seed writes an actor profile with its mana and luck pools to Redis so it can cast.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "actor", "", "Path to an actor JSON file (required)")
	_ = seedCmd.MarkFlagRequired("actor") // nolint:errcheck // safe to ignore in init
}

func readActor(path string) (*vagabond.Actor, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var actor vagabond.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if actor.ID == "" {
		return nil, fmt.Errorf("actor in %s has no id", path)
	}
	return &actor, nil
}

// seedResult describes what seeding left in place
type seedResult struct {
	// Stored spell configurations the new profile still knows
	Kept []string
	// Stored configurations for spells the new profile no longer has
	Orphaned []string
}

// seedActor stores the actor and reports which existing spell
// configurations survive. Configurations are never deleted here.
func seedActor(ctx context.Context, client redisclient.Client, actor *vagabond.Actor) (*seedResult, error) {
	actorRepo, err := actorrepo.NewRedisRepository(&actorrepo.Config{Client: client})
	if err != nil {
		return nil, err
	}
	stateRepo, err := spellstate.NewRedisRepository(&spellstate.Config{Client: client})
	if err != nil {
		return nil, err
	}

	if _, err := actorRepo.Save(ctx, actorrepo.SaveInput{Actor: actor}); err != nil {
		return nil, fmt.Errorf("failed to save actor %s: %w", actor.ID, err)
	}

	stored, err := stateRepo.List(ctx, spellstate.ListInput{ActorID: actor.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list spell states for %s: %w", actor.ID, err)
	}

	result := &seedResult{}
	for spellID := range stored.States {
		if _, ok := actor.Spells[spellID]; ok {
			result.Kept = append(result.Kept, spellID)
		} else {
			result.Orphaned = append(result.Orphaned, spellID)
		}
	}
	sort.Strings(result.Kept)
	sort.Strings(result.Orphaned)

	return result, nil
}

func runSeed(_ *cobra.Command, _ []string) error {
	actor, err := readActor(seedFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := seedActor(ctx, client, actor)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded actor %s (%s) with %d spells, mana %d/%d\n",
		actor.ID, actor.Name, len(actor.Spells), actor.Mana.Current, actor.Mana.CastingMax)
	if len(result.Kept) > 0 {
		fmt.Printf("Kept spell configurations: %s\n", strings.Join(result.Kept, ", "))
	}
	if len(result.Orphaned) > 0 {
		fmt.Printf("Configurations for unknown spells: %s\n", strings.Join(result.Orphaned, ", "))
	}
	return nil
}
