package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/api/v1alpha1"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
)

var rollDescription string

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll-dice 1d20 actor-123 check
  roll-dice 3d6 actor-456 damage`,
	Args: cobra.ExactArgs(3),
	RunE: rollDice,
}

func init() {
	rollDiceCmd.Flags().StringVar(&rollDescription, "description", "", "Description stored with the roll")
}

func rollDice(_ *cobra.Command, args []string) error {
	notation := args[0]
	entityID := args[1]
	rollContext := args[2]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Rolling %s for entity %s (context: %s)...\n", notation, entityID, rollContext)

	resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
		EntityID:    entityID,
		Context:     rollContext,
		Notation:    notation,
		Description: rollDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Printf("\nDice Roll Results:\n")
	fmt.Printf("==================\n")
	printRolls(resp.Rolls)

	fmt.Printf("\nSession expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	return nil
}

func printRolls(rolls []dicesession.DiceRoll) {
	for i, roll := range rolls {
		fmt.Printf("\nRoll %d:\n", i+1)
		fmt.Printf("  Roll ID: %s\n", roll.RollID)
		if roll.Kind != "" {
			fmt.Printf("  Kind: %s\n", roll.Kind)
		}
		fmt.Printf("  Notation: %s\n", roll.Notation)
		fmt.Printf("  Individual Dice: %v\n", roll.Dice)
		if roll.Modifier != 0 {
			fmt.Printf("  Modifier: %+d\n", roll.Modifier)
		}
		fmt.Printf("  Total: %d\n", roll.Total)
		if roll.Description != "" {
			fmt.Printf("  Description: %s\n", roll.Description)
		}
	}
}
