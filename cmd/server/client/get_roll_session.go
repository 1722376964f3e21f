package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/api/v1alpha1"
)

var clearSession bool

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id] [context]",
	Short: "Get existing dice roll session",
	Long: `Retrieve all dice rolls for a specific entity and context. Cast rolls
are recorded under the context "spell:<spell-id>". Examples:

  get-roll-session actor-123 spell:spell-firebolt
  get-roll-session actor-123 spell:spell-firebolt --clear`,
	Args: cobra.ExactArgs(2),
	RunE: getRollSession,
}

func init() {
	getRollSessionCmd.Flags().BoolVar(&clearSession, "clear", false, "Delete the session after printing it")
}

func getRollSession(_ *cobra.Command, args []string) error {
	entityID := args[0]
	rollContext := args[1]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Getting roll session for entity %s (context: %s)...\n", entityID, rollContext)

	resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityID: entityID,
		Context:  rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll session: %w", err)
	}

	fmt.Printf("\nRoll Session:\n")
	fmt.Printf("=============\n")
	fmt.Printf("Expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Total Rolls: %d\n", len(resp.Rolls))
	printRolls(resp.Rolls)

	if !clearSession {
		return nil
	}

	cleared, err := client.ClearRollSession(ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityID: entityID,
		Context:  rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to clear roll session: %w", err)
	}
	fmt.Printf("\nCleared %d rolls\n", cleared.RollsDeleted)
	return nil
}
