// Package client provides test commands for the spellcraft gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/api/v1alpha1"
	spellv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/spellcraft/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared by the spell commands
	actorID string
	spellID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the spellcraft service",
	Long:  `Client commands allow you to test the spellcraft service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Spell commands
	ClientCmd.AddCommand(getStateCmd)
	ClientCmd.AddCommand(updateStateCmd)
	ClientCmd.AddCommand(previewCmd)
	ClientCmd.AddCommand(castCmd)
	ClientCmd.AddCommand(favorHinderCmd)
	ClientCmd.AddCommand(luckCmd)
	ClientCmd.AddCommand(skillCmd)
	ClientCmd.AddCommand(saveCmd)

	// Dice commands
	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
}

// addSpellFlags registers the actor and spell flags on a spell command
func addSpellFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&actorID, "actor-id", "", "Actor ID (required)")
	cmd.Flags().StringVar(&spellID, "spell-id", "", "Spell ID (required)")
	_ = cmd.MarkFlagRequired("actor-id") // nolint:errcheck // safe to ignore in init
	_ = cmd.MarkFlagRequired("spell-id") // nolint:errcheck // safe to ignore in init
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createSpellClient creates a spell service client
func createSpellClient() (*spellv1alpha1.SpellServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return spellv1alpha1.NewSpellServiceClient(conn), cleanup, nil
}

// createDiceClient creates a dice service client
func createDiceClient() (*apiv1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewDiceServiceClient(conn), cleanup, nil
}
