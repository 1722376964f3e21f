// Package main is the entry point for the spellcraft gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vagabond-spellcraft/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "spellcraft",
	Short: "Vagabond spellcraft gRPC server",
	Long:  `Spellcraft configures, prices and casts Vagabond spells over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
