package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	spellv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/spellcraft/v1alpha1"
)

var (
	luckDelta  int
	checkShift bool
	checkCtrl  bool
)

var favorHinderCmd = &cobra.Command{
	Use:   "favor-hinder [actor-id] [favor|hinder|none]",
	Short: "Set an actor's persistent favor/hinder status",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavorHinder,
}

var luckCmd = &cobra.Command{
	Use:   "luck [actor-id]",
	Short: "Spend or regain luck",
	Long: `Adjust an actor's luck. The pool is clamped to its maximum:

  luck actor-123 --delta -1
  luck actor-123 --delta 1`,
	Args: cobra.ExactArgs(1),
	RunE: runLuck,
}

var skillCmd = &cobra.Command{
	Use:   "skill [actor-id] [skill-key]",
	Short: "Roll a skill check",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkill,
}

var saveCmd = &cobra.Command{
	Use:   "save [actor-id] [save-key]",
	Short: "Roll a saving throw",
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

func init() {
	luckCmd.Flags().IntVar(&luckDelta, "delta", -1, "Luck change, negative to spend")

	for _, cmd := range []*cobra.Command{skillCmd, saveCmd} {
		cmd.Flags().BoolVar(&checkShift, "shift", false, "Roll with favor")
		cmd.Flags().BoolVar(&checkCtrl, "ctrl", false, "Roll with hinder")
	}
}

func runFavorHinder(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetFavorHinder(ctx, &spellv1alpha1.SetFavorHinderRequest{
		ActorID:     args[0],
		FavorHinder: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to set favor/hinder: %w", err)
	}

	fmt.Printf("Actor %s favor/hinder: %s\n", args[0], resp.FavorHinder)
	return nil
}

func runLuck(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AdjustLuck(ctx, &spellv1alpha1.AdjustLuckRequest{
		ActorID: args[0],
		Delta:   luckDelta,
	})
	if err != nil {
		return fmt.Errorf("failed to adjust luck: %w", err)
	}

	if !resp.Changed {
		fmt.Printf("Luck unchanged: %d/%d\n", resp.Luck.Current, resp.Luck.Max)
		return nil
	}
	fmt.Printf("Luck: %d/%d\n", resp.Luck.Current, resp.Luck.Max)
	return nil
}

func runSkill(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSkill(ctx, &spellv1alpha1.RollSkillRequest{
		ActorID:  args[0],
		SkillKey: args[1],
		Shift:    checkShift,
		Ctrl:     checkCtrl,
	})
	if err != nil {
		return fmt.Errorf("failed to roll skill: %w", err)
	}

	printCheck(resp.Result)
	return nil
}

func runSave(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSave(ctx, &spellv1alpha1.RollSaveRequest{
		ActorID: args[0],
		SaveKey: args[1],
		Shift:   checkShift,
		Ctrl:    checkCtrl,
	})
	if err != nil {
		return fmt.Errorf("failed to roll save: %w", err)
	}

	printCheck(resp.Result)
	return nil
}

func printCheck(result *vagabond.CheckResult) {
	if result == nil {
		return
	}
	outcome := "FAIL"
	if result.IsSuccess {
		outcome = "PASS"
	}
	total := int32(0)
	if result.Roll != nil {
		total = result.Roll.Total
	}
	fmt.Printf("%s %s: %d vs %d (%s) %s\n",
		result.Key, result.Kind, total, result.Difficulty, result.FavorHinder, outcome)
}
