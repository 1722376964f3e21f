package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	spellv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/spellcraft/v1alpha1"
)

var (
	action       string
	deliveryType string
	shift        bool
	ctrl         bool
	targetTokens []string
)

var getStateCmd = &cobra.Command{
	Use:   "get-state",
	Short: "Show an actor's spell configuration",
	RunE:  runGetState,
}

var updateStateCmd = &cobra.Command{
	Use:   "update-state",
	Short: "Apply one configuration change to a spell",
	Long: `Apply one configuration change and show the new price. Actions:

  increase_damage_dice, decrease_damage_dice, toggle_fx,
  select_delivery (with --delivery), increase_delivery_step, decrease_delivery_step`,
	RunE: runUpdateState,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Price the stored configuration of a spell",
	RunE:  runPreview,
}

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a spell with its stored configuration",
	Long: `Cast a spell. --shift favors and --ctrl hinders the check,
combined with the actor's own favor/hinder status.`,
	RunE: runCast,
}

func init() {
	addSpellFlags(getStateCmd)

	addSpellFlags(updateStateCmd)
	updateStateCmd.Flags().StringVar(&action, "action", "", "Configuration action (required)")
	updateStateCmd.Flags().StringVar(&deliveryType, "delivery", "", "Delivery key for select_delivery")
	_ = updateStateCmd.MarkFlagRequired("action") // nolint:errcheck // safe to ignore in init

	addSpellFlags(previewCmd)

	addSpellFlags(castCmd)
	castCmd.Flags().BoolVar(&shift, "shift", false, "Cast with favor")
	castCmd.Flags().BoolVar(&ctrl, "ctrl", false, "Cast with hinder")
	castCmd.Flags().StringSliceVar(&targetTokens, "target", nil, "Targeted token IDs")
}

func runGetState(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSpellState(ctx, &spellv1alpha1.GetSpellStateRequest{
		ActorID: actorID,
		SpellID: spellID,
	})
	if err != nil {
		return fmt.Errorf("failed to get spell state: %w", err)
	}

	fmt.Printf("Spell: %s (%s)\n", resp.Spell.Name, resp.Spell.ID)
	if resp.IsDefault {
		fmt.Printf("Never configured, showing defaults\n")
	}
	printState(resp.State)
	return nil
}

func runUpdateState(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateSpellState(ctx, &spellv1alpha1.UpdateSpellStateRequest{
		ActorID:      actorID,
		SpellID:      spellID,
		Action:       action,
		DeliveryType: deliveryType,
	})
	if err != nil {
		return fmt.Errorf("failed to update spell state: %w", err)
	}

	printPreview(resp.Preview)
	return nil
}

func runPreview(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PreviewCast(ctx, &spellv1alpha1.PreviewCastRequest{
		ActorID: actorID,
		SpellID: spellID,
	})
	if err != nil {
		return fmt.Errorf("failed to preview cast: %w", err)
	}

	printPreview(resp.Preview)
	return nil
}

func runCast(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	targets := make([]vagabond.Target, 0, len(targetTokens))
	for _, token := range targetTokens {
		targets = append(targets, vagabond.Target{TokenID: token})
	}

	resp, err := client.Cast(ctx, &spellv1alpha1.CastRequest{
		ActorID: actorID,
		SpellID: spellID,
		Shift:   shift,
		Ctrl:    ctrl,
		Targets: targets,
	})
	if err != nil {
		return fmt.Errorf("failed to cast: %w", err)
	}

	fmt.Printf("Stages: %s\n", strings.Join(resp.Path, " -> "))
	if resp.Rejection != nil {
		fmt.Printf("Rejected (%s): %s\n", resp.Rejection.Reason, resp.Rejection.Message)
		return nil
	}

	result := resp.Result
	outcome := "FAILED"
	if result.IsSuccess {
		outcome = "SUCCESS"
	}
	if result.IsCritical {
		outcome += " (critical)"
	}
	fmt.Printf("Cast %s: %s\n", result.CastID, outcome)
	if result.Roll != nil {
		fmt.Printf("  Check: %s = %v -> %d vs difficulty %d\n",
			result.Roll.Notation, result.Roll.Dice, result.Roll.Total, result.Difficulty)
	}
	if result.DamageRoll != nil {
		fmt.Printf("  Damage: %s = %v -> %d\n",
			result.DamageRoll.Notation, result.DamageRoll.Dice, result.DamageRoll.Total)
	}
	fmt.Printf("  Favor/Hinder: %s\n", result.FavorHinder)
	if result.DeliveryText != "" {
		fmt.Printf("  Delivery: %s\n", result.DeliveryText)
	}
	fmt.Printf("  Cost: %d mana, %d/%d left\n", result.Costs.TotalCost, result.Mana.Current, result.Mana.CastingMax)
	return nil
}

func printState(state *vagabond.SpellState) {
	delivery := state.DeliveryType
	if delivery == "" {
		delivery = "(none)"
	}
	fmt.Printf("  Damage dice: %d\n", state.DamageDice)
	fmt.Printf("  Effect: %v\n", state.UseFx)
	fmt.Printf("  Delivery: %s +%d\n", delivery, state.DeliveryIncrease)
}

func printPreview(p *spellv1alpha1.Preview) {
	fmt.Printf("Spell: %s\n", p.Spell.Name)
	printState(p.State)
	fmt.Printf("\nCost breakdown:\n")
	fmt.Printf("  Damage: %d\n", p.Costs.DamageCost)
	fmt.Printf("  Effect: %d\n", p.Costs.FxCost)
	fmt.Printf("  Delivery base: %d\n", p.Costs.DeliveryBaseCost)
	fmt.Printf("  Delivery increase: %d %s\n", p.Costs.DeliveryIncreaseCost, p.SizeHint)
	fmt.Printf("  Total: %d (mana %d, casting max %d)\n", p.Costs.TotalCost, p.Mana.Current, p.Mana.CastingMax)

	if p.CanCast {
		fmt.Printf("\nReady to cast\n")
	} else {
		fmt.Printf("\nCannot cast (%s): %s\n", p.Reason, p.Message)
	}

	fmt.Printf("\nDeliveries:\n")
	for _, d := range p.Deliveries {
		marker := " "
		if d.Key == p.State.DeliveryType {
			marker = "*"
		}
		fmt.Printf(" %s %-8s %s, cost %d\n", marker, d.Key, d.Name, d.Cost)
	}
}
