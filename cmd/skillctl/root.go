package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
	"github.com/osse101/SkillForge_Go/internal/domain"
)

// options are the connection flags shared by every API command
type options struct {
	apiURL  string
	apiKey  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "skillctl",
		Short:         "SkillForge admin CLI",
		Long:          `skillctl inspects and adjusts player skill progress through the SkillForge API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("API_URL", "http://localhost:8080"), "SkillForge API base URL")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", os.Getenv("API_KEY"), "API key (defaults to $API_KEY)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(
		newStatusCmd(opts),
		newAddLevelsCmd(opts),
		newSetXPCmd(opts),
		newResetCmd(opts),
		newBreakCmd(opts),
		newCurveCmd(opts),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (o *options) client() *apiclient.APIClient {
	return apiclient.NewAPIClient(o.apiURL, o.apiKey)
}

func (o *options) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.timeout)
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status <player-id>",
		Short: "Show a player's mining level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context()
			defer cancel()

			status, err := opts.client().GetMiningStatus(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func newAddLevelsCmd(opts *options) *cobra.Command {
	var levels int
	cmd := &cobra.Command{
		Use:   "add-levels <player-id>",
		Short: "Move a player up or down by whole levels",
		Long:  `Adds the XP between the player's level and the target level, so progress within the level is kept.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if levels == 0 {
				return fmt.Errorf("--levels must not be zero")
			}
			ctx, cancel := opts.context()
			defer cancel()

			status, err := opts.client().AddMiningLevels(ctx, args[0], levels)
			if err != nil {
				return fmt.Errorf("failed to add levels: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Added %d levels\n\n", levels)
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
	cmd.Flags().IntVar(&levels, "levels", 0, "Levels to add, negative to remove (required)")
	_ = cmd.MarkFlagRequired("levels") // nolint:errcheck // flag exists
	return cmd
}

func newSetXPCmd(opts *options) *cobra.Command {
	var xp int64
	cmd := &cobra.Command{
		Use:   "set-xp <player-id>",
		Short: "Overwrite a player's total XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if xp < 0 {
				return fmt.Errorf("--xp must not be negative")
			}
			ctx, cancel := opts.context()
			defer cancel()

			status, err := opts.client().SetMiningXP(ctx, args[0], xp)
			if err != nil {
				return fmt.Errorf("failed to set xp: %w", err)
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
	cmd.Flags().Int64Var(&xp, "xp", 0, "New total XP (required)")
	_ = cmd.MarkFlagRequired("xp") // nolint:errcheck // flag exists
	return cmd
}

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <player-id>",
		Short: "Reset a player's mining progress to level 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context()
			defer cancel()

			status, err := opts.client().ResetMining(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func newBreakCmd(opts *options) *cobra.Command {
	var (
		blockID string
		x, y, z int
	)
	cmd := &cobra.Command{
		Use:   "break <player-id>",
		Short: "Report a block break as the game would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context()
			defer cancel()

			outcome, err := opts.client().ReportBlockBroken(ctx, domain.BlockBrokenEvent{
				PlayerID: args[0],
				BlockID:  blockID,
				Position: domain.Position{X: x, Y: y, Z: z},
			})
			if err != nil {
				return fmt.Errorf("failed to report break: %w", err)
			}
			printOutcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}
	cmd.Flags().StringVar(&blockID, "block", "", "Block id, e.g. Ore_Copper_Stone (required)")
	cmd.Flags().IntVar(&x, "x", 0, "Block X")
	cmd.Flags().IntVar(&y, "y", 0, "Block Y")
	cmd.Flags().IntVar(&z, "z", 0, "Block Z")
	_ = cmd.MarkFlagRequired("block") // nolint:errcheck // flag exists
	return cmd
}

func printStatus(w io.Writer, s *domain.SkillStatus) {
	fmt.Fprintf(w, "Player:   %s\n", s.PlayerID)
	fmt.Fprintf(w, "Level:    %d\n", s.Level)
	fmt.Fprintf(w, "XP:       %d / %d\n", s.XPIntoLevel, s.XPForLevel)
	fmt.Fprintf(w, "Total XP: %d\n", s.TotalXP)
}

func printOutcome(w io.Writer, o *domain.BreakOutcome) {
	if !o.IsOre {
		fmt.Fprintf(w, "%s is not ore, no XP granted\n", o.BlockID)
		return
	}
	fmt.Fprintf(w, "+%d XP (total %d, level %d)\n", o.XPGranted, o.TotalXP, o.Level)
	if o.LeveledUpTo > 0 {
		fmt.Fprintf(w, "🎉 Level up! Now level %d\n", o.LeveledUpTo)
	}
	if o.BonusDrop != nil {
		fmt.Fprintf(w, "🎁 Bonus drop: %dx %s\n", o.BonusDrop.Amount, o.BonusDrop.ItemID)
	}
}
