package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/SkillForge_Go/internal/skill"
)

func newCurveCmd(opts *options) *cobra.Command {
	var (
		levels   int
		rounding string
		remote   bool
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the level curve table",
		Long: `Prints XP per level and cumulative XP. The table is computed locally for the
given rounding policy unless --remote asks the server for its configured curve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if levels < 1 {
				return fmt.Errorf("--levels must be at least 1")
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Level\tXP for level\tTotal XP\t")

			if remote {
				ctx, cancel := opts.context()
				defer cancel()
				rows, err := opts.client().MiningCurve(ctx, levels)
				if err != nil {
					return fmt.Errorf("failed to get curve: %w", err)
				}
				for _, r := range rows {
					fmt.Fprintf(tw, "%d\t%d\t%d\t\n", r.Level, r.XPForLevel, r.TotalXP)
				}
				return tw.Flush()
			}

			policy, err := skill.ParseRounding(rounding)
			if err != nil {
				return err
			}
			curve := skill.NewCurve(policy)
			for level := skill.MinLevel; level <= levels; level++ {
				fmt.Fprintf(tw, "%d\t%d\t%d\t\n", level, curve.XPForLevel(level), curve.TotalXPForLevel(level))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&levels, "levels", 20, "Number of levels to print")
	cmd.Flags().StringVar(&rounding, "rounding", skill.RoundingNameNearest, "Rounding policy: round or floor")
	cmd.Flags().BoolVar(&remote, "remote", false, "Fetch the curve from the server")
	return cmd
}
