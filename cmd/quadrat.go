package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecoslides/internal/quadrat"
)

var quadratCmd = &cobra.Command{
	Use:   "quadrat",
	Short: "Run random quadrat samples over the lesson habitat",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, lesson, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		samples, _ := cmd.Flags().GetInt("samples")
		if samples < 1 {
			return fmt.Errorf("--samples must be at least 1, got %d", samples)
		}
		seed, _ := cmd.Flags().GetUint64("seed")

		rng := quadrat.Seeded(seed)
		if !cmd.Flags().Changed("seed") {
			rng = nil
		}
		sampler := quadrat.NewSampler(lesson.Habitat, lesson.Organisms, rng)
		sv := sampler.Run(samples)

		w := cmd.OutOrStdout()
		h := lesson.Habitat
		fmt.Fprintf(w, "Habitat %.0f × %.0f, quadrat %.0f × %.0f, %d organisms\n\n",
			h.Width, h.Height, h.QuadratSize, h.QuadratSize, len(lesson.Organisms))
		for i, c := range sv.Samples {
			var parts []string
			for _, cc := range c.ByCategory {
				if cc.Count > 0 {
					parts = append(parts, fmt.Sprintf("%s %d", cc.Category, cc.Count))
				}
			}
			detail := strings.Join(parts, ", ")
			if detail == "" {
				detail = "empty"
			}
			fmt.Fprintf(w, "  #%-3d %3d  (%s)\n", i+1, c.Total, detail)
		}
		fmt.Fprintf(w, "\nMean density: %.2f organisms per quadrat\n", sv.MeanDensity)
		fmt.Fprintf(w, "Estimated total: %.0f organisms (actual %d)\n", sv.Estimate, len(lesson.Organisms))
		return nil
	},
}

func init() {
	quadratCmd.Flags().Int("samples", 5, "Number of quadrats to place")
	quadratCmd.Flags().Uint64("seed", 0, "Random seed for reproducible runs")
}
