package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecoslides/internal/recapture"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a population with the mark-recapture formula",
	Long:  "Compute N = (M × C) / R, rounded to the nearest whole animal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _ := cmd.Flags().GetInt("marked")
		c, _ := cmd.Flags().GetInt("caught")
		r, _ := cmd.Flags().GetInt("recaptured")

		f := recapture.Formula{Marked: m, Caught: c, Recaptured: r}
		n, err := f.Estimate()
		if err != nil {
			return fmt.Errorf("estimate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.String())
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated Population: %d\n", n)
		return nil
	},
}

func init() {
	estimateCmd.Flags().IntP("marked", "m", 50, "Animals marked in the first capture (M)")
	estimateCmd.Flags().IntP("caught", "c", 30, "Animals caught in the second capture (C)")
	estimateCmd.Flags().IntP("recaptured", "r", 10, "Marked animals in the second capture (R)")
}
