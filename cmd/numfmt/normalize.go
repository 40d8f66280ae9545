package main

import (
	"github.com/rpgo/numfmt/internal/batch"
	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/spf13/cobra"
)

var normalizeOutput string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "plain", "output format (console|plain|csv|json|yaml)")
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [values...]",
	Short: "Print the canonical en-US, ungrouped form of numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := collectInputs(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		formatter := numfmt.NewFormatter(numfmt.NormalizedOptions)
		result, err := batch.NewRunner(formatter, componentLogger("batch")).Run(cmd.Context(), "normalized", inputs)
		if err != nil {
			return err
		}
		if err := output.GenerateReport(cmd.OutOrStdout(), result, normalizeOutput); err != nil {
			return err
		}
		if result.FailedCount() > 0 {
			return errInputsFailed
		}
		return nil
	},
}
