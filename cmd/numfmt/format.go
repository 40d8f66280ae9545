package main

import (
	"github.com/rpgo/numfmt/internal/batch"
	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/spf13/cobra"
)

var formatOutput string

func init() {
	formatCmd.Flags().Bool("grouping", true, "insert locale group separators")
	formatCmd.Flags().Bool("allow-negative", true, "accept negative values")
	formatCmd.Flags().Bool("allow-float", true, "accept values with a fractional part")
	formatCmd.Flags().Bool("trailing-decimal", false, "always end with a decimal separator when there is no fraction")
	formatCmd.Flags().Int("min-fraction", 0, "minimum number of fraction digits (0-20)")
	formatCmd.Flags().String("decimal-separator", "", "override the locale decimal separator")
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "console", "output format (console|plain|csv|json|yaml)")
}

var formatCmd = &cobra.Command{
	Use:   "format [values...]",
	Short: "Format numbers with the selected profile",
	Long:  `Format numbers given as arguments, or one per line on stdin, using the selected profile and flag overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := numfmt.NewCLDREngine(componentLogger("cldr"))
		opts, name, err := resolveOptions(cmd, engine)
		if err != nil {
			return err
		}
		inputs, err := collectInputs(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		runner := batch.NewRunner(numfmt.NewFormatterWithEngine(engine, opts), componentLogger("batch"))
		result, err := runner.Run(cmd.Context(), name, inputs)
		if err != nil {
			return err
		}
		if err := output.GenerateReport(cmd.OutOrStdout(), result, formatOutput); err != nil {
			return err
		}
		if result.FailedCount() > 0 {
			return errInputsFailed
		}
		return nil
	},
}
