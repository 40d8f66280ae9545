package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available profiles and the options they derive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}
		engine := numfmt.NewCLDREngine(componentLogger("cldr"))

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tLOCALE\tGROUPING\tNEGATIVE\tFLOAT\tMIN FRACTION\tSEPARATOR\tDESCRIPTION")
		for _, name := range config.ProfileNames(cfg) {
			profile := cfg.Profiles[name]
			opts, err := config.Derive(profile, engine)
			if err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
			marker := ""
			if name == cfg.DefaultProfile {
				marker = " *"
			}
			fmt.Fprintf(tw, "%s%s\t%s\t%t\t%t\t%t\t%d\t%q\t%s\n", name, marker, opts.Locale,
				opts.UseGrouping, opts.AllowNegative, opts.AllowFloat, opts.MinimumFractionDigits, opts.DecimalSeparator, profile.Description)
		}
		return tw.Flush()
	},
}
