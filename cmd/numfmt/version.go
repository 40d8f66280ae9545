package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show numfmt version",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := versionPayload{Tool: "numfmt", Version: version, GoVersion: runtime.Version()}
		switch strings.ToLower(versionFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", payload.Tool, payload.Version, payload.GoVersion)
			return nil
		}
		return fmt.Errorf("unsupported version format %q (pretty|json)", versionFormat)
	},
}
