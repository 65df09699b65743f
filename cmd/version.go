package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deepoptimizer/sitecheck/internal/errors"
	"github.com/deepoptimizer/sitecheck/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version, git commit, build time, Go version and platform.

Examples:
  sitecheck version               # Show version details
  sitecheck version --short       # Show the version only
  sitecheck version -f json       # Output as JSON`,
	Args: cobra.NoArgs,
	// Version output never depends on configuration.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := version.GetBuildInfo()

	switch versionFormat {
	case "text":
		if versionShort {
			fmt.Fprintln(out, version.GetShortVersion())
			return nil
		}
		fmt.Fprint(out, info.String())
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		return yaml.NewEncoder(out).Encode(info)
	default:
		return errors.NewValidationError(ErrCodeFormat,
			fmt.Sprintf("unsupported format: %s (supported: text, json, yaml)", versionFormat))
	}
}
