package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepoptimizer/sitecheck/internal/config"
	"github.com/deepoptimizer/sitecheck/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sitecheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Print the configuration after merging .sitecheck.yml, SITECHECK_
variables, flags and defaults. The YAML output is a valid .sitecheck.yml.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configShowCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "Output format (yaml, json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch configOutput {
	case "yaml", "yml":
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "# Resolved from %s, environment and defaults\n", used)
		}
		return config.WriteYAML(out, cfg)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return errors.NewValidationError(ErrCodeFormat,
			fmt.Sprintf("unsupported format: %s (supported: yaml, json)", configOutput))
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Load has already rejected errors; only warnings can remain.
	result := config.ValidateConfigWithDetails(cfg)
	if result.HasWarnings() {
		fmt.Fprint(out, result.String())
	}
	fmt.Fprintln(out, "✅ Configuration is valid")
	return nil
}
