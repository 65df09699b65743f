package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/deepoptimizer/sitecheck/internal/config"
	"github.com/deepoptimizer/sitecheck/internal/errors"
	"github.com/deepoptimizer/sitecheck/internal/logging"
	"github.com/deepoptimizer/sitecheck/internal/report"
	"github.com/deepoptimizer/sitecheck/internal/validation"
)

var cfgFile string

// ErrCodeFormat marks an output format a command does not support.
const ErrCodeFormat = "FORMAT_UNSUPPORTED"

// Resolved in PersistentPreRunE for the command being run.
var (
	cfg    *config.Config
	logger logging.Logger = logging.NewNopLogger()
)

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"format":     "format",
	"log-level":  "log.level",
	"log-format": "log.format",
	"dist":       "fallback.dist",
	"debounce":   "watch.debounce",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitecheck [root]",
	Short: "Check that a Vite/React site is ready to build",
	Long: `sitecheck verifies a static front-end checkout before a build: required
files and components exist, package.json declares the scripts and
dependencies the build needs, and index.html carries the mount markers.

Without a subcommand it verifies the given root, or the current directory.

Configuration is read from .sitecheck.yml (or --config, or the
SITECHECK_CONFIG_FILE variable) and SITECHECK_<SECTION>_<KEY> variables.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runVerify,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sitecheck.yml, can also use SITECHECK_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringP("format", "f", report.FormatText,
		"report format ("+strings.Join(report.Formats, ", ")+")")
}

// initConfig selects the configuration file. Precedence: --config, then
// SITECHECK_CONFIG_FILE, then .sitecheck.yml in the working directory.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SITECHECK_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sitecheck")
	}

	config.BindEnv()
	viper.AutomaticEnv()
}

// setup reads the configuration file, binds the flags of cmd and builds the
// logger. An explicitly named file that cannot be read is an error; a
// missing default file is not.
func setup(cmd *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.WrapConfig(err, "CONFIG_READ", "failed to read configuration file")
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = viper.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return errors.WrapInternal(bindErr, "FLAG_BIND", "failed to bind flags")
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.WrapConfig(err, config.ErrCodeInvalid, "invalid log level")
	}
	logger = logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug(cmd.Context(), "Using config file", "path", used)
	}
	return nil
}

// rootFor returns the project root named on the command line or configured.
func rootFor(args []string) (string, error) {
	root := cfg.Root
	if len(args) > 0 {
		root = args[0]
	}
	if err := validation.ValidatePath(root); err != nil {
		return "", errors.WrapConfig(err, "ROOT_INVALID", "invalid project root").WithPath(root)
	}
	return root, nil
}

// writeReport renders r and turns recorded errors into a command failure.
func writeReport(cmd *cobra.Command, r *report.Report) error {
	if err := report.Write(cmd.OutOrStdout(), r, cfg.Format); err != nil {
		return errors.WrapInternal(err, "REPORT_WRITE", "failed to write report")
	}
	if r.HasErrors() {
		return &errors.VerificationFailedError{Errors: len(r.Errors), Warnings: len(r.Warnings)}
	}
	return nil
}
