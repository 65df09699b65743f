package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/deepoptimizer/sitecheck/internal/verifier"
)

var verifyCmd = &cobra.Command{
	Use:     "verify [root]",
	Aliases: []string{"v", "check"},
	Short:   "Check that the site is ready to build",
	Long: `Check required files, components, package.json scripts and dependencies,
and the index.html mount markers. Every check runs; problems are listed at
the end. The command fails only if an error was recorded.

Examples:
  sitecheck verify                  # Verify the current directory
  sitecheck verify ./website        # Verify another checkout
  sitecheck verify -f json          # Machine-readable report`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	root, err := rootFor(args)
	if err != nil {
		return err
	}

	v := verifier.New(afero.NewOsFs(), cfg.Checks, verifier.WithLogger(logger))
	return writeReport(cmd, v.Verify(root))
}
