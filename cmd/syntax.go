package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/deepoptimizer/sitecheck/internal/syntaxcheck"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax [root]",
	Short: "Run basic JSX checks over the site sources",
	Long: `Count braces and parentheses, look for HTML attributes that JSX renames
(class, for) and make sure every file exports something. Findings are
warnings and never change the exit status. A missing or unreadable entry
file (src/App.jsx, src/main.jsx by default) or component directory is an
error and exits 1. Run "npm run build" for complete validation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSyntax,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
}

func runSyntax(cmd *cobra.Command, args []string) error {
	root, err := rootFor(args)
	if err != nil {
		return err
	}

	checker := syntaxcheck.New(afero.NewOsFs(), cfg.Syntax, syntaxcheck.WithLogger(logger))
	return writeReport(cmd, checker.Run(root))
}
