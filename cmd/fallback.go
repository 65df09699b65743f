package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/deepoptimizer/sitecheck/internal/fallback"
)

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Create 404.html from the built index.html",
	Long: `Copy <dist>/index.html to <dist>/404.html so static hosts such as GitHub
Pages hand unknown paths to the client-side router. Run it after the build.`,
	Args: cobra.NoArgs,
	RunE: runFallback,
}

func init() {
	rootCmd.AddCommand(fallbackCmd)

	fallbackCmd.Flags().String("dist", "dist", "build output directory")
}

func runFallback(cmd *cobra.Command, args []string) error {
	written, err := fallback.Create(afero.NewOsFs(), cfg.Fallback.Dist, cfg.Fallback.Options())
	if err != nil {
		logger.Error(cmd.Context(), err, "Failed to create fallback page", "dist", cfg.Fallback.Dist)
		return err
	}

	logger.Debug(cmd.Context(), "Created fallback page", "path", written)
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s for SPA support\n", filepath.Base(written))
	return nil
}
