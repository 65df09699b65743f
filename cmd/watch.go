package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/deepoptimizer/sitecheck/internal/errors"
	"github.com/deepoptimizer/sitecheck/internal/report"
	"github.com/deepoptimizer/sitecheck/internal/verifier"
	"github.com/deepoptimizer/sitecheck/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch [root]",
	Aliases: []string{"w"},
	Short:   "Re-verify the site whenever a source file changes",
	Long: `Verify once, then watch the site tree and verify again after each burst
of changes. node_modules, .git and dist are never watched.

Examples:
  sitecheck watch                      # Watch the current directory
  sitecheck watch ./website --debounce 1s`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 0, "quiet period before re-verifying (default from config, 300ms)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root, err := rootFor(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSite(ctx, cmd, root)
}

// watchSite verifies root once and then after every change batch until ctx
// is done. Failed verifications are printed and do not stop the loop.
func watchSite(ctx context.Context, cmd *cobra.Command, root string) error {
	fileWatcher, err := watcher.NewFileWatcher(root, cfg.Watch.Debounce, logger)
	if err != nil {
		return errors.WrapInternal(err, "WATCH_SETUP", "failed to create file watcher")
	}

	fileWatcher.IgnoreDir(cfg.Watch.Ignore...)
	fileWatcher.AddFilter(watcher.ExtensionFilter(cfg.Watch.Extensions...))
	for _, dir := range cfg.Watch.Ignore {
		fileWatcher.AddFilter(watcher.DirFilter(dir))
	}

	changes := make(chan []watcher.ChangeEvent, 1)
	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		select {
		case changes <- events:
		default:
			// A rerun is already queued
		}
		return nil
	})

	if err := fileWatcher.AddRecursive(root); err != nil {
		_ = fileWatcher.Stop()
		return errors.WrapIO(err, "WATCH_SETUP", "failed to watch site", root)
	}

	v := verifier.New(afero.NewOsFs(), cfg.Checks, verifier.WithLogger(logger))
	out := cmd.OutOrStdout()
	verify := func() error {
		err := report.Write(out, v.Verify(root), cfg.Format)
		if err != nil {
			return errors.WrapInternal(err, "REPORT_WRITE", "failed to write report")
		}
		return nil
	}

	if err := verify(); err != nil {
		_ = fileWatcher.Stop()
		return err
	}
	fmt.Fprintln(out, "\n👀 Watching for changes... (Press Ctrl+C to stop)")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fileWatcher.Run(gctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case events := <-changes:
				logger.Info(gctx, "Change detected", "files", len(events))
				fmt.Fprintf(out, "\n📁 %d file(s) changed, verifying again...\n", len(events))
				if err := verify(); err != nil {
					return err
				}
			}
		}
	})

	err = g.Wait()
	logger.Info(context.Background(), "Stopped watching", "root", root)
	return err
}
