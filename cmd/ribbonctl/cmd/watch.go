package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultDebounce batches the bursts of events an editor save produces.
const defaultDebounce = 200 * time.Millisecond

func newWatchCommand(e *env) *cobra.Command {
	var (
		strict   bool
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch [tab-id...]",
		Short: "Re-run check whenever a declaration file changes",
		Long: `Runs check once, then again every time a file in the declarations
directory is created, written, renamed or removed. Failures are printed and
watching continues until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return e.open().watch(ctx, cmd, args, strict, debounce)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail a run on any reported problem")
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before re-checking")
	return cmd
}

func (p *project) watch(ctx context.Context, cmd *cobra.Command, args []string, strict bool, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Join(p.cfg.Root, filepath.FromSlash(p.cfg.DeclDir))
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	p.logger.Info("watching declarations", zap.String("dir", dir))

	out := cmd.OutOrStdout()
	run := func() {
		ids, err := p.targets(args)
		if err == nil {
			err = p.check(cmd, ids, strict)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		fmt.Fprintln(out, "--")
	}
	run()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !p.relevant(ev) {
				continue
			}
			p.logger.Debug("declaration changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			run()
		}
	}
}

func (p *project) relevant(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != p.cfg.DeclExt {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
