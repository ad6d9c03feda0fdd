// Package cmd implements the ribbonctl commands.
//
// Every command loads the project configuration from --config (or the nearest
// directory holding ribbon.yaml), builds declarations into the in-memory host
// and reports what the builder made of them.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/config"
	"github.com/go-drift/ribbon/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// env is the state shared by the subcommands of one invocation.
type env struct {
	configDir string
	verbose   bool

	cfg    *config.Resolved
	logger *zap.Logger
}

// NewRootCommand returns the ribbonctl command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:     "ribbonctl",
		Short:   "Build and inspect ribbon declarations",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Long: `ribbonctl resolves ribbon declaration files, builds them into an
in-memory host and prints the live tree or a report of what was dropped.

Use "ribbonctl <command> --help" for more information about a command.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&e.configDir, "config", "c", ".", "directory holding ribbon.yaml")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newTreeCommand(e), newCheckCommand(e), newWatchCommand(e))
	return root
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (e *env) setup(cmd *cobra.Command, args []string) error {
	dir, err := config.FindRoot(e.configDir)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	verbose := e.verbose || cfg.Verbose
	logger, err := logging.New(logging.Options{Verbose: verbose, Development: true})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	e.cfg = cfg
	e.logger = logging.Install(logger, verbose)
	e.logger.Debug("configuration loaded",
		zap.String("root", cfg.Root),
		zap.String("schema", cfg.Schema),
		zap.String("declarations", cfg.DeclDir),
	)
	return nil
}
