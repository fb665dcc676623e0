package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/eriklarko/boolean-algebra/src/config"
	"github.com/eriklarko/boolean-algebra/src/environment"
	"github.com/eriklarko/boolean-algebra/src/truthtable"
)

var (
	// ErrInequivalent is returned when compared expressions have different
	// truth tables. The comparison itself has already been printed.
	ErrInequivalent = errors.New("expressions are not equivalent")
	// ErrInvalidStep is returned when a simplification step is not equivalent
	// to the initial expression. The report has already been printed.
	ErrInvalidStep = errors.New("invalid simplification step")
)

// options holds the flags shared by all subcommands
type options struct {
	configPath   string
	workers      int
	maxVariables int
	logLevel     string
	prompts      bool

	config *config.Config
}

func (o *options) enumerator() *truthtable.Enumerator {
	return o.config.Enumerator()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "boolalg",
		Short:         "boolalg - evaluate, compare and check boolean algebra expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		// no subcommand starts the shell
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of goroutines enumerating bindings, 0 for one per CPU")
	flags.IntVar(&opts.maxVariables, "max-variables", truthtable.DefaultMaxVariables, "Maximum number of variables in an expression")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level, one of debug, info, warn and error")
	flags.BoolVar(&opts.prompts, "prompts", false, "Force printing the shell prompts even when not attached to a terminal")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newTableCmd(opts))
	rootCmd.AddCommand(newCheckStepsCmd(opts))
	rootCmd.AddCommand(newShellCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))

	return rootCmd
}

// load reads the configuration file and lets flags given on the command line
// override it. A missing configuration file is only an error when its path
// was given explicitly to a command other than init.
func (o *options) load(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := config.LoadConfig(o.configPath)
	if errors.Is(err, os.ErrNotExist) && (!flags.Changed("config") || cmd.Name() == "init") {
		cfg = config.Default()
		cfg.Path = o.configPath
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("max-variables") {
		cfg.MaxVariables = o.maxVariables
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flags.Changed("prompts") {
		environment.ForceSetIsInteractive(o.prompts)
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration loaded", "path", cfg.Path, "workers", cfg.Workers, "max-variables", cfg.MaxVariables)

	o.config = cfg
	return nil
}

// Execute runs the command line, cancelling running work on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}
