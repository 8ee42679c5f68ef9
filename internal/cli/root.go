package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/console"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/services"
)

// IO groups the streams commands read from and write to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewRootCommand builds the bookshelf command tree. Running it without a
// subcommand starts the interactive shell.
func NewRootCommand(version string, streams IO) *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "bookshelf",
		Short: "In-memory book catalog",
		Long: "Manage an in-memory book catalog from an interactive shell.\n\n" +
			"Books live only for the lifetime of the process.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.NewConfigWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cfg, streams)
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	flags := root.PersistentFlags()
	flags.String("backend", config.DefaultBackend, "catalog backend: memory or indexed (env CATALOG_BACKEND)")
	flags.Bool("seed-demo", false, "preload demo books (env CATALOG_SEED_DEMO)")
	flags.Bool("color", true, "colored output (env CONSOLE_COLOR)")
	flags.String("log-level", config.DefaultLogLevel, "log level (env LOG_LEVEL)")
	flags.String("log-format", config.DefaultLogFormat, "log format: console or json (env LOG_FORMAT)")

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive catalog shell (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runShell(cfg, streams)
			},
		},
		&cobra.Command{
			Use:   "vehicles",
			Short: "Run the regional vehicle factory demo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				logger, err := newLogger(cfg, streams.Err)
				if err != nil {
					return err
				}
				return NewVehiclesCommand(console.NewPrinter(streams.Out, cfg.Console.Color), logger).Run()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintf(streams.Out, "bookshelf %s\n", version)
				return err
			},
		},
	)

	return root
}

// Execute runs the command tree against the process arguments and streams.
func Execute(version string) error {
	return NewRootCommand(version, StdIO()).Execute()
}

func newLogger(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	return logging.New(out, logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		NoColor: !cfg.Console.Color,
	})
}

func runShell(cfg *config.Config, streams IO) error {
	logger, err := newLogger(cfg, streams.Err)
	if err != nil {
		return err
	}
	logger = logger.With().Str("session", uuid.NewString()).Logger()

	store, err := catalog.New(cfg.Catalog.Backend)
	if err != nil {
		return err
	}
	if cfg.Catalog.SeedDemo {
		if err := catalog.Seed(store, catalog.SeedData()); err != nil {
			return err
		}
	}

	printer := console.NewPrinter(streams.Out, cfg.Console.Color)
	manager := services.NewLibraryManager(store, printer, logger)

	logger.Info().Str("backend", cfg.Catalog.Backend).Bool("seeded", cfg.Catalog.SeedDemo).Msg("shell started")
	return NewShellCommand(manager, printer, streams.In, logger).Run()
}
