// Package main provides the pubapis CLI entrypoint. It wires the public API
// tools (cats, dogs, weather, joke, crypto, news) and the database commands
// (migrate), loads configuration and initializes logging.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"pubapis/internal/config"
	"pubapis/internal/prompt"
	"pubapis/pkg/logger"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand shares once the root command has loaded
// the configuration.
type app struct {
	configPath string
	cfg        *config.Config
	// interactive is true when stdin is a terminal.
	interactive bool
}

// reportedError marks a failure the command already printed for the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reported wraps a non-nil err as reportedError.
func reported(err error) error {
	if err == nil {
		return nil
	}

	return reportedError{err: err}
}

// setup loads the configuration, initializes logging and attaches a run ID
// to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
		return err
	}
	a.cfg = cfg
	a.interactive = prompt.IsTerminal(os.Stdin)

	// keep stdout for the reports
	browser.Stdout = os.Stderr
	browser.Stderr = os.Stderr

	ctx := logger.WithFields(cmd.Context(),
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.CommandPath()))
	cmd.SetContext(ctx)
	logger.Debug(ctx, "configuration loaded", zap.String("config", a.configPath), zap.Bool("interactive", a.interactive))

	return nil
}

// main sets up the root Cobra command and executes the CLI until it finishes
// or SIGINT/SIGTERM cancels it.
func main() {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "pubapis",
		Short:             "Small terminal tools on top of free public APIs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		a.catsCommand(),
		a.dogsCommand(),
		a.weatherCommand(),
		a.jokeCommand(),
		a.cryptoCommand(),
		a.newsCommand(),
		a.migrateCommand(),
		a.configCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		// interrupted by the user
		err = nil
	}
	stop()
	logger.Sync()
	if err != nil {
		if !errors.As(err, &reportedError{}) {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1) //nolint: gocritic
	}
}
