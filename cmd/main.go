package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lark/internal/config"
	"lark/internal/db"
)

// main is the entry point of the lark service. Configuration comes from
// environment variables; the subcommand decides what runs.
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "lark",
		Short:         "Crowdfunding campaign backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
			return nil
		},
	}
	cmd.AddCommand(serveCmd(a), migrateCmd(a), seedCmd(a), searchCmd(a))
	return cmd
}

func migrateCmd(a *app) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Psql.Addr.String()
			if down {
				if err := db.Rollback(addr); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				a.logger.Info("migrations rolled back")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back every migration")
	return cmd
}

func seedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, campaigns and donations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			if err = db.Seed(ctx, pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			a.logger.Info("demo data seeded")
			return nil
		},
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
