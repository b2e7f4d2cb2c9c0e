// Command libraryctl runs maintenance tasks against the library database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-desk/library/config"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/library/internal/service"
	"github.com/Astemirdum/library-desk/library/migrations"
	"github.com/Astemirdum/library-desk/pkg/auth"
	"github.com/Astemirdum/library-desk/pkg/logger"
	"github.com/Astemirdum/library-desk/pkg/postgres"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "libraryctl",
		Short:        "Library desk maintenance",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return errors.Wrap(err, "load .env")
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	loadConfig := func() config.Config {
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		return config.NewConfig(config.WithLogLevel(level))
	}

	root.AddCommand(
		newMigrateCmd(loadConfig),
		newReconcileCmd(loadConfig),
		newTokenCmd(loadConfig),
	)
	return root
}

func newMigrateCmd(loadConfig func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			db, err := postgres.NewPostgresDB(cmd.Context(), &cfg.Database, migrations.MigrationFiles)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newReconcileCmd(loadConfig func() config.Config) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Realign item availability with open transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			log := logger.NewLogger(cfg.Log, "libraryctl")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db, err := postgres.Connect(ctx, &cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			repo, err := repository.NewRepository(db, log)
			if err != nil {
				return err
			}
			res, err := service.NewService(repo, log).Reconcile(ctx)
			if err != nil {
				log.Error("reconcile", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "marked unavailable: %d, marked available: %d\n",
				res.MarkedUnavailable, res.MarkedAvailable)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline")
	return cmd
}

func newTokenCmd(loadConfig func() config.Config) *cobra.Command {
	var (
		subject string
		email   string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig().Auth
			if ttl > 0 {
				cfg.TokenTTL = ttl
			}
			if subject == "" {
				subject = uuid.NewString()
			}
			tok, err := auth.NewToken(cfg, auth.Identity{ID: subject, Email: email}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "identity id, random when empty")
	cmd.Flags().StringVar(&email, "email", "", "identity email")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, config value when zero")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
