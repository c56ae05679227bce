package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	dbfs "github.com/vendio/vendio/db"
	"github.com/vendio/vendio/internal/app"
	"github.com/vendio/vendio/internal/platform/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(cmd.Context(), dbfs.Schema, "schema applied")
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo clients, products and a sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(cmd.Context(), dbfs.Seed, "seed data inserted")
		},
	}
}

func runSQL(ctx context.Context, script, doneMsg string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error("exec statement", slog.Any("error", err))
			return err
		}
	}

	logger.Info(doneMsg)
	return nil
}
