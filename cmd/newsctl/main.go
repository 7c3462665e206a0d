package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/di"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra/config"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra/logger"
)

const commandTimeout = 5 * time.Minute

// withComponents connects to the database, wires the application and runs fn.
func withComponents(fn func(ctx context.Context, c *di.ApplicationComponents) error) error {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := infra.NewPostgresDB(ctx, cfg.DB.DSN(), infra.PoolConfig{
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer pool.Close()

	if err := infra.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	components, err := di.NewApplicationComponents(cfg, pool, log)
	if err != nil {
		return fmt.Errorf("failed to wire components: %w", err)
	}

	return fn(ctx, components)
}

func newPurgeCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete articles older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(func(ctx context.Context, c *di.ApplicationComponents) error {
				deleted, err := c.MaintUsecase.PurgeOlderThan(ctx, days)
				if err != nil {
					return err
				}
				cmd.Printf("deleted %d articles\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention window in days (0 uses the default)")
	return cmd
}

func newBackupCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write all stored articles as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(func(ctx context.Context, c *di.ApplicationComponents) error {
				w := cmd.OutOrStdout()
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("failed to create backup file: %w", err)
					}
					defer f.Close()
					w = f
				}

				written, err := c.MaintUsecase.Backup(ctx, w)
				if err != nil {
					return err
				}
				cmd.PrintErrf("backed up %d articles\n", written)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "backup file path (defaults to stdout)")
	return cmd
}

func newRestoreCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore articles from a JSON-lines backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(func(ctx context.Context, c *di.ApplicationComponents) error {
				r := cmd.InOrStdin()
				if in != "" {
					f, err := os.Open(in)
					if err != nil {
						return fmt.Errorf("failed to open backup file: %w", err)
					}
					defer f.Close()
					r = f
				}

				restored, err := c.MaintUsecase.Restore(ctx, r)
				if err != nil {
					return err
				}
				cmd.Printf("restored %d articles\n", restored)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "backup file path (defaults to stdin)")
	return cmd
}

func newRefreshCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch, classify and store the latest news once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(func(ctx context.Context, c *di.ApplicationComponents) error {
				result, err := c.RefreshUsecase.Refresh(ctx, limit)
				if err != nil {
					return err
				}
				cmd.Printf("fetched %d, kept %d, stored %d\n",
					result.Fetched, result.Kept, result.Ingest.Stored)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max articles to fetch (0 uses the default page size)")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "newsctl",
		Short:         "Maintenance commands for the news analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPurgeCmd(), newBackupCmd(), newRestoreCmd(), newRefreshCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
