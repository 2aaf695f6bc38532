package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hwelikannage/pos-api/pkg/logger"
)

const migrationsDir = "migrations"

// RunMigrations applies the SQL files in the /migrations directory in
// lexical order. Statements are written to be idempotent (IF NOT EXISTS).
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		log.Info().Str("file", name).Msg("applying migration")
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	log.Info().Int("count", len(filenames)).Msg("migrations applied")
	return nil
}
