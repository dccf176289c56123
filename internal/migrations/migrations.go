package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migration struct {
	ID    string
	UpSQL string
}

var allMigrations = []Migration{
	{
		ID: "20240101120000_create_sections_table",
		UpSQL: `
		CREATE TABLE sections(
		slug TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		ID: "20240101120100_create_news_items_table",
		UpSQL: `
		CREATE TABLE news_items(
		section_slug TEXT NOT NULL REFERENCES sections(slug) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		item_id TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (section_slug, position)
		);`,
	},
}

// Pending возвращает миграции, которых нет среди applied, в порядке ID.
func Pending(applied map[string]bool) []Migration {
	sorted := make([]Migration, len(allMigrations))
	copy(sorted, allMigrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	pending := make([]Migration, 0, len(sorted))
	for _, m := range sorted {
		if !applied[m.ID] {
			pending = append(pending, m)
		}
	}
	return pending
}

// Apply применяет все необходимые миграции к базе данных.
func Apply(ctx context.Context, log *slog.Logger, pool *pgxpool.Pool) error {
	log = log.With(slog.String("component", "migrations"))
	log.Info("Starting database migrations check...")
	_, err := pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
	id TEXT PRIMARY KEY
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	rows, err := pool.Query(ctx, "SELECT id FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	appliedMigrations := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration id: %w", err)
		}
		appliedMigrations[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	pending := Pending(appliedMigrations)
	for _, m := range pending {
		log.Info("Applying migration", slog.String("id", m.ID))
		if _, err := tx.Exec(ctx, m.UpSQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.ID, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (id) VALUES ($1)", m.ID); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migrations transaction: %w", err)
	}
	if len(pending) > 0 {
		log.Info("Database migrations applied successfully", slog.Int("count", len(pending)))
	} else {
		log.Info("Database is up to date, no new migrations found.")
	}
	return nil
}
