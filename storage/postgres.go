package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsboard/internal/domain"
)

type PostgresNewsDB struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresNewsDB(pool *pgxpool.Pool, log *slog.Logger) *PostgresNewsDB {
	log.Info("Initializing Postgres news storage", slog.String("component", "storage"))
	return &PostgresNewsDB{
		pool: pool,
		log:  log.With(slog.String("component", "storage")),
	}
}

func (db *PostgresNewsDB) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

// SaveSection заменяет содержимое секции целиком в одной транзакции.
// Позиция элемента в таблице равна его индексу во входном списке.
func (db *PostgresNewsDB) SaveSection(ctx context.Context, section *domain.Section) (n int, err error) {
	const op = "storage.postgres.SaveSection"
	slug := section.SlugOrDefault()
	log := db.log.With(slog.String("op", op), slog.String("section", slug))

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Error("Failed to rollback transaction", slog.Any("error", rollbackErr))
			}
		}
	}()

	batch := &pgx.Batch{}
	batch.Queue(`
	INSERT INTO sections (slug, title)
	VALUES ($1, $2)
	ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, updated_at = now();
	`, slug, section.Title)
	batch.Queue(`DELETE FROM news_items WHERE section_slug = $1;`, slug)
	query := `
	INSERT INTO news_items (section_slug, position, item_id, date, content, tag)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	for i, item := range section.Items {
		batch.Queue(query, slug, i, item.ID, item.Date, item.Content, item.Tag)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		log.Error("Failed to execute batch", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to execute batch: %w", op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	log.Info("Section saved", slog.Int("count", len(section.Items)))
	return len(section.Items), nil
}

// GetSection возвращает секцию с элементами в порядке сохранения.
// Элементы никогда не сортируются по дате.
func (db *PostgresNewsDB) GetSection(ctx context.Context, slug string) (*domain.Section, error) {
	const op = "storage.postgres.GetSection"
	log := db.log.With(slog.String("op", op), slog.String("section", slug))

	section := domain.Section{Slug: slug}
	err := db.pool.QueryRow(ctx, `SELECT title FROM sections WHERE slug = $1;`, slug).Scan(&section.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %q: %w", op, slug, ErrSectionNotFound)
	}
	if err != nil {
		log.Error("Database query failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to query section: %w", op, err)
	}

	rows, err := db.pool.Query(ctx, `
	SELECT item_id, date, content, tag
	FROM news_items
	WHERE section_slug = $1
	ORDER BY position ASC;
	`, slug)
	if err != nil {
		log.Error("Database query failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Item, error) {
		var item domain.Item
		err := row.Scan(&item.ID, &item.Date, &item.Content, &item.Tag)
		return item, err
	})
	if err != nil {
		log.Error("Failed to collect rows", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
	}
	section.Items = items
	log.Debug("Successfully retrieved section", slog.Int("count", len(items)))
	return &section, nil
}
