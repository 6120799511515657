package fetchlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
)

var sqBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger,
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, entry domain.FetchLog) error {
	query, args, err := sqBuilder.
		Insert("apod_fetches").
		Columns(
			"fetch_date",
			"title",
			"image_url",
			"file_path",
			"created_at",
		).Values(
		entry.Date,
		entry.Title,
		entry.ImageURL,
		entry.FilePath,
		time.Now(),
	).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create fetch log entry: %w", err)
	}

	return nil
}

func (r *PgxRepository) GetByDate(ctx context.Context, date string) (*domain.FetchLog, error) {
	query, args, err := sqBuilder.
		Select("id", "fetch_date", "title", "image_url", "file_path", "created_at").
		From("apod_fetches").
		Where(sq.Eq{"fetch_date": date}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var entry domain.FetchLog
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Date,
		&entry.Title,
		&entry.ImageURL,
		&entry.FilePath,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fetch log entry by date: %w", err)
	}

	return &entry, nil
}

func (r *PgxRepository) ListRecent(ctx context.Context, limit int) ([]*domain.FetchLog, error) {
	query, args, err := sqBuilder.
		Select("id", "fetch_date", "title", "image_url", "file_path", "created_at").
		From("apod_fetches").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent fetch log entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FetchLog
	for rows.Next() {
		var entry domain.FetchLog
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Title,
			&entry.ImageURL,
			&entry.FilePath,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fetch log row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fetch log rows: %w", err)
	}

	return entries, nil
}
