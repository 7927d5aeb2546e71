package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements mediagallery.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) *Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("media with the same filename already exists")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("media table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

func (r *Repository) List(ctx context.Context) ([]*mediagallery.Media, error) {
	query := `
        SELECT id, filename, originalname, type, url, uploaded_by, created_at
        FROM media
        ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list media", err)
	}
	defer rows.Close()

	var media []*mediagallery.Media
	for rows.Next() {
		var m mediagallery.Media
		if err := rows.Scan(
			&m.ID, &m.FileName, &m.OriginalName, &m.Type,
			&m.URL, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		media = append(media, &m)
	}

	return media, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, media *mediagallery.Media) (*mediagallery.Media, error) {
	query := `
		INSERT INTO media (filename, originalname, type, url, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, filename, originalname, type, url, uploaded_by, created_at`

	var created mediagallery.Media
	err := r.db.QueryRow(ctx, query,
		media.FileName, media.OriginalName, media.Type,
		media.URL, media.UploadedBy).Scan(
		&created.ID, &created.FileName, &created.OriginalName, &created.Type,
		&created.URL, &created.UploadedBy, &created.CreatedAt)

	if err != nil {
		return nil, r.handlePostgresError("insert media", err)
	}

	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*mediagallery.Media, error) {
	query := `
        SELECT id, filename, originalname, type, url, uploaded_by, created_at
        FROM media WHERE id = $1`

	var m mediagallery.Media
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.FileName, &m.OriginalName, &m.Type,
		&m.URL, &m.UploadedBy, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mediagallery.ErrMediaNotFound
		}
		return nil, r.handlePostgresError("get media", err)
	}

	return &m, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return r.handlePostgresError("delete media", err)
	}
	if tag.RowsAffected() == 0 {
		return mediagallery.ErrMediaNotFound
	}

	return nil
}
