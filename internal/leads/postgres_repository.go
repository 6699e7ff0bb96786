package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is the subset of pgxpool.Pool the repository needs. Tests
// substitute a pgxmock pool.
type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db pgxQuerier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func newPostgresRepositoryWithQuerier(db pgxQuerier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new row. Phone and message are stored as NULL when empty.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	id := uuid.New()
	query := `
		INSERT INTO leads (id, name, email, phone, message, source)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Phone,
		req.Message,
		req.Source,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:        id.String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Source:    req.Source,
		CreatedAt: createdAt,
	}, nil
}

// GetByID fetches a single lead.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(message, ''), COALESCE(source, ''), created_at
		FROM leads
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var lead Lead
	if err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Message,
		&lead.Source,
		&lead.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	return &lead, nil
}

// List returns leads newest first.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Lead, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(message, ''), COALESCE(source, ''), created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	var out []*Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Message,
			&lead.Source,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		out = append(out, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list rows: %w", err)
	}
	return out, nil
}
