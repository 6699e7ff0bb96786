package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProjectNotFound is returned when no project matches the given slug.
var ErrProjectNotFound = errors.New("project not found")

// Repository defines the interface for portfolio storage
type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores projects in Postgres.
type PostgresRepository struct {
	db pgxQuerier
}

// NewPostgresRepository initializes a repository backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("portfolio: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func newPostgresRepositoryWithQuerier(db pgxQuerier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const projectColumns = `
	id, slug, title, short_description,
	COALESCE(client_name, ''), COALESCE(live_url, ''), COALESCE(repo_url, ''),
	category, is_featured, launch_date,
	COALESCE(problem, ''), COALESCE(solution, ''), COALESCE(results, ''),
	process, highlights, technologies,
	COALESCE(thumbnail_image, ''), gallery_images, created_at`

// List returns every project, featured first, newest launch first. Projects
// without a launch date sort last within their group.
func (r *PostgresRepository) List(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT` + projectColumns + `
		FROM portfolio_projects
		ORDER BY is_featured DESC, launch_date DESC NULLS LAST, created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("portfolio: list projects: %w", err)
	}
	defer rows.Close()

	var out []*Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("portfolio: scan project: %w", err)
		}
		out = append(out, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("portfolio: list project rows: %w", err)
	}
	return out, nil
}

// GetBySlug returns the project with the given slug.
func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	query := `
		SELECT` + projectColumns + `
		FROM portfolio_projects
		WHERE slug = $1
	`
	project, err := scanProject(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("portfolio: get project by slug: %w", err)
	}
	return project, nil
}

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.ShortDescription,
		&p.ClientName,
		&p.LiveURL,
		&p.RepoURL,
		&p.Category,
		&p.IsFeatured,
		&p.LaunchDate,
		&p.Problem,
		&p.Solution,
		&p.Results,
		&p.Process,
		&p.Highlights,
		&p.Technologies,
		&p.ThumbnailImage,
		&p.GalleryImages,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
