package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{
	"id", "slug", "title", "short_description",
	"client_name", "live_url", "repo_url",
	"category", "is_featured", "launch_date",
	"problem", "solution", "results",
	"process", "highlights", "technologies",
	"thumbnail_image", "gallery_images", "created_at",
}

func addProjectRow(rows *pgxmock.Rows, id, slug, title string, featured bool, launch *time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, slug, title, "a short description",
		"Acme Co", "https://example.com", "",
		"web-design", featured, launch,
		"", "", "",
		[]string{}, []string{"fast"}, []string{"Go", "Postgres"},
		"", []string{}, time.Now().UTC(),
	)
}

func TestPostgresRepositoryList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	launch := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(projectRowColumns)
	rows = addProjectRow(rows, "p-1", "featured-site", "Featured Site", true, &launch)
	rows = addProjectRow(rows, "p-2", "older-site", "Older Site", false, nil)

	mock.ExpectQuery("ORDER BY is_featured DESC, launch_date DESC NULLS LAST").
		WillReturnRows(rows)

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "featured-site", projects[0].Slug)
	require.True(t, projects[0].IsFeatured)
	require.NotNil(t, projects[0].LaunchDate)
	require.Nil(t, projects[1].LaunchDate)
	require.Equal(t, []string{"Go", "Postgres"}, projects[0].Technologies)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGetBySlug(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	rows := pgxmock.NewRows(projectRowColumns)
	rows = addProjectRow(rows, "p-1", "featured-site", "Featured Site", true, nil)

	mock.ExpectQuery("WHERE slug = \\$1").
		WithArgs("featured-site").
		WillReturnRows(rows)

	project, err := repo.GetBySlug(context.Background(), "featured-site")
	require.NoError(t, err)
	require.Equal(t, "Featured Site", project.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGetBySlugNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	mock.ExpectQuery("WHERE slug = \\$1").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(projectRowColumns))

	_, err = repo.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProjectNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
