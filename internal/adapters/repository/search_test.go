package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/adapters/repository"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/andrewshostak/team-lookup-service/internal/infra/postgres"
	"github.com/andrewshostak/team-lookup-service/testutils"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const testDatabase = "team_lookup"

func TestSearchRepository_Save(t *testing.T) {
	db := setupDatabase(t)
	repo := repository.NewSearchRepository(db)
	ctx := context.Background()

	search := testutils.FakeSearch()

	require.NoError(t, repo.Save(ctx, search))

	var stored repository.Search
	require.NoError(t, db.First(&stored, "id = ?", search.ID).Error)

	assert.Equal(t, search.Query, stored.Query)
	assert.Equal(t, search.TeamID, stored.TeamID)
	assert.Equal(t, search.TeamName, stored.TeamName)
	assert.Equal(t, string(search.UpcomingStatus), stored.UpcomingStatus)
	assert.Equal(t, search.UpcomingCount, stored.UpcomingCount)
	assert.Equal(t, string(search.PastStatus), stored.PastStatus)
	assert.Equal(t, search.PastCount, stored.PastCount)
	assert.Equal(t, string(search.RosterStatus), stored.RosterStatus)
	assert.Equal(t, search.RosterCount, stored.RosterCount)
	assert.Equal(t, search.Duration.Milliseconds(), stored.DurationMs)
	assert.True(t, search.CreatedAt.Equal(stored.CreatedAt))

	err := repo.Save(ctx, search)
	assert.ErrorContains(t, err, "failed to create search "+search.ID.String())
}

func TestSearchRepository_Save_WithoutTeam(t *testing.T) {
	db := setupDatabase(t)
	repo := repository.NewSearchRepository(db)

	search := testutils.FakeSearch(func(s *models.Search) {
		s.TeamID = nil
		s.TeamName = nil
		s.UpcomingStatus = models.StatusNotFound
		s.PastStatus = models.StatusNotFound
		s.RosterStatus = models.StatusNotFound
		s.CreatedAt = time.Time{}
	})

	require.NoError(t, repo.Save(context.Background(), search))

	var stored repository.Search
	require.NoError(t, db.First(&stored, "id = ?", search.ID).Error)

	assert.Nil(t, stored.TeamID)
	assert.Nil(t, stored.TeamName)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSearchRepository_List(t *testing.T) {
	db := setupDatabase(t)
	repo := repository.NewSearchRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	oldest := testutils.FakeRepositorySearch(func(s *repository.Search) { s.CreatedAt = now.Add(-2 * time.Hour) })
	newest := testutils.FakeRepositorySearch(func(s *repository.Search) { s.CreatedAt = now })
	middle := testutils.FakeRepositorySearch(func(s *repository.Search) { s.CreatedAt = now.Add(-time.Hour) })

	for _, s := range []repository.Search{oldest, newest, middle} {
		require.NoError(t, db.Create(&s).Error)
	}

	tests := []struct {
		name     string
		limit    int
		expected []repository.Search
	}{
		{
			name:     "it returns searches newest first",
			limit:    10,
			expected: []repository.Search{newest, middle, oldest},
		},
		{
			name:     "it applies the limit",
			limit:    2,
			expected: []repository.Search{newest, middle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := repo.List(ctx, tt.limit)
			require.NoError(t, err)
			require.Len(t, actual, len(tt.expected))

			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].ID, actual[i].ID)
				assert.Equal(t, tt.expected[i].Query, actual[i].Query)
				assert.Equal(t, models.ResultStatus(tt.expected[i].RosterStatus), actual[i].RosterStatus)
				assert.Equal(t, time.Duration(tt.expected[i].DurationMs)*time.Millisecond, actual[i].Duration)
				assert.True(t, tt.expected[i].CreatedAt.Equal(actual[i].CreatedAt))
			}
		})
	}
}

func setupDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase(testDatabase),
		pgcontainer.WithUsername("postgres"),
		pgcontainer.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance("file://../../../database/migrations", testDatabase, driver)
	require.NoError(t, err)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	return db
}
