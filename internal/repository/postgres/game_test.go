package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGameRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGameRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "genre", "platform", "release_date", "is_available"}).
			AddRow(1, "Hollow Knight", "Metroidvania", "PC", time.Date(2017, 2, 24, 0, 0, 0, 0, time.UTC), true)

		mock.ExpectQuery("SELECT (.+) FROM games WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		game, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Hollow Knight", game.Title)
		assert.Equal(t, "2017-02-24", game.ReleaseDate)
		assert.Equal(t, domain.AvailabilityLabelAvailable, game.AvailabilityStatus)
	})

	t.Run("UnavailableLabel", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "genre", "platform", "release_date", "is_available"}).
			AddRow(2, "Celeste", "Platformer", "Switch", time.Now(), false)

		mock.ExpectQuery("SELECT (.+) FROM games WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		game, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityLabelUnavailable, game.AvailabilityStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM games WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		game, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, game)
	})
}

func TestGameRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGameRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		g := &domain.Game{
			Title:       "Stardew Valley",
			Genre:       "Simulation",
			Platform:    "PC",
			ReleaseDate: "2016-02-26",
			IsAvailable: true,
		}

		mock.ExpectQuery("INSERT INTO games").
			WithArgs(g.Title, g.Genre, g.Platform, g.ReleaseDate, g.IsAvailable).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, g)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), g.ID)
	})
}

func TestGameRepository_ListByTitlePrefix(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGameRepository(db)
	ctx := context.Background()

	t.Run("Matches", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "genre", "platform", "release_date", "is_available"}).
			AddRow(1, "Hades", "Roguelike", "PC", time.Now(), true).
			AddRow(2, "Hollow Knight", "Metroidvania", "PC", time.Now(), true)

		mock.ExpectQuery("SELECT (.+) FROM games WHERE title ILIKE").
			WithArgs("h").
			WillReturnRows(rows)

		games, err := repo.ListByTitlePrefix(ctx, "h")
		assert.NoError(t, err)
		assert.Len(t, games, 2)
		assert.Equal(t, "Hades", games[0].Title)
	})

	t.Run("Empty", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "genre", "platform", "release_date", "is_available"})

		mock.ExpectQuery("SELECT (.+) FROM games WHERE title ILIKE").
			WithArgs("z").
			WillReturnRows(rows)

		games, err := repo.ListByTitlePrefix(ctx, "z")
		assert.NoError(t, err)
		assert.Empty(t, games)
	})
}
