package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func scanGame(row interface{ Scan(...any) error }) (*domain.Game, error) {
	g := &domain.Game{}
	var releaseDate time.Time
	err := row.Scan(&g.ID, &g.Title, &g.Genre, &g.Platform, &releaseDate, &g.IsAvailable)
	if err != nil {
		return nil, err
	}
	g.ReleaseDate = releaseDate.Format("2006-01-02")
	g.AvailabilityStatus = g.AvailabilityLabel()
	return g, nil
}

func (r *gameRepository) Create(ctx context.Context, g *domain.Game) error {
	query := `INSERT INTO games (title, genre, platform, release_date, is_available)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Title, g.Genre, g.Platform, g.ReleaseDate, g.IsAvailable).Scan(&g.ID)
}

func (r *gameRepository) GetByID(ctx context.Context, id int32) (*domain.Game, error) {
	query := `SELECT id, title, genre, platform, release_date, is_available FROM games WHERE id = $1`
	return scanGame(r.db.QueryRowContext(ctx, query, id))
}

func (r *gameRepository) List(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT id, title, genre, platform, release_date, is_available FROM games ORDER BY id`
	return r.queryGames(ctx, query)
}

func (r *gameRepository) ListByTitlePrefix(ctx context.Context, prefix string) ([]domain.Game, error) {
	query := `SELECT id, title, genre, platform, release_date, is_available FROM games WHERE title ILIKE $1 || '%' ORDER BY title`
	return r.queryGames(ctx, query, prefix)
}

func (r *gameRepository) queryGames(ctx context.Context, query string, args ...any) ([]domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

func (r *gameRepository) Update(ctx context.Context, g *domain.Game) error {
	query := `UPDATE games SET title=$1, genre=$2, platform=$3, release_date=$4, is_available=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, g.Title, g.Genre, g.Platform, g.ReleaseDate, g.IsAvailable, g.ID)
	return err
}

func (r *gameRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
