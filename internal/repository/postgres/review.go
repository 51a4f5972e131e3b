package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func scanReview(row interface{ Scan(...any) error }) (*domain.Review, error) {
	rev := &domain.Review{}
	var createdAt time.Time
	err := row.Scan(&rev.ID, &rev.UserID, &rev.GameID, &rev.Rating, &rev.Comment, &createdAt)
	if err != nil {
		return nil, err
	}
	rev.CreatedAt = createdAt.Format("2006-01-02")
	return rev, nil
}

func (r *reviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (user_id, game_id, rating, comment, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	rev.CreatedAt = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, rev.UserID, rev.GameID, rev.Rating, rev.Comment, now).Scan(&rev.ID)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	query := `SELECT id, user_id, game_id, rating, COALESCE(comment, ''), created_at FROM reviews WHERE id = $1`
	return scanReview(r.db.QueryRowContext(ctx, query, id))
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT id, user_id, game_id, rating, COALESCE(comment, ''), created_at FROM reviews ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rev)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) Update(ctx context.Context, rev *domain.Review) error {
	query := `UPDATE reviews SET user_id=$1, game_id=$2, rating=$3, comment=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rev.UserID, rev.GameID, rev.Rating, rev.Comment, rev.ID)
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id=$1`, id)
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
