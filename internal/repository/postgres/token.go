package postgres

import (
	"context"
	"database/sql"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, t *domain.AuthToken) error {
	query := `INSERT INTO auth_tokens (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, t.Token, t.UserID, t.CreatedAt, t.ExpiresAt)
	return err
}

func (r *tokenRepository) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	t := &domain.AuthToken{}
	query := `SELECT token, user_id, created_at, expires_at FROM auth_tokens WHERE token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&t.Token, &t.UserID, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID int32) (*domain.AuthToken, error) {
	t := &domain.AuthToken{}
	query := `SELECT token, user_id, created_at, expires_at FROM auth_tokens WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&t.Token, &t.UserID, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tokenRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE token=$1`, token)
	return err
}

func (r *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
