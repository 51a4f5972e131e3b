package security

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenManager issues and validates opaque bearer tokens. Tokens are
// persisted state: login returns the user's existing token while it is
// still live, and mints a fresh one otherwise.
type TokenManager interface {
	Issue(ctx context.Context, userID int32) (*domain.AuthToken, error)
	Validate(ctx context.Context, token string) (*domain.AuthToken, error)
	Revoke(ctx context.Context, token string) error
}

type tokenManager struct {
	tokens repository.TokenRepository
	ttl    time.Duration
}

func NewTokenManager(tokens repository.TokenRepository, ttl time.Duration) TokenManager {
	return &tokenManager{
		tokens: tokens,
		ttl:    ttl,
	}
}

func (m *tokenManager) Issue(ctx context.Context, userID int32) (*domain.AuthToken, error) {
	existing, err := m.tokens.GetByUserID(ctx, userID)
	if err == nil {
		if !existing.Expired(time.Now()) {
			return existing, nil
		}
		if err := m.tokens.Delete(ctx, existing.Token); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now()
	token := &domain.AuthToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (m *tokenManager) Validate(ctx context.Context, token string) (*domain.AuthToken, error) {
	t, err := m.tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if t.Expired(time.Now()) {
		_ = m.tokens.Delete(ctx, t.Token)
		return nil, ErrExpiredToken
	}
	return t, nil
}

func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	return m.tokens.Delete(ctx, token)
}
