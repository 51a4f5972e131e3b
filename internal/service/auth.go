package service

import (
	"context"
	"database/sql"
	"errors"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository"
	"gamerental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	emailSvc EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, emailSvc EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

func (s *authService) Register(ctx context.Context, in UserInput) (*domain.User, error) {
	// Registration never grants the staff flag, whatever the body says.
	in.IsStaff = nil

	user, err := createUser(ctx, s.userRepo, in)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailSvc.SendWelcome(context.Background(), user.Email, user.Username); err != nil {
			logger.Warn("Failed to send welcome email", "error", err, "email", user.Email)
		}
	}()

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to record last login", "error", err, "user_id", user.ID)
	}

	return token.Token, user, nil
}
