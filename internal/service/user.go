package service

import (
	"context"
	"database/sql"
	"errors"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	return createUser(ctx, s.userRepo, in)
}

func (s *userService) Update(ctx context.Context, id int32, in UserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkUserUniqueness(ctx, s.userRepo, in, user.ID); err != nil {
		return nil, err
	}
	if err := applyUserUpdate(user, in); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int32) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// createUser is shared by registration and the staff user CRUD. Username,
// email and password are required; the password is stored only as a bcrypt
// hash.
func createUser(ctx context.Context, userRepo repository.UserRepository, in UserInput) (*domain.User, error) {
	fieldErrs := domain.FieldErrors{}
	if in.Username == nil || *in.Username == "" {
		fieldErrs.Add("username", msgFieldRequired)
	}
	if in.Email == nil || *in.Email == "" {
		fieldErrs.Add("email", msgFieldRequired)
	}
	if in.Password == nil || *in.Password == "" {
		fieldErrs.Add("password", msgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if err := checkUserUniqueness(ctx, userRepo, in, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     *in.Username,
		Email:        *in.Email,
		PasswordHash: string(hash),
	}
	if in.IsStaff != nil {
		user.IsStaff = *in.IsStaff
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// applyUserUpdate merges the supplied fields into the stored user. A new
// password is routed through hashing instead of direct assignment.
func applyUserUpdate(user *domain.User, in UserInput) error {
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsStaff != nil {
		user.IsStaff = *in.IsStaff
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	return nil
}

// checkUserUniqueness rejects usernames and emails already taken by another
// user. selfID excludes the user being updated.
func checkUserUniqueness(ctx context.Context, userRepo repository.UserRepository, in UserInput, selfID int32) error {
	fieldErrs := domain.FieldErrors{}
	if in.Username != nil && *in.Username != "" {
		existing, err := userRepo.GetByUsername(ctx, *in.Username)
		if err == nil && existing.ID != selfID {
			fieldErrs.Add("username", "A user with that username already exists.")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}
	if in.Email != nil && *in.Email != "" {
		existing, err := userRepo.GetByEmail(ctx, *in.Email)
		if err == nil && existing.ID != selfID {
			fieldErrs.Add("email", "A user with that email already exists.")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
