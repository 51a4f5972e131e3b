package service

import (
	"context"
	"database/sql"
	"errors"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo repository.GameRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
	}
}

// Reviews are public content: any authenticated user may read all of them.
func (s *reviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *reviewService) Get(ctx context.Context, id int32) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Create(ctx context.Context, actor *domain.User, in ReviewInput) (*domain.Review, error) {
	fieldErrs := domain.FieldErrors{}
	if in.GameID == nil {
		fieldErrs.Add("game_id", msgFieldRequired)
	}
	if in.Rating == nil {
		fieldErrs.Add("rating", msgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if err := validateRating(*in.Rating); err != nil {
		return nil, err
	}
	if _, err := s.gameRepo.GetByID(ctx, *in.GameID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewFieldError("game_id", "Game does not exist.")
		}
		return nil, err
	}

	// The owner is always the requesting actor, whatever the body says.
	review := &domain.Review{
		UserID: actor.ID,
		GameID: *in.GameID,
		Rating: *in.Rating,
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, actor *domain.User, id int32, in ReviewInput) (*domain.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff && review.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if in.GameID != nil {
		review.GameID = *in.GameID
	}
	if in.Rating != nil {
		if err := validateRating(*in.Rating); err != nil {
			return nil, err
		}
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor *domain.User, id int32) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsStaff && review.UserID != actor.ID {
		return domain.ErrForbidden
	}
	err = s.reviewRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func validateRating(rating int32) error {
	if rating < 1 || rating > 5 {
		return domain.NewFieldError("rating", "Rating must be a value from 1 to 5.")
	}
	return nil
}
