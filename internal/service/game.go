package service

import (
	"context"
	"database/sql"
	"errors"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.gameRepo.List(ctx)
}

func (s *gameService) Get(ctx context.Context, id int32) (*domain.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *gameService) Create(ctx context.Context, in GameInput) (*domain.Game, error) {
	fieldErrs := domain.FieldErrors{}
	if in.Title == nil || *in.Title == "" {
		fieldErrs.Add("title", msgFieldRequired)
	}
	if in.Genre == nil || *in.Genre == "" {
		fieldErrs.Add("genre", msgFieldRequired)
	}
	if in.Platform == nil || *in.Platform == "" {
		fieldErrs.Add("platform", msgFieldRequired)
	}
	if in.ReleaseDate == nil || *in.ReleaseDate == "" {
		fieldErrs.Add("release_date", msgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if _, err := parseDate("release_date", *in.ReleaseDate); err != nil {
		return nil, err
	}

	game := &domain.Game{
		Title:       *in.Title,
		Genre:       *in.Genre,
		Platform:    *in.Platform,
		ReleaseDate: *in.ReleaseDate,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		game.IsAvailable = *in.IsAvailable
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	game.AvailabilityStatus = game.AvailabilityLabel()
	return game, nil
}

func (s *gameService) Update(ctx context.Context, id int32, in GameInput) (*domain.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		game.Title = *in.Title
	}
	if in.Genre != nil {
		game.Genre = *in.Genre
	}
	if in.Platform != nil {
		game.Platform = *in.Platform
	}
	if in.ReleaseDate != nil {
		if _, err := parseDate("release_date", *in.ReleaseDate); err != nil {
			return nil, err
		}
		game.ReleaseDate = *in.ReleaseDate
	}
	if in.IsAvailable != nil {
		game.IsAvailable = *in.IsAvailable
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}
	game.AvailabilityStatus = game.AvailabilityLabel()
	return game, nil
}

func (s *gameService) Delete(ctx context.Context, id int32) error {
	err := s.gameRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// ListByLetter matches titles by a case-insensitive prefix. No matches is a
// not-found condition, not an empty list.
func (s *gameService) ListByLetter(ctx context.Context, letter string) ([]domain.Game, error) {
	games, err := s.gameRepo.ListByTitlePrefix(ctx, letter)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, domain.ErrNotFound
	}
	return games, nil
}
