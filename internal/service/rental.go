package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	gameRepo   repository.GameRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, gameRepo repository.GameRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		gameRepo:   gameRepo,
	}
}

// List returns every rental for staff and only the actor's own otherwise.
func (s *rentalService) List(ctx context.Context, actor *domain.User) ([]domain.Rental, error) {
	if actor.IsStaff {
		return s.rentalRepo.List(ctx)
	}
	return s.rentalRepo.ListByUser(ctx, actor.ID)
}

func (s *rentalService) Get(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Rentals are private: non-owners get the same answer as a missing row.
	if !actor.IsStaff && rental.UserID != actor.ID {
		return nil, domain.ErrNotFound
	}
	return rental, nil
}

func (s *rentalService) Create(ctx context.Context, actor *domain.User, in RentalInput) (*domain.Rental, error) {
	fieldErrs := domain.FieldErrors{}
	if in.UserID == nil {
		fieldErrs.Add("user_id", msgFieldRequired)
	}
	if in.GameID == nil {
		fieldErrs.Add("game_id", msgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if !actor.IsStaff && *in.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	game, err := s.gameRepo.GetByID(ctx, *in.GameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewFieldError("game_id", "Game does not exist.")
		}
		return nil, err
	}
	if !game.IsAvailable {
		return nil, domain.NewFieldError("game_id", "The game is currently unavailable.")
	}

	rental := &domain.Rental{
		UserID:   *in.UserID,
		GameID:   *in.GameID,
		RentDate: time.Now().Format(dateLayout),
		Status:   domain.RentalStatusRented,
	}
	if in.RentDate != nil {
		rental.RentDate = *in.RentDate
	}
	if in.Status != nil && *in.Status != "" {
		rental.Status = *in.Status
	}
	rental.ReturnDate = in.ReturnDate

	if err := validateRentalDates(rental); err != nil {
		return nil, err
	}
	applyAutoReturnDate(rental)

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) Update(ctx context.Context, actor *domain.User, id int32, in RentalInput) (*domain.Rental, error) {
	rental, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if !actor.IsStaff && *in.UserID != actor.ID {
			return nil, domain.ErrForbidden
		}
		rental.UserID = *in.UserID
	}
	if in.GameID != nil {
		rental.GameID = *in.GameID
	}
	if in.RentDate != nil {
		rental.RentDate = *in.RentDate
	}
	if in.ReturnDate != nil {
		rental.ReturnDate = in.ReturnDate
	}
	if in.Status != nil {
		rental.Status = *in.Status
	}

	if err := validateRentalDates(rental); err != nil {
		return nil, err
	}
	applyAutoReturnDate(rental)

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) Delete(ctx context.Context, actor *domain.User, id int32) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	err := s.rentalRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// ListForUser serves the user-rentals endpoint: staff may ask for anyone,
// other actors only for themselves.
func (s *rentalService) ListForUser(ctx context.Context, actor *domain.User, userID int32) ([]domain.Rental, error) {
	if !actor.IsStaff && userID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return s.rentalRepo.ListByUser(ctx, userID)
}

// MonthlySummary counts rentals per game title for the given month and
// year, defaulting to the current ones when the parameters are empty.
func (s *rentalService) MonthlySummary(ctx context.Context, monthParam, yearParam string) ([]domain.MonthlyRentalCount, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	var err error
	if monthParam != "" {
		month, err = strconv.Atoi(monthParam)
		if err != nil || month < 1 || month > 12 {
			return nil, domain.NewFieldError("month", "Month must be an integer from 1 to 12.")
		}
	}
	if yearParam != "" {
		year, err = strconv.Atoi(yearParam)
		if err != nil {
			return nil, domain.NewFieldError("year", "Year must be an integer.")
		}
	}

	return s.rentalRepo.MonthlySummary(ctx, month, year)
}

// validateRentalDates enforces date syntax and the return-not-before-rent
// invariant.
func validateRentalDates(rental *domain.Rental) error {
	rentDate, err := parseDate("rent_date", rental.RentDate)
	if err != nil {
		return err
	}
	if rental.ReturnDate != nil {
		returnDate, err := parseDate("return_date", *rental.ReturnDate)
		if err != nil {
			return err
		}
		if returnDate.Before(rentDate) {
			return domain.NewFieldError("return_date", "Return date cannot be earlier than the rent date.")
		}
	}
	return nil
}

// applyAutoReturnDate fills the return date with today when a rental is
// saved as returned without one.
func applyAutoReturnDate(rental *domain.Rental) {
	if rental.Status == domain.RentalStatusReturned && rental.ReturnDate == nil {
		today := time.Now().Format(dateLayout)
		rental.ReturnDate = &today
	}
}
