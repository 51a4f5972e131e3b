package service

import (
	"context"
	"database/sql"
	"errors"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
	}
}

func (s *paymentService) List(ctx context.Context, actor *domain.User) ([]domain.Payment, error) {
	if actor.IsStaff {
		return s.paymentRepo.List(ctx)
	}
	return s.paymentRepo.ListByUser(ctx, actor.ID)
}

func (s *paymentService) Get(ctx context.Context, actor *domain.User, id int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Payments are private, same as rentals.
	if !actor.IsStaff && payment.UserID != actor.ID {
		return nil, domain.ErrNotFound
	}
	return payment, nil
}

func (s *paymentService) Create(ctx context.Context, actor *domain.User, in PaymentInput) (*domain.Payment, error) {
	fieldErrs := domain.FieldErrors{}
	if in.UserID == nil {
		fieldErrs.Add("user_id", msgFieldRequired)
	}
	if in.RentalID == nil {
		fieldErrs.Add("rental_id", msgFieldRequired)
	}
	if in.Amount == nil || *in.Amount == "" {
		fieldErrs.Add("amount", msgFieldRequired)
	}
	if in.PaymentMethod == nil || *in.PaymentMethod == "" {
		fieldErrs.Add("payment_method", msgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if !actor.IsStaff && *in.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if err := validateAmount(*in.Amount); err != nil {
		return nil, err
	}
	if _, err := s.rentalRepo.GetByID(ctx, *in.RentalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewFieldError("rental_id", "Rental does not exist.")
		}
		return nil, err
	}

	payment := &domain.Payment{
		UserID:        *in.UserID,
		RentalID:      *in.RentalID,
		Amount:        *in.Amount,
		PaymentMethod: *in.PaymentMethod,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, actor *domain.User, id int32, in PaymentInput) (*domain.Payment, error) {
	payment, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if !actor.IsStaff && *in.UserID != actor.ID {
			return nil, domain.ErrForbidden
		}
		payment.UserID = *in.UserID
	}
	if in.RentalID != nil {
		payment.RentalID = *in.RentalID
	}
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		payment.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		payment.PaymentMethod = *in.PaymentMethod
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, actor *domain.User, id int32) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	err := s.paymentRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
