package postgres

import (
	"database/sql"
	"gamerental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.GameRepository
	repository.RentalRepository
	repository.ReviewRepository
	repository.PaymentRepository
	repository.TokenRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		GameRepository:    NewGameRepository(db),
		RentalRepository:  NewRentalRepository(db),
		ReviewRepository:  NewReviewRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		TokenRepository:   NewTokenRepository(db),
	}
}
