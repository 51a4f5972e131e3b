package service

import (
	"context"
	"gamerental-backend/internal/domain"
)

// Input structs carry pointer fields so partial updates can distinguish
// "not supplied" from a zero value. Creates require the fields their
// service method names; updates merge whatever is present.

type UserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsStaff  *bool   `json:"is_staff"`
}

type GameInput struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	Platform    *string `json:"platform"`
	ReleaseDate *string `json:"release_date"`
	IsAvailable *bool   `json:"is_available"`
}

type RentalInput struct {
	UserID     *int32  `json:"user_id"`
	GameID     *int32  `json:"game_id"`
	RentDate   *string `json:"rent_date"`
	ReturnDate *string `json:"return_date"`
	Status     *string `json:"status"`
}

type ReviewInput struct {
	UserID  *int32  `json:"user_id"`
	GameID  *int32  `json:"game_id"`
	Rating  *int32  `json:"rating"`
	Comment *string `json:"comment"`
}

type PaymentInput struct {
	UserID        *int32  `json:"user_id"`
	RentalID      *int32  `json:"rental_id"`
	Amount        *string `json:"amount"`
	PaymentMethod *string `json:"payment_method"`
}

type AuthService interface {
	Register(ctx context.Context, in UserInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int32) (*domain.User, error)
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Update(ctx context.Context, id int32, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int32) error
}

type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	Get(ctx context.Context, id int32) (*domain.Game, error)
	Create(ctx context.Context, in GameInput) (*domain.Game, error)
	Update(ctx context.Context, id int32, in GameInput) (*domain.Game, error)
	Delete(ctx context.Context, id int32) error
	ListByLetter(ctx context.Context, letter string) ([]domain.Game, error)
}

type RentalService interface {
	List(ctx context.Context, actor *domain.User) ([]domain.Rental, error)
	Get(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error)
	Create(ctx context.Context, actor *domain.User, in RentalInput) (*domain.Rental, error)
	Update(ctx context.Context, actor *domain.User, id int32, in RentalInput) (*domain.Rental, error)
	Delete(ctx context.Context, actor *domain.User, id int32) error
	ListForUser(ctx context.Context, actor *domain.User, userID int32) ([]domain.Rental, error)
	MonthlySummary(ctx context.Context, monthParam, yearParam string) ([]domain.MonthlyRentalCount, error)
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Get(ctx context.Context, id int32) (*domain.Review, error)
	Create(ctx context.Context, actor *domain.User, in ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, actor *domain.User, id int32, in ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, actor *domain.User, id int32) error
}

type PaymentService interface {
	List(ctx context.Context, actor *domain.User) ([]domain.Payment, error)
	Get(ctx context.Context, actor *domain.User, id int32) (*domain.Payment, error)
	Create(ctx context.Context, actor *domain.User, in PaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, actor *domain.User, id int32, in PaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, actor *domain.User, id int32) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, username string) error
}
