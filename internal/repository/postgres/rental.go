package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rental := &domain.Rental{}
	var rentDate time.Time
	var returnDate sql.NullTime
	err := row.Scan(&rental.ID, &rental.UserID, &rental.GameID, &rentDate, &returnDate, &rental.Status)
	if err != nil {
		return nil, err
	}
	rental.RentDate = rentDate.Format("2006-01-02")
	if returnDate.Valid {
		dateStr := returnDate.Time.Format("2006-01-02")
		rental.ReturnDate = &dateStr
	}
	return rental, nil
}

func nullableDate(date *string) interface{} {
	if date == nil {
		return nil
	}
	return *date
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (user_id, game_id, rent_date, return_date, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rental.UserID, rental.GameID, rental.RentDate, nullableDate(rental.ReturnDate), rental.Status).Scan(&rental.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT id, user_id, game_id, rent_date, return_date, status FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT id, user_id, game_id, rent_date, return_date, status FROM rentals ORDER BY id`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT id, user_id, game_id, rent_date, return_date, status FROM rentals WHERE user_id = $1 ORDER BY id`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rental)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `UPDATE rentals SET user_id=$1, game_id=$2, rent_date=$3, return_date=$4, status=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rental.UserID, rental.GameID, rental.RentDate, nullableDate(rental.ReturnDate), rental.Status, rental.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) MonthlySummary(ctx context.Context, month, year int) ([]domain.MonthlyRentalCount, error) {
	query := `SELECT g.title, COUNT(r.id)
	          FROM rentals r
	          JOIN games g ON g.id = r.game_id
	          WHERE EXTRACT(MONTH FROM r.rent_date) = $1 AND EXTRACT(YEAR FROM r.rent_date) = $2
	          GROUP BY g.title
	          ORDER BY g.title`
	logger.DatabaseCall("SELECT", "rentals JOIN games", "month", month, "year", year)

	rows, err := r.db.QueryContext(ctx, query, month, year)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "month", month, "year", year)
		return nil, err
	}
	defer rows.Close()

	var summary []domain.MonthlyRentalCount
	for rows.Next() {
		var row domain.MonthlyRentalCount
		if err := rows.Scan(&row.Title, &row.TotalRentals); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}
	logger.DatabaseResult("SELECT", int64(len(summary)), nil, "month", month, "year", year)
	return summary, rows.Err()
}
