package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var paymentDate time.Time
	err := row.Scan(&p.ID, &p.UserID, &p.RentalID, &p.Amount, &paymentDate, &p.PaymentMethod)
	if err != nil {
		return nil, err
	}
	p.PaymentDate = paymentDate.Format("2006-01-02")
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (user_id, rental_id, amount, payment_date, payment_method)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	p.PaymentDate = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, p.UserID, p.RentalID, p.Amount, now, p.PaymentMethod).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	query := `SELECT id, user_id, rental_id, amount, payment_date, payment_method FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, id))
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT id, user_id, rental_id, amount, payment_date, payment_method FROM payments ORDER BY id`
	return r.queryPayments(ctx, query)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error) {
	query := `SELECT id, user_id, rental_id, amount, payment_date, payment_method FROM payments WHERE user_id = $1 ORDER BY id`
	return r.queryPayments(ctx, query, userID)
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET user_id=$1, rental_id=$2, amount=$3, payment_method=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.RentalID, p.Amount, p.PaymentMethod, p.ID)
	return err
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id=$1`, id)
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
