package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var dateJoined time.Time
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &dateJoined, &lastLogin)
	if err != nil {
		return nil, err
	}
	u.DateJoined = dateJoined.Format("2006-01-02")
	if lastLogin.Valid {
		dateStr := lastLogin.Time.Format("2006-01-02")
		u.LastLogin = &dateStr
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, is_staff, date_joined)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	u.DateJoined = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.IsStaff, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, is_staff, date_joined, last_login FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, is_staff, date_joined, last_login FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, is_staff, date_joined, last_login FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, email, password_hash, is_staff, date_joined, last_login FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username=$1, email=$2, password_hash=$3, is_staff=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.IsStaff, u.ID)
	return err
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int32) error {
	query := `UPDATE users SET last_login=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
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
