package domain

type User struct {
	ID           int32   `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	IsStaff      bool    `json:"is_staff"`
	DateJoined   string  `json:"date_joined"`
	LastLogin    *string `json:"last_login,omitempty"`
}
