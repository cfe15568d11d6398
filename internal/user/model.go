package user

import (
	"time"

	"github.com/gofrs/uuid"
)

// User представляет структуру данных пользователя.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // не возвращаем в ответах
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// Session is the result of a successful login. Token is an opaque bearer value.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
