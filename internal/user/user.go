package user

import (
	"context"
	"time"

	types "feedback-main/internal/types/user"
)

// User структура пользователя
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary - то, что отдается клиенту после регистрации и входа
type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username}
}

// UserRepo интерфейс удовлетворяющий методам сущности пользователя
//
//go:generate mockgen -source=user.go -destination=../mocks/mock_user_repo.go -package=mocks
type UserRepo interface {
	// CreateUser создает пользователя, ErrAlreadyExists если username занят
	CreateUser(ctx context.Context, u types.CreateUser) (*User, error)
	// CheckUser - проверяет пользователя по username и паролю
	CheckUser(ctx context.Context, username, password string) (*User, error)
	// Info возвращает информацию о пользователе
	Info(ctx context.Context, userID int64) (*User, error)
}
