package session

import (
	"context"
	"net/http"
	"time"
)

// CookieName - cookie, в которую кладется токен после входа
const CookieName = "session_token"

// Session - структура сессии
type Session struct {
	ID        string
	UserID    int64
	Username  string
	StartTime time.Time
	EndTime   time.Time
	// Token - подписанный JWT, в Redis не хранится
	Token string `json:"-"`
}

// SessionRepo - репозиторий для работы с сессиями
//
//go:generate mockgen -source=session.go -destination=../mocks/mock_session_repo.go -package=mocks
type SessionRepo interface {
	// CreateSession - создает новую сессию для пользователя и кладет ее в Redis
	// Возвращает Session с подписанным токеном
	CreateSession(ctx context.Context, userID int64, username string) (*Session, error)
	// CheckSession - достает токен из запроса, проверяет существование сессии в Redis и не истекла ли она
	// Возвращает *Session в случае успеха, иначе nil
	CheckSession(r *http.Request) (*Session, error)
	// ExtendSession - продлевает сессию, если пользователь активно пользуется сервисом
	ExtendSession(ctx context.Context, sessionID string) error
	// DeleteSession - удаляет сессию из Redis, после этого токен больше не принимается
	DeleteSession(ctx context.Context, sessionID string) error
}
