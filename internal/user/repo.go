package user

import (
	"context"
	"database/sql"
	"errors"

	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/user"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
	}
}

func (ur *UserDBRepository) CreateUser(ctx context.Context, cu types.CreateUser) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cu.Password), bcrypt.DefaultCost)
	if err != nil {
		ur.Logger.Errorw("Failed to hash password", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	query := `
	INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	ON CONFLICT (username) DO NOTHING
	RETURNING id, created_at
	`

	u := &User{
		Username:     cu.Username,
		Email:        cu.Email,
		PasswordHash: string(hash),
	}
	err = ur.DB.QueryRowContext(ctx, query, cu.Username, cu.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строку
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrAlreadyExists
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, myErr.ErrAlreadyExists
		}

		ur.Logger.Errorw("Failed to create user",
			zap.Error(err),
			zap.String("username", cu.Username),
		)
		return nil, myErr.ErrDBInternal
	}

	ur.Logger.Infof("User %s created with id %d", u.Username, u.ID)

	return u, nil
}

func (ur *UserDBRepository) CheckUser(ctx context.Context, username, password string) (*User, error) {
	query := `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE username = $1
	`

	u := &User{}
	err := ur.DB.QueryRowContext(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrBadCredentials
		}
		ur.Logger.Warnf("Error while checking user %s: %v", username, err)
		return nil, myErr.ErrDBInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, myErr.ErrBadCredentials
	}

	return u, nil
}

func (ur *UserDBRepository) Info(ctx context.Context, userID int64) (*User, error) {
	query := `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE id = $1
	`

	u := &User{}
	err := ur.DB.QueryRowContext(ctx, query, userID).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Error while loading user %d: %v", userID, err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}
