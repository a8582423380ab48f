package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"reward-platform/internal/store"

	"github.com/google/uuid"
)

// UserStore defines the database operations required by UserProcessor
type UserStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByUsername(ctx context.Context, username string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (store.User, error)
	UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	CreateLoginLog(ctx context.Context, userID uuid.UUID, username string, at time.Time) (store.LoginLog, error)
	GetLoginTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}
