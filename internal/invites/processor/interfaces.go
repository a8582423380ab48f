package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"reward-platform/internal/store"
)

// InviteStore defines the database operations required by InviteProcessor
type InviteStore interface {
	InviteExists(ctx context.Context, inviter, invited string) (bool, error)
	CreateInvite(ctx context.Context, inviter, invited string) (store.Invite, error)
}
