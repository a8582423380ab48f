package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"reward-platform/internal/store"

	"github.com/google/uuid"
)

// RewardStore defines the database operations required by RewardProcessor
type RewardStore interface {
	CreateReward(ctx context.Context, params store.CreateRewardParams) (store.Reward, error)
	ListRewards(ctx context.Context) ([]store.Reward, error)
	UpdateReward(ctx context.Context, rewardID uuid.UUID, params store.UpdateRewardParams) (store.Reward, error)
	DeleteReward(ctx context.Context, rewardID uuid.UUID) error
	GetEventByID(ctx context.Context, eventID uuid.UUID) (store.Event, error)
	GetEventsByIDs(ctx context.Context, eventIDs []uuid.UUID) ([]store.Event, error)
}
