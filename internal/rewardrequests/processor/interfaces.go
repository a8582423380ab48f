package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"reward-platform/internal/clients/authserver"
	"reward-platform/internal/store"

	"github.com/google/uuid"
)

// RewardRequestStore defines the database operations required by RewardRequestProcessor
type RewardRequestStore interface {
	GetEventByID(ctx context.Context, eventID uuid.UUID) (store.Event, error)
	GetEventsByIDs(ctx context.Context, eventIDs []uuid.UUID) ([]store.Event, error)
	GetRewardsByEventID(ctx context.Context, eventID uuid.UUID) ([]store.Reward, error)
	HasSuccessfulRequest(ctx context.Context, userID string, eventID uuid.UUID) (bool, error)
	HasSuccessfulRequestBetween(ctx context.Context, userID string, eventID uuid.UUID, from, to time.Time) (bool, error)
	CountInvitesByInviter(ctx context.Context, inviter string) (int, error)
	CreateRewardRequest(ctx context.Context, params store.CreateRewardRequestParams) (store.RewardRequest, error)
	ListRewardRequests(ctx context.Context, filter store.RewardRequestFilter) ([]store.RewardRequest, error)
	ListRewardRequestsByUser(ctx context.Context, userID string) ([]store.RewardRequest, error)
}

// LoginStatsProvider serves the login activity aggregate of a user
type LoginStatsProvider interface {
	LoginStats(ctx context.Context, userID string) (authserver.LoginStats, error)
}

// ProfileProvider serves the public profile of a user
type ProfileProvider interface {
	Profile(ctx context.Context, userID string) (authserver.Profile, error)
}

// DecisionPublisher announces persisted claim decisions to other systems
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, decision Decision) error
}
