package processor

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"reward-platform/internal/store"

	"github.com/google/uuid"
)

// EventStore defines the database operations required by EventProcessor
type EventStore interface {
	CreateEvent(ctx context.Context, params store.CreateEventParams) (store.Event, error)
	GetEventByID(ctx context.Context, eventID uuid.UUID) (store.Event, error)
	ListEvents(ctx context.Context) ([]store.Event, error)
	ListEventTitles(ctx context.Context) ([]store.EventTitle, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, params store.UpdateEventParams) (store.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	ListRewards(ctx context.Context) ([]store.Reward, error)
}
