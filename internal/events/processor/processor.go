package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reward-platform/internal/observability"
	"reward-platform/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventID   = errors.New("invalid event id")
	ErrInvalidCondition = errors.New("invalid event condition")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date is before start date")
)

type EventProcessor struct {
	store  EventStore
	logger *observability.Logger
}

func New(store EventStore, logger *observability.Logger) EventProcessor {
	return EventProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateEventRequest represents a request to create an event. Dates are RFC3339.
type CreateEventRequest struct {
	Title       string
	Description string
	Condition   string
	StartDate   string
	EndDate     string
	IsActive    *bool
}

// UpdateEventRequest carries the fields to change; nil fields are left unchanged
type UpdateEventRequest struct {
	Title       *string
	Description *string
	Condition   *string
	StartDate   *string
	EndDate     *string
	IsActive    *bool
}

// EventWithRewards is an event together with the rewards attached to it
type EventWithRewards struct {
	store.Event
	Rewards []store.Reward `json:"rewards"`
}

// CreateEvent validates and stores a new event. Events are active unless told otherwise.
func (p *EventProcessor) CreateEvent(ctx context.Context, req CreateEventRequest) (store.Event, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_title", Value: req.Title},
		observability.Field{Key: "condition", Value: req.Condition},
	)

	if !store.IsOneOf(req.Condition, store.Conditions) {
		return store.Event{}, ErrInvalidCondition
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return store.Event{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return store.Event{}, err
	}
	if end.Before(start) {
		return store.Event{}, ErrInvalidDateRange
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	event, err := p.store.CreateEvent(ctx, store.CreateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		StartDate:   start,
		EndDate:     end,
		IsActive:    isActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create event", err)
		return store.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	p.logger.Info(ctx, "event created successfully")
	return event, nil
}

// ListEvents returns every event, newest first, with its rewards attached
func (p *EventProcessor) ListEvents(ctx context.Context) ([]EventWithRewards, error) {
	events, err := p.store.ListEvents(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list events", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	rewards, err := p.store.ListRewards(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	byEvent := make(map[uuid.UUID][]store.Reward, len(events))
	for _, reward := range rewards {
		byEvent[reward.EventID] = append(byEvent[reward.EventID], reward)
	}

	result := make([]EventWithRewards, 0, len(events))
	for _, event := range events {
		attached := byEvent[event.ID]
		if attached == nil {
			attached = []store.Reward{}
		}
		result = append(result, EventWithRewards{Event: event, Rewards: attached})
	}
	return result, nil
}

func (p *EventProcessor) ListEventTitles(ctx context.Context) ([]store.EventTitle, error) {
	titles, err := p.store.ListEventTitles(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list event titles", err)
		return nil, fmt.Errorf("failed to list event titles: %w", err)
	}
	return titles, nil
}

// UpdateEvent applies a partial update. The resulting date range is checked
// against the stored dates for whichever side is not being changed.
func (p *EventProcessor) UpdateEvent(ctx context.Context, eventID string, req UpdateEventRequest) (store.Event, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return store.Event{}, ErrInvalidEventID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: eventID})

	if req.Condition != nil && !store.IsOneOf(*req.Condition, store.Conditions) {
		return store.Event{}, ErrInvalidCondition
	}

	params := store.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		IsActive:    req.IsActive,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return store.Event{}, err
		}
		params.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return store.Event{}, err
		}
		params.EndDate = &end
	}

	if params.StartDate != nil || params.EndDate != nil {
		current, err := p.store.GetEventByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Event{}, ErrEventNotFound
			}
			p.logger.Error(ctx, "failed to get event", err)
			return store.Event{}, fmt.Errorf("failed to get event: %w", err)
		}
		start, end := current.StartDate, current.EndDate
		if params.StartDate != nil {
			start = *params.StartDate
		}
		if params.EndDate != nil {
			end = *params.EndDate
		}
		if end.Before(start) {
			return store.Event{}, ErrInvalidDateRange
		}
	}

	event, err := p.store.UpdateEvent(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Event{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to update event", err)
		return store.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	p.logger.Info(ctx, "event updated successfully")
	return event, nil
}

// DeleteEvent removes an event. Its rewards and reward requests are left in place.
func (p *EventProcessor) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return ErrInvalidEventID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: eventID})

	if err := p.store.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to delete event", err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	p.logger.Info(ctx, "event deleted successfully")
	return nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}
