package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, title, description, condition, start_date, end_date, is_active, created_at, updated_at`

// CreateEventParams represents parameters for creating an event
type CreateEventParams struct {
	Title       string
	Description string
	Condition   string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
}

const sqlCreateEvent = `
INSERT INTO events (title, description, condition, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + eventColumns

// CreateEvent creates a new event
func (s *Store) CreateEvent(ctx context.Context, params CreateEventParams) (Event, error) {
	var event Event
	err := s.db.GetContext(ctx, &event, sqlCreateEvent,
		params.Title,
		params.Description,
		params.Condition,
		params.StartDate,
		params.EndDate,
		params.IsActive)
	if err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

const sqlGetEventByID = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

// GetEventByID retrieves an event by ID
func (s *Store) GetEventByID(ctx context.Context, eventID uuid.UUID) (Event, error) {
	var event Event
	err := s.db.GetContext(ctx, &event, sqlGetEventByID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrNotFound
		}
		return Event{}, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

const sqlListEvents = `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`

// ListEvents retrieves all events, newest first
func (s *Store) ListEvents(ctx context.Context) ([]Event, error) {
	events := []Event{}
	err := s.db.SelectContext(ctx, &events, sqlListEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

const sqlListEventTitles = `SELECT id, title FROM events ORDER BY created_at DESC`

// ListEventTitles retrieves the id and title of every event, newest first
func (s *Store) ListEventTitles(ctx context.Context) ([]EventTitle, error) {
	titles := []EventTitle{}
	err := s.db.SelectContext(ctx, &titles, sqlListEventTitles)
	if err != nil {
		return nil, fmt.Errorf("failed to list event titles: %w", err)
	}
	return titles, nil
}

const sqlGetEventsByIDs = `SELECT ` + eventColumns + ` FROM events WHERE id IN (?)`

// GetEventsByIDs retrieves the events matching ids; missing ids are skipped
func (s *Store) GetEventsByIDs(ctx context.Context, eventIDs []uuid.UUID) ([]Event, error) {
	if len(eventIDs) == 0 {
		return []Event{}, nil
	}
	ids := make([]string, len(eventIDs))
	for i, id := range eventIDs {
		ids[i] = id.String()
	}
	query, args, err := sqlx.In(sqlGetEventsByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}
	events := []Event{}
	err = s.db.SelectContext(ctx, &events, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by ids: %w", err)
	}
	return events, nil
}

// UpdateEventParams represents parameters for updating an event; nil fields are left unchanged
type UpdateEventParams struct {
	Title       *string
	Description *string
	Condition   *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
}

const sqlUpdateEvent = `
UPDATE events
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    condition = COALESCE($4, condition),
    start_date = COALESCE($5, start_date),
    end_date = COALESCE($6, end_date),
    is_active = COALESCE($7, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + eventColumns

// UpdateEvent updates an event
func (s *Store) UpdateEvent(ctx context.Context, eventID uuid.UUID, params UpdateEventParams) (Event, error) {
	var event Event
	err := s.db.GetContext(ctx, &event, sqlUpdateEvent,
		eventID,
		params.Title,
		params.Description,
		params.Condition,
		params.StartDate,
		params.EndDate,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrNotFound
		}
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

const sqlDeleteEvent = `DELETE FROM events WHERE id = $1`

// DeleteEvent removes an event. Rewards and reward requests that reference it are kept.
func (s *Store) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteEvent, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
