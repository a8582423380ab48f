package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const rewardRequestColumns = `id, user_id, event_id, status, reason, claim_day, created_at, updated_at`

// CreateRewardRequestParams represents parameters for persisting a claim outcome.
// ClaimDay is set only for recurring events and takes part in the daily uniqueness index.
type CreateRewardRequestParams struct {
	UserID    string
	EventID   uuid.UUID
	Status    string
	Reason    *string
	ClaimDay  *time.Time
	CreatedAt time.Time
}

const sqlCreateRewardRequest = `
INSERT INTO reward_requests (user_id, event_id, status, reason, claim_day, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + rewardRequestColumns

// CreateRewardRequest persists a claim outcome. A second granted claim for the same
// user and event (or user, event and day) violates a partial unique index and
// returns ErrConflict.
func (s *Store) CreateRewardRequest(ctx context.Context, params CreateRewardRequestParams) (RewardRequest, error) {
	var claimDay *string
	if params.ClaimDay != nil {
		day := params.ClaimDay.Format("2006-01-02")
		claimDay = &day
	}

	var request RewardRequest
	err := s.db.GetContext(ctx, &request, sqlCreateRewardRequest,
		params.UserID,
		params.EventID,
		params.Status,
		params.Reason,
		claimDay,
		params.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return RewardRequest{}, ErrConflict
		}
		return RewardRequest{}, fmt.Errorf("failed to create reward request: %w", err)
	}
	return request, nil
}

const sqlHasSuccessfulRequest = `
SELECT EXISTS(
    SELECT 1 FROM reward_requests
    WHERE user_id = $1 AND event_id = $2 AND status = 'SUCCESS'
)
`

// HasSuccessfulRequest reports whether the user was ever granted the event
func (s *Store) HasSuccessfulRequest(ctx context.Context, userID string, eventID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasSuccessfulRequest, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check successful request: %w", err)
	}
	return exists, nil
}

const sqlHasSuccessfulRequestBetween = `
SELECT EXISTS(
    SELECT 1 FROM reward_requests
    WHERE user_id = $1 AND event_id = $2 AND status = 'SUCCESS'
      AND created_at >= $3 AND created_at <= $4
)
`

// HasSuccessfulRequestBetween reports whether the user was granted the event inside [from, to]
func (s *Store) HasSuccessfulRequestBetween(ctx context.Context, userID string, eventID uuid.UUID, from, to time.Time) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasSuccessfulRequestBetween, userID, eventID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to check successful request in range: %w", err)
	}
	return exists, nil
}

// RewardRequestFilter holds the optional equality filters of the request listing
type RewardRequestFilter struct {
	EventID *uuid.UUID
	Status  *string
}

// ListRewardRequests retrieves reward requests matching the filter, newest first
func (s *Store) ListRewardRequests(ctx context.Context, filter RewardRequestFilter) ([]RewardRequest, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		conditions = append(conditions, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + rewardRequestColumns + ` FROM reward_requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	requests := []RewardRequest{}
	err := s.db.SelectContext(ctx, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward requests: %w", err)
	}
	return requests, nil
}

const sqlListRewardRequestsByUser = `
SELECT ` + rewardRequestColumns + `
FROM reward_requests
WHERE user_id = $1
ORDER BY created_at DESC
`

// ListRewardRequestsByUser retrieves a user's reward requests, newest first
func (s *Store) ListRewardRequestsByUser(ctx context.Context, userID string) ([]RewardRequest, error) {
	requests := []RewardRequest{}
	err := s.db.SelectContext(ctx, &requests, sqlListRewardRequestsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward requests by user: %w", err)
	}
	return requests, nil
}
