package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const rewardColumns = `id, event_id, type, value, quantity, description, created_at, updated_at`

// CreateRewardParams represents parameters for creating a reward
type CreateRewardParams struct {
	EventID     uuid.UUID
	Type        string
	Value       string
	Quantity    int
	Description *string
}

const sqlCreateReward = `
INSERT INTO rewards (event_id, type, value, quantity, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + rewardColumns

// CreateReward creates a new reward
func (s *Store) CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlCreateReward,
		params.EventID,
		params.Type,
		params.Value,
		params.Quantity,
		params.Description)
	if err != nil {
		return Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return reward, nil
}

const sqlListRewards = `SELECT ` + rewardColumns + ` FROM rewards ORDER BY created_at DESC`

// ListRewards retrieves all rewards, newest first
func (s *Store) ListRewards(ctx context.Context) ([]Reward, error) {
	rewards := []Reward{}
	err := s.db.SelectContext(ctx, &rewards, sqlListRewards)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

const sqlGetRewardsByEventID = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE event_id = $1
ORDER BY created_at ASC
`

// GetRewardsByEventID retrieves the rewards attached to an event
func (s *Store) GetRewardsByEventID(ctx context.Context, eventID uuid.UUID) ([]Reward, error) {
	rewards := []Reward{}
	err := s.db.SelectContext(ctx, &rewards, sqlGetRewardsByEventID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards by event: %w", err)
	}
	return rewards, nil
}

// UpdateRewardParams represents parameters for updating a reward; nil fields are left unchanged
type UpdateRewardParams struct {
	Type        *string
	Value       *string
	Quantity    *int
	Description *string
}

const sqlUpdateReward = `
UPDATE rewards
SET type = COALESCE($2, type),
    value = COALESCE($3, value),
    quantity = COALESCE($4, quantity),
    description = COALESCE($5, description),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + rewardColumns

// UpdateReward updates a reward
func (s *Store) UpdateReward(ctx context.Context, rewardID uuid.UUID, params UpdateRewardParams) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlUpdateReward,
		rewardID,
		params.Type,
		params.Value,
		params.Quantity,
		params.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		return Reward{}, fmt.Errorf("failed to update reward: %w", err)
	}
	return reward, nil
}

const sqlDeleteReward = `DELETE FROM rewards WHERE id = $1`

// DeleteReward removes a reward
func (s *Store) DeleteReward(ctx context.Context, rewardID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteReward, rewardID)
	if err != nil {
		return fmt.Errorf("failed to delete reward: %w", err)
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
