package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sqlCreateLoginLog = `
INSERT INTO login_logs (user_id, username, created_at)
VALUES ($1, $2, $3)
RETURNING id, user_id, username, created_at
`

// CreateLoginLog records a successful login
func (s *Store) CreateLoginLog(ctx context.Context, userID uuid.UUID, username string, at time.Time) (LoginLog, error) {
	var log LoginLog
	err := s.db.GetContext(ctx, &log, sqlCreateLoginLog, userID, username, at)
	if err != nil {
		return LoginLog{}, fmt.Errorf("failed to create login log: %w", err)
	}
	return log, nil
}

const sqlGetLoginTimes = `
SELECT created_at
FROM login_logs
WHERE user_id = $1
ORDER BY created_at ASC
`

// GetLoginTimes returns every login timestamp of a user, oldest first
func (s *Store) GetLoginTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	err := s.db.SelectContext(ctx, &times, sqlGetLoginTimes, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get login times: %w", err)
	}
	return times, nil
}
