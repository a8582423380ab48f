package store

import (
	"context"
	"fmt"
)

const sqlCreateInvite = `
INSERT INTO invites (inviter, invited)
VALUES ($1, $2)
RETURNING id, inviter, invited, created_at
`

// CreateInvite records an invite edge, returning ErrConflict for a duplicate pair
func (s *Store) CreateInvite(ctx context.Context, inviter, invited string) (Invite, error) {
	var invite Invite
	err := s.db.GetContext(ctx, &invite, sqlCreateInvite, inviter, invited)
	if err != nil {
		if isUniqueViolation(err) {
			return Invite{}, ErrConflict
		}
		return Invite{}, fmt.Errorf("failed to create invite: %w", err)
	}
	return invite, nil
}

const sqlInviteExists = `SELECT EXISTS(SELECT 1 FROM invites WHERE inviter = $1 AND invited = $2)`

// InviteExists reports whether the (inviter, invited) pair is already recorded
func (s *Store) InviteExists(ctx context.Context, inviter, invited string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlInviteExists, inviter, invited)
	if err != nil {
		return false, fmt.Errorf("failed to check invite: %w", err)
	}
	return exists, nil
}

const sqlCountInvitesByInviter = `SELECT COUNT(*) FROM invites WHERE inviter = $1`

// CountInvitesByInviter counts the invites sent by a user
func (s *Store) CountInvitesByInviter(ctx context.Context, inviter string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountInvitesByInviter, inviter)
	if err != nil {
		return 0, fmt.Errorf("failed to count invites: %w", err)
	}
	return count, nil
}
