package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reward-platform/internal/observability"
	"reward-platform/internal/store"
)

var (
	ErrInvalidInput    = errors.New("inviter and invited are required")
	ErrSelfInvite      = errors.New("user cannot invite themselves")
	ErrDuplicateInvite = errors.New("invite already registered")
)

type InviteProcessor struct {
	store  InviteStore
	logger *observability.Logger
}

func New(store InviteStore, logger *observability.Logger) InviteProcessor {
	return InviteProcessor{
		store:  store,
		logger: logger,
	}
}

// RegisterInvite records that inviter invited invited. Each pair is recorded once;
// a concurrent duplicate that slips past the pre-check is caught by the unique index.
func (p *InviteProcessor) RegisterInvite(ctx context.Context, inviter, invited string) (store.Invite, error) {
	inviter = strings.TrimSpace(inviter)
	invited = strings.TrimSpace(invited)
	if inviter == "" || invited == "" {
		return store.Invite{}, ErrInvalidInput
	}
	if inviter == invited {
		return store.Invite{}, ErrSelfInvite
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "inviter", Value: inviter},
		observability.Field{Key: "invited", Value: invited},
	)

	exists, err := p.store.InviteExists(ctx, inviter, invited)
	if err != nil {
		p.logger.Error(ctx, "failed to check invite", err)
		return store.Invite{}, fmt.Errorf("failed to check invite: %w", err)
	}
	if exists {
		return store.Invite{}, ErrDuplicateInvite
	}

	invite, err := p.store.CreateInvite(ctx, inviter, invited)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Invite{}, ErrDuplicateInvite
		}
		p.logger.Error(ctx, "failed to create invite", err)
		return store.Invite{}, fmt.Errorf("failed to create invite: %w", err)
	}

	p.logger.Info(ctx, "invite registered successfully")
	return invite, nil
}
