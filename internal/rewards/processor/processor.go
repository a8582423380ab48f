package processor

import (
	"context"
	"errors"
	"fmt"

	"reward-platform/internal/observability"
	"reward-platform/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound    = errors.New("reward not found")
	ErrInvalidRewardID   = errors.New("invalid reward id")
	ErrInvalidEventID    = errors.New("invalid event id")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidRewardType = errors.New("invalid reward type")
	ErrInvalidQuantity   = errors.New("invalid reward quantity")
)

type RewardProcessor struct {
	store  RewardStore
	logger *observability.Logger
}

func New(store RewardStore, logger *observability.Logger) RewardProcessor {
	return RewardProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateRewardRequest represents a request to create a reward
type CreateRewardRequest struct {
	EventID     string
	Type        string
	Value       string
	Quantity    *int
	Description *string
}

// UpdateRewardRequest carries the fields to change; nil fields are left unchanged
type UpdateRewardRequest struct {
	Type        *string
	Value       *string
	Quantity    *int
	Description *string
}

// RewardWithEvent is a reward with the event it belongs to, nil when the event is gone
type RewardWithEvent struct {
	store.Reward
	Event *store.Event `json:"event"`
}

// CreateReward attaches a new reward to an existing event. Quantity defaults to 1.
func (p *RewardProcessor) CreateReward(ctx context.Context, req CreateRewardRequest) (store.Reward, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return store.Reward{}, ErrInvalidEventID
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: req.EventID},
		observability.Field{Key: "reward_type", Value: req.Type},
	)

	if !store.IsOneOf(req.Type, store.RewardTypes) {
		return store.Reward{}, ErrInvalidRewardType
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		return store.Reward{}, ErrInvalidQuantity
	}

	if _, err := p.store.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to get event", err)
		return store.Reward{}, fmt.Errorf("failed to get event: %w", err)
	}

	reward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		EventID:     eventID,
		Type:        req.Type,
		Value:       req.Value,
		Quantity:    quantity,
		Description: req.Description,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create reward", err)
		return store.Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}

	p.logger.Info(ctx, "reward created successfully")
	return reward, nil
}

// ListRewards returns every reward, newest first, with its event attached
func (p *RewardProcessor) ListRewards(ctx context.Context) ([]RewardWithEvent, error) {
	rewards, err := p.store.ListRewards(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	seen := make(map[uuid.UUID]struct{})
	var eventIDs []uuid.UUID
	for _, reward := range rewards {
		if _, ok := seen[reward.EventID]; !ok {
			seen[reward.EventID] = struct{}{}
			eventIDs = append(eventIDs, reward.EventID)
		}
	}

	events := make(map[uuid.UUID]store.Event, len(eventIDs))
	if len(eventIDs) > 0 {
		found, err := p.store.GetEventsByIDs(ctx, eventIDs)
		if err != nil {
			p.logger.Error(ctx, "failed to get events", err)
			return nil, fmt.Errorf("failed to get events: %w", err)
		}
		for _, event := range found {
			events[event.ID] = event
		}
	}

	result := make([]RewardWithEvent, 0, len(rewards))
	for _, reward := range rewards {
		item := RewardWithEvent{Reward: reward}
		if event, ok := events[reward.EventID]; ok {
			item.Event = &event
		}
		result = append(result, item)
	}
	return result, nil
}

func (p *RewardProcessor) UpdateReward(ctx context.Context, rewardID string, req UpdateRewardRequest) (store.Reward, error) {
	id, err := uuid.Parse(rewardID)
	if err != nil {
		return store.Reward{}, ErrInvalidRewardID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: rewardID})

	if req.Type != nil && !store.IsOneOf(*req.Type, store.RewardTypes) {
		return store.Reward{}, ErrInvalidRewardType
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return store.Reward{}, ErrInvalidQuantity
	}

	reward, err := p.store.UpdateReward(ctx, id, store.UpdateRewardParams{
		Type:        req.Type,
		Value:       req.Value,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to update reward", err)
		return store.Reward{}, fmt.Errorf("failed to update reward: %w", err)
	}

	p.logger.Info(ctx, "reward updated successfully")
	return reward, nil
}

func (p *RewardProcessor) DeleteReward(ctx context.Context, rewardID string) error {
	id, err := uuid.Parse(rewardID)
	if err != nil {
		return ErrInvalidRewardID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: rewardID})

	if err := p.store.DeleteReward(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to delete reward", err)
		return fmt.Errorf("failed to delete reward: %w", err)
	}

	p.logger.Info(ctx, "reward deleted successfully")
	return nil
}
