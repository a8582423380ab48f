package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"reward-platform/internal/clients/authserver"
	"reward-platform/internal/observability"
	"reward-platform/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	isoDate = "2006-01-02"

	// ReasonConditionNotMet is stored on FAILED requests
	ReasonConditionNotMet = "condition not met"

	messageGranted = "reward granted"
	messageFailed  = "condition not met"

	// profileFetchLimit bounds concurrent profile lookups during a listing
	profileFetchLimit = 8
	// profileFetchTimeout bounds a shared profile lookup once it no longer follows its first caller
	profileFetchTimeout = 5 * time.Second
)

var (
	ErrInvalidUserID       = errors.New("user id is required")
	ErrInvalidEventID      = errors.New("invalid event id")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrEventNotFound       = errors.New("event not found")
	ErrEventInactive       = errors.New("event is inactive")
	ErrAlreadyClaimed      = errors.New("reward already granted for this event")
	ErrAlreadyClaimedToday = errors.New("reward already granted today")
	ErrNoRewards           = errors.New("no rewards registered for this event")
)

type RewardRequestProcessor struct {
	store     RewardRequestStore
	stats     LoginStatsProvider
	profiles  ProfileProvider
	publisher DecisionPublisher
	logger    *observability.Logger
	now       func() time.Time
	inflight  *singleflight.Group
}

// Option customises a RewardRequestProcessor
type Option func(*RewardRequestProcessor)

// WithClock replaces the wall clock used for day boundaries and timestamps
func WithClock(now func() time.Time) Option {
	return func(p *RewardRequestProcessor) {
		p.now = now
	}
}

func New(
	store RewardRequestStore,
	stats LoginStatsProvider,
	profiles ProfileProvider,
	publisher DecisionPublisher,
	logger *observability.Logger,
	opts ...Option,
) RewardRequestProcessor {
	p := RewardRequestProcessor{
		store:     store,
		stats:     stats,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		inflight:  &singleflight.Group{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// GrantedReward is the reward payload returned with a successful claim
type GrantedReward struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Quantity int    `json:"quantity"`
}

// ClaimResult is the outcome of a claim. Rewards is set only when the claim succeeded.
type ClaimResult struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Rewards []GrantedReward `json:"rewards,omitempty"`
}

// Decision describes a persisted claim outcome
type Decision struct {
	RequestID uuid.UUID
	UserID    string
	EventID   uuid.UUID
	Condition string
	Status    string
	DecidedAt time.Time
}

// SubmitClaim decides whether userID is granted the rewards of eventID and persists
// exactly one SUCCESS or FAILED request. Preconditions are checked in order and the
// first failure is returned without writing anything.
func (p *RewardRequestProcessor) SubmitClaim(ctx context.Context, userID, eventID string) (ClaimResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "event_id", Value: eventID},
	)

	if userID == "" {
		return ClaimResult{}, ErrInvalidUserID
	}
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return ClaimResult{}, ErrInvalidEventID
	}

	event, err := p.store.GetEventByID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimResult{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to get event", err)
		return ClaimResult{}, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.IsActive {
		return ClaimResult{}, ErrEventInactive
	}

	cond := ParseCondition(event.Condition)
	now := p.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := p.checkDuplicate(ctx, userID, eventUUID, cond, dayStart); err != nil {
		return ClaimResult{}, err
	}

	rewards, err := p.store.GetRewardsByEventID(ctx, eventUUID)
	if err != nil {
		p.logger.Error(ctx, "failed to get rewards for event", err)
		return ClaimResult{}, fmt.Errorf("failed to get rewards: %w", err)
	}
	if len(rewards) == 0 {
		return ClaimResult{}, ErrNoRewards
	}

	eligible, err := p.evaluateAt(ctx, userID, cond, now)
	if err != nil {
		return ClaimResult{}, err
	}

	params := store.CreateRewardRequestParams{
		UserID:    userID,
		EventID:   eventUUID,
		Status:    store.RequestStatusSuccess,
		CreatedAt: now,
	}
	if !eligible {
		reason := ReasonConditionNotMet
		params.Status = store.RequestStatusFailed
		params.Reason = &reason
	}
	if cond.Recurring() {
		params.ClaimDay = &dayStart
	}

	request, err := p.store.CreateRewardRequest(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			p.logger.Info(ctx, "concurrent claim already granted")
			return ClaimResult{}, duplicateError(cond)
		}
		p.logger.Error(ctx, "failed to create reward request", err)
		return ClaimResult{}, fmt.Errorf("failed to create reward request: %w", err)
	}

	observability.RecordClaimDecision(request.Status, cond.Tag())
	p.publish(ctx, Decision{
		RequestID: request.ID,
		UserID:    userID,
		EventID:   eventUUID,
		Condition: cond.Tag(),
		Status:    request.Status,
		DecidedAt: now,
	})

	ctx = observability.WithFields(ctx, observability.Field{Key: "status", Value: request.Status})
	p.logger.Info(ctx, "reward request decided successfully")

	if !eligible {
		return ClaimResult{Message: messageFailed, Status: store.RequestStatusFailed}, nil
	}

	granted := make([]GrantedReward, len(rewards))
	for i, r := range rewards {
		granted[i] = GrantedReward{Type: r.Type, Value: r.Value, Quantity: r.Quantity}
	}
	return ClaimResult{Message: messageGranted, Status: store.RequestStatusSuccess, Rewards: granted}, nil
}

func (p *RewardRequestProcessor) checkDuplicate(ctx context.Context, userID string, eventID uuid.UUID, cond Condition, dayStart time.Time) error {
	var (
		exists bool
		err    error
	)
	if cond.Recurring() {
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)
		exists, err = p.store.HasSuccessfulRequestBetween(ctx, userID, eventID, dayStart, dayEnd)
	} else {
		exists, err = p.store.HasSuccessfulRequest(ctx, userID, eventID)
	}
	if err != nil {
		p.logger.Error(ctx, "failed to check previous claims", err)
		return fmt.Errorf("failed to check previous claims: %w", err)
	}
	if exists {
		return duplicateError(cond)
	}
	return nil
}

func duplicateError(cond Condition) error {
	if cond.Recurring() {
		return ErrAlreadyClaimedToday
	}
	return ErrAlreadyClaimed
}

func (p *RewardRequestProcessor) loginStats(ctx context.Context, userID string) (authserver.LoginStats, bool) {
	stats, err := p.stats.LoginStats(ctx, userID)
	if err != nil {
		p.logger.WarnWithError(ctx, "login stats unavailable, condition treated as not met", err)
		observability.RecordUpstreamFailure("login_stats")
		return authserver.LoginStats{}, false
	}
	return stats, true
}

func (p *RewardRequestProcessor) publish(ctx context.Context, decision Decision) {
	if err := p.publisher.PublishDecision(ctx, decision); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish reward request decision", err)
	}
}

// RequestFilter holds the optional listing filters as received from the caller
type RequestFilter struct {
	EventID *string
	Status  *string
}

// RequestWithUser is a reward request enriched with the requesting user's profile.
// User is nil when the profile could not be fetched.
type RequestWithUser struct {
	store.RewardRequest
	User *authserver.Profile `json:"user"`
}

// RequestWithEvent is a reward request enriched with its event.
// Event is nil when the event no longer exists.
type RequestWithEvent struct {
	store.RewardRequest
	Event *store.Event `json:"event"`
}

// ListRequests returns reward requests matching filter, newest first
func (p *RewardRequestProcessor) ListRequests(ctx context.Context, filter RequestFilter) ([]RequestWithUser, error) {
	var storeFilter store.RewardRequestFilter
	if filter.Status != nil {
		if !store.IsOneOf(*filter.Status, store.RequestStatuses) {
			return nil, ErrInvalidStatus
		}
		storeFilter.Status = filter.Status
	}
	if filter.EventID != nil {
		eventID, err := uuid.Parse(*filter.EventID)
		if err != nil {
			return nil, ErrInvalidEventID
		}
		storeFilter.EventID = &eventID
	}

	requests, err := p.store.ListRewardRequests(ctx, storeFilter)
	if err != nil {
		p.logger.Error(ctx, "failed to list reward requests", err)
		return nil, fmt.Errorf("failed to list reward requests: %w", err)
	}

	profiles := p.fetchProfiles(ctx, requests)

	result := make([]RequestWithUser, len(requests))
	for i, r := range requests {
		result[i] = RequestWithUser{RewardRequest: r, User: profiles[r.UserID]}
	}
	return result, nil
}

// fetchProfiles looks up each distinct user once. Failed lookups are left out of the map.
func (p *RewardRequestProcessor) fetchProfiles(ctx context.Context, requests []store.RewardRequest) map[string]*authserver.Profile {
	var (
		mu       sync.Mutex
		profiles = make(map[string]*authserver.Profile)
		seen     = make(map[string]struct{})
		g        errgroup.Group
	)
	g.SetLimit(profileFetchLimit)

	for _, r := range requests {
		userID := r.UserID
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		g.Go(func() error {
			// The lookup is shared with concurrent listings, so it must not die with this caller
			ch := p.inflight.DoChan(userID, func() (interface{}, error) {
				fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), profileFetchTimeout)
				defer cancel()
				return p.profiles.Profile(fetchCtx, userID)
			})

			var res singleflight.Result
			select {
			case res = <-ch:
			case <-ctx.Done():
				res = singleflight.Result{Err: ctx.Err()}
			}
			v, err := res.Val, res.Err
			if err != nil {
				userCtx := observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})
				p.logger.WarnWithError(userCtx, "failed to fetch user profile", err)
				observability.RecordUpstreamFailure("profile")
				return nil
			}
			profile := v.(authserver.Profile)

			mu.Lock()
			profiles[userID] = &profile
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return profiles
}

// ListRequestsForUser returns a user's reward requests, newest first
func (p *RewardRequestProcessor) ListRequestsForUser(ctx context.Context, userID string) ([]RequestWithEvent, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if userID == "" {
		return nil, ErrInvalidUserID
	}

	requests, err := p.store.ListRewardRequestsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list reward requests for user", err)
		return nil, fmt.Errorf("failed to list reward requests: %w", err)
	}

	var eventIDs []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, r := range requests {
		if _, ok := seen[r.EventID]; !ok {
			seen[r.EventID] = struct{}{}
			eventIDs = append(eventIDs, r.EventID)
		}
	}

	byID := make(map[uuid.UUID]store.Event, len(eventIDs))
	if len(eventIDs) > 0 {
		events, err := p.store.GetEventsByIDs(ctx, eventIDs)
		if err != nil {
			p.logger.Error(ctx, "failed to get events for reward requests", err)
			return nil, fmt.Errorf("failed to get events: %w", err)
		}
		for _, e := range events {
			byID[e.ID] = e
		}
	}

	result := make([]RequestWithEvent, len(requests))
	for i, r := range requests {
		result[i] = RequestWithEvent{RewardRequest: r}
		if e, ok := byID[r.EventID]; ok {
			result[i].Event = &e
		}
	}
	return result, nil
}
