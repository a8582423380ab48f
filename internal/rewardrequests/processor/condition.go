package processor

import (
	"context"
	"fmt"
	"slices"
	"time"

	"reward-platform/internal/observability"
	"reward-platform/internal/store"
)

const (
	requiredInvites         = 3
	requiredLoginDays       = 3
	requiredRecentLoginDays = 7
)

// Condition is the claim rule of an event. The set of variants is closed;
// ParseCondition maps any unrecognised tag to ConditionUnknown.
type Condition interface {
	Tag() string
	// Recurring reports whether the condition may be granted once per day
	Recurring() bool
	condition()
}

type (
	ConditionFirstLogin       struct{}
	ConditionInviteThree      struct{}
	ConditionLoginThree       struct{}
	ConditionLoginSevenRecent struct{}
	ConditionDailyLogin       struct{}
	// ConditionUnknown carries a tag outside the known set and is never met
	ConditionUnknown struct{ Raw string }
)

func (ConditionFirstLogin) Tag() string       { return store.ConditionFirstLogin }
func (ConditionInviteThree) Tag() string      { return store.ConditionInviteThree }
func (ConditionLoginThree) Tag() string       { return store.ConditionLoginThree }
func (ConditionLoginSevenRecent) Tag() string { return store.ConditionLoginSevenRecent }
func (ConditionDailyLogin) Tag() string       { return store.ConditionDailyLogin }
func (c ConditionUnknown) Tag() string        { return c.Raw }

func (ConditionFirstLogin) Recurring() bool       { return false }
func (ConditionInviteThree) Recurring() bool      { return false }
func (ConditionLoginThree) Recurring() bool       { return false }
func (ConditionLoginSevenRecent) Recurring() bool { return false }
func (ConditionDailyLogin) Recurring() bool       { return true }
func (ConditionUnknown) Recurring() bool          { return false }

func (ConditionFirstLogin) condition()       {}
func (ConditionInviteThree) condition()      {}
func (ConditionLoginThree) condition()       {}
func (ConditionLoginSevenRecent) condition() {}
func (ConditionDailyLogin) condition()       {}
func (ConditionUnknown) condition()          {}

// ParseCondition converts a stored condition tag into its variant
func ParseCondition(tag string) Condition {
	switch tag {
	case store.ConditionFirstLogin:
		return ConditionFirstLogin{}
	case store.ConditionInviteThree:
		return ConditionInviteThree{}
	case store.ConditionLoginThree:
		return ConditionLoginThree{}
	case store.ConditionLoginSevenRecent:
		return ConditionLoginSevenRecent{}
	case store.ConditionDailyLogin:
		return ConditionDailyLogin{}
	default:
		return ConditionUnknown{Raw: tag}
	}
}

// Evaluate decides whether userID currently satisfies cond.
//
// A failing login stats lookup means the condition is not met; the failure is
// logged and counted but never returned. Only local storage errors are returned.
func (p *RewardRequestProcessor) Evaluate(ctx context.Context, userID string, cond Condition) (bool, error) {
	return p.evaluateAt(ctx, userID, cond, p.now())
}

// evaluateAt evaluates cond with "today" fixed to the calendar day of now
func (p *RewardRequestProcessor) evaluateAt(ctx context.Context, userID string, cond Condition, now time.Time) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "condition", Value: cond.Tag()})

	switch c := cond.(type) {
	case ConditionFirstLogin:
		return true, nil

	case ConditionInviteThree:
		count, err := p.store.CountInvitesByInviter(ctx, userID)
		if err != nil {
			p.logger.Error(ctx, "failed to count invites", err)
			return false, fmt.Errorf("failed to count invites: %w", err)
		}
		return count >= requiredInvites, nil

	case ConditionLoginThree:
		stats, ok := p.loginStats(ctx, userID)
		return ok && stats.TotalUniqueDays >= requiredLoginDays, nil

	case ConditionLoginSevenRecent:
		stats, ok := p.loginStats(ctx, userID)
		// exact match: eight distinct days in a seven day window is not eligible
		return ok && stats.RecentSevenDaysUnique == requiredRecentLoginDays, nil

	case ConditionDailyLogin:
		stats, ok := p.loginStats(ctx, userID)
		return ok && slices.Contains(stats.LoggedDates, now.Format(isoDate)), nil

	case ConditionUnknown:
		p.logger.Warn(ctx, fmt.Sprintf("unknown condition %q is never met", c.Raw))
		return false, nil

	default:
		return false, nil
	}
}
