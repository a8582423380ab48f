package apierrors

import (
	"errors"

	"reward-platform/internal/clients/authserver"
	eventsProcessor "reward-platform/internal/events/processor"
	invitesProcessor "reward-platform/internal/invites/processor"
	requestsProcessor "reward-platform/internal/rewardrequests/processor"
	rewardsProcessor "reward-platform/internal/rewards/processor"
	"reward-platform/internal/store"
	userProcessor "reward-platform/internal/user/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map reward request processor errors
	case errors.Is(err, requestsProcessor.ErrInvalidUserID):
		return BadRequest(CodeInvalidUserID, "userId is required")

	case errors.Is(err, requestsProcessor.ErrInvalidEventID):
		return BadRequest(CodeInvalidEventID, "eventId must be a valid UUID")

	case errors.Is(err, requestsProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "status must be one of PENDING, SUCCESS, FAILED")

	case errors.Is(err, requestsProcessor.ErrEventNotFound):
		return NotFound(CodeEventNotFound, "Event not found")

	case errors.Is(err, requestsProcessor.ErrEventInactive):
		return BadRequest(CodeEventInactive, "Event is not active")

	case errors.Is(err, requestsProcessor.ErrAlreadyClaimed):
		return Conflict(CodeAlreadyClaimed, "Reward already claimed for this event")

	case errors.Is(err, requestsProcessor.ErrAlreadyClaimedToday):
		return Conflict(CodeAlreadyClaimedToday, "Reward already claimed today")

	case errors.Is(err, requestsProcessor.ErrNoRewards):
		return BadRequest(CodeNoRewards, "Event has no rewards")

	// Map event processor errors
	case errors.Is(err, eventsProcessor.ErrInvalidEventID):
		return BadRequest(CodeInvalidEventID, "Event id must be a valid UUID")

	case errors.Is(err, eventsProcessor.ErrInvalidCondition):
		return BadRequest(CodeInvalidCondition, "Unknown event condition")

	case errors.Is(err, eventsProcessor.ErrInvalidDate):
		return BadRequest(CodeInvalidInput, "Dates must be RFC3339 timestamps")

	case errors.Is(err, eventsProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidDateRange, "endDate must not be before startDate")

	case errors.Is(err, eventsProcessor.ErrEventNotFound):
		return NotFound(CodeEventNotFound, "Event not found")

	// Map rewards processor errors
	case errors.Is(err, rewardsProcessor.ErrInvalidRewardID):
		return BadRequest(CodeInvalidInput, "Reward id must be a valid UUID")

	case errors.Is(err, rewardsProcessor.ErrInvalidEventID):
		return BadRequest(CodeInvalidEventID, "eventId must be a valid UUID")

	case errors.Is(err, rewardsProcessor.ErrInvalidRewardType):
		return BadRequest(CodeInvalidRewardType, "type must be one of ITEM, POINT, COUPON, CURRENCY")

	case errors.Is(err, rewardsProcessor.ErrInvalidQuantity):
		return BadRequest(CodeInvalidQuantity, "quantity must be at least 1")

	case errors.Is(err, rewardsProcessor.ErrEventNotFound):
		return NotFound(CodeEventNotFound, "Event not found")

	case errors.Is(err, rewardsProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")

	// Map invite processor errors
	case errors.Is(err, invitesProcessor.ErrInvalidInput):
		return BadRequest(CodeInvalidInput, "inviter and invited are required")

	case errors.Is(err, invitesProcessor.ErrSelfInvite):
		return BadRequest(CodeSelfInvite, "Users cannot invite themselves")

	case errors.Is(err, invitesProcessor.ErrDuplicateInvite):
		return Conflict(CodeDuplicateInvite, "Invite already registered")

	// Map user processor errors
	case errors.Is(err, userProcessor.ErrUsernameExists):
		return Conflict(CodeUsernameExists, "Username already exists")

	case errors.Is(err, userProcessor.ErrPasswordTooShort):
		return BadRequest(CodePasswordTooShort, "Password must be at least 4 characters")

	case errors.Is(err, userProcessor.ErrInvalidRole):
		return BadRequest(CodeInvalidRole, "role must be one of USER, ADMIN, OPERATOR, AUDITOR")

	case errors.Is(err, userProcessor.ErrInvalidUserID):
		return BadRequest(CodeInvalidUserID, "User id must be a valid UUID")

	case errors.Is(err, userProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, userProcessor.ErrInvalidCredentials):
		return Unauthorized("Invalid username or password")

	case errors.Is(err, userProcessor.ErrInvalidRefreshToken),
		errors.Is(err, userProcessor.ErrInvalidJWTToken),
		errors.Is(err, userProcessor.ErrExpiredToken):
		return Unauthorized("Invalid or expired token")

	// Map collaborator errors
	case errors.Is(err, authserver.ErrUpstreamUnavailable),
		errors.Is(err, authserver.ErrUpstreamStatus),
		errors.Is(err, authserver.ErrMalformedResponse):
		return BadGateway("Auth server is unavailable", err)

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrConflict):
		return Conflict(CodeConflict, "Resource already exists")

	default:
		return InternalError(err)
	}
}
