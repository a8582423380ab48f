package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidEventID      = "INVALID_EVENT_ID"
	CodeInvalidUserID       = "INVALID_USER_ID"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidCondition    = "INVALID_CONDITION"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodeInvalidRole         = "INVALID_ROLE"
	CodeInvalidRewardType   = "INVALID_REWARD_TYPE"
	CodeInvalidQuantity     = "INVALID_QUANTITY"
	CodePasswordTooShort    = "PASSWORD_TOO_SHORT"
	CodeSelfInvite          = "SELF_INVITE"
	CodeNotFound            = "NOT_FOUND"
	CodeEventNotFound       = "EVENT_NOT_FOUND"
	CodeRewardNotFound      = "REWARD_NOT_FOUND"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeAlreadyClaimed      = "ALREADY_CLAIMED"
	CodeAlreadyClaimedToday = "ALREADY_CLAIMED_TODAY"
	CodeDuplicateInvite     = "DUPLICATE_INVITE"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeEventInactive       = "EVENT_INACTIVE"
	CodeNoRewards           = "NO_REWARDS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeRateLimited         = "RATE_LIMITED"
	CodeBadGateway          = "BAD_GATEWAY"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is an error that knows how it is presented over HTTP.
// Message is safe to show to clients; the wrapped error is only logged.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	internal   error
}

func (e *APIError) Error() string {
	if e.internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.internal
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// BadGateway creates a 502 error for an unreachable upstream service
func BadGateway(message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: CodeBadGateway, Message: message, internal: internalErr}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		internal:   internalErr,
	}
}
