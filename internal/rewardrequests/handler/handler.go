package handler

import (
	"net/http"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"
	"reward-platform/internal/rewardrequests/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.RewardRequestProcessor
	logger    *observability.Logger
}

func New(processor processor.RewardRequestProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubmitClaimRequest represents the HTTP request for claiming an event's rewards
type SubmitClaimRequest struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
}

// HandleSubmitClaim evaluates a claim and returns the decision. Both granted and
// rejected evaluations are answered with 201 since a request row is created either way.
func (h *Handler) HandleSubmitClaim(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SubmitClaim(ctx, req.UserID, req.EventID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleListRequests lists reward requests, optionally filtered by eventId and status
func (h *Handler) HandleListRequests(c *gin.Context) {
	ctx := c.Request.Context()

	var filter processor.RequestFilter
	if eventID := c.Query("eventId"); eventID != "" {
		filter.EventID = &eventID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	requests, err := h.processor.ListRequests(ctx, filter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// HandleListUserRequests lists one user's reward requests with their events
func (h *Handler) HandleListUserRequests(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := h.processor.ListRequestsForUser(ctx, c.Param("userId"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}
