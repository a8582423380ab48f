package handler

import (
	"net/http"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/events/processor"
	"reward-platform/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.EventProcessor
	logger    *observability.Logger
}

func New(processor processor.EventProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateEventRequest represents the HTTP request for creating an event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Condition   string `json:"condition" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateEventRequest represents the HTTP request for updating an event
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Condition   *string `json:"condition,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// HandleCreateEvent creates a new event
func (h *Handler) HandleCreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.CreateEvent(ctx, processor.CreateEventRequest{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "event created", "event": event})
}

// HandleListEvents lists all events with their rewards
func (h *Handler) HandleListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.processor.ListEvents(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}

func (h *Handler) HandleListEventTitles(c *gin.Context) {
	ctx := c.Request.Context()

	titles, err := h.processor.ListEventTitles(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, titles)
}

func (h *Handler) HandleUpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.UpdateEvent(ctx, c.Param("id"), processor.UpdateEventRequest{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) HandleDeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.processor.DeleteEvent(ctx, c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
