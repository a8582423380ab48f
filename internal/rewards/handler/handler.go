package handler

import (
	"net/http"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"
	"reward-platform/internal/rewards/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.RewardProcessor
	logger    *observability.Logger
}

func New(processor processor.RewardProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateRewardRequest represents the HTTP request for creating a reward
type CreateRewardRequest struct {
	EventID     string  `json:"eventId" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Value       string  `json:"value" binding:"required,max=255"`
	Quantity    *int    `json:"quantity,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateRewardRequest represents the HTTP request for updating a reward
type UpdateRewardRequest struct {
	Type        *string `json:"type,omitempty"`
	Value       *string `json:"value,omitempty" binding:"omitempty,max=255"`
	Quantity    *int    `json:"quantity,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HandleCreateReward creates a new reward
func (h *Handler) HandleCreateReward(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	reward, err := h.processor.CreateReward(ctx, processor.CreateRewardRequest{
		EventID:     req.EventID,
		Type:        req.Type,
		Value:       req.Value,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "reward created", "reward": reward})
}

// HandleListRewards lists all rewards with their events
func (h *Handler) HandleListRewards(c *gin.Context) {
	ctx := c.Request.Context()

	rewards, err := h.processor.ListRewards(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(rewards), "rewards": rewards})
}

// HandleUpdateReward updates a reward
func (h *Handler) HandleUpdateReward(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	reward, err := h.processor.UpdateReward(ctx, c.Param("id"), processor.UpdateRewardRequest{
		Type:        req.Type,
		Value:       req.Value,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

// HandleDeleteReward deletes a reward
func (h *Handler) HandleDeleteReward(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.processor.DeleteReward(ctx, c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reward deleted"})
}
