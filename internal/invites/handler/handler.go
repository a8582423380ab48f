package handler

import (
	"net/http"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/invites/processor"
	"reward-platform/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.InviteProcessor
	logger    *observability.Logger
}

func New(processor processor.InviteProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterInviteRequest represents the HTTP request for registering an invite
type RegisterInviteRequest struct {
	Inviter string `json:"inviter"`
	Invited string `json:"invited"`
}

// HandleRegisterInvite records an invite edge
func (h *Handler) HandleRegisterInvite(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	invite, err := h.processor.RegisterInvite(ctx, req.Inviter, req.Invited)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}
