package handler

import (
	"net/http"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"
	"reward-platform/internal/user/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.UserProcessor
	logger    *observability.Logger
}

func New(processor processor.UserProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN OPERATOR AUDITOR"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// HandleRegister creates an account
func (h *Handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user": user})
}

// HandleLogin verifies credentials and returns a token pair
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	tokens, err := h.processor.Login(ctx, req.Username, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "login successful",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *Handler) HandleLogout(c *gin.Context) {
	ctx := c.Request.Context()

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.Logout(ctx, req.UserID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

func (h *Handler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	accessToken, err := h.processor.Refresh(ctx, req.RefreshToken)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *Handler) HandleUpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.UpdateRole(ctx, c.Param("id"), req.Role)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleDeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.processor.DeleteUser(ctx, c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// HandleLoginCount serves the login activity aggregate used by the claim engine
func (h *Handler) HandleLoginCount(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.LoginStats(ctx, c.Param("userId"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.processor.Profile(ctx, c.Param("userId"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
