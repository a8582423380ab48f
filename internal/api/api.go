package api

import (
	"net/http"

	eventsHandler "reward-platform/internal/events/handler"
	"reward-platform/internal/gateway"
	invitesHandler "reward-platform/internal/invites/handler"
	"reward-platform/internal/observability"
	requestsHandler "reward-platform/internal/rewardrequests/handler"
	rewardsHandler "reward-platform/internal/rewards/handler"
	userHandler "reward-platform/internal/user/handler"

	"github.com/gin-gonic/gin"
)

// API registers the routes of one service binary
type API struct {
	router   *gin.RouterGroup
	register func(r *gin.RouterGroup)
}

// EventHandlers are the handlers served by the event-server
type EventHandlers struct {
	Events   eventsHandler.Handler
	Rewards  rewardsHandler.Handler
	Invites  invitesHandler.Handler
	Requests requestsHandler.Handler
}

// NewAuthServer creates the auth-server API
func NewAuthServer(router *gin.RouterGroup, h userHandler.Handler) API {
	return API{
		router: router,
		register: func(r *gin.RouterGroup) {
			userGroup := r.Group("/user")
			{
				userGroup.POST("/register", h.HandleRegister)
				userGroup.POST("/login", h.HandleLogin)
				userGroup.POST("/logout", h.HandleLogout)
				userGroup.POST("/refresh", h.HandleRefresh)
				userGroup.PATCH("/updateUserRole/:id", h.HandleUpdateRole)
				userGroup.DELETE("/:id", h.HandleDeleteUser)
				userGroup.GET("/login-count/:userId", h.HandleLoginCount)
				userGroup.GET("/:userId", h.HandleGetProfile)
			}
		},
	}
}

// NewEventServer creates the event-server API
func NewEventServer(router *gin.RouterGroup, h EventHandlers) API {
	return API{
		router: router,
		register: func(r *gin.RouterGroup) {
			eventGroup := r.Group("/events")
			{
				eventGroup.POST("", h.Events.HandleCreateEvent)
				eventGroup.GET("", h.Events.HandleListEvents)
				eventGroup.GET("/titles", h.Events.HandleListEventTitles)
				eventGroup.PATCH("/:id", h.Events.HandleUpdateEvent)
				eventGroup.DELETE("/:id", h.Events.HandleDeleteEvent)
			}

			rewardGroup := r.Group("/rewards")
			{
				rewardGroup.POST("", h.Rewards.HandleCreateReward)
				rewardGroup.GET("", h.Rewards.HandleListRewards)
				rewardGroup.PATCH("/:id", h.Rewards.HandleUpdateReward)
				rewardGroup.DELETE("/:id", h.Rewards.HandleDeleteReward)
			}

			requestGroup := r.Group("/reward-requests")
			{
				requestGroup.POST("", h.Requests.HandleSubmitClaim)
				requestGroup.GET("", h.Requests.HandleListRequests)
				requestGroup.GET("/user/:userId", h.Requests.HandleListUserRequests)
			}

			r.POST("/invites", h.Invites.HandleRegisterInvite)
		},
	}
}

// NewGateway creates the gateway-server API
func NewGateway(router *gin.RouterGroup, g gateway.Router) API {
	return API{
		router: router,
		register: func(r *gin.RouterGroup) {
			g.RegisterRoutes(r)
		},
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.Metrics()
	a.register(a.router)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

func (a *API) Metrics() {
	a.router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))
}
