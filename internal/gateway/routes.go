package gateway

import (
	"reward-platform/internal/store"

	"github.com/gin-gonic/gin"
)

// Router exposes the public API and forwards each route to its backend service
type Router struct {
	auth      *Proxy
	events    *Proxy
	secret    string
	rateLimit gin.HandlerFunc
}

func NewRouter(auth, events *Proxy, secret string, rateLimit gin.HandlerFunc) Router {
	return Router{
		auth:      auth,
		events:    events,
		secret:    secret,
		rateLimit: rateLimit,
	}
}

// RegisterRoutes registers the gateway route map on r
func (g *Router) RegisterRoutes(r gin.IRouter) {
	authenticated := func(roles ...string) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{Authenticate(g.secret)}
		if len(roles) > 0 {
			chain = append(chain, RequireRoles(roles...))
		}
		return append(chain, g.rateLimit)
	}
	route := func(chain []gin.HandlerFunc, proxy *Proxy) []gin.HandlerFunc {
		handlers := make([]gin.HandlerFunc, 0, len(chain)+1)
		return append(append(handlers, chain...), proxy.Handle)
	}

	public := []gin.HandlerFunc{stripIdentity, g.rateLimit}
	anyUser := authenticated()
	admin := authenticated(store.RoleAdmin)
	operators := authenticated(store.RoleOperator, store.RoleAdmin)
	claimants := authenticated(store.RoleUser, store.RoleAdmin)
	auditors := authenticated(store.RoleOperator, store.RoleAuditor, store.RoleAdmin)

	user := r.Group("/user")
	{
		user.POST("/register", route(public, g.auth)...)
		user.POST("/login", route(public, g.auth)...)
		user.POST("/refresh", route(public, g.auth)...)
		user.POST("/logout", route(anyUser, g.auth)...)
		user.PATCH("/updateUserRole/:id", route(admin, g.auth)...)
		user.DELETE("/:id", route(admin, g.auth)...)
	}

	events := r.Group("/events")
	{
		events.POST("", route(operators, g.events)...)
		events.GET("", route(operators, g.events)...)
		events.GET("/titles", route(operators, g.events)...)
		events.PATCH("/:id", route(operators, g.events)...)
		events.DELETE("/:id", route(operators, g.events)...)
	}

	rewards := r.Group("/rewards")
	{
		rewards.POST("", route(operators, g.events)...)
		rewards.GET("", route(operators, g.events)...)
		rewards.PATCH("/:id", route(operators, g.events)...)
		rewards.DELETE("/:id", route(operators, g.events)...)
	}

	requests := r.Group("/reward-requests")
	{
		requests.POST("", route(claimants, g.events)...)
		requests.GET("", route(auditors, g.events)...)
		requests.GET("/user/:userId", route(claimants, g.events)...)
	}

	r.POST("/invites", route(claimants, g.events)...)
}
