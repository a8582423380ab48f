package bootstrap

import (
	"context"
	"fmt"

	apisetup "reward-platform/internal/api"
	"reward-platform/internal/clients/authserver"
	kafkaClient "reward-platform/internal/clients/kafka"
	redisClient "reward-platform/internal/clients/redis"
	"reward-platform/internal/config"
	eventsHandler "reward-platform/internal/events/handler"
	eventsProcessor "reward-platform/internal/events/processor"
	"reward-platform/internal/gateway"
	invitesHandler "reward-platform/internal/invites/handler"
	invitesProcessor "reward-platform/internal/invites/processor"
	"reward-platform/internal/observability"
	"reward-platform/internal/ratelimit"
	"reward-platform/internal/rewardrequests"
	requestsHandler "reward-platform/internal/rewardrequests/handler"
	requestsProcessor "reward-platform/internal/rewardrequests/processor"
	rewardsHandler "reward-platform/internal/rewards/handler"
	rewardsProcessor "reward-platform/internal/rewards/processor"
	"reward-platform/internal/store"
	userHandler "reward-platform/internal/user/handler"
	userProcessor "reward-platform/internal/user/processor"

	"github.com/gin-gonic/gin"
)

// AuthServer holds the dependencies of the auth-server
type AuthServer struct {
	Store       store.Store
	UserHandler userHandler.Handler
	logger      *observability.Logger
}

// InitializeAuthServer connects to the database, applies the auth schema and wires the user module
func InitializeAuthServer(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*AuthServer, error) {
	st, err := openStore(ctx, cfg, store.SchemaAuth, logger)
	if err != nil {
		return nil, err
	}

	deps := &AuthServer{Store: st, logger: logger}

	userProc := userProcessor.New(&deps.Store, userProcessor.TokenConfig{
		AccessSecret:  cfg.Auth.JWTSecret,
		RefreshSecret: cfg.Auth.JWTRefreshSecret,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, logger)
	deps.UserHandler = userHandler.New(userProc, logger)

	return deps, nil
}

func (d *AuthServer) API(root *gin.RouterGroup) apisetup.API {
	return apisetup.NewAuthServer(root, d.UserHandler)
}

func (d *AuthServer) Start(context.Context) {}

// Cleanup closes all resources that need cleanup
func (d *AuthServer) Cleanup() {
	closeStore(d.Store, d.logger)
}

// EventServer holds the dependencies of the event-server
type EventServer struct {
	Store         store.Store
	Handlers      apisetup.EventHandlers
	KafkaProducer *kafkaClient.Producer
	logger        *observability.Logger
}

// InitializeEventServer connects to the database and the auth-server and wires the catalog and claim modules
func InitializeEventServer(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*EventServer, error) {
	st, err := openStore(ctx, cfg, store.SchemaEvent, logger)
	if err != nil {
		return nil, err
	}

	deps := &EventServer{Store: st, logger: logger}

	// Decision events are optional
	var publisher requestsProcessor.DecisionPublisher = rewardrequests.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = rewardrequests.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Info(ctx, "Kafka brokers not configured, decision events are disabled")
	}

	authClient := authserver.NewClient(cfg.Services.AuthServerURL, cfg.Services.AuthServerTimeout, logger)

	eventProc := eventsProcessor.New(&deps.Store, logger)
	rewardProc := rewardsProcessor.New(&deps.Store, logger)
	inviteProc := invitesProcessor.New(&deps.Store, logger)
	requestProc := requestsProcessor.New(&deps.Store, authClient, authClient, publisher, logger)

	deps.Handlers = apisetup.EventHandlers{
		Events:   eventsHandler.New(eventProc, logger),
		Rewards:  rewardsHandler.New(rewardProc, logger),
		Invites:  invitesHandler.New(inviteProc, logger),
		Requests: requestsHandler.New(requestProc, logger),
	}

	return deps, nil
}

func (d *EventServer) API(root *gin.RouterGroup) apisetup.API {
	return apisetup.NewEventServer(root, d.Handlers)
}

func (d *EventServer) Start(context.Context) {}

// Cleanup closes all resources that need cleanup
func (d *EventServer) Cleanup() {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.logger.Error(context.Background(), "failed to close kafka producer", err)
		}
	}
	closeStore(d.Store, d.logger)
}

// Gateway holds the dependencies of the gateway-server
type Gateway struct {
	Router  gateway.Router
	Limiter *ratelimit.Limiter
	Redis   *redisClient.Client
	logger  *observability.Logger
}

// InitializeGateway builds the upstream proxies and the rate limiter
func InitializeGateway(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Gateway, error) {
	deps := &Gateway{logger: logger}

	var err error
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		// The limiter degrades to in-process windows without Redis
		logger.Error(ctx, "failed to connect to redis, using in-process rate limiting", err)
		deps.Redis = nil
	}
	deps.Limiter = ratelimit.NewLimiter(deps.Redis, cfg.RateLimit.RequestsPerMinute, logger)

	authProxy, err := gateway.NewProxy("auth-server", cfg.Services.AuthServerURL, logger)
	if err != nil {
		return nil, err
	}
	eventProxy, err := gateway.NewProxy("event-server", cfg.Services.EventServerURL, logger)
	if err != nil {
		return nil, err
	}

	deps.Router = gateway.NewRouter(authProxy, eventProxy, cfg.Auth.JWTSecret, deps.Limiter.Middleware())
	return deps, nil
}

func (d *Gateway) API(root *gin.RouterGroup) apisetup.API {
	return apisetup.NewGateway(root, d.Router)
}

// Start runs the rate limiter janitor until ctx is done
func (d *Gateway) Start(ctx context.Context) {
	go d.Limiter.Run(ctx)
}

// Cleanup closes all resources that need cleanup
func (d *Gateway) Cleanup() {
	if err := d.Redis.Close(); err != nil {
		d.logger.Error(context.Background(), "failed to close redis client", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, schema store.Schema, logger *observability.Logger) (store.Store, error) {
	st, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := st.Ping(ctx); err != nil {
		closeStore(st, logger)
		return store.Store{}, fmt.Errorf("failed to reach database: %w", err)
	}
	if err := st.Migrate(ctx, schema); err != nil {
		closeStore(st, logger)
		return store.Store{}, fmt.Errorf("failed to migrate database: %w", err)
	}
	return st, nil
}

func closeStore(st store.Store, logger *observability.Logger) {
	if err := st.Close(); err != nil {
		logger.Error(context.Background(), "failed to close database", err)
	}
}
