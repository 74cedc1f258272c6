package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stratplan/internal/infrastructure/auth"
	"stratplan/internal/infrastructure/config"
	"stratplan/internal/interfaces/http/middleware"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases
// and handlers, and wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	jwtSvc *auth.JWTService
}

// NewContainer creates a Container with all dependencies wired together.
// Redis and SMTP are only touched when enabled in the configuration.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases and handlers
	if err := c.initApplication(); err != nil {
		c.Shutdown()
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(c.cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.rateLimiter = middleware.NewRateLimiter(newLoginLimiter(c.redis, c.cfg), c.log)
	return nil
}

func (c *Container) initApplication() error {
	authorizer, err := newAuthorizer(c.db, c.cfg, c.repos.membershipRepo, c.log)
	if err != nil {
		return err
	}

	renderer := markdown.NewRenderer()
	c.ucs = newUseCases(useCaseDeps{
		repos:      c.repos,
		authorizer: authorizer,
		txMgr:      db.NewTransactionManager(c.db),
		hasher:     auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		tokens:     c.jwtSvc,
		renderer:   renderer,
		notifier:   newReviewNotifier(c.cfg, c.repos.userRepo, renderer, c.log),
		log:        c.log,
	})
	c.hdlrs = newHandlers(c.ucs, c.log)
	return nil
}

// Shutdown releases connections opened by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
