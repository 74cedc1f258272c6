package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	planUsecases "stratplan/internal/application/plan/usecases"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/user"
	"stratplan/internal/infrastructure/config"
	"stratplan/internal/infrastructure/email"
	"stratplan/internal/infrastructure/permission"
	"stratplan/internal/infrastructure/ratelimit"
	sharedConfig "stratplan/internal/shared/config"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// newAuthorizer picks the permission engine. The casbin engine seeds any
// missing role rules on startup.
func newAuthorizer(db *gorm.DB, cfg *config.Config, memberships access.MembershipReader, log logger.Interface) (access.Authorizer, error) {
	if cfg.Permission.Engine != sharedConfig.PermissionEngineCasbin {
		log.Infow("using membership permission engine")
		return access.NewMembershipAuthorizer(memberships), nil
	}

	enforcer, err := permission.NewEnforcer(db, memberships, log)
	if err != nil {
		return nil, err
	}
	if err := enforcer.SyncPolicies(); err != nil {
		return nil, fmt.Errorf("failed to sync casbin policies: %w", err)
	}
	log.Infow("using casbin permission engine")
	return enforcer, nil
}

// newReviewNotifier returns nil when e-mail delivery is disabled; the review
// use cases fall back to a no-op notifier.
func newReviewNotifier(cfg *config.Config, users user.Repository, renderer markdown.Renderer, log logger.Interface) planUsecases.ReviewNotifier {
	if !cfg.Email.Enabled {
		return nil
	}
	mailer := email.NewMailer(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	log.Infow("review notifications enabled", "smtp_host", cfg.Email.SMTPHost)
	return email.NewReviewNotifier(mailer, users, renderer, log)
}

// newLoginLimiter returns nil without Redis, which disables login throttling.
func newLoginLimiter(client *redis.Client, cfg *config.Config) ratelimit.RateLimiter {
	if client == nil || cfg.RateLimit.LoginLimit <= 0 {
		return nil
	}
	return ratelimit.NewRedisRateLimiter(client, "login", ratelimit.Rule{
		Limit:  cfg.RateLimit.LoginLimit,
		Window: time.Duration(cfg.RateLimit.LoginWindowSeconds) * time.Second,
	})
}
