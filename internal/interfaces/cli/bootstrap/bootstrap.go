// Package bootstrap prepares configuration, logging and the database for
// the command line entry points.
package bootstrap

import (
	"fmt"
	"os"

	"stratplan/internal/infrastructure/config"
	"stratplan/internal/infrastructure/database"
	"stratplan/internal/shared/biztime"
	"stratplan/internal/shared/logger"
)

// Env is the shared state of a command run.
type Env struct {
	Config *config.Config
	Log    logger.Interface
}

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flag string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flag
}

// Init loads the configuration and logger. When withDB is set it also opens
// the process database; callers close it with database.Close.
func Init(env string, withDB bool) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize business timezone for fiscal year and date boundaries
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if withDB {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return &Env{Config: cfg, Log: logger.NewLogger()}, nil
}

// MapEnvToGinMode translates a deployment environment to a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
