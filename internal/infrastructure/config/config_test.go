package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "stratplan/internal/shared/config"
)

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("STRATPLAN_DATABASE_DRIVER", "sqlite")
	t.Setenv("STRATPLAN_DATABASE_SQLITE_PATH", "/tmp/plans.db")
	t.Setenv("STRATPLAN_PERMISSION_ENGINE", "casbin")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.GetDriver())
	assert.Equal(t, "/tmp/plans.db", cfg.Database.GetDSN())
	assert.Equal(t, sharedConfig.PermissionEngineCasbin, cfg.Permission.Engine)
	assert.Equal(t, 60, cfg.Auth.JWT.AccessExpMinutes)
	assert.Same(t, cfg, Get())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STRATPLAN_DATABASE_DRIVER", "oracle")

	_, err := Load("")
	assert.ErrorContains(t, err, "unsupported database driver")
}
