// Package admin holds the operator commands that provision users,
// organizations and memberships. They bypass role checks.
package admin

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stratplan/internal/infrastructure/database"
	"stratplan/internal/interfaces/cli/bootstrap"
	"stratplan/internal/shared/constants"
	"stratplan/internal/shared/logger"
)

var env string

// NewCommands returns the user, org and member command trees.
func NewCommands() []*cobra.Command {
	cmds := []*cobra.Command{
		newUserCommand(),
		newOrgCommand(),
		newMemberCommand(),
	}
	for _, c := range cmds {
		c.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	}
	return cmds
}

// withDB runs fn against the configured database.
func withDB(fn func(gdb *gorm.DB, log logger.Interface) error) error {
	boot, err := bootstrap.Init(bootstrap.ResolveEnv(env), true)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(database.Get(), boot.Log)
}
