package admin

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stratplan/internal/application/organization/usecases"
	"stratplan/internal/infrastructure/repository"
	"stratplan/internal/shared/logger"
)

func newMemberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Grant or revoke organization roles",
	}

	var target usecases.MembershipTarget
	flags := func(c *cobra.Command) {
		c.Flags().StringVarP(&target.Username, "username", "u", "", "User login name (required)")
		c.Flags().UintVarP(&target.OrganizationID, "org", "o", 0, "Organization id (required)")
		c.Flags().StringVarP(&target.Role, "role", "r", "", "ADMIN, PLANNER or EVALUATOR (required)")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("org")
		_ = c.MarkFlagRequired("role")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Grant a role in an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				uc := usecases.NewGrantMembershipUseCase(
					repository.NewMembershipRepository(gdb),
					repository.NewUserRepository(gdb),
					repository.NewOrganizationRepository(gdb),
					log,
				)
				m, err := uc.Execute(cmd.Context(), target)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "granted %s in organization %d to %s\n", m.Role, m.OrganizationID, m.Username)
				return nil
			})
		},
	}
	flags(add)

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Revoke a role in an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				uc := usecases.NewRevokeMembershipUseCase(repository.NewMembershipRepository(gdb), repository.NewUserRepository(gdb), log)
				if err := uc.Execute(cmd.Context(), target); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revoked %s in organization %d from %s\n", target.Role, target.OrganizationID, target.Username)
				return nil
			})
		},
	}
	flags(remove)

	cmd.AddCommand(add, remove)
	return cmd
}
