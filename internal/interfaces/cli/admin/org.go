package admin

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/application/organization/usecases"
	"stratplan/internal/infrastructure/repository"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

func newOrgCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}

	var (
		input  usecases.CreateOrganizationCommand
		parent uint
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parent != 0 {
				input.ParentID = &parent
			}
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				uc := usecases.NewCreateOrganizationUseCase(repository.NewOrganizationRepository(gdb), log)
				org, err := uc.Execute(cmd.Context(), input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created organization %q (id %d)\n", org.Name, org.ID)
				return nil
			})
		},
	}
	create.Flags().StringVarP(&input.Name, "name", "n", "", "Organization name (required)")
	create.Flags().StringVarP(&input.Type, "type", "t", "", "MINISTER, STATE_MINISTER, CHIEF_EXECUTIVE, LEAD_EXECUTIVE, EXECUTIVE, TEAM_LEAD or DESK (required)")
	create.Flags().UintVar(&parent, "parent", 0, "Parent organization id")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("type")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization; its children become roots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid organization id %q", args[0])
			}
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				uc := usecases.NewDeleteOrganizationUseCase(repository.NewOrganizationRepository(gdb), log)
				if err := uc.Execute(cmd.Context(), uint(id)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted organization %d\n", id)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the organization tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				uc := usecases.NewListOrganizationHierarchyUseCase(repository.NewOrganizationRepository(gdb), markdown.NewRenderer(), log)
				roots, err := uc.Execute(cmd.Context())
				if err != nil {
					return err
				}
				printTree(cmd.OutOrStdout(), roots, 0)
				return nil
			})
		},
	}

	cmd.AddCommand(create, remove, list)
	return cmd
}

func printTree(w io.Writer, nodes []*dto.OrganizationNodeDTO, depth int) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s%d  %s  [%s]\n", strings.Repeat("  ", depth), n.ID, n.Name, n.Type)
		printTree(w, n.Children, depth+1)
	}
}
