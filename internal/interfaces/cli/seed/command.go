package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratplan/internal/application/budget/usecases"
	"stratplan/internal/infrastructure/database"
	"stratplan/internal/infrastructure/repository"
	infraSeed "stratplan/internal/infrastructure/seed"
	"stratplan/internal/interfaces/cli/bootstrap"
	"stratplan/internal/shared/constants"
	"stratplan/internal/shared/db"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	costing := &cobra.Command{
		Use:   "costing",
		Short: "Import activity costing assumptions from a YAML file",
		Long:  `Create or update costing assumptions keyed by activity type, location and cost type. The whole file is applied in one transaction.`,
		RunE:  runCosting,
	}
	costing.Flags().StringVarP(&file, "file", "f", "configs/costing.yaml", "Path to the costing seed file")

	cmd.AddCommand(costing)
	return cmd
}

func runCosting(cmd *cobra.Command, args []string) error {
	boot, err := bootstrap.Init(bootstrap.ResolveEnv(env), true)
	if err != nil {
		return err
	}
	defer database.Close()

	entries, err := infraSeed.NewCostingLoader(boot.Log).LoadFile(file)
	if err != nil {
		return err
	}

	gdb := database.Get()
	uc := usecases.NewImportCostingAssumptionsUseCase(db.NewTransactionManager(gdb), repository.NewCostingRepository(gdb), boot.Log)
	result, err := uc.Execute(cmd.Context(), entries)
	if err != nil {
		return fmt.Errorf("costing import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "costing assumptions: %d created, %d updated\n", result.Created, result.Updated)
	return nil
}
