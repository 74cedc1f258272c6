package admin

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	"stratplan/internal/application/auth/usecases"
	"stratplan/internal/infrastructure/auth"
	"stratplan/internal/infrastructure/config"
	"stratplan/internal/infrastructure/repository"
	"stratplan/internal/shared/logger"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var input usecases.CreateUserCommand
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  `Create a user account. The password is read from the terminal when --password is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Password == "" {
				pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				input.Password = pw
			}
			return withDB(func(gdb *gorm.DB, log logger.Interface) error {
				return createUser(cmd, gdb, log, input)
			})
		},
	}
	create.Flags().StringVarP(&input.Username, "username", "u", "", "Login name (required)")
	create.Flags().StringVar(&input.FirstName, "first-name", "", "First name")
	create.Flags().StringVar(&input.LastName, "last-name", "", "Last name")
	create.Flags().StringVar(&input.Email, "email", "", "E-mail address for review notifications")
	create.Flags().StringVarP(&input.Password, "password", "p", "", "Password; prompted when omitted")
	_ = create.MarkFlagRequired("username")

	cmd.AddCommand(create)
	return cmd
}

func createUser(cmd *cobra.Command, gdb *gorm.DB, log logger.Interface, input usecases.CreateUserCommand) error {
	hasher := auth.NewBcryptPasswordHasher(config.Get().Auth.Password.BcryptCost)
	uc := usecases.NewCreateUserUseCase(repository.NewUserRepository(gdb), hasher, log)

	created, err := uc.Execute(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", created.Username, created.ID)
	return nil
}

// readPassword prompts twice on a terminal; piped input is read as one line.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		var line string
		if _, err := fmt.Fscanln(in, &line); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprint(prompt, "Password: ")
	first, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprint(prompt, "Repeat password: ")
	second, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}
