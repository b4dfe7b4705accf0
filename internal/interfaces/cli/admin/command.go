package admin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vforit/ticktrack/internal/application/user/usecases"
	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/infrastructure/config"
	"github.com/vforit/ticktrack/internal/infrastructure/database"
	"github.com/vforit/ticktrack/internal/infrastructure/repository"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

var (
	env         string
	username    string
	fullname    string
	designation string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an initial admin user",
		Long: `Create an admin user directly in the database. Intended for bootstrapping
a fresh deployment, since registration over the API requires an already
authenticated user. The password is read from the terminal without echo,
or from stdin when no terminal is attached.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the admin user (required)")
	cmd.Flags().StringVar(&fullname, "fullname", "", "Full name of the admin user")
	cmd.Flags().StringVar(&designation, "designation", "", "Designation of the admin user")
	cmd.MarkFlagRequired("username")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword(os.Stdin)
	if err != nil {
		return err
	}

	log := logger.NewLogger().Named("create-admin")
	userRepo := repository.NewUserRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	register := usecases.NewRegisterUserUseCase(userRepo, hasher, log)

	created, err := register.Execute(cmd.Context(), usecases.RegisterUserCommand{
		Username:    username,
		Password:    password,
		Fullname:    fullname,
		Designation: designation,
		Role:        "admin",
		Approver:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	fmt.Printf("created admin user %q (id %d)\n", created.Username, created.ID)
	return nil
}

// promptPassword reads the password without echo when stdin is a terminal,
// with a confirmation prompt. Otherwise it reads a single line, which lets
// provisioning scripts pipe the password in.
func promptPassword(in *os.File) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return readPasswordLine(in)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) == 0 {
		return "", fmt.Errorf("password is empty")
	}

	return string(first), nil
}

func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}

	return password, nil
}
