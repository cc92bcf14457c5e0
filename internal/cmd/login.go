package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// LoginCommand represents the login command
type LoginCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewLoginCommand creates a new login command
func NewLoginCommand(root *RootCommand) *LoginCommand {
	l := &LoginCommand{
		root: root,
	}

	l.cmd = &cobra.Command{
		Use:   "login",
		Short: "Authenticate with RestaurApp",
		Long: `Authenticate with RestaurApp using your staff email and password.

After a successful login your session is stored locally and kept fresh
automatically until you log out.

Examples:
  restaurapp login
  restaurapp login --email ana@restaurapp.com`,
		RunE: l.Run,
	}

	l.cmd.Flags().String("email", "", "Staff account email")
	l.cmd.Flags().String("password", "", "Staff account password (prompted if omitted)")

	return l
}

// Command returns the underlying cobra command
func (l *LoginCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the login command
func (l *LoginCommand) Run(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Email:",
		}, &email, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if password == "" {
		if err := survey.AskOne(&survey.Password{
			Message: "Password:",
		}, &password, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	authService := l.root.Container().AuthService()
	if err := authService.Login(cmd.Context(), email, password); err != nil {
		return err
	}

	session := authService.Session()
	fmt.Println("✓ Successfully logged in to RestaurApp!")
	if session != nil && session.Role != "" {
		fmt.Printf("  Signed in as %s (%s)\n", session.Subject, session.Role)
	}
	return nil
}
