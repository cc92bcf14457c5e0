package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// UsersCommand represents the users command group
type UsersCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd *UsersListCommand
	showCmd *UsersShowCommand
}

// NewUsersCommand creates a new users command
func NewUsersCommand(root *RootCommand) *UsersCommand {
	u := &UsersCommand{
		root: root,
	}

	u.cmd = &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
	}

	// Initialize subcommands
	u.listCmd = NewUsersListCommand(u)
	u.showCmd = NewUsersShowCommand(u)

	// Add subcommands
	u.cmd.AddCommand(u.listCmd.Command())
	u.cmd.AddCommand(u.showCmd.Command())

	return u
}

// Command returns the underlying cobra command
func (u *UsersCommand) Command() *cobra.Command {
	return u.cmd
}

// Root returns the parent root command
func (u *UsersCommand) Root() *RootCommand {
	return u.root
}

// UsersListCommand represents the users list command
type UsersListCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersListCommand creates a new users list command
func NewUsersListCommand(parent *UsersCommand) *UsersListCommand {
	l := &UsersListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List staff accounts",
		Long: `List staff accounts, optionally filtered by role.

Examples:
  restaurapp users list
  restaurapp users list --role mesero
  restaurapp users list --active -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().String("role", "", "Filter by role (admin, mesero, cocinero, cajero)")
	l.cmd.Flags().Bool("active", false, "Only show active accounts")

	return l
}

// Command returns the underlying cobra command
func (l *UsersListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the users list command
func (l *UsersListCommand) Run(cmd *cobra.Command, args []string) error {
	userService := l.parent.Root().Container().UserService()

	role, _ := cmd.Flags().GetString("role")

	filters := api.UserFilters{
		Role: api.Role(strings.ToLower(role)),
	}
	if active, _ := cmd.Flags().GetBool("active"); active {
		filters.Active = &active
	}

	users, err := userService.List(cmd.Context(), filters)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(users)
	default:
		return l.outputTable(users)
	}
}

// outputTable outputs users in table format
func (l *UsersListCommand) outputTable(users []api.User) error {
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tEMAIL\tROLE\tACTIVE")
	fmt.Fprintln(w, "----\t----\t-----\t----\t------")

	for _, u := range users {
		active := "yes"
		if !u.Active {
			active = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.Code,
			u.Name,
			u.Email,
			u.Role,
			active,
		)
	}

	return w.Flush()
}

// UsersShowCommand represents the users show command
type UsersShowCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersShowCommand creates a new users show command
func NewUsersShowCommand(parent *UsersCommand) *UsersShowCommand {
	s := &UsersShowCommand{
		parent: parent,
	}

	s.cmd = &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a staff account",
		Long: `Show detailed information about a staff account.

Examples:
  restaurapp users show 5f809f2f-0787-40ca-9a43-a3a59edb5400
  restaurapp users show 5f809f2f-0787-40ca-9a43-a3a59edb5400 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *UsersShowCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the users show command
func (s *UsersShowCommand) Run(cmd *cobra.Command, args []string) error {
	userService := s.parent.Root().Container().UserService()

	user, err := userService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(user)
	default:
		return s.outputDetail(user)
	}
}

// outputDetail outputs the user in human-readable format
func (s *UsersShowCommand) outputDetail(u *api.User) error {
	fmt.Printf("Name:   %s\n", u.Name)
	fmt.Printf("Code:   %d\n", u.Code)
	fmt.Printf("Email:  %s\n", u.Email)
	fmt.Printf("Role:   %s\n", u.Role)
	fmt.Printf("Active: %t\n", u.Active)
	fmt.Printf("ID:     %s\n", u.ID)
	return nil
}
