// Package cmd provides the command-line interface for the RestaurApp CLI.
// It contains all cobra commands and their implementations.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/di"
	"github.com/restaurapp/restaurapp-cli/internal/logging"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

// RootCommand represents the root CLI command
type RootCommand struct {
	container *di.Container
	cmd       *cobra.Command

	// Subcommands
	loginCmd    *LoginCommand
	logoutCmd   *LogoutCommand
	whoamiCmd   *WhoamiCommand
	openCmd     *OpenCommand
	healthCmd   *HealthCommand
	ordersCmd   *OrdersCommand
	menuCmd     *MenuCommand
	tablesCmd   *TablesCommand
	invoicesCmd *InvoicesCommand
	usersCmd    *UsersCommand
}

// NewRootCommand creates a new root command
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "restaurapp",
		Short: "RestaurApp CLI - Command line interface for RestaurApp",
		Long: `RestaurApp CLI is a command-line tool for running a restaurant on RestaurApp.

It covers the daily workflow of waiters, kitchen staff, and cashiers:
taking orders, tracking preparation, collecting payments, and issuing
invoices.

To get started, run:
  restaurapp login        - Authenticate with your staff account
  restaurapp orders list  - View today's orders`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize(cmd.Context())
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json)")

	// Initialize subcommands (will be wired after container init)
	r.loginCmd = NewLoginCommand(r)
	r.logoutCmd = NewLogoutCommand(r)
	r.whoamiCmd = NewWhoamiCommand(r)
	r.openCmd = NewOpenCommand(r)
	r.healthCmd = NewHealthCommand(r)
	r.ordersCmd = NewOrdersCommand(r)
	r.menuCmd = NewMenuCommand(r)
	r.tablesCmd = NewTablesCommand(r)
	r.invoicesCmd = NewInvoicesCommand(r)
	r.usersCmd = NewUsersCommand(r)

	// Add subcommands
	r.cmd.AddCommand(r.loginCmd.Command())
	r.cmd.AddCommand(r.logoutCmd.Command())
	r.cmd.AddCommand(r.whoamiCmd.Command())
	r.cmd.AddCommand(r.openCmd.Command())
	r.cmd.AddCommand(r.healthCmd.Command())
	r.cmd.AddCommand(r.ordersCmd.Command())
	r.cmd.AddCommand(r.menuCmd.Command())
	r.cmd.AddCommand(r.tablesCmd.Command())
	r.cmd.AddCommand(r.invoicesCmd.Command())
	r.cmd.AddCommand(r.usersCmd.Command())

	return r
}

// initialize sets up the DI container
func (r *RootCommand) initialize(ctx context.Context) error {
	// Skip if container is already set (e.g., for testing)
	if r.container != nil {
		return nil
	}

	container, err := di.NewContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	logging.Setup(container.Config().LogLevel)
	r.container = container
	return nil
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Container returns the DI container
func (r *RootCommand) Container() *di.Container {
	return r.container
}

// SetContainer sets a custom container (for testing)
func (r *RootCommand) SetContainer(c *di.Container) {
	r.container = c
}

// Execute is the main entry point for the CLI
func Execute() error {
	root := NewRootCommand()
	return root.Execute()
}

// ExitWithError prints an error message and exits with code 1
func ExitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}

// outputFormat resolves the effective output format for a command,
// falling back to the root persistent flag.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format, _ = cmd.Root().PersistentFlags().GetString("output")
	}
	return format
}
