package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// HealthCommand represents the health command
type HealthCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewHealthCommand creates a new health command
func NewHealthCommand(root *RootCommand) *HealthCommand {
	h := &HealthCommand{
		root: root,
	}

	h.cmd = &cobra.Command{
		Use:   "health",
		Short: "Check the RestaurApp backend status",
		Long: `Check whether the RestaurApp backend is reachable and healthy.

Example:
  restaurapp health`,
		RunE: h.Run,
	}

	return h
}

// Command returns the underlying cobra command
func (h *HealthCommand) Command() *cobra.Command {
	return h.cmd
}

// Run executes the health command
func (h *HealthCommand) Run(cmd *cobra.Command, args []string) error {
	client := h.root.Container().APIClient()

	status, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}

	fmt.Printf("✓ Backend is %s\n", status.Status)
	return nil
}
