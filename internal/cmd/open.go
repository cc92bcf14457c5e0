package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// OpenCommand represents the open command
type OpenCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewOpenCommand creates a new open command
func NewOpenCommand(root *RootCommand) *OpenCommand {
	o := &OpenCommand{
		root: root,
	}

	o.cmd = &cobra.Command{
		Use:   "open",
		Short: "Open the RestaurApp dashboard in a browser",
		Long: `Open the RestaurApp web dashboard in your default browser.

Example:
  restaurapp open`,
		RunE: o.Run,
	}

	return o
}

// Command returns the underlying cobra command
func (o *OpenCommand) Command() *cobra.Command {
	return o.cmd
}

// Run executes the open command
func (o *OpenCommand) Run(cmd *cobra.Command, args []string) error {
	url := o.root.Container().Config().DashboardURL

	fmt.Printf("Opening %s ...\n", url)
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
