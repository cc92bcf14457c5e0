package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// TablesCommand represents the tables command group
type TablesCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd *TablesListCommand
}

// NewTablesCommand creates a new tables command
func NewTablesCommand(root *RootCommand) *TablesCommand {
	t := &TablesCommand{
		root: root,
	}

	t.cmd = &cobra.Command{
		Use:   "tables",
		Short: "Manage dining tables",
	}

	t.listCmd = NewTablesListCommand(t)
	t.cmd.AddCommand(t.listCmd.Command())

	return t
}

// Command returns the underlying cobra command
func (t *TablesCommand) Command() *cobra.Command {
	return t.cmd
}

// Root returns the parent root command
func (t *TablesCommand) Root() *RootCommand {
	return t.root
}

// TablesListCommand represents the tables list command
type TablesListCommand struct {
	parent *TablesCommand
	cmd    *cobra.Command
}

// NewTablesListCommand creates a new tables list command
func NewTablesListCommand(parent *TablesCommand) *TablesListCommand {
	l := &TablesListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List dining tables",
		Long: `List the restaurant's dining tables.

Examples:
  restaurapp tables list
  restaurapp tables list -o json`,
		RunE: l.Run,
	}

	return l
}

// Command returns the underlying cobra command
func (l *TablesListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the tables list command
func (l *TablesListCommand) Run(cmd *cobra.Command, args []string) error {
	tableService := l.parent.Root().Container().TableService()

	tables, err := tableService.List(cmd.Context())
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tables)
	default:
		return l.outputTable(tables)
	}
}

// outputTable outputs tables in table format
func (l *TablesListCommand) outputTable(tables []api.Table) error {
	if len(tables) == 0 {
		fmt.Println("No tables found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER")
	fmt.Fprintln(w, "--\t------")

	for _, t := range tables {
		fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Number)
	}

	return w.Flush()
}
