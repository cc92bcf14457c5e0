package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// InvoicesCommand represents the invoices command group
type InvoicesCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd  *InvoicesListCommand
	showCmd  *InvoicesShowCommand
	issueCmd *InvoicesIssueCommand
}

// NewInvoicesCommand creates a new invoices command
func NewInvoicesCommand(root *RootCommand) *InvoicesCommand {
	i := &InvoicesCommand{
		root: root,
	}

	i.cmd = &cobra.Command{
		Use:   "invoices",
		Short: "Manage invoices",
		Long: `Manage invoices issued for closed orders.

Use subcommands to list past invoices or issue one for a closed order.`,
	}

	// Initialize subcommands
	i.listCmd = NewInvoicesListCommand(i)
	i.showCmd = NewInvoicesShowCommand(i)
	i.issueCmd = NewInvoicesIssueCommand(i)

	// Add subcommands
	i.cmd.AddCommand(i.listCmd.Command())
	i.cmd.AddCommand(i.showCmd.Command())
	i.cmd.AddCommand(i.issueCmd.Command())

	return i
}

// Command returns the underlying cobra command
func (i *InvoicesCommand) Command() *cobra.Command {
	return i.cmd
}

// Root returns the parent root command
func (i *InvoicesCommand) Root() *RootCommand {
	return i.root
}

// InvoicesListCommand represents the invoices list command
type InvoicesListCommand struct {
	parent *InvoicesCommand
	cmd    *cobra.Command
}

// NewInvoicesListCommand creates a new invoices list command
func NewInvoicesListCommand(parent *InvoicesCommand) *InvoicesListCommand {
	l := &InvoicesListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long: `List invoices, optionally filtered by table or date range.

Examples:
  restaurapp invoices list
  restaurapp invoices list --from 2026-08-01 --to 2026-08-31
  restaurapp invoices list --table 4 -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().Int64("table", 0, "Filter by table ID")
	l.cmd.Flags().String("from", "", "Only invoices issued on or after this date (YYYY-MM-DD)")
	l.cmd.Flags().String("to", "", "Only invoices issued on or before this date (YYYY-MM-DD)")

	return l
}

// Command returns the underlying cobra command
func (l *InvoicesListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the invoices list command
func (l *InvoicesListCommand) Run(cmd *cobra.Command, args []string) error {
	invoiceService := l.parent.Root().Container().InvoiceService()

	tableID, _ := cmd.Flags().GetInt64("table")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	invoices, err := invoiceService.List(cmd.Context(), api.InvoiceFilters{
		TableID: tableID,
		From:    from,
		To:      to,
	})
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(invoices)
	default:
		return l.outputTable(invoices)
	}
}

// outputTable outputs invoices in table format
func (l *InvoicesListCommand) outputTable(invoices []api.Invoice) error {
	if len(invoices) == 0 {
		fmt.Println("No invoices found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tORDER\tTABLE\tTOTAL\tISSUED")
	fmt.Fprintln(w, "--\t------\t-----\t-----\t-----\t------")

	for _, inv := range invoices {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.2f\t%s\n",
			inv.ID,
			inv.Number,
			inv.OrderID,
			inv.TableNumber,
			inv.Total,
			inv.IssuedAt,
		)
	}

	return w.Flush()
}

// InvoicesShowCommand represents the invoices show command
type InvoicesShowCommand struct {
	parent *InvoicesCommand
	cmd    *cobra.Command
}

// NewInvoicesShowCommand creates a new invoices show command
func NewInvoicesShowCommand(parent *InvoicesCommand) *InvoicesShowCommand {
	s := &InvoicesShowCommand{
		parent: parent,
	}

	s.cmd = &cobra.Command{
		Use:   "show <invoice-id>",
		Short: "Show an invoice",
		Long: `Show detailed information about a specific invoice.

Examples:
  restaurapp invoices show 17
  restaurapp invoices show 17 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *InvoicesShowCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the invoices show command
func (s *InvoicesShowCommand) Run(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid invoice ID: %s", args[0])
	}

	invoiceService := s.parent.Root().Container().InvoiceService()

	invoice, err := invoiceService.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(invoice)
	default:
		return s.outputDetail(invoice)
	}
}

// outputDetail outputs the invoice in human-readable format
func (s *InvoicesShowCommand) outputDetail(inv *api.Invoice) error {
	fmt.Printf("Invoice: %s\n", inv.Number)
	fmt.Printf("Order:   #%d\n", inv.OrderID)
	fmt.Printf("Table:   %s\n", inv.TableNumber)
	if inv.WaiterName != "" {
		fmt.Printf("Waiter:  %s\n", inv.WaiterName)
	}
	fmt.Printf("Total:   %.2f\n", inv.Total)
	fmt.Printf("Issued:  %s\n", inv.IssuedAt)
	return nil
}

// InvoicesIssueCommand represents the invoices issue command
type InvoicesIssueCommand struct {
	parent *InvoicesCommand
	cmd    *cobra.Command
}

// NewInvoicesIssueCommand creates a new invoices issue command
func NewInvoicesIssueCommand(parent *InvoicesCommand) *InvoicesIssueCommand {
	i := &InvoicesIssueCommand{
		parent: parent,
	}

	i.cmd = &cobra.Command{
		Use:   "issue <order-id>",
		Short: "Issue an invoice for a closed order",
		Long: `Issue an invoice for a fully paid, closed order.

Examples:
  restaurapp invoices issue 42`,
		Args: cobra.ExactArgs(1),
		RunE: i.Run,
	}

	return i
}

// Command returns the underlying cobra command
func (i *InvoicesIssueCommand) Command() *cobra.Command {
	return i.cmd
}

// Run executes the invoices issue command
func (i *InvoicesIssueCommand) Run(cmd *cobra.Command, args []string) error {
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || orderID <= 0 {
		return fmt.Errorf("invalid order ID: %s", args[0])
	}

	invoiceService := i.parent.Root().Container().InvoiceService()

	id, err := invoiceService.Issue(cmd.Context(), orderID)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Invoice #%d issued for order #%d\n", id, orderID)
	fmt.Printf("\nView it with: restaurapp invoices show %d\n", id)
	return nil
}
