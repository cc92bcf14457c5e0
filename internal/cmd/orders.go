package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// OrdersCommand represents the orders command group
type OrdersCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd       *OrdersListCommand
	showCmd       *OrdersShowCommand
	createCmd     *OrdersCreateCommand
	sendCmd       *OrdersTransitionCommand
	readyCmd      *OrdersTransitionCommand
	deliverCmd    *OrdersTransitionCommand
	cancelCmd     *OrdersTransitionCommand
	payCmd        *OrdersPayCommand
	paymentsCmd   *OrdersPaymentsCommand
	addItemCmd    *OrdersAddItemCommand
	removeItemCmd *OrdersRemoveItemCommand
	voidCmd       *OrdersVoidPaymentCommand
}

// NewOrdersCommand creates a new orders command
func NewOrdersCommand(root *RootCommand) *OrdersCommand {
	o := &OrdersCommand{
		root: root,
	}

	o.cmd = &cobra.Command{
		Use:   "orders",
		Short: "Manage restaurant orders",
		Long: `Manage restaurant orders through their full lifecycle.

Orders move from open, to in preparation, to ready, to delivered, and are
closed once fully paid. Use subcommands to list, create, or advance orders.`,
	}

	// Initialize subcommands
	o.listCmd = NewOrdersListCommand(o)
	o.showCmd = NewOrdersShowCommand(o)
	o.createCmd = NewOrdersCreateCommand(o)
	o.sendCmd = NewOrdersTransitionCommand(o, "send", "Send an order to the kitchen")
	o.readyCmd = NewOrdersTransitionCommand(o, "ready", "Mark an order as ready to serve")
	o.deliverCmd = NewOrdersTransitionCommand(o, "deliver", "Mark an order as delivered")
	o.cancelCmd = NewOrdersTransitionCommand(o, "cancel", "Cancel an order")
	o.payCmd = NewOrdersPayCommand(o)
	o.paymentsCmd = NewOrdersPaymentsCommand(o)
	o.addItemCmd = NewOrdersAddItemCommand(o)
	o.removeItemCmd = NewOrdersRemoveItemCommand(o)
	o.voidCmd = NewOrdersVoidPaymentCommand(o)

	// Add subcommands
	o.cmd.AddCommand(o.listCmd.Command())
	o.cmd.AddCommand(o.showCmd.Command())
	o.cmd.AddCommand(o.createCmd.Command())
	o.cmd.AddCommand(o.sendCmd.Command())
	o.cmd.AddCommand(o.readyCmd.Command())
	o.cmd.AddCommand(o.deliverCmd.Command())
	o.cmd.AddCommand(o.cancelCmd.Command())
	o.cmd.AddCommand(o.payCmd.Command())
	o.cmd.AddCommand(o.paymentsCmd.Command())
	o.cmd.AddCommand(o.addItemCmd.Command())
	o.cmd.AddCommand(o.removeItemCmd.Command())
	o.cmd.AddCommand(o.voidCmd.Command())

	return o
}

// Command returns the underlying cobra command
func (o *OrdersCommand) Command() *cobra.Command {
	return o.cmd
}

// Root returns the parent root command
func (o *OrdersCommand) Root() *RootCommand {
	return o.root
}

// parseOrderID parses a positional order ID argument
func parseOrderID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order ID: %s", arg)
	}
	return id, nil
}

// OrdersListCommand represents the orders list command
type OrdersListCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersListCommand creates a new orders list command
func NewOrdersListCommand(parent *OrdersCommand) *OrdersListCommand {
	l := &OrdersListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long: `List orders, optionally filtered by table or status.

Examples:
  restaurapp orders list
  restaurapp orders list --status ABIERTO
  restaurapp orders list --table 4 -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().Int64("table", 0, "Filter by table ID")
	l.cmd.Flags().String("status", "", "Filter by status (ABIERTO, EN_PREPARACION, LISTO, ENTREGADO, CERRADO, CANCELADO)")
	l.cmd.Flags().String("from", "", "Only orders created on or after this date (YYYY-MM-DD)")
	l.cmd.Flags().String("to", "", "Only orders created on or before this date (YYYY-MM-DD)")

	return l
}

// Command returns the underlying cobra command
func (l *OrdersListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the orders list command
func (l *OrdersListCommand) Run(cmd *cobra.Command, args []string) error {
	orderService := l.parent.Root().Container().OrderService()

	tableID, _ := cmd.Flags().GetInt64("table")
	status, _ := cmd.Flags().GetString("status")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	orders, err := orderService.List(cmd.Context(), api.OrderFilters{
		TableID: tableID,
		Status:  api.OrderStatus(strings.ToUpper(status)),
		From:    from,
		To:      to,
	})
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return l.outputJSON(orders)
	default:
		return l.outputTable(orders)
	}
}

// outputJSON outputs orders in JSON format
func (l *OrdersListCommand) outputJSON(orders []api.OrderSummary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(orders)
}

// outputTable outputs orders in table format
func (l *OrdersListCommand) outputTable(orders []api.OrderSummary) error {
	if len(orders) == 0 {
		fmt.Println("No orders found.")
		fmt.Println("\nCreate a new order with: restaurapp orders create")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTABLE\tSTATUS\tTOTAL\tCREATED")
	fmt.Fprintln(w, "--\t-----\t------\t-----\t-------")

	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
			o.ID,
			o.TableNumber,
			o.Status,
			o.Total,
			o.CreatedAt,
		)
	}

	return w.Flush()
}

// OrdersShowCommand represents the orders show command
type OrdersShowCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersShowCommand creates a new orders show command
func NewOrdersShowCommand(parent *OrdersCommand) *OrdersShowCommand {
	s := &OrdersShowCommand{
		parent: parent,
	}

	s.cmd = &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show an order with its items",
		Long: `Show detailed information about a specific order, including its items
and their preparation status.

Examples:
  restaurapp orders show 42
  restaurapp orders show 42 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *OrdersShowCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the orders show command
func (s *OrdersShowCommand) Run(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	orderService := s.parent.Root().Container().OrderService()

	order, err := orderService.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return s.outputJSON(order)
	default:
		return s.outputDetail(order)
	}
}

// outputJSON outputs the order in JSON format
func (s *OrdersShowCommand) outputJSON(order *api.Order) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(order)
}

// outputDetail outputs the order in human-readable format
func (s *OrdersShowCommand) outputDetail(order *api.Order) error {
	fmt.Printf("Order:  #%d\n", order.ID)
	fmt.Printf("Table:  %s\n", order.TableNumber)
	fmt.Printf("Status: %s\n", order.Status)
	fmt.Printf("Total:  %.2f\n", order.Total)

	if order.Notes != "" {
		fmt.Printf("Notes:  %s\n", order.Notes)
	}

	fmt.Println("\nItems:")
	if len(order.Items) == 0 {
		fmt.Println("  No items")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tITEM\tQTY\tPRICE\tSUBTOTAL\tPREP")
	fmt.Fprintln(w, "  --\t----\t---\t-----\t--------\t----")
	for _, item := range order.Items {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%.2f\t%.2f\t%s\n",
			item.ID,
			item.MenuItemName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			item.PrepStatus,
		)
	}

	return w.Flush()
}

// OrdersCreateCommand represents the orders create command
type OrdersCreateCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersCreateCommand creates a new orders create command
func NewOrdersCreateCommand(parent *OrdersCommand) *OrdersCreateCommand {
	c := &OrdersCreateCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new order",
		Long: `Create a new order with an interactive wizard.

The wizard asks for the table and lets you add menu items one by one.
You can skip the wizard by passing --table and one or more --item flags.

Examples:
  restaurapp orders create
  restaurapp orders create --table 4 --item 12:2 --item 7:1`,
		RunE: c.Run,
	}

	c.cmd.Flags().Int64("table", 0, "Table ID for the order")
	c.cmd.Flags().StringArray("item", nil, "Order line as <menu-item-id>:<quantity>")
	c.cmd.Flags().String("notes", "", "Free-form notes for the kitchen")

	return c
}

// Command returns the underlying cobra command
func (c *OrdersCreateCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the orders create command
func (c *OrdersCreateCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container := c.parent.Root().Container()

	tableID, _ := cmd.Flags().GetInt64("table")
	itemFlags, _ := cmd.Flags().GetStringArray("item")
	notes, _ := cmd.Flags().GetString("notes")

	sess := container.AuthService().Session()
	if sess == nil {
		return fmt.Errorf("not logged in. Please run 'restaurapp login' first")
	}

	var items []api.NewOrderItem
	var err error

	if tableID == 0 {
		tableID, err = c.promptTable(cmd)
		if err != nil {
			return err
		}
	}

	if len(itemFlags) > 0 {
		items, err = parseItemFlags(itemFlags)
	} else {
		items, err = c.promptItems(cmd)
	}
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return fmt.Errorf("an order needs at least one item")
	}

	orderService := container.OrderService()
	id, err := orderService.Create(ctx, api.CreateOrderRequest{
		TableID:  tableID,
		WaiterID: sess.Subject,
		Notes:    notes,
		Items:    items,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Order #%d created!\n", id)
	fmt.Println("\nNext steps:")
	fmt.Printf("  restaurapp orders send %d   - Send it to the kitchen\n", id)
	fmt.Printf("  restaurapp orders show %d   - Review the order\n", id)

	return nil
}

// promptTable asks the user to pick a table
func (c *OrdersCreateCommand) promptTable(cmd *cobra.Command) (int64, error) {
	tables, err := c.parent.Root().Container().TableService().List(cmd.Context())
	if err != nil {
		return 0, err
	}
	if len(tables) == 0 {
		return 0, fmt.Errorf("no tables available")
	}

	options := make([]string, len(tables))
	byLabel := make(map[string]int64, len(tables))
	for i, t := range tables {
		label := fmt.Sprintf("Table %s", t.Number)
		options[i] = label
		byLabel[label] = t.ID
	}

	var selected string
	if err := survey.AskOne(&survey.Select{
		Message: "Table:",
		Options: options,
	}, &selected); err != nil {
		return 0, err
	}

	return byLabel[selected], nil
}

// promptItems walks the user through adding order lines from the menu
func (c *OrdersCreateCommand) promptItems(cmd *cobra.Command) ([]api.NewOrderItem, error) {
	active := true
	menu, err := c.parent.Root().Container().MenuService().List(cmd.Context(), api.MenuFilters{Active: &active})
	if err != nil {
		return nil, err
	}
	if len(menu) == 0 {
		return nil, fmt.Errorf("the menu is empty")
	}

	options := make([]string, len(menu))
	byLabel := make(map[string]int64, len(menu))
	for i, m := range menu {
		label := fmt.Sprintf("%s (%.2f)", m.Name, m.Price)
		options[i] = label
		byLabel[label] = m.ID
	}

	var items []api.NewOrderItem
	for {
		var selected string
		if err := survey.AskOne(&survey.Select{
			Message: "Menu item:",
			Options: options,
		}, &selected); err != nil {
			return nil, err
		}

		qty := 1
		if err := survey.AskOne(&survey.Input{
			Message: "Quantity:",
			Default: "1",
		}, &qty); err != nil {
			return nil, err
		}
		if qty < 1 {
			qty = 1
		}

		items = append(items, api.NewOrderItem{
			MenuItemID: byLabel[selected],
			Quantity:   qty,
		})

		var more bool
		if err := survey.AskOne(&survey.Confirm{
			Message: "Add another item?",
			Default: false,
		}, &more); err != nil {
			return nil, err
		}
		if !more {
			return items, nil
		}
	}
}

// parseItemFlags parses repeated --item flags of the form id:qty
func parseItemFlags(flags []string) ([]api.NewOrderItem, error) {
	items := make([]api.NewOrderItem, 0, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, ":", 2)
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid --item value: %s (expected <menu-item-id>:<quantity>)", f)
		}

		qty := 1
		if len(parts) == 2 {
			qty, err = strconv.Atoi(parts[1])
			if err != nil || qty < 1 {
				return nil, fmt.Errorf("invalid --item quantity: %s", f)
			}
		}

		items = append(items, api.NewOrderItem{MenuItemID: id, Quantity: qty})
	}
	return items, nil
}

// OrdersTransitionCommand represents a single-step order lifecycle command
// such as send, ready, deliver, or cancel
type OrdersTransitionCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
	verb   string
}

// NewOrdersTransitionCommand creates a lifecycle transition command
func NewOrdersTransitionCommand(parent *OrdersCommand, verb, short string) *OrdersTransitionCommand {
	t := &OrdersTransitionCommand{
		parent: parent,
		verb:   verb,
	}

	t.cmd = &cobra.Command{
		Use:   fmt.Sprintf("%s <order-id>", verb),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  t.Run,
	}

	return t
}

// Command returns the underlying cobra command
func (t *OrdersTransitionCommand) Command() *cobra.Command {
	return t.cmd
}

// Run executes the transition command
func (t *OrdersTransitionCommand) Run(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	orderService := t.parent.Root().Container().OrderService()

	switch t.verb {
	case "send":
		err = orderService.SendToKitchen(cmd.Context(), id)
	case "ready":
		err = orderService.MarkReady(cmd.Context(), id)
	case "deliver":
		err = orderService.MarkDelivered(cmd.Context(), id)
	case "cancel":
		err = orderService.Cancel(cmd.Context(), id)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Order #%d: %s\n", id, t.doneMessage())
	return nil
}

func (t *OrdersTransitionCommand) doneMessage() string {
	switch t.verb {
	case "send":
		return "sent to kitchen"
	case "ready":
		return "marked ready"
	case "deliver":
		return "marked delivered"
	default:
		return "cancelled"
	}
}

// OrdersPayCommand represents the orders pay command
type OrdersPayCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersPayCommand creates a new orders pay command
func NewOrdersPayCommand(parent *OrdersCommand) *OrdersPayCommand {
	p := &OrdersPayCommand{
		parent: parent,
	}

	p.cmd = &cobra.Command{
		Use:   "pay <order-id>",
		Short: "Apply a payment to an order",
		Long: `Apply a payment to an order. Once the balance reaches zero the
backend closes the order.

Accepted methods: EFECTIVO, TARJETA, QR, TRANSFERENCIA.

Examples:
  restaurapp orders pay 42 --amount 25.50
  restaurapp orders pay 42 --amount 30 --method TARJETA`,
		Args: cobra.ExactArgs(1),
		RunE: p.Run,
	}

	p.cmd.Flags().Float64("amount", 0, "Payment amount")
	p.cmd.Flags().String("method", api.PaymentCash, "Payment method")

	return p
}

// Command returns the underlying cobra command
func (p *OrdersPayCommand) Command() *cobra.Command {
	return p.cmd
}

// Run executes the orders pay command
func (p *OrdersPayCommand) Run(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetFloat64("amount")
	method, _ := cmd.Flags().GetString("method")

	if amount <= 0 {
		return fmt.Errorf("--amount must be greater than zero")
	}

	orderService := p.parent.Root().Container().OrderService()

	receipt, err := orderService.Pay(cmd.Context(), id, amount, strings.ToUpper(method))
	if err != nil {
		return err
	}

	fmt.Printf("✓ Payment #%d applied to order #%d\n", receipt.ID, id)
	if receipt.Change > 0 {
		fmt.Printf("  Change due: %.2f\n", receipt.Change)
	}
	return nil
}

// OrdersPaymentsCommand represents the orders payments command
type OrdersPaymentsCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersPaymentsCommand creates a new orders payments command
func NewOrdersPaymentsCommand(parent *OrdersCommand) *OrdersPaymentsCommand {
	p := &OrdersPaymentsCommand{
		parent: parent,
	}

	p.cmd = &cobra.Command{
		Use:   "payments <order-id>",
		Short: "Show an order's payments and balance",
		Long: `Show the payments applied to an order and the outstanding balance.

Examples:
  restaurapp orders payments 42
  restaurapp orders payments 42 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: p.Run,
	}

	return p
}

// Command returns the underlying cobra command
func (p *OrdersPaymentsCommand) Command() *cobra.Command {
	return p.cmd
}

// Run executes the orders payments command
func (p *OrdersPaymentsCommand) Run(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	orderService := p.parent.Root().Container().OrderService()

	summary, err := orderService.Payments(cmd.Context(), id)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return p.outputJSON(summary)
	default:
		return p.outputTable(summary)
	}
}

// outputJSON outputs the payments summary in JSON format
func (p *OrdersPaymentsCommand) outputJSON(summary *api.PaymentsSummary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// outputTable outputs the payments summary in table format
func (p *OrdersPaymentsCommand) outputTable(summary *api.PaymentsSummary) error {
	if len(summary.Payments) == 0 {
		fmt.Println("No payments recorded.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tAMOUNT\tMETHOD\tSTATUS")
		fmt.Fprintln(w, "--\t------\t------\t------")
		for _, pay := range summary.Payments {
			fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\n",
				pay.ID,
				pay.Amount,
				pay.Method,
				pay.Status,
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Printf("\nBalance due: %.2f\n", summary.BalanceDue)
	return nil
}

// OrdersAddItemCommand represents the orders add-item command
type OrdersAddItemCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersAddItemCommand creates a new orders add-item command
func NewOrdersAddItemCommand(parent *OrdersCommand) *OrdersAddItemCommand {
	a := &OrdersAddItemCommand{
		parent: parent,
	}

	a.cmd = &cobra.Command{
		Use:   "add-item <order-id>",
		Short: "Add a line to an open order",
		Long: `Add a menu item to an order that is still open.

Examples:
  restaurapp orders add-item 42 --item 12:2
  restaurapp orders add-item 42 --item 7 --notes "sin cebolla"`,
		Args: cobra.ExactArgs(1),
		RunE: a.Run,
	}

	a.cmd.Flags().String("item", "", "Order line as <menu-item-id>:<quantity>")
	a.cmd.Flags().String("notes", "", "Notes for the kitchen")

	return a
}

// Command returns the underlying cobra command
func (a *OrdersAddItemCommand) Command() *cobra.Command {
	return a.cmd
}

// Run executes the orders add-item command
func (a *OrdersAddItemCommand) Run(cmd *cobra.Command, args []string) error {
	orderID, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	itemFlag, _ := cmd.Flags().GetString("item")
	notes, _ := cmd.Flags().GetString("notes")

	if itemFlag == "" {
		return fmt.Errorf("--item is required")
	}

	items, err := parseItemFlags([]string{itemFlag})
	if err != nil {
		return err
	}
	item := items[0]
	item.Notes = notes

	orderService := a.parent.Root().Container().OrderService()

	itemID, err := orderService.AddItem(cmd.Context(), orderID, item)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Item #%d added to order #%d\n", itemID, orderID)
	return nil
}

// OrdersRemoveItemCommand represents the orders remove-item command
type OrdersRemoveItemCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersRemoveItemCommand creates a new orders remove-item command
func NewOrdersRemoveItemCommand(parent *OrdersCommand) *OrdersRemoveItemCommand {
	r := &OrdersRemoveItemCommand{
		parent: parent,
	}

	r.cmd = &cobra.Command{
		Use:   "remove-item <order-id> <item-id>",
		Short: "Remove a line from an open order",
		Args:  cobra.ExactArgs(2),
		RunE:  r.Run,
	}

	return r
}

// Command returns the underlying cobra command
func (r *OrdersRemoveItemCommand) Command() *cobra.Command {
	return r.cmd
}

// Run executes the orders remove-item command
func (r *OrdersRemoveItemCommand) Run(cmd *cobra.Command, args []string) error {
	orderID, err := parseOrderID(args[0])
	if err != nil {
		return err
	}
	itemID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || itemID <= 0 {
		return fmt.Errorf("invalid item ID: %s", args[1])
	}

	orderService := r.parent.Root().Container().OrderService()

	if err := orderService.RemoveItem(cmd.Context(), orderID, itemID); err != nil {
		return err
	}

	fmt.Printf("✓ Item #%d removed from order #%d\n", itemID, orderID)
	return nil
}

// OrdersVoidPaymentCommand represents the orders void-payment command
type OrdersVoidPaymentCommand struct {
	parent *OrdersCommand
	cmd    *cobra.Command
}

// NewOrdersVoidPaymentCommand creates a new orders void-payment command
func NewOrdersVoidPaymentCommand(parent *OrdersCommand) *OrdersVoidPaymentCommand {
	v := &OrdersVoidPaymentCommand{
		parent: parent,
	}

	v.cmd = &cobra.Command{
		Use:   "void-payment <order-id> <payment-id>",
		Short: "Void a payment applied to an order",
		Args:  cobra.ExactArgs(2),
		RunE:  v.Run,
	}

	return v
}

// Command returns the underlying cobra command
func (v *OrdersVoidPaymentCommand) Command() *cobra.Command {
	return v.cmd
}

// Run executes the orders void-payment command
func (v *OrdersVoidPaymentCommand) Run(cmd *cobra.Command, args []string) error {
	orderID, err := parseOrderID(args[0])
	if err != nil {
		return err
	}
	paymentID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || paymentID <= 0 {
		return fmt.Errorf("invalid payment ID: %s", args[1])
	}

	orderService := v.parent.Root().Container().OrderService()

	if err := orderService.VoidPayment(cmd.Context(), orderID, paymentID); err != nil {
		return err
	}

	fmt.Printf("✓ Payment #%d voided on order #%d\n", paymentID, orderID)
	return nil
}
