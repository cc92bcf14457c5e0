package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// MenuCommand represents the menu command group
type MenuCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd       *MenuListCommand
	categoriesCmd *MenuCategoriesCommand
}

// NewMenuCommand creates a new menu command
func NewMenuCommand(root *RootCommand) *MenuCommand {
	m := &MenuCommand{
		root: root,
	}

	m.cmd = &cobra.Command{
		Use:   "menu",
		Short: "Browse the restaurant menu",
	}

	// Initialize subcommands
	m.listCmd = NewMenuListCommand(m)
	m.categoriesCmd = NewMenuCategoriesCommand(m)

	// Add subcommands
	m.cmd.AddCommand(m.listCmd.Command())
	m.cmd.AddCommand(m.categoriesCmd.Command())

	return m
}

// Command returns the underlying cobra command
func (m *MenuCommand) Command() *cobra.Command {
	return m.cmd
}

// Root returns the parent root command
func (m *MenuCommand) Root() *RootCommand {
	return m.root
}

// MenuListCommand represents the menu list command
type MenuListCommand struct {
	parent *MenuCommand
	cmd    *cobra.Command
}

// NewMenuListCommand creates a new menu list command
func NewMenuListCommand(parent *MenuCommand) *MenuListCommand {
	l := &MenuListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		Long: `List menu items, optionally filtered by category or availability.

Examples:
  restaurapp menu list
  restaurapp menu list --category 3
  restaurapp menu list --active -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().Int64("category", 0, "Filter by category ID")
	l.cmd.Flags().Bool("active", false, "Only show active items")
	l.cmd.Flags().String("search", "", "Search items by name")

	return l
}

// Command returns the underlying cobra command
func (l *MenuListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the menu list command
func (l *MenuListCommand) Run(cmd *cobra.Command, args []string) error {
	menuService := l.parent.Root().Container().MenuService()

	categoryID, _ := cmd.Flags().GetInt64("category")
	query, _ := cmd.Flags().GetString("search")

	filters := api.MenuFilters{
		CategoryID: categoryID,
		Query:      query,
	}
	if active, _ := cmd.Flags().GetBool("active"); active {
		filters.Active = &active
	}

	items, err := menuService.List(cmd.Context(), filters)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return l.outputJSON(items)
	default:
		return l.outputTable(items)
	}
}

// outputJSON outputs menu items in JSON format
func (l *MenuListCommand) outputJSON(items []api.MenuItem) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

// outputTable outputs menu items in table format
func (l *MenuListCommand) outputTable(items []api.MenuItem) error {
	if len(items) == 0 {
		fmt.Println("No menu items found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tACTIVE")
	fmt.Fprintln(w, "--\t----\t--------\t-----\t------")

	for _, item := range items {
		active := "yes"
		if !item.Active {
			active = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
			item.ID,
			item.Name,
			item.CategoryName,
			item.Price,
			active,
		)
	}

	return w.Flush()
}

// MenuCategoriesCommand represents the menu categories command
type MenuCategoriesCommand struct {
	parent *MenuCommand
	cmd    *cobra.Command
}

// NewMenuCategoriesCommand creates a new menu categories command
func NewMenuCategoriesCommand(parent *MenuCommand) *MenuCategoriesCommand {
	c := &MenuCategoriesCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "categories",
		Short: "List menu categories",
		Long: `List the categories that group menu items.

Examples:
  restaurapp menu categories
  restaurapp menu categories -o json`,
		RunE: c.Run,
	}

	return c
}

// Command returns the underlying cobra command
func (c *MenuCategoriesCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the menu categories command
func (c *MenuCategoriesCommand) Run(cmd *cobra.Command, args []string) error {
	menuService := c.parent.Root().Container().MenuService()

	categories, err := menuService.Categories(cmd.Context())
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(categories)
	default:
		return c.outputTable(categories)
	}
}

// outputTable outputs categories in table format
func (c *MenuCategoriesCommand) outputTable(categories []api.Category) error {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t-----------")

	for _, cat := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
	}

	return w.Flush()
}
