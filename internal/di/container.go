// Package di provides dependency injection for the RestaurApp CLI.
// It contains the service container and factory functions.
package di

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	"github.com/restaurapp/restaurapp-cli/internal/config"
	"github.com/restaurapp/restaurapp-cli/internal/service"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
	"github.com/restaurapp/restaurapp-cli/internal/session"
)

// Container holds all service dependencies for the CLI.
// Services are accessed via interfaces to enable mocking in tests.
type Container struct {
	cfg            *config.Config
	configManager  *config.Manager
	apiClient      *api.Client
	sessions       *session.Manager
	authService    iface.AuthService
	orderService   iface.OrderService
	menuService    iface.MenuService
	tableService   iface.TableService
	invoiceService iface.InvoiceService
	userService    iface.UserService
}

// NewContainer creates a new dependency container with default implementations.
// It restores any persisted session before building the API clients so the
// first request already carries a usable access token.
func NewContainer(ctx context.Context) (*Container, error) {
	configManager, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	cfg, err := configManager.Load()
	if err != nil {
		return nil, err
	}

	authClient := api.NewAuthClient(cfg.APIURL)
	store := session.NewStore(configManager.SessionPath())
	sessions := session.NewManager(authClient, store)
	sessions.Restore(ctx)

	apiClient := api.NewClient(cfg.APIURL, sessions)
	orders := api.NewOrdersClient(apiClient)
	items := api.NewOrderItemsClient(apiClient)
	payments := api.NewPaymentsClient(apiClient)
	invoices := api.NewInvoicesClient(apiClient)
	menu := api.NewMenuClient(apiClient)
	categories := api.NewCategoriesClient(apiClient)
	tables := api.NewTablesClient(apiClient)
	users := api.NewUsersClient(apiClient)

	return &Container{
		cfg:            cfg,
		configManager:  configManager,
		apiClient:      apiClient,
		sessions:       sessions,
		authService:    service.NewAuthService(sessions),
		orderService:   service.NewOrderService(orders, items, payments),
		menuService:    service.NewMenuService(menu, categories),
		tableService:   service.NewTableService(tables),
		invoiceService: service.NewInvoiceService(invoices),
		userService:    service.NewUserService(users),
	}, nil
}

// NewContainerWithServices creates a container with custom service implementations.
// This is useful for testing with mock services.
func NewContainerWithServices(
	authService iface.AuthService,
	orderService iface.OrderService,
	menuService iface.MenuService,
	tableService iface.TableService,
	invoiceService iface.InvoiceService,
	userService iface.UserService,
) *Container {
	return &Container{
		cfg:            config.Default(),
		authService:    authService,
		orderService:   orderService,
		menuService:    menuService,
		tableService:   tableService,
		invoiceService: invoiceService,
		userService:    userService,
	}
}

// AuthService returns the authentication service
func (c *Container) AuthService() iface.AuthService {
	return c.authService
}

// OrderService returns the order service
func (c *Container) OrderService() iface.OrderService {
	return c.orderService
}

// MenuService returns the menu service
func (c *Container) MenuService() iface.MenuService {
	return c.menuService
}

// TableService returns the table service
func (c *Container) TableService() iface.TableService {
	return c.tableService
}

// InvoiceService returns the invoice service
func (c *Container) InvoiceService() iface.InvoiceService {
	return c.invoiceService
}

// UserService returns the user service
func (c *Container) UserService() iface.UserService {
	return c.userService
}

// Config returns the loaded configuration
func (c *Container) Config() *config.Config {
	return c.cfg
}

// ConfigManager returns the config manager
func (c *Container) ConfigManager() *config.Manager {
	return c.configManager
}

// APIClient returns the low-level API client
func (c *Container) APIClient() *api.Client {
	return c.apiClient
}

// Sessions returns the session manager
func (c *Container) Sessions() *session.Manager {
	return c.sessions
}
