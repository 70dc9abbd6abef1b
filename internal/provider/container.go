package provider

import (
	"context"

	"github.com/seaside-kitchen/storefront/internal/cache"
	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/monitor"
	"github.com/seaside-kitchen/storefront/internal/queue"
	"github.com/seaside-kitchen/storefront/internal/repository"
	"github.com/seaside-kitchen/storefront/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	CustomerRepo       repository.CustomerRepository
	CategoryRepo       repository.CategoryRepository
	MenuItemRepo       repository.MenuItemRepository
	CartRepo           repository.CartRepository
	OrderRepo          repository.OrderRepository
	OrderStatusLogRepo repository.OrderStatusLogRepository

	// Services
	AuthService         *service.AuthService
	CustomerAuthService *service.CustomerAuthService
	CategoryService     *service.CategoryService
	MenuService         *service.MenuService
	CartService         *service.CartService
	BillingService      *service.BillingService
	OrderService        *service.OrderService

	OrderMonitor *monitor.OrderMonitor
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.MenuItemRepo = repository.NewMenuItemRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.OrderStatusLogRepo = repository.NewOrderStatusLogRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CustomerAuthService = service.NewCustomerAuthService(c.Config, c.CustomerRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.MenuService = service.NewMenuService(c.Config, c.MenuItemRepo, c.CategoryRepo)
	c.BillingService = service.NewBillingService(&c.Config.Billing)
	c.CartService = service.NewCartService(c.CartRepo, c.MenuItemRepo, c.BillingService)
	c.OrderService = service.NewOrderService(
		c.Config,
		c.OrderRepo,
		c.CartRepo,
		c.MenuItemRepo,
		c.OrderStatusLogRepo,
		c.BillingService,
		c.QueueClient,
	)

	c.OrderMonitor = monitor.NewOrderMonitor(&c.Config.Monitor, func(ctx context.Context) ([]models.Order, error) {
		return c.OrderService.ListActive()
	})
}
