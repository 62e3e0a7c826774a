package provider

import (
	"github.com/uniquemj/ecommerce-api/internal/cache"
	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/queue"
	"github.com/uniquemj/ecommerce-api/internal/repository"
	"github.com/uniquemj/ecommerce-api/internal/service"
)

// Container wires repositories and services once at startup and hands them
// to handlers and workers.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo            repository.UserRepository
	CategoryRepo        repository.CategoryRepository
	ProductRepo         repository.ProductRepository
	ProductVariantRepo  repository.ProductVariantRepository
	CartRepo            repository.CartRepository
	OrderRepo           repository.OrderRepository
	OrderItemRepo       repository.OrderItemRepository
	ShipmentAddressRepo repository.ShipmentAddressRepository
	AuditLogRepo        repository.AuditLogRepository

	// Services
	AuthService            *service.AuthService
	UserService            *service.UserService
	CategoryService        *service.CategoryService
	ProductService         *service.ProductService
	CartService            *service.CartService
	OrderService           *service.OrderService
	OrderItemService       *service.OrderItemService
	ShipmentAddressService *service.ShipmentAddressService
	EmailService           *service.EmailService
	AuditService           *service.AuditService
	CheckoutService        *service.CheckoutService
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
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductVariantRepo = repository.NewProductVariantRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.OrderItemRepo = repository.NewOrderItemRepository(db)
	c.ShipmentAddressRepo = repository.NewShipmentAddressRepository(db)
	c.AuditLogRepo = repository.NewAuditLogRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.UserRepo, c.Config)
	c.UserService = service.NewUserService(c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ProductVariantRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductVariantRepo, c.Config)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuditService = service.NewAuditService(c.AuditLogRepo)

	var notifier service.OrderNotifier
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		notifier = c.QueueClient
	} else {
		notifier = service.NewDirectOrderNotifier(c.OrderRepo, c.UserRepo, c.EmailService)
	}
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.OrderItemRepo,
		c.CartRepo,
		c.ProductVariantRepo,
		c.ProductRepo,
		c.ShipmentAddressRepo,
		c.Config,
		notifier,
	)
	c.OrderItemService = service.NewOrderItemService(c.OrderItemRepo, c.OrderRepo, c.ProductVariantRepo)
	c.ShipmentAddressService = service.NewShipmentAddressService(c.ShipmentAddressRepo)
	c.CheckoutService = service.NewCheckoutService(c.OrderService, c.UserRepo, c.EmailService, &c.Config.Stripe)
}
