package provider

import (
	"time"

	"github.com/voltride/storefront/internal/cache"
	"github.com/voltride/storefront/internal/config"
	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/queue"
	"github.com/voltride/storefront/internal/repository"
	"github.com/voltride/storefront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo      repository.ProductRepository
	CategoryRepo     repository.CategoryRepository
	DeliveryZoneRepo repository.DeliveryZoneRepository
	OrderRepo        repository.OrderRepository
	CartRepo         repository.CartRepository

	// Services
	ProductService *service.ProductService
	CartService    *service.CartService
	OrderService   *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
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

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.DeliveryZoneRepo = repository.NewDeliveryZoneRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)

	// 购物车落 Redis；Redis 未启用时退化为进程内存储
	if cache.Enabled() {
		ttl := time.Duration(c.Config.Cart.TTLHours) * time.Hour
		c.CartRepo = repository.NewRedisCartRepository(cache.Client(), c.Config.Redis.Prefix, ttl)
	} else {
		logger.Warnw("provider_cart_repo_fallback_memory")
		c.CartRepo = repository.NewMemoryCartRepository()
	}
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.ProductRepo,
		c.DeliveryZoneRepo,
		c.CartService,
		c.QueueClient,
		models.Money(c.Config.Checkout.DefaultDeliveryFeeCentimes),
	)
}
