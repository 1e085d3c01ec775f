package router

import (
	"fmt"
	"strings"

	"github.com/voltride/storefront/internal/cache"
	"github.com/voltride/storefront/internal/config"
	publichandlers "github.com/voltride/storefront/internal/http/handlers/public"
	"github.com/voltride/storefront/internal/http/response"
	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	publicHandler := publichandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vr"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
		MessageKey:    "error.checkout_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/delivery-zones", publicHandler.GetDeliveryZones)
		}

		// 购物车接口（身份由 X-Cart-ID 请求头承载）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.DeleteCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 订单接口
		orders := apiV1.Group("/orders")
		{
			orders.POST("", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("phone")), publicHandler.CreateOrder)
			orders.GET("", publicHandler.ListOrders)
			orders.GET("/by-order-no/:order_no", publicHandler.GetOrderByOrderNo)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	return r
}
