package router

import (
	"fmt"
	"strings"

	"github.com/seaside-kitchen/storefront/internal/cache"
	"github.com/seaside-kitchen/storefront/internal/config"
	adminhandlers "github.com/seaside-kitchen/storefront/internal/http/handlers/admin"
	publichandlers "github.com/seaside-kitchen/storefront/internal/http/handlers/public"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sk"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded images (menu item and category photos).
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Menu browsing needs no account.
		public := apiV1.Group("/public")
		{
			public.GET("/menu", publicHandler.GetMenu)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/menu/:id", publicHandler.GetMenuItem)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Customer endpoints, everything behind the customer token.
		customer := apiV1.Group("")
		customer.Use(CustomerJWTAuthMiddleware(cfg.CustomerJWT.SecretKey, c.CustomerRepo))
		{
			customer.GET("/me", publicHandler.GetMe)
			customer.PUT("/me/profile", publicHandler.UpdateProfile)
			customer.PUT("/me/password", publicHandler.ChangePassword)
			customer.GET("/cart", publicHandler.GetCart)
			customer.POST("/cart/lines", publicHandler.AddCartLine)
			customer.PUT("/cart/lines", publicHandler.UpdateCartLine)
			customer.DELETE("/cart/lines", publicHandler.RemoveCartLine)
			customer.DELETE("/cart", publicHandler.ClearCart)
			customer.POST("/orders", publicHandler.SubmitOrder)
			customer.GET("/orders", publicHandler.ListMyOrders)
			customer.GET("/orders/:id", publicHandler.GetMyOrder)
			customer.GET("/orders/by-order-no/:order_no", publicHandler.GetMyOrderByOrderNo)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.PUT("/password", adminHandler.ChangePassword)

				authorized.GET("/customers", adminHandler.ListCustomers)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.GET("/categories/:id", adminHandler.GetCategory)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/menu", adminHandler.ListMenuItems)
				authorized.GET("/menu/:id", adminHandler.GetMenuItem)
				authorized.POST("/menu", adminHandler.CreateMenuItem)
				authorized.PUT("/menu/:id", adminHandler.UpdateMenuItem)
				authorized.DELETE("/menu/:id", adminHandler.DeleteMenuItem)
				authorized.PATCH("/menu/:id/availability", adminHandler.SetMenuItemAvailability)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/live", adminHandler.LiveOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
				authorized.GET("/orders/:id/history", adminHandler.GetOrderStatusHistory)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
