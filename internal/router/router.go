package router

import (
	"fmt"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/cache"
	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	adminhandlers "github.com/uniquemj/ecommerce-api/internal/http/handlers/admin"
	publichandlers "github.com/uniquemj/ecommerce-api/internal/http/handlers/public"
	sellerhandlers "github.com/uniquemj/ecommerce-api/internal/http/handlers/seller"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	sellerHandler := sellerhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ec"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Too many login attempts.",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(AuditMiddleware(c))
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.RegisterCustomer)
			auth.POST("/register/seller", publicHandler.RegisterSeller)
			auth.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/logout", publicHandler.Logout)
		}

		// Browsing needs no account.
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/categories/:id", publicHandler.GetCategory)
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)

		// Stripe calls this; it authenticates via the signature header.
		apiV1.POST("/webhook/stripe-webhook", publicHandler.StripeWebhook)

		authed := apiV1.Group("")
		authed.Use(AuthMiddleware(c.AuthService, c.UserRepo))
		{
			authed.GET("/auth/me", publicHandler.Profile)
			authed.PUT("/auth/me", publicHandler.UpdateProfile)

			customer := authed.Group("")
			customer.Use(RequireRoles(constants.RoleCustomer))
			{
				customer.GET("/cart", publicHandler.GetCart)
				customer.POST("/cart/items", publicHandler.AddCartItem)
				customer.PUT("/cart/items/:variantId", publicHandler.UpdateCartItem)
				customer.DELETE("/cart/items/:variantId", publicHandler.RemoveCartItem)

				customer.GET("/shipment-addresses", publicHandler.ListShipmentAddresses)
				customer.POST("/shipment-addresses", publicHandler.CreateShipmentAddress)
				customer.PUT("/shipment-addresses/activate/:id", publicHandler.ActivateShipmentAddress)
				customer.PUT("/shipment-addresses/:id", publicHandler.UpdateShipmentAddress)
				customer.DELETE("/shipment-addresses/:id", publicHandler.DeleteShipmentAddress)

				customer.POST("/orders", publicHandler.CreateOrder)
				customer.GET("/orders", publicHandler.ListOrders)
				customer.GET("/orders/:id", publicHandler.GetOrder)
				customer.PUT("/orders/cancel/:id", publicHandler.CancelOrder)
				customer.PUT("/orders/complete/:id", publicHandler.CompleteOrder)
				customer.POST("/orders/return/init/:id", publicHandler.InitReturn)

				customer.POST("/payment/create-checkout-session", publicHandler.CreateCheckoutSession)
			}

			seller := authed.Group("")
			seller.Use(RequireRoles(constants.RoleSeller), RequireVerifiedSeller())
			{
				seller.GET("/seller/products", sellerHandler.ListProducts)
				seller.POST("/seller/products", sellerHandler.CreateProduct)
				seller.PUT("/seller/products/:id", sellerHandler.UpdateProduct)
				seller.DELETE("/seller/products/:id", sellerHandler.DeleteProduct)
				seller.POST("/seller/products/:id/variants", sellerHandler.AddVariant)
				seller.PUT("/seller/variants/:id", sellerHandler.UpdateVariant)
				seller.DELETE("/seller/variants/:id", sellerHandler.DeleteVariant)

				seller.GET("/orders/seller/items", sellerHandler.ListOrderItems)
				seller.PUT("/orders/seller/status/:id", sellerHandler.UpdateOrderItemStatus)
				seller.PUT("/orders/return/update/:id", sellerHandler.ResolveReturn)
			}

			admin := authed.Group("/admin")
			admin.Use(RequireRoles(constants.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/users/:id", adminHandler.GetUser)
				admin.PUT("/users/verify/:id", adminHandler.VerifySeller)

				admin.POST("/categories", adminHandler.CreateCategory)
				admin.PUT("/categories/:id", adminHandler.UpdateCategory)
				admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

				admin.GET("/orders", adminHandler.ListOrders)
				admin.GET("/orders/:id", adminHandler.GetOrder)
				admin.PUT("/orders/payment/:id", adminHandler.UpdateOrderPaymentStatus)
				admin.PUT("/order-items/status/:id", adminHandler.OverrideOrderItemStatus)

				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
