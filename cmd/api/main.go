package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/cache"
	"github.com/teerthankarjewels/storefront_api/internal/config"
	"github.com/teerthankarjewels/storefront_api/internal/handler"
	"github.com/teerthankarjewels/storefront_api/internal/middleware"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/worker"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// main is the application entrypoint for the storefront API gateway.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	// 3. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3a. Initialize session cache
	sessionCache := cache.NewSessionCache(redisClient, cfg.Session.TTL)

	// 4. Initialize commerce backend client
	commerceClient := commerce.NewClient(commerce.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})

	// 4a. Initialize Google ID token verifier (optional)
	var verifier *oidc.IDTokenVerifier
	if cfg.Google.ClientID != "" {
		provider, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
		if err != nil {
			log.Warn().Err(err).Msg("Google OIDC discovery failed - google sign-in will be disabled")
		} else {
			verifier = provider.Verifier(&oidc.Config{ClientID: cfg.Google.ClientID})
			log.Info().Msg("Google sign-in enabled")
		}
	}

	// 5. Initialize services
	catalogSvc := service.NewCatalogService(commerceClient)
	cartSvc := service.NewCartService(commerceClient, catalogSvc)
	wishlistSvc := service.NewWishlistService(commerceClient)
	checkoutSvc := service.NewCheckoutService(commerceClient, cartSvc, catalogSvc, cfg.Razorpay, cfg.Checkout)
	var authSvc *service.AuthService
	if verifier != nil {
		authSvc = service.NewAuthService(commerceClient, sessionCache, verifier, cfg.JWTSecret, cfg.Session.TTL)
	} else {
		authSvc = service.NewAuthService(commerceClient, sessionCache, nil, cfg.JWTSecret, cfg.Session.TTL)
	}

	// 5a. Warm the catalog snapshot; a failed first load is not fatal,
	// the sync worker and the refresh endpoint retry later.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	if err := catalogSvc.LoadAll(loadCtx); err != nil {
		log.Warn().Err(err).Msg("initial catalog load failed")
	} else {
		log.Info().Int("products", len(catalogSvc.Products())).Msg("catalog loaded")
	}
	loadCancel()

	// 6. Initialize handlers
	loginLimiter := middleware.NewFailedLoginRateLimiter()
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(catalogSvc),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Cart:     handler.NewCartHandler(cartSvc),
		Wishlist: handler.NewWishlistHandler(wishlistSvc),
		Order:    handler.NewOrderHandler(checkoutSvc),
		Auth:     handler.NewAuthHandler(authSvc, loginLimiter),
		Webhook:  handler.NewWebhookHandler(commerceClient, cfg.Razorpay),
	}

	// 7. Initialize middleware
	sessionMw := middleware.NewSessionMiddleware(authSvc)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, sessionMw)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start catalog sync worker
	go worker.NewCatalogSyncWorker(catalogSvc, cfg.Worker.CatalogSyncInterval).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler
	Webhook  *handler.WebhookHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, sessionMw *middleware.SessionMiddleware) {
	// Payment gateway webhook
	router.POST("/webhook/razorpay", handlers.Webhook.RazorpayWebhook)

	router.GET("/v1/health", handlers.Health.Health)

	// Public catalog routes
	catalog := router.Group("/v1/catalog")
	{
		catalog.GET("/products", handlers.Catalog.GetProducts)
		catalog.GET("/products/featured", handlers.Catalog.GetFeatured)
		catalog.GET("/products/:productId", handlers.Catalog.GetProduct)
		catalog.GET("/categories", handlers.Catalog.GetCategories)
		catalog.GET("/categories/:categoryId/products", handlers.Catalog.GetCategoryProducts)
		catalog.POST("/refresh", handlers.Catalog.Refresh)
	}

	// Auth routes
	auth := router.Group("/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/google/callback", handlers.Auth.GoogleLogin)
		auth.GET("/me", sessionMw.Handle(), handlers.Auth.Me)
		auth.POST("/logout", sessionMw.Handle(), handlers.Auth.Logout)
	}

	// Cart routes (session protected)
	cart := router.Group("/v1/cart")
	cart.Use(sessionMw.Handle())
	{
		cart.GET("", handlers.Cart.GetCart)
		cart.POST("/items", handlers.Cart.AddItem)
		cart.PUT("/items/:productId", handlers.Cart.UpdateItem)
		cart.DELETE("/items/:productId", handlers.Cart.RemoveItem)
		cart.DELETE("", handlers.Cart.Clear)
	}

	// Wishlist routes (session protected)
	wishlist := router.Group("/v1/wishlist")
	wishlist.Use(sessionMw.Handle())
	{
		wishlist.GET("", handlers.Wishlist.GetWishlist)
		wishlist.POST("/items", handlers.Wishlist.AddItem)
		wishlist.DELETE("/items/:productId", handlers.Wishlist.RemoveItem)
	}

	// Order routes (session protected)
	orders := router.Group("/v1/orders")
	orders.Use(sessionMw.Handle())
	{
		orders.POST("", handlers.Order.Checkout)
		orders.POST("/verify-payment", handlers.Order.VerifyPayment)
		orders.GET("", handlers.Order.MyOrders)
		orders.GET("/:orderId", handlers.Order.OrderDetails)
	}
}

// setupLogger configures zerolog defaults per environment.
func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
