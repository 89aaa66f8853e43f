package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boutique/catalog"
	"boutique/common/logger"
	"boutique/common/middleware"
	"boutique/controllers"
	"boutique/repository"
	"boutique/routes"
	servicepkg "boutique/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if cfg.StripeSecretKey == "" {
		zlog.Warn("STRIPE_SECRET_KEY not set, checkout session creation disabled")
	}

	// Order store: in-memory by default, Redis when configured.
	var orderRepo repository.OrderRepository = repository.NewMemoryOrderRepository()
	if cfg.RedisURL != "" {
		client, err := repository.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		orderRepo = repository.NewRedisOrderRepository(client)
		zlog.Info("Using Redis order store")
	}

	// DI chain
	staticCatalog := catalog.NewStaticCatalog()
	stripeService := servicepkg.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey)
	checkoutService := servicepkg.NewCheckoutService(staticCatalog, stripeService, orderRepo, zlog)

	productController := controllers.NewProductController(staticCatalog, cfg.StripePublishableKey)
	checkoutController := controllers.NewCheckoutController(checkoutService, cfg.AppBaseURL)
	orderController := controllers.NewOrderController(orderRepo)
	webhookController := controllers.NewWebhookController(stripeService, orderRepo, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))

	metrics := middleware.NewMetrics("storefront")
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "boutique-storefront"})
	})

	routes.RegisterAPIRoutes(r, productController, checkoutController, orderController, webhookController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zlog.Info("Storefront service started", zap.String("port", cfg.Port))
	<-quit
	zlog.Info("Shutting down storefront service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
