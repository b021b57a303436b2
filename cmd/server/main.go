package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Harry9429/Distro-app/config"
	"github.com/Harry9429/Distro-app/internal/app/controller"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/app/service"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/Harry9429/Distro-app/internal/notify"
	"github.com/Harry9429/Distro-app/internal/router"
	"github.com/Harry9429/Distro-app/internal/scheduler"
	"github.com/Harry9429/Distro-app/internal/storage"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Distro OS Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed demo accounts, catalog and resources
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis backs the cart and the logout blacklist; fall back to the
	// in-memory cart store when it is unreachable
	var cartStore repository.CartStore
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, using in-memory cart store", map[string]interface{}{
			"error": err.Error(),
		})
		cartStore = repository.NewMemoryCartStore()
	} else {
		defer redis.Close()
		cartStore = repository.NewRedisCartStore(redis.GetClient(), cfg.Cart.TTL)
	}

	// WebSocket hub for console notifications
	hub := notify.NewHub()
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	invoiceRepo := repository.NewInvoiceRepository(db.GetDB())
	distributorRepo := repository.NewDistributorRepository(db.GetDB())
	ticketRepo := repository.NewTicketRepository(db.GetDB())
	resourceRepo := repository.NewResourceRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartStore, productRepo)
	orderService := service.NewOrderService(orderRepo, invoiceRepo, productRepo, cartStore, db.GetDB(), hub)
	billingService := service.NewBillingService(invoiceRepo, orderRepo, db.GetDB(), hub)
	analyticsService := service.NewAnalyticsService(orderRepo, invoiceRepo, productRepo, distributorRepo)
	distributorService := service.NewDistributorService(distributorRepo, hub)
	ticketService := service.NewTicketService(ticketRepo)
	resourceService := service.NewResourceService(resourceRepo)

	// S3 presigned uploads for application documents and product images
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	permissionController := controller.NewPermissionController()
	teamController := controller.NewTeamController(userService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	billingController := controller.NewBillingController(billingService)
	analyticsController := controller.NewAnalyticsController(analyticsService)
	distributorController := controller.NewDistributorController(distributorService)
	ticketController := controller.NewTicketController(ticketService)
	resourceController := controller.NewResourceController(resourceService)
	uploadController := controller.NewUploadController(s3Storage)
	notificationController := controller.NewNotificationController(hub, cfg.CORS.AllowedOrigins)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Daily overdue invoice sweep
	billingScheduler := scheduler.NewBillingScheduler(billingService)
	if err := billingScheduler.Start(); err != nil {
		logger.Error("Failed to start billing scheduler", err)
	}
	defer billingScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		permissionController,
		teamController,
		productController,
		cartController,
		orderController,
		billingController,
		analyticsController,
		distributorController,
		ticketController,
		resourceController,
		uploadController,
		notificationController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
