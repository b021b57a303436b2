package router

import (
	"time"

	"github.com/Harry9429/Distro-app/config"
	"github.com/Harry9429/Distro-app/internal/app/controller"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController         *controller.AuthController
	permissionController   *controller.PermissionController
	teamController         *controller.TeamController
	productController      *controller.ProductController
	cartController         *controller.CartController
	orderController        *controller.OrderController
	billingController      *controller.BillingController
	analyticsController    *controller.AnalyticsController
	distributorController  *controller.DistributorController
	ticketController       *controller.TicketController
	resourceController     *controller.ResourceController
	uploadController       *controller.UploadController
	notificationController *controller.NotificationController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	permissionController *controller.PermissionController,
	teamController *controller.TeamController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	billingController *controller.BillingController,
	analyticsController *controller.AnalyticsController,
	distributorController *controller.DistributorController,
	ticketController *controller.TicketController,
	resourceController *controller.ResourceController,
	uploadController *controller.UploadController,
	notificationController *controller.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		permissionController:   permissionController,
		teamController:         teamController,
		productController:      productController,
		cartController:         cartController,
		orderController:        orderController,
		billingController:      billingController,
		analyticsController:    analyticsController,
		distributorController:  distributorController,
		ticketController:       ticketController,
		resourceController:     resourceController,
		uploadController:       uploadController,
		notificationController: notificationController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Distro OS API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/signup", r.authController.Signup)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateProfile)
		}

		permissions := v1.Group("/permissions")
		permissions.Use(r.authMiddleware.Authenticate())
		{
			permissions.GET("/check", r.permissionController.CheckPath)
			permissions.GET("/navigation", r.permissionController.GetNavigation)
		}

		team := v1.Group("/team")
		team.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/team"),
			r.authMiddleware.RequireRole("admin", "merchant", "distributor"),
		)
		{
			team.GET("", r.teamController.ListMembers)
			team.POST("", r.authMiddleware.RequireRole("admin"), r.teamController.CreateMember)
		}

		products := v1.Group("/products")
		products.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/products"),
		)
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:id", r.productController.GetProduct)
			products.POST("",
				r.authMiddleware.RequireRole("admin", "distributor"),
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.RequireRole("admin", "distributor"),
				r.productController.UpdateProduct,
			)
			products.PUT("/:id/stock",
				r.authMiddleware.RequireRole("admin", "distributor"),
				r.productController.AdjustStock,
			)
		}

		cart := v1.Group("/cart")
		cart.Use(r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:id", r.cartController.UpdateQty)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.Clear)
		}

		orders := v1.Group("/orders")
		orders.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/orders"),
		)
		{
			orders.GET("", r.orderController.ListOrders)
			orders.GET("/:id", r.orderController.GetOrder)
			orders.POST("", r.orderController.CreateOrder)
			orders.PUT("/:id/payment", r.orderController.PayOrder)
		}

		// order review lives under the approvals section, which purchasing
		// managers cannot reach
		approvals := v1.Group("/approvals")
		approvals.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/approvals"),
		)
		{
			approvals.PUT("/orders/:id/status", r.orderController.ReviewOrder)
		}

		invoices := v1.Group("/invoices")
		invoices.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/billing"),
		)
		{
			invoices.GET("", r.billingController.ListInvoices)
			invoices.GET("/:id", r.billingController.GetInvoice)
			invoices.PUT("/:id/pay", r.billingController.PayInvoice)
		}

		analytics := v1.Group("/analytics")
		analytics.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAccess("/analytics"),
		)
		{
			analytics.GET("/dashboard", r.analyticsController.GetDashboardStats)
		}

		distributor := v1.Group("/distributor")
		distributor.Use(r.authMiddleware.Authenticate())
		{
			distributor.GET("/draft", r.distributorController.GetDraft)
			distributor.PUT("/draft/steps/:step", r.distributorController.SaveStep)
			distributor.DELETE("/draft", r.distributorController.ClearDraft)
			distributor.POST("/draft/submit", r.distributorController.Submit)
		}

		distributors := v1.Group("/distributors")
		distributors.Use(r.authMiddleware.Authenticate())
		{
			distributors.GET("", r.distributorController.ListProfiles)
			distributors.GET("/profile", r.distributorController.GetProfile)
			distributors.PUT("/profile/review",
				r.authMiddleware.RequireAccess("/approvals"),
				r.distributorController.Review,
			)
			distributors.POST("/profile/files", r.distributorController.AttachFile)
		}

		tickets := v1.Group("/tickets")
		tickets.Use(r.authMiddleware.Authenticate())
		{
			tickets.GET("", r.ticketController.ListTickets)
			tickets.POST("", r.ticketController.CreateTicket)
			tickets.PUT("/:id/close", r.ticketController.CloseTicket)
		}

		resources := v1.Group("/resources")
		resources.Use(r.authMiddleware.Authenticate())
		{
			resources.GET("", r.resourceController.ListResources)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(r.authMiddleware.Authenticate())
		{
			notifications.GET("/ws", r.notificationController.Stream)
		}
	}

	return router
}
