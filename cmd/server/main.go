package main

import (
	"invoice_manager/internal/config"
	"invoice_manager/internal/database"
	"invoice_manager/internal/handlers"
	"invoice_manager/internal/redis"
	"invoice_manager/internal/render"
	"invoice_manager/internal/repository"
	"invoice_manager/internal/services"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	quotationRepo := repository.NewQuotationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	quotationService := services.NewQuotationService(quotationRepo, redisClient, cfg.CacheTTL)
	invoiceService := services.NewInvoiceService(quotationRepo)
	companyService := services.NewCompanyService(redisClient, cfg.CacheTTL)
	userService := services.NewUserService(userRepo, redisClient, cfg.SessionTimeout)

	// Seed the first login account on an empty database
	if err := userService.EnsureDefaultAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	// Initialize document renderer
	renderer := render.New(cfg.LogoPath)

	// Initialize handlers
	quotationHandler := handlers.NewQuotationHandler(quotationService, invoiceService)
	documentHandler := handlers.NewDocumentHandler(quotationService, companyService, renderer)
	companyHandler := handlers.NewCompanyHandler(companyService)
	authHandler := handlers.NewAuthHandler(userService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	api.POST("/login", authHandler.Login)

	protected := api.Group("", handlers.RequireSession(userService))
	{
		protected.POST("/logout", authHandler.Logout)

		protected.GET("/company/info", companyHandler.Info)

		protected.GET("/quotations", quotationHandler.List)
		protected.POST("/quotations", quotationHandler.Create)
		protected.GET("/quotations/number/:number", quotationHandler.GetByNumber)
		protected.GET("/quotations/invoice-preview", quotationHandler.BuildInvoice)
		protected.GET("/quotations/:id", quotationHandler.Get)
		protected.PUT("/quotations/:id", quotationHandler.Update)
		protected.DELETE("/quotations/:id", quotationHandler.Delete)

		protected.GET("/quotations/:id/document", documentHandler.Document)
		protected.GET("/quotations/:id/share", documentHandler.Share)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
