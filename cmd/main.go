package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"storefront-assistant-service/internal/assistant"
	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/config"
	"storefront-assistant-service/internal/events"
	"storefront-assistant-service/internal/handlers"
	"storefront-assistant-service/internal/middleware"
	"storefront-assistant-service/internal/pricing"
	"storefront-assistant-service/internal/recommend"
	"storefront-assistant-service/internal/search"
)

// @title Storefront Assistant API
// @version 1.0.0
// @description Product catalog, search and conversational shopping assistant for the StyleGenius storefront
// @termsOfService http://swagger.io/terms/

// @contact.name Storefront API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8088
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize catalog (embedded data unless an override file is set)
	var catalogSvc *catalog.Service
	if cfg.CatalogPath != "" {
		var err error
		catalogSvc, err = catalog.NewFromFile(cfg.CatalogPath)
		if err != nil {
			log.Fatal("Failed to load catalog file:", err)
		}
		log.Printf("✓ Catalog loaded from %s (%d products)", cfg.CatalogPath, len(catalogSvc.AllProducts()))
	} else {
		catalogSvc = catalog.New()
		log.Printf("✓ Embedded catalog loaded (%d products)", len(catalogSvc.AllProducts()))
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Initialize core services
	engine := search.NewEngine(catalogSvc)
	intentRouter := assistant.NewRouter(engine, logger)
	comparator := pricing.NewComparator(redisClient, logger)
	recommender := recommend.NewRecommender(catalogSvc, logger)

	// Initialize event publisher for query analytics only if NATS_URL is set
	var eventsPublisher *events.Publisher
	if os.Getenv("NATS_URL") != "" {
		eventsPublisher, err = events.NewPublisher(logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (continuing without event publishing)", err)
		} else {
			log.Println("✓ Events publisher initialized (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping event publishing initialization")
	}
	defer func() {
		if eventsPublisher != nil {
			eventsPublisher.Close()
		}
	}()

	// Initialize handlers
	productsHandler := handlers.NewProductsHandler(catalogSvc, engine)
	assistantHandler := handlers.NewAssistantHandler(intentRouter, eventsPublisher)
	pricingHandler := handlers.NewPricingHandler(catalogSvc, comparator)
	recommendationsHandler := handlers.NewRecommendationsHandler(recommender)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())

	// Add CORS middleware
	ginRouter.Use(middleware.CORS())

	// Health check endpoints
	ginRouter.GET("/health", handlers.HealthCheck)
	ginRouter.GET("/ready", handlers.HealthCheck)

	// API routes
	api := ginRouter.Group("/api/v1")
	api.Use(middleware.SessionMiddleware())
	{
		products := api.Group("/products")
		{
			products.GET("", productsHandler.GetProducts)
			products.GET("/:id", productsHandler.GetProduct)
			products.GET("/:id/price-comparison", pricingHandler.GetPriceComparison)
			products.POST("/search", productsHandler.SearchProducts)
			products.POST("/export", productsHandler.ExportProducts)
		}

		api.GET("/categories", productsHandler.GetCategories)
		api.POST("/recommendations", recommendationsHandler.GetRecommendations)

		assistantRoutes := api.Group("/assistant")
		{
			assistantRoutes.POST("/chat", assistantHandler.Chat)
		}
	}

	// Public storefront aliases (same handlers, kept separate so an API
	// gateway can route them without auth in front)
	storefront := ginRouter.Group("/api/v1/storefront")
	storefront.Use(middleware.SessionMiddleware())
	{
		storefront.GET("/products", productsHandler.GetProducts)
		storefront.GET("/products/:id", productsHandler.GetProduct)
		storefront.POST("/products/search", productsHandler.SearchProducts)
		storefront.GET("/categories", productsHandler.GetCategories)
	}

	// Swagger documentation
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Storefront assistant service starting on port %s", cfg.Port)
		if err := ginRouter.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down storefront-assistant-service...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}

	log.Println("Storefront assistant service stopped")
}
