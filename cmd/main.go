package main

import (
	"context"
	"log"
	"os"
	"strconv"

	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"

	"distromart/internal/caching"
	"distromart/internal/handlers"
	"distromart/internal/jobs"
	"distromart/internal/jobs/background"
	"distromart/internal/middleware"
	"distromart/internal/repositories"
	"distromart/internal/services"
	"distromart/pkg/database"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Redis configuration
	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := getenv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey := getenv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey := getenv("MINIO_SECRET_KEY", "minioadmin")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"
	mediaBucket := getenv("MEDIA_BUCKET", "distromart-media")

	storageSvc, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucketExists(context.Background(), mediaBucket); err != nil {
		log.Fatalf("Failed to ensure media bucket: %v", err)
	}

	// Repositories
	tenantRepo := repositories.NewTenantRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	productImageRepo := repositories.NewProductImageRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	inventoryRepo := repositories.NewInventoryRepo(pool)
	quoteRepo := repositories.NewQuoteRequestRepo(pool)

	// Cache
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Services
	tenantSvc := services.NewTenantService(tenantRepo)
	productSvc := services.NewProductService(productRepo, productImageRepo, storageSvc, cacheSvc, mediaBucket)
	catalogSvc := services.NewCatalogService(productRepo, cacheSvc)
	importSvc := services.NewImportService(productRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(orderRepo, customerRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo, productRepo)
	quoteSvc := services.NewQuoteService(quoteRepo)

	// Handlers
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)
	tenantHandlers := handlers.NewTenantHandlers(tenantSvc)
	productHandlers := handlers.NewProductHandlers(productSvc, importSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	quoteHandlers := handlers.NewQuoteHandlers(quoteSvc)
	publicQuoteHandlers := handlers.NewPublicQuoteHandlers(quoteSvc, tenantSvc)
	catalogHandlers := handlers.NewCatalogHandlers(catalogSvc, tenantSvc)

	// Background jobs
	quoteAlertSvc := jobs.NewQuoteAlertService(quoteRepo)
	scheduler, err := background.NewJobScheduler(catalogSvc, quoteAlertSvc, tenantRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Echo instance
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.Liveness)
	e.GET("/health/ready", healthHandlers.Readiness)

	// Public storefront routes (no auth; tenant resolved by slug)
	public := e.Group("/public/:slug")
	public.GET("/catalog", catalogHandlers.GetCatalog)
	public.POST("/quote-requests", publicQuoteHandlers.SubmitQuoteRequest)
	public.GET("/quote-requests/:id", publicQuoteHandlers.GetQuoteStatus)

	// Protected admin routes
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTMiddleware(jwtSecret))

	// Quote review
	v1.GET("/b2b/quote-requests", quoteHandlers.ListQuoteRequests)
	v1.GET("/b2b/quote-requests/:id", quoteHandlers.GetQuoteRequest)
	v1.PATCH("/b2b/quote-requests/:id", quoteHandlers.UpdateQuoteRequest)

	// Tenants
	v1.POST("/tenants", tenantHandlers.CreateTenant)
	v1.GET("/tenants", tenantHandlers.ListTenants)
	v1.GET("/tenants/:id", tenantHandlers.GetTenant)
	v1.PUT("/tenants/:id", tenantHandlers.UpdateTenant)
	v1.DELETE("/tenants/:id", tenantHandlers.DeleteTenant)

	// Products
	v1.GET("/products", productHandlers.ListProducts)
	v1.POST("/products", productHandlers.CreateProduct)
	v1.POST("/products/import", productHandlers.ImportProducts)
	v1.GET("/products/:id", productHandlers.GetProduct)
	v1.PUT("/products/:id", productHandlers.UpdateProduct)
	v1.DELETE("/products/:id", productHandlers.DeleteProduct)
	v1.POST("/products/:id/images", productHandlers.UploadProductImage)
	v1.GET("/products/:id/images", productHandlers.ListProductImages)

	// Customers
	v1.GET("/customers", customerHandlers.ListCustomers)
	v1.POST("/customers", customerHandlers.CreateCustomer)
	v1.GET("/customers/:id", customerHandlers.GetCustomer)
	v1.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	v1.DELETE("/customers/:id", customerHandlers.DeleteCustomer)

	// Orders
	v1.GET("/orders", orderHandlers.ListOrders)
	v1.POST("/orders", orderHandlers.CreateOrder)
	v1.GET("/orders/:id", orderHandlers.GetOrder)
	v1.PUT("/orders/:id", orderHandlers.UpdateOrder)
	v1.DELETE("/orders/:id", orderHandlers.DeleteOrder)

	// Inventory
	v1.GET("/inventory", inventoryHandlers.ListInventory)
	v1.GET("/inventory/:productId", inventoryHandlers.GetProductStock)
	v1.POST("/inventory/:productId/adjust", inventoryHandlers.AdjustStock)
	v1.PUT("/inventory/:productId/min-stock", inventoryHandlers.SetMinStock)

	port := getenv("PORT", "8080")
	log.Printf("Starting server on :%s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
