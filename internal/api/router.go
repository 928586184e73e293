package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/merchantry/storefront-api/internal/api/handler"
	"github.com/merchantry/storefront-api/internal/api/middleware"
	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
	"github.com/merchantry/storefront-api/internal/core/service"
	mongodb "github.com/merchantry/storefront-api/internal/infrastructure/db/mongo"
)

// Dependencies carries everything the router needs that is constructed in
// main: connections, the token service, and the audit recorder.
type Dependencies struct {
	Mongo  *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenService
	Audit  ports.AuditRecorder
	// AuditStore is the synchronous read side of the audit trail.
	AuditStore ports.AuditRepository
	// Limiter may be nil; login throttling is then disabled.
	Limiter ports.LoginLimiter
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(deps.Mongo)
	catalogRepo := mongodb.NewCatalogRepository(deps.Mongo)
	settingsRepo := mongodb.NewSettingsRepository(deps.Mongo)

	authService := service.NewAuthService(accountRepo, deps.Tokens, deps.Limiter, deps.Audit, deps.Logger)
	catalogService := service.NewCatalogService(catalogRepo, settingsRepo, deps.Audit, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	adminHandler := handler.NewAdminHandler(catalogService, accountRepo, deps.AuditStore)

	auth := middleware.Auth(deps.Tokens, accountRepo)
	authOptional := middleware.AuthOptional(deps.Tokens, accountRepo)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.RegisterStaff, authOptional)
	e.POST("/auth/customer/register", authHandler.RegisterCustomer)
	e.PUT("/auth/password", authHandler.ChangePassword, auth)
	e.PUT("/auth/email", authHandler.ChangeEmail, auth)

	// --- Public storefront reads (active content only) ---
	e.GET("/categories", catalogHandler.ListCategories)
	e.GET("/categories/:slug", catalogHandler.GetCategory)
	e.GET("/products", catalogHandler.ListProducts)
	e.GET("/products/:slug", catalogHandler.GetProduct)
	e.GET("/blogs", catalogHandler.ListBlogs)
	e.GET("/blogs/:slug", catalogHandler.GetBlog)
	e.GET("/blog-categories", catalogHandler.ListBlogCategories)

	// --- Back-office routes: Auth + the single policy table ---
	admin := e.Group("/admin", auth)

	admin.GET("/categories", catalogHandler.ListCategories, middleware.Permit(domain.ActionView))
	admin.GET("/categories/:slug", catalogHandler.GetCategory, middleware.Permit(domain.ActionView))
	admin.POST("/categories", catalogHandler.CreateCategory, middleware.Permit(domain.ActionAdd))
	admin.PUT("/categories/:slug", catalogHandler.UpdateCategory, middleware.Permit(domain.ActionEdit))
	admin.DELETE("/categories/:slug", catalogHandler.DeleteCategory, middleware.Permit(domain.ActionDelete))

	admin.GET("/products", catalogHandler.ListProducts, middleware.Permit(domain.ActionView))
	admin.GET("/products/:slug", catalogHandler.GetProduct, middleware.Permit(domain.ActionView))
	admin.POST("/products", catalogHandler.CreateProduct, middleware.Permit(domain.ActionAdd))
	admin.PUT("/products/:slug", catalogHandler.UpdateProduct, middleware.Permit(domain.ActionEdit))
	admin.DELETE("/products/:slug", catalogHandler.DeleteProduct, middleware.Permit(domain.ActionDelete))

	admin.GET("/blogs", catalogHandler.ListBlogs, middleware.Permit(domain.ActionView))
	admin.GET("/blogs/:slug", catalogHandler.GetBlog, middleware.Permit(domain.ActionView))
	admin.POST("/blogs", catalogHandler.CreateBlog, middleware.Permit(domain.ActionAdd))
	admin.PUT("/blogs/:slug", catalogHandler.UpdateBlog, middleware.Permit(domain.ActionEdit))
	admin.DELETE("/blogs/:slug", catalogHandler.DeleteBlog, middleware.Permit(domain.ActionDelete))

	admin.GET("/blog-categories", catalogHandler.ListBlogCategories, middleware.Permit(domain.ActionView))
	admin.POST("/blog-categories", catalogHandler.CreateBlogCategory, middleware.Permit(domain.ActionAdd))
	admin.PUT("/blog-categories/:slug", catalogHandler.UpdateBlogCategory, middleware.Permit(domain.ActionEdit))
	admin.DELETE("/blog-categories/:slug", catalogHandler.DeleteBlogCategory, middleware.Permit(domain.ActionDelete))

	admin.GET("/settings", adminHandler.GetSettings, middleware.Permit(domain.ActionView))
	admin.PUT("/settings", adminHandler.UpdateSettings, middleware.Permit(domain.ActionManage))
	admin.GET("/users", adminHandler.ListUsers, middleware.Permit(domain.ActionManage))
	admin.GET("/audit", adminHandler.ListAudit, middleware.Permit(domain.ActionManage))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
