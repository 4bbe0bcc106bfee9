package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fintrack/finance-system/docs"
	"github.com/fintrack/finance-system/internal/api/handler"
	"github.com/fintrack/finance-system/internal/api/middleware"
	"github.com/fintrack/finance-system/internal/core/service"
	"github.com/fintrack/finance-system/internal/infrastructure/client/finnhub"
	"github.com/fintrack/finance-system/internal/infrastructure/client/newsdata"
	"github.com/fintrack/finance-system/internal/infrastructure/client/ninjas"
	"github.com/fintrack/finance-system/internal/infrastructure/config"
	mongodb "github.com/fintrack/finance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/fintrack/finance-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("finance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	txRepo := mongodb.NewTransactionRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 0)
	txService := service.NewTransactionService(txRepo, log)
	assetService := service.NewAssetService(assetRepo, txRepo, log)
	marketService := service.NewMarketService(
		finnhub.New(cfg.Providers.FinnhubKey),
		newsdata.New(cfg.Providers.NewsDataKey),
		ninjas.New(cfg.Providers.APINinjasKey),
		redisdb.NewQuoteCache(rdb),
		log,
	)

	authHandler := handler.NewAuthHandler(authService)
	txHandler := handler.NewTransactionHandler(txService)
	assetHandler := handler.NewAssetHandler(assetService)
	externalHandler := handler.NewExternalHandler(marketService)
	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, auth)
	authGroup.PUT("/profile", authHandler.UpdateProfile, auth)

	// --- Transaction routes ---
	txGroup := e.Group("/api/transactions", auth)
	txGroup.POST("", txHandler.Create)
	txGroup.GET("", txHandler.List)
	txGroup.PUT("/:id", txHandler.Update)
	txGroup.DELETE("/:id", txHandler.Delete)
	txGroup.GET("/summary/stats", txHandler.Summary)
	txGroup.GET("/evaluate-risk", txHandler.EvaluateRisk)

	// --- Asset routes ---
	assetGroup := e.Group("/api/assets", auth)
	assetGroup.POST("", assetHandler.Create)
	assetGroup.GET("", assetHandler.List)
	assetGroup.GET("/analysis", assetHandler.Analysis)
	assetGroup.PUT("/:id", assetHandler.Update)
	assetGroup.DELETE("/:id", assetHandler.Delete)

	// --- External proxy routes ---
	extGroup := e.Group("/api/external", auth)
	extGroup.GET("/market/quote", externalHandler.Quote)
	extGroup.GET("/market/gainers", externalHandler.Gainers)
	extGroup.GET("/market/popular", externalHandler.Popular)
	extGroup.GET("/market/trends", externalHandler.Trends)
	extGroup.GET("/market/rates", externalHandler.Rates)
	extGroup.GET("/news", externalHandler.News)
	extGroup.GET("/advice", externalHandler.Advice)

	// --- Dev seed ---
	if !cfg.IsProduction() {
		seedHandler := handler.NewSeedHandler(userRepo, txRepo)
		e.GET("/api/seed", seedHandler.Seed)
	}

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
