// @title Modeva Storefront API
// @version 1.0
// @description Products screen of the Modeva storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	session_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/templates"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LoggerLevel, cfg.LoggerAsJSON)
	if err != nil {
		log.Fatalf("❌ Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: filter persistence + API rate limiting
	var (
		redisClient *redis.Client
		filterRepo  session_cache.FilterStateRepository
	)
	if cfg.RedisURL != "" {
		redisClient, err = config.ConnectRedis(cfg.RedisURL, logger)
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		filterRepo = session_cache.NewRedisFilterStateRepository(redisClient, cfg.SessionTTL)
	} else {
		logger.Warn("REDIS_URL not set, sessions are kept in memory only")
	}

	registry := session_cache.NewRegistry(cfg.SessionTTL, filterRepo, logger)
	catalog := services.NewCatalogClient(cfg.CatalogAPIURL, logger)
	product_controller.InitCatalogScreen(registry, services.NewScreenService(catalog, logger))

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))
	router.SetHTMLTemplate(templates.Load())

	router.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "SERVING") })

	router.Use(
		middleware.Session(middleware.SessionCookie{
			Name:   cfg.SessionCookieName,
			MaxAge: int(cfg.SessionTTL.Seconds()),
			Secure: cfg.IsProduction(),
		}),
		middleware.CatalogToken(cfg.TokenCookieName),
	)

	ecommerce_routes.SetupStorefrontPages(router)

	api := router.Group("/api/v1")
	api.Use(cors.New(corsCfg))
	if redisClient != nil {
		api.Use(middleware.RateLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	ecommerce_routes.SetupDocsRoutes(api)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("🚀 Server is running",
			zap.String("addr", srv.Addr),
			zap.String("catalog_api", cfg.CatalogAPIURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return registry.RunSweeper(gctx, sweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
