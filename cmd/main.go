package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "storeadmin/docs"
	"storeadmin/internal/caching"
	"storeadmin/internal/config"
	"storeadmin/internal/handlers"
	"storeadmin/internal/jobs/background"
	"storeadmin/internal/middleware"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"
	"storeadmin/internal/validation"
	"storeadmin/pkg/database"
	"storeadmin/pkg/logger"
)

const version = "1.0.0"

// @title                      storeadmin API
// @version                    1.0
// @description                Ownership-scoped catalog backend: stores, billboards, categories, colors, sizes and products.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{
		Env:         cfg.Server.AppEnv,
		Level:       cfg.Logger.Level,
		ServiceName: "storeadmin",
		Version:     version,
	})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, database.PoolConfig{
		DSN:      cfg.Database.URL,
		MaxConns: int32(cfg.Database.MaxConns),
	}, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, log); err != nil {
			log.Fatal("failed to apply schema", zap.Error(err))
		}
	}

	cacheService := newCacheService(ctx, cfg, log)

	identity, err := middleware.NewJWTIdentity(middleware.JWTOptions{
		Secret:  cfg.Auth.JWTSecret,
		JWKSURL: cfg.Auth.JWKSURL,
		Issuer:  cfg.Auth.Issuer,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize identity provider", zap.Error(err))
	}
	defer identity.Close()

	// Initialize repositories
	storeRepo := repositories.NewStoreRepo(pool)
	billboardRepo := repositories.NewBillboardRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	colorRepo := repositories.NewColorRepo(pool)
	sizeRepo := repositories.NewSizeRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	auditLogsRepo := repositories.NewAuditLogsRepo(pool)

	// Initialize services
	ownership := services.NewOwnershipService(storeRepo)
	auditLogsService := services.NewAuditLogsService(auditLogsRepo, ownership, log)
	deps := services.CatalogDeps{
		Ownership: ownership,
		Validator: validation.New(),
		Cache:     cacheService,
		CacheTTL:  cfg.Cache.TTL,
		Audit:     auditLogsService,
		Logger:    log,
	}

	storeService := services.NewStoreService(storeRepo, deps)
	billboardService := services.NewBillboardService(billboardRepo, categoryRepo, deps)
	categoryService := services.NewCategoryService(categoryRepo, billboardRepo, productRepo, deps)
	colorService := services.NewColorService(colorRepo, productRepo, deps)
	sizeService := services.NewSizeService(sizeRepo, productRepo, deps)
	productService := services.NewProductService(productRepo, categoryRepo, colorRepo, sizeRepo, deps)

	// The export service treats a nil store as "not configured".
	var minioService services.MinioService
	var storageCheck handlers.StorageChecker
	if cfg.ExportEnabled() {
		minioService = newMinioService(ctx, cfg, log)
		bucket := cfg.MinIO.ExportBucket
		storageCheck = func(ctx context.Context) error {
			return minioService.Ping(ctx, bucket)
		}
	} else {
		log.Info("MINIO_ENDPOINT not set, catalog exports disabled")
	}

	exportService := services.NewExportService(
		ownership,
		billboardRepo,
		categoryRepo,
		colorRepo,
		sizeRepo,
		productRepo,
		minioService,
		auditLogsService,
		services.ExportOptions{
			Bucket:    cfg.MinIO.ExportBucket,
			URLExpiry: cfg.MinIO.URLExpiry,
		},
		log,
	)

	scheduler, err := background.NewJobScheduler(auditLogsService, background.Options{
		AuditRetention:     time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour,
		AuditPurgeInterval: cfg.Audit.PurgeInterval,
	}, log)
	if err != nil {
		log.Fatal("failed to create job scheduler", zap.Error(err))
	}
	scheduler.Start()

	metrics, err := middleware.NewMetrics(nil)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	versionMiddleware := middleware.NewVersionMiddleware("v1")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = !cfg.IsProduction()

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		// The checkout preflight answers with its own headers.
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Path(), "/checkout")
		},
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(versionMiddleware.VersionHeader())

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	handlers.Register(e, handlers.Handlers{
		Identity:   identity,
		Stores:     handlers.NewStoreHandlers(storeService, log),
		Billboards: handlers.NewBillboardHandlers(billboardService, log),
		Categories: handlers.NewCategoryHandlers(categoryService, log),
		Colors:     handlers.NewColorHandlers(colorService, log),
		Sizes:      handlers.NewSizeHandlers(sizeService, log),
		Products:   handlers.NewProductHandlers(productService, log),
		AuditLogs:  handlers.NewAuditLogsHandlers(auditLogsService, log),
		Exports:    handlers.NewExportHandlers(exportService, log),
		Health:     handlers.NewHealthHandlers(pool, cacheService, storageCheck, version),
	})

	apiVersion := versionMiddleware.Current()
	go func() {
		log.Info("starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("env", cfg.Server.AppEnv),
			zap.String("api_version", apiVersion.Version),
			zap.String("api_status", apiVersion.Status))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		log.Error("job scheduler shutdown failed", zap.Error(err))
	}
}

func newCacheService(ctx context.Context, cfg *config.Config, log *zap.Logger) caching.CacheService {
	switch cfg.Cache.Driver {
	case "memory":
		return caching.NewMemoryCacheService(cfg.Cache.TTL)
	case "none":
		return caching.NewNoopCacheService()
	}

	client := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// Reads fall through to storage when the cache is unreachable.
		log.Warn("redis unreachable, catalog reads will not be cached until it recovers",
			zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	return caching.NewRedisCacheService(client)
}

func newMinioService(ctx context.Context, cfg *config.Config, log *zap.Logger) services.MinioService {
	svc, err := services.NewMinioService(services.MinioOptions{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		UseSSL:    cfg.MinIO.UseSSL,
		Region:    cfg.MinIO.Region,
	})
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.EnsureBucketExists(bucketCtx, cfg.MinIO.ExportBucket); err != nil {
		log.Warn("export bucket not ready", zap.String("bucket", cfg.MinIO.ExportBucket), zap.Error(err))
	}
	return svc
}
