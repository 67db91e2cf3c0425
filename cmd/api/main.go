package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/church-cms/internal/api/http"
	"github.com/spec-kit/church-cms/internal/api/http/handlers"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/events"
	"github.com/spec-kit/church-cms/internal/observability"
	"github.com/spec-kit/church-cms/internal/persistence"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/service"
	"github.com/spec-kit/church-cms/internal/storage"
	"github.com/spec-kit/church-cms/internal/weather"
	"github.com/spec-kit/church-cms/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("failed to init upload storage", zap.Error(err))
	}

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	ministryRepo := repository.NewMinistryRepository(pool)
	bulletinRepo := repository.NewBulletinRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	contentRepo := repository.NewContentRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	adminService := service.NewAdminService(cfg.Auth, adminRepo)
	blogService := service.NewBlogService(blogRepo, dispatcher)
	ministryService := service.NewMinistryService(ministryRepo)
	bulletinService := service.NewBulletinService(bulletinRepo, store, cfg.Upload.MaxDocumentBytes(), dispatcher)
	galleryService := service.NewGalleryService(galleryRepo, store, cfg.Upload.MaxImageBytes())
	resourceService := service.NewResourceService(resourceRepo, store, cfg.Upload.MaxDocumentBytes())
	contentService := service.NewContentService(contentRepo)
	messageService := service.NewMessageService(messageRepo, dispatcher)

	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout())
	weatherCache := service.NewRedisWeatherCache(redis)
	weatherService := service.NewWeatherService(cfg.Weather, weatherClient, weatherCache, logger)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(adminService.TokenManager())

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.IsProduction(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.CORSAllowOrigins, cfg.App.RequestTimeout())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Admin:          handlers.NewAdminHandler(adminService),
		Blogs:          handlers.NewBlogsHandler(blogService),
		Ministries:     handlers.NewMinistriesHandler(ministryService),
		Bulletins:      handlers.NewBulletinsHandler(bulletinService),
		Gallery:        handlers.NewGalleryHandler(galleryService),
		Resources:      handlers.NewResourcesHandler(resourceService),
		Content:        handlers.NewContentHandler(contentService),
		Messages:       handlers.NewMessagesHandler(messageService),
		Upload:         handlers.NewUploadHandler(store, cfg.Upload.MaxImageBytes(), cfg.Upload.MaxBatchFiles),
		Weather:        handlers.NewWeatherHandler(weatherService),
		AuthMiddleware: authMiddleware,
		UploadsDir:     store.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
