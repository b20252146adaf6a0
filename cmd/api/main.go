package main

// @title Floor Plan Service API
// @version 1.0.0
// @description Интерактивный выбор корпуса, этажа и квартиры поверх растровых подложек.
// @description
// @description Основные возможности:
// @description - Контуры корпусов, этажей и квартир, пересчитанные под отрисованный размер подложки
// @description - Попадание точки в область (последняя нарисованная выигрывает)
// @description - Листинг этажа: планировки, этажи и квартиры с координатами
// @description - Сессии выбора корпус/этаж/квартира
// @description - Калькулятор рассрочки и статистика продаж

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/floorplan-service/docs"
	"github.com/floorplan-service/internal/config"
	httpDelivery "github.com/floorplan-service/internal/delivery/http"
	"github.com/floorplan-service/internal/delivery/http/handler"
	"github.com/floorplan-service/internal/pkg/logger"
	"github.com/floorplan-service/internal/repository/cache"
	"github.com/floorplan-service/internal/repository/postgres"
	redisRepo "github.com/floorplan-service/internal/repository/redis"
	"github.com/floorplan-service/internal/repository/static"
	"github.com/floorplan-service/internal/selection"
	"github.com/floorplan-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Floor Plan Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Static site map
	siteMapRepo, err := static.LoadSiteMap(cfg.Overlay.SiteMapPath, log)
	if err != nil {
		log.Fatal("Failed to load site map", zap.Error(err))
	}

	// 7. Initialize Repositories
	buildingRepo := postgres.NewBuildingRepository(db)
	floorPlanRepo := postgres.NewFloorPlanRepository(db)
	floorRepo := postgres.NewFloorRepository(db)
	apartmentRepo := postgres.NewApartmentRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	listing := usecase.NewListingCache(cacheRepo, cfg.Cache.ListingCacheTTL, log)

	buildingUC := usecase.NewBuildingUseCase(buildingRepo, cacheRepo, listing, cfg.Cache.BuildingsCacheTTL, log)
	floorPlanUC := usecase.NewFloorPlanUseCase(floorPlanRepo, listing, log)
	floorUC := usecase.NewFloorUseCase(floorRepo, listing, log)
	apartmentUC := usecase.NewApartmentUseCase(apartmentRepo, streamRepo, listing, log)
	overlayUC := usecase.NewOverlayUseCase(siteMapRepo, buildingRepo, floorRepo, apartmentUC, cfg.Overlay.Debounce, log)
	selectionUC := usecase.NewSelectionUseCase(
		selection.NewStore(cacheRepo, cfg.Cache.SelectionTTL, log),
		buildingRepo,
		floorRepo,
		apartmentRepo,
		log,
	)
	calculatorUC := usecase.NewCalculatorUseCase(apartmentRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	adminGuard := usecase.NewAdminGuard(cfg.Admin.PasswordHash, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers and Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Building:   handler.NewBuildingHandler(buildingUC, floorUC, floorPlanUC, log),
		FloorPlan:  handler.NewFloorPlanHandler(floorPlanUC, log),
		Apartment:  handler.NewApartmentHandler(apartmentUC, log),
		Overlay:    handler.NewOverlayHandler(overlayUC, log),
		Selection:  handler.NewSelectionHandler(selectionUC, log),
		Calculator: handler.NewCalculatorHandler(calculatorUC, log),
		Stats:      handler.NewStatsHandler(statsUC, log),
	}, adminGuard)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
