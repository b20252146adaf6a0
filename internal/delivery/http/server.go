package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/config"
	"github.com/floorplan-service/internal/delivery/http/handler"
	"github.com/floorplan-service/internal/delivery/http/middleware"
)

// Handlers - набор обработчиков API
type Handlers struct {
	Building   *handler.BuildingHandler
	FloorPlan  *handler.FloorPlanHandler
	Apartment  *handler.ApartmentHandler
	Overlay    *handler.OverlayHandler
	Selection  *handler.SelectionHandler
	Calculator *handler.CalculatorHandler
	Stats      *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	handlers Handlers
	admin    middleware.PasswordVerifier
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	admin middleware.PasswordVerifier,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Floor Plan Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		admin:    admin,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, нужно тестам
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")
	admin := middleware.AdminPassword(s.admin)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Buildings
	buildings := api.Group("/buildings")
	buildings.Get("/", s.handlers.Building.List)
	buildings.Post("/", s.handlers.Building.Create)
	buildings.Get("/:id", s.handlers.Building.Get)
	buildings.Put("/:id", s.handlers.Building.Update)
	buildings.Delete("/:id", admin, s.handlers.Building.Delete)
	buildings.Get("/:id/floors", s.handlers.Building.ListFloors)
	buildings.Put("/:id/floors", s.handlers.Building.UpsertFloor)
	buildings.Delete("/:id/floors/:floorId", admin, s.handlers.Building.DeleteFloor)
	buildings.Get("/:id/floor-plans", s.handlers.Building.ListFloorPlans)

	// Floor plans
	floorPlans := api.Group("/floor-plans")
	floorPlans.Post("/", s.handlers.FloorPlan.Create)
	floorPlans.Get("/:id", s.handlers.FloorPlan.Get)
	floorPlans.Put("/:id", s.handlers.FloorPlan.Update)
	floorPlans.Delete("/:id", admin, s.handlers.FloorPlan.Delete)

	// Apartments
	apartments := api.Group("/apartments")
	apartments.Post("/", s.handlers.Apartment.Create)
	apartments.Get("/:buildingId/:floorId", s.handlers.Apartment.GetFloorListing)
	apartments.Get("/:id", s.handlers.Apartment.Get)
	apartments.Put("/:id", s.handlers.Apartment.Update)
	apartments.Patch("/:id/status", s.handlers.Apartment.UpdateStatus)
	apartments.Delete("/:id", admin, s.handlers.Apartment.Delete)

	// Overlay
	overlay := api.Group("/overlay")
	overlay.Get("/site", s.handlers.Overlay.Site)
	overlay.Get("/buildings/:buildingId", s.handlers.Overlay.Building)
	overlay.Get("/buildings/:buildingId/floors/:floorId", s.handlers.Overlay.Floor)
	overlay.Post("/hit-test", s.handlers.Overlay.HitTest)

	// Selection sessions
	sel := api.Group("/selection")
	sel.Post("/", s.handlers.Selection.Create)
	sel.Get("/:id", s.handlers.Selection.Get)
	sel.Post("/:id/actions", s.handlers.Selection.Dispatch)

	api.Post("/calculator/payment", s.handlers.Calculator.Payment)

	// Stats
	api.Get("/stats", s.handlers.Stats.GetStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
