package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/delivery/http/handler"
	"github.com/skatespot-service/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler       *handler.SpotHandler
	analysisHandler   *handler.AnalysisHandler
	trickHandler      *handler.TrickHandler
	collectionHandler *handler.CollectionHandler
}

// NewServer - assembles the server with middlewares and routes
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	analysisHandler *handler.AnalysisHandler,
	trickHandler *handler.TrickHandler,
	collectionHandler *handler.CollectionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SkateSpot Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    12 << 20,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		spotHandler:       spotHandler,
		analysisHandler:   analysisHandler,
		trickHandler:      trickHandler,
		collectionHandler: collectionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	auth := middleware.Auth(s.config.Auth.JWTSecret)

	// Spot routes
	api.Get("/spots", s.spotHandler.ListSpots)
	api.Post("/spots", auth, s.spotHandler.CreateSpot)
	api.Post("/spots/analyze", auth, s.analysisHandler.AnalyzeSpot)
	api.Post("/spots/rate-difficulty", s.analysisHandler.RateDifficulty)
	api.Get("/spots/:id", s.spotHandler.GetSpot)
	api.Put("/spots/:id", auth, s.spotHandler.UpdateSpot)
	api.Delete("/spots/:id", auth, s.spotHandler.ArchiveSpot)
	api.Post("/spots/:id/verify", auth, s.spotHandler.VerifySpot)

	// User routes
	api.Get("/users/:userId/spots", s.spotHandler.GetUserSpots)

	// Trick catalog
	api.Get("/tricks", s.trickHandler.ListTricks)
	api.Get("/challenges/daily", s.trickHandler.GetDailyChallenge)

	// Collections - everything here is scoped to the authenticated user
	collections := api.Group("/collections", auth)
	collections.Post("/", s.collectionHandler.CreateCollection)
	collections.Get("/", s.collectionHandler.ListMyCollections)
	collections.Get("/:id", s.collectionHandler.GetCollection)
	collections.Post("/:id/spots/:spotId", s.collectionHandler.AddSpot)
	collections.Delete("/:id/spots/:spotId", s.collectionHandler.RemoveSpot)
}

// Start - starts listening on the configured address
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler formats errors Fiber raises outside handlers (404s, body limits).
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
