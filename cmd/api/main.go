package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/momentu-app/momentu-backend/internal/config"
	"github.com/momentu-app/momentu-backend/internal/handler"
	"github.com/momentu-app/momentu-backend/internal/middleware"
	"github.com/momentu-app/momentu-backend/internal/recap"
	"github.com/momentu-app/momentu-backend/internal/repository"
	"github.com/momentu-app/momentu-backend/internal/service"
	"github.com/momentu-app/momentu-backend/internal/ws"
	"github.com/momentu-app/momentu-backend/pkg/database"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
	"github.com/momentu-app/momentu-backend/pkg/email"
	"github.com/momentu-app/momentu-backend/pkg/imaging"
	"github.com/momentu-app/momentu-backend/pkg/qrcode"
	"github.com/momentu-app/momentu-backend/pkg/storage"
	"github.com/momentu-app/momentu-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Config'i yükle
	cfg := config.LoadConfig()

	// Initialize database
	db := database.NewDatabase()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Storage service
	r2Storage, err := storage.NewR2Storage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize R2 storage", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(cfg, logger)

	// Device snapshot store
	deviceStore := devicestore.NewStore()

	// Websocket hub
	hub := ws.NewHub(logger)
	go hub.Run()

	// Recap engine
	recapEngine := recap.NewEngine(photoRepo, cfg.Recap, logger)

	// QR service
	qrService := qrcode.NewQRService(cfg.PublicURL)

	// Services
	authService := service.NewAuthService(userRepo, emailService, deviceStore)
	userService := service.NewUserService(userRepo, r2Storage, deviceStore, cfg.Imaging, logger)
	eventService := service.NewEventService(eventRepo, photoRepo, qrService)
	captureService := service.NewCaptureService(
		photoRepo,
		eventRepo,
		r2Storage,
		imaging.NewHeifTranscoder(),
		hub,
		cfg.Imaging,
		logger,
	)
	feedService := service.NewFeedService(photoRepo, hub, logger)

	// Validator'ı önce tanımla
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	photoHandler := handler.NewPhotoHandler(captureService, feedService, userService, deviceStore)
	recapHandler := handler.NewRecapHandler(recapEngine)

	// Websocket server (feed duyuruları + recap kare akışı)
	wsServer := ws.NewServer(hub, recapEngine, logger)
	go func() {
		if err := wsServer.ListenAndServe(":" + cfg.WSPort); err != nil {
			logger.Fatal("Websocket server failed", zap.Error(err))
		}
	}()

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // HEIC kaynakları büyük olabilir
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://momentu.app, https://www.momentu.app, http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Device-ID, X-Capture-Session",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", authHandler.VerifyEmail)
	auth.Post("/resend-verification", authHandler.ResendVerification)

	// Public event routes (davet ekranı login istemez)
	api.Get("/events/:eventId", eventHandler.GetEvent)
	api.Get("/events/:eventId/qr", eventHandler.GetJoinQR)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Post("/avatar", userHandler.UpdateAvatar)

		events := api.Group("/events")
		events.Post("/", eventHandler.CreateEvent)
		events.Get("/", eventHandler.GetUserEvents)
		events.Post("/join", eventHandler.JoinEvent)
		events.Get("/:eventId/feed", photoHandler.GetEventFeed)
		events.Post("/:eventId/photos", photoHandler.SubmitCapture)
		events.Post("/:eventId/captures", photoHandler.StageCapture)
		events.Post("/:eventId/recap", recapHandler.StartRecap)

		// Capture routes (bekleyen gönderimler)
		captures := api.Group("/captures")
		captures.Post("/:sessionId/submit", photoHandler.SendCapture)
		captures.Delete("/:sessionId", photoHandler.CancelCapture)

		// Photo routes
		photos := api.Group("/photos")
		photos.Post("/:id/like", photoHandler.ToggleLike)

		// Recap routes
		recaps := api.Group("/recap")
		recaps.Post("/:sessionId/toggle", recapHandler.TogglePlay)
		recaps.Delete("/:sessionId", recapHandler.CloseRecap)
	}

	// Start server
	logger.Info("api server listening", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
