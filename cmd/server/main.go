package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/config"
	"github.com/fadilmartias/recruit-assistant/internal/database"
	"github.com/fadilmartias/recruit-assistant/internal/domain/fiber/handler"
	"github.com/fadilmartias/recruit-assistant/internal/logger"
	"github.com/fadilmartias/recruit-assistant/internal/middleware"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/fadilmartias/recruit-assistant/internal/service"
	"github.com/fadilmartias/recruit-assistant/internal/storage"
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	production := appConfig.IsProduction()
	logger.Setup(production)

	storageConfig := config.LoadStorageConfig()
	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: handler.ErrorHandler,
		Views:        web.Engine(),
		BodyLimit:    storageConfig.MaxUploadMB * 1024 * 1024,
	})
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))
	for _, h := range middleware.RequestID() {
		app.Use(h)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: appConfig.BaseURL,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/healthz",
	}))
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db, err := database.Connect(config.LoadDBConfig(), production)
	if err != nil {
		slog.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	llmConfig := config.LoadLLMConfig()
	llm, err := service.NewLLM(ctx, llmConfig)
	if err != nil {
		slog.Error("could not create LLM client", "error", err)
		os.Exit(1)
	}
	resumes := service.NewResumeService(llm)

	files, err := storage.NewFileStore(storageConfig.UploadDir)
	if err != nil {
		slog.Error("could not prepare upload directory", "error", err)
		os.Exit(1)
	}

	candidateRepo := repository.NewCandidateRepository(db)
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)

	authConfig := config.LoadAuthConfig()
	authUC := usecase.NewAuthUsecase(userRepo)
	if err := authUC.SeedAdmin(ctx, authConfig); err != nil {
		slog.Error("could not seed admin user", "error", err)
		os.Exit(1)
	}
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo, files)
	jobUC := usecase.NewJobUsecase(jobRepo, resumes)
	uploadUC := usecase.NewUploadUsecase(candidateRepo, resumes, files, llmConfig.CallInterval)
	dashboardUC := usecase.NewDashboardUsecase(candidateRepo, jobRepo)

	store := middleware.NewSessionStore(authConfig.SessionTTL, production)
	handler.Register(app, middleware.RequireAuth(store),
		handler.NewAuthHandler(authUC, store),
		handler.NewDashboardHandler(dashboardUC),
		handler.NewJobHandler(jobUC),
		handler.NewCandidateHandler(candidateUC, jobUC),
		handler.NewUploadHandler(uploadUC),
		handler.NewExportHandler(candidateUC),
	)

	go func() {
		slog.Info("server running", "port", appConfig.Port, "llm", resumes.Enabled())
		if err := app.Listen(appConfig.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
