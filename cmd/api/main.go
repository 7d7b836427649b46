package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dishlet/backend/config"
	"github.com/dishlet/backend/internal/api"
	"github.com/dishlet/backend/internal/database"
	"github.com/dishlet/backend/internal/router"
	"github.com/dishlet/backend/internal/server"
	"github.com/dishlet/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Database and cache
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Image storage
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("[WARN] S3 unavailable, generated images will keep provider URLs: %v", err)
		s3Config = nil
	} else if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
		log.Printf("[WARN] Failed to apply S3 bucket policy: %v", err)
	}

	// Services
	llmService, err := service.NewLLMService()
	if err != nil {
		log.Fatalf("Failed to initialize LLM service: %v", err)
	}

	imageService, err := service.NewImageService(s3Config)
	if err != nil {
		log.Fatalf("Failed to initialize image service: %v", err)
	}

	draftService := service.NewDraftService(redisClient)
	generatorService := service.NewGeneratorService(llmService, imageService, draftService)
	recipeService := service.NewRecipeService(db)
	profileService := service.NewProfileService(db)
	authService := service.NewAuthService(db, cfg.JWTSecret)
	emailService := service.NewEmailService()

	// HTTP layer
	engine := router.SetupRouter(cfg, router.Handlers{
		Auth:         api.NewAuthHandler(authService, emailService),
		Generate:     api.NewGenerateHandler(generatorService, draftService),
		Recipe:       api.NewRecipeHandler(recipeService, profileService),
		Profile:      api.NewProfileHandler(profileService, recipeService, authService),
		Notification: api.NewNotificationHandler(emailService, authService),
		AuthService:  authService,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
