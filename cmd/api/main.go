package main

import (
	"context"
	"time"

	"vocal-feed/internal/app"
	"vocal-feed/pkg/config"
	"vocal-feed/pkg/logger"
)

// @title           Vocal Feed API
// @version         1.0
// @description     Posts, drafts and text-to-speech audio for the Vocal Feed platform

// @host      localhost:3001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Error("Failed to start: %v", err)
		panic(err)
	}

	application.Run()
	application.Wait()

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		panic(err)
	}
}
