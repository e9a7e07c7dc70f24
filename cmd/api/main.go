package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/slastice/backend/config"
	"github.com/slastice/backend/internal/api"
	"github.com/slastice/backend/internal/database"
	"github.com/slastice/backend/internal/middleware"
	"github.com/slastice/backend/internal/router"
	"github.com/slastice/backend/internal/server"
	"github.com/slastice/backend/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(db)
	socialService := service.NewSocialService(db)
	shoppingService := service.NewShoppingService(db)

	handlers := router.Handlers{
		Auth:     api.NewAuthHandler(authService, logger),
		Recipe:   api.NewRecipeHandler(recipeService, socialService, authService, logger),
		Social:   api.NewSocialHandler(socialService, authService, logger),
		Shopping: api.NewShoppingHandler(shoppingService, authService, logger),
	}

	// rate limiting and image upload are optional capabilities
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable, auth rate limiting disabled", zap.Error(err))
	} else {
		defer func() { _ = redisClient.Close() }()
		handlers.AuthLimiter = middleware.NewAuthRateLimiter(redisClient)
	}

	if cfg.S3Bucket != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			logger.Warn("s3 unavailable, image upload disabled", zap.Error(err))
		} else {
			imageService := service.NewImageService(s3Cfg)
			handlers.Image = api.NewImageHandler(imageService, recipeService, authService, logger)
		}
	}

	engine := router.Setup(logger, handlers)
	srv := server.New(cfg.Addr(), engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
