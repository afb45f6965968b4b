package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openbid/auctiond/internal/auth"
	"github.com/openbid/auctiond/internal/cache"
	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/db"
	"github.com/openbid/auctiond/internal/handler"
	"github.com/openbid/auctiond/internal/logger"
	"github.com/openbid/auctiond/internal/repository"
	"github.com/openbid/auctiond/internal/router"
	"github.com/openbid/auctiond/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("database init", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("database close", map[string]any{"error": err.Error()})
		}
	}()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(store)
	auctionRepo := repository.NewAuctionRepository(store)

	authService := service.NewAuthService(userRepo, jwtService)
	auctionService := service.NewAuctionService(auctionRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	auctionHandler := handler.NewAuctionHandler(auctionService)
	userHandler := handler.NewUserHandler(auctionService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, jwtService, authHandler, auctionHandler, userHandler)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", map[string]any{"addr": addr})
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", map[string]any{"error": err.Error()})
	}
}
