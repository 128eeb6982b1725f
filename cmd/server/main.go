package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventchat/config"
	"eventchat/internal/adapters/auth"
	delivery "eventchat/internal/delivery/http"
	"eventchat/internal/delivery/http/controllers"
	"eventchat/internal/delivery/http/middleware"
	"eventchat/internal/repository/postgres"
	"eventchat/internal/services"
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	revokedRepo := postgres.NewRevokedTokenRepository(db)

	codec := auth.NewJWTCodec(cfg.JWTSecret, cfg.TokenExpiry)
	hasher := auth.NewBcryptHasher(0)

	userService := services.NewUserService(userRepo, messageRepo, hasher, codec)
	authService := services.NewAuthService(codec, revokedRepo)
	eventService := services.NewEventService(eventRepo, userRepo, messageRepo)
	messageService := services.NewMessageService(messageRepo, eventRepo, userRepo)

	userController := controllers.NewUserController(logger, userService, authService)
	eventController := controllers.NewEventController(logger, eventService)
	messageController := controllers.NewMessageController(logger, messageService)

	requireAuth := middleware.RequireAuth(authService, logger)
	mux := delivery.NewRouter(userController, eventController, messageController, requireAuth)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
