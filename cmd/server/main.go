package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"visitorbook/docs"
	"visitorbook/internal/cache"
	"visitorbook/internal/config"
	"visitorbook/internal/db"
	"visitorbook/internal/form"
	"visitorbook/internal/handler"
	"visitorbook/internal/logging"
	"visitorbook/internal/render"
	"visitorbook/internal/repository"
	"visitorbook/internal/router"
	"visitorbook/internal/service"
	"visitorbook/internal/session"
)

// @title Visitor Book
// @version 1.0
// @description Form intake that remembers visitors in a session and records their names.
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false, nil).Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.IsProduction(), nil)

	variant, err := form.LookupVariant(cfg.Variant)
	if err != nil {
		log.Fatalf("APP_VARIANT: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, logging.GormLogger(log))
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Warnf("Failed to drop tables (may not exist): %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.Session.KeyPrefix)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warnf("session store not reachable yet: %v", err)
	}
	cancelPing()

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize sessions
	sessions := session.NewManager(
		session.NewRedisStore(cacheClient, cfg.Session.TTL),
		session.NewTokenIssuer(cfg.SecretKey),
		session.Options{CookieName: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
	)

	// Initialize services
	registrationService := service.NewRegistrationService(userRepo)

	// Initialize handlers
	indexHandler := handler.NewIndexHandler(variant, form.NewValidator(), registrationService, sessions, log)

	e := echo.New()
	e.HideBanner = true
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}
	router.Register(e, log, renderer, router.Routes(indexHandler, sessions))

	log.Infof("Serving the %s variant", variant.Key)
	if cfg.SwaggerHost != "" {
		// Swag uses this for server URL in docs when set.
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Errorf("Error closing Redis connection: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}
}

// swaggerURL returns the docs address logged at startup.
func swaggerURL(host string) string {
	if host == "" {
		// For docker-compose: container listens on 8080, mapped to 5000 externally
		return "http://localhost:5000/swagger/index.html"
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host + "/swagger/index.html"
	}
	return "http://" + host + "/swagger/index.html"
}
