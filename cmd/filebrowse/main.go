package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filebrowse-web/internal/auth"
	"filebrowse-web/internal/server"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := server.Config{
		Root:   envOr("FILEBROWSE_ROOT", "./files"),
		Prefix: envOr("FILEBROWSE_PREFIX", "/api/files"),
		Logger: logger,
	}
	if secret := strings.TrimSpace(os.Getenv("FILEBROWSE_JWT_SECRET")); secret != "" {
		cfg.Authorize = auth.Middleware([]byte(secret))
	}

	srv, err := server.New(cfg)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	engine.Use(accessLogger(logger))

	srv.Register(engine)

	addr := envOr("FILEBROWSE_ADDR", "0.0.0.0:3000")
	logger.Info("listening", "addr", addr, "root", cfg.Root, "prefix", cfg.Prefix)

	if err := engine.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}

	return fallback
}

func accessLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		start := time.Now()

		c.Next()

		logger.Info("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
