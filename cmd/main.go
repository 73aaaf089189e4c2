package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/taskflow-api/config"
	"github.com/oksasatya/taskflow-api/internal/container"
	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/interface/middleware"
	"github.com/oksasatya/taskflow-api/internal/router"
	"github.com/oksasatya/taskflow-api/pkg/logging"
	"github.com/oksasatya/taskflow-api/pkg/response"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := logging.New(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	if cfg.RateLimitEnabled {
		container.SetLimiter(middleware.NewTokenBucket(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("panic recovered")
		ae := apperrors.New(apperrors.KindInternal, fmt.Sprintf("%v", recovered)).
			WithDetails(string(debug.Stack()))
		response.AppError(c, ae, cfg.IsProduction())
		c.Abort()
	}))
	r.Use(middleware.RequestIDMiddleware())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.RequestLogger(logger))
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Registry: health is public, everything under /api sits behind the
	// bearer token gate.
	reg := router.NewRegistry(r)
	reg.Use(middleware.Auth(cfg.TokenList()))
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
