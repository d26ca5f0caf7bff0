package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssapio/inferencegate-web/internal/assets"
	"github.com/ssapio/inferencegate-web/internal/handler"
	"github.com/ssapio/inferencegate-web/internal/middleware"
	"github.com/ssapio/inferencegate-web/internal/scheduler"
	"github.com/ssapio/inferencegate-web/internal/service"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

func main() {
	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting InferenceGate site backend...")

	// Load configuration once; handlers receive it by injection and never
	// touch the environment again.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	if !cfg.SMTP.Configured() {
		log.Warn("SMTP transport not configured; contact relay will refuse, lead capture will skip notifications")
	}

	// Initialize services
	mailer := service.NewSMTPMailer(cfg.SMTP)
	store := assets.NewStore(cfg.Assets.Dir)
	contactService := service.NewContactService(mailer, cfg, log)
	leadService := service.NewLeadService(mailer, store, cfg, log)

	// Initialize HTTP handlers
	contactHandler := handler.NewContactHandler(contactService, log)
	leadHandler := handler.NewLeadHandler(leadService, log)

	// Initialize rate limiter
	rateLimiter := middleware.NewClientRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Panic recovered", "request_id", middleware.RequestID(c), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"ok":     false,
			"error":  "Unexpected server error.",
			"detail": fmt.Sprint(recovered),
		})
	}))

	// Health check endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes with rate limiting
	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))
	{
		api.POST("/contact", contactHandler.Submit)
		api.POST("/pilot-pdf", leadHandler.Download)
	}

	// Start transport reachability probe
	probe := scheduler.NewTransportProbe(cfg.SMTP, log)
	if err := probe.Start(); err != nil {
		log.Error("Failed to start transport probe", "error", err)
	}
	defer probe.Stop()

	// Start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("InferenceGate site backend started", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down InferenceGate site backend...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("InferenceGate site backend stopped")
}
