package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/secuaas/NetSentinel/docs"
	"github.com/secuaas/NetSentinel/internal/adapter/handler"
	adapter "github.com/secuaas/NetSentinel/internal/adapter/repository"
	"github.com/secuaas/NetSentinel/internal/config"
	"github.com/secuaas/NetSentinel/internal/core/service"
)

// @title NetSentinel API
// @version 0.1.0
// @description Passive network scanner API for IT/OT infrastructure monitoring.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	settings := config.Load()

	log.Printf("Starting %s v%s", settings.AppName, settings.AppVersion)

	db, err := config.ConnectDatabase(settings.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	// Repositories
	deviceRepo := adapter.NewPostgresDeviceRepository(db)
	flowRepo := adapter.NewPostgresFlowRepository(db)
	statsRepo := adapter.NewPostgresStatsRepository(db)
	userRepo := adapter.NewPostgresUserRepository(db)

	// Services
	directory := service.NewDeviceDirectoryService(deviceRepo, flowRepo)
	ledger := service.NewFlowLedgerService(flowRepo)
	stats := service.NewStatsAggregatorService(statsRepo)
	auth := service.NewAuthService(userRepo, settings.JWTSecret, settings.TokenExpiry)

	// Handlers
	deviceHandler := handler.NewDeviceHandler(directory)
	flowHandler := handler.NewFlowHandler(ledger)
	statsHandler := handler.NewStatsHandler(stats)
	authHandler := handler.NewAuthHandler(auth)

	r := gin.Default()
	r.Use(handler.CORSMiddleware(settings.CORSOrigins))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": settings.AppVersion})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    settings.AppName,
			"version": settings.AppVersion,
			"docs":    "/swagger/index.html",
			"health":  "/health",
		})
	})

	api := r.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", authHandler.AuthMiddleware())
	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/devices", deviceHandler.List)
	protected.GET("/devices/:id", deviceHandler.Get)
	protected.PATCH("/devices/:id", deviceHandler.Update)
	protected.DELETE("/devices/:id", deviceHandler.Delete)
	protected.GET("/devices/:id/flows", deviceHandler.Flows)

	protected.GET("/flows", flowHandler.List)
	protected.GET("/flows/:id", flowHandler.Get)

	protected.GET("/stats/dashboard", statsHandler.Dashboard)
	protected.GET("/stats/stream", statsHandler.Stream)

	server := &http.Server{
		Addr:    settings.ListenAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s", settings.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
