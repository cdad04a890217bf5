package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scopex/config"
	"scopex/database"
	leadRepo "scopex/database/repository/lead"
	"scopex/handlers"
	"scopex/middleware"
	"scopex/routes"
	"scopex/services/advisor"
	leadService "scopex/services/lead"
	"scopex/services/notify"
	userService "scopex/services/user"
	"scopex/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	remoteRepo := leadRepo.NewRemoteLeadRepo()
	localCache := leadService.NewLocalLeadCache(utils.GetCacheClient())

	// Services.
	registry := &leadService.DefaultLeadRegistry{
		Cache:  localCache,
		Remote: remoteRepo,
	}

	users := &userService.DefaultUserService{
		Directory: utils.GetCacheClient(),
		Sessions:  utils.GetSessionCacheClient(),
	}
	if err := users.Initialize(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize CRM user directory: %v", err)
	}

	ctxStore := advisor.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	advisorSvc := &advisor.DefaultAdvisorService{
		Client:   advisor.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		CtxStore: ctxStore,
	}

	hub := notify.NewHub()
	go hub.Run()
	registry.Subscribe(hub.BroadcastLead)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Users:   users,
		Lead:    handlers.NewLeadHandler(registry),
		Auth:    handlers.NewAuthHandler(users),
		UserDir: handlers.NewUserDirectoryHandler(users),
		Advisor: handlers.NewAdvisorHandler(advisorSvc),
		Stream:  handlers.NewStreamHandler(hub),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
