package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"metro-console/pkg/config"
	"metro-console/pkg/jwt"
	"metro-console/pkg/logger"
	"metro-console/pkg/middleware"
	consoleHTTP "metro-console/services/console/internal/controller/http"
	"metro-console/services/console/internal/entity"
	"metro-console/services/console/internal/repo/preference"
	"metro-console/services/console/internal/session"
	"metro-console/services/console/internal/store"
	"metro-console/services/console/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "metro-console/services/console/docs" // Swagger docs
)

// Deps are the collaborators the router is built from.
type Deps struct {
	UseCase     usecase.ConsoleUseCase
	JWT         *jwt.Service
	RedisClient *redis.Client
}

// NewRouter wires every console route. Rate limiting is applied only when a
// Redis client is available.
func NewRouter(cfg *config.Config, log *logger.Logger, deps Deps) *gin.Engine {
	handler := consoleHTTP.NewConsoleHandler(deps.UseCase, deps.JWT, log)

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.RedisClient != nil {
		limit = middleware.RateLimitMiddleware(deps.RedisClient, cfg.RateLimit, cfg.RateLimitWindow)
	}

	api := r.Group("/api/v1")
	{
		api.POST("/sessions", limit, handler.CreateSession)
		api.GET("/actions", handler.ListActions)
		api.GET("/routes", handler.ListRoutes)
	}

	protected := api.Group("")
	protected.Use(middleware.SessionMiddleware(deps.JWT))
	{
		protected.DELETE("/sessions", handler.EndSession)
		protected.POST("/sessions/reset", handler.ResetSession)

		protected.GET("/state", handler.GetState)
		protected.GET("/state/:slice", handler.GetSlice)
		protected.POST("/actions", limit, handler.Dispatch)

		protected.POST("/auth/login", handler.Login)
		protected.POST("/auth/logout", handler.Logout)

		protected.GET("/toasts", handler.ListToasts)
		protected.POST("/toasts", limit, handler.ShowToast)
		protected.DELETE("/toasts/:id", handler.DismissToast)

		protected.GET("/preferences/theme", handler.GetTheme)
		protected.PUT("/preferences/theme", handler.SetTheme)
		protected.POST("/preferences/theme/toggle", handler.ToggleTheme)

		protected.GET("/routes/resolve", handler.ResolveRoute)

		protected.POST("/feedback", limit, handler.SubmitFeedback)
		protected.POST("/tickets", limit, handler.BookTicket)

		protected.GET("/ws", handler.HandleWebSocket)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.AdminOnly(deps.UseCase))
	{
		admin.GET("/dashboard", handler.Dashboard)
	}

	return r
}

// Run serves the console until SIGINT or SIGTERM. A nil redisClient keeps
// preferences in memory.
func Run(cfg *config.Config, log *logger.Logger, redisClient *redis.Client) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.TokenTTL)

	fixtures, err := store.LoadFixturesFile(cfg.FixturesPath)
	if err != nil {
		log.Error("Failed to load fixtures: %v", err)
		panic(err)
	}

	sessions := session.NewManager(fixtures,
		session.WithToastDuration(cfg.ToastDuration),
		session.WithLogger(log),
	)

	var themes preference.ThemeRepository
	if redisClient != nil {
		themes = preference.NewRedisThemeRepository(redisClient)
	} else {
		log.Warn("Redis not configured; theme preferences are kept in memory and rate limiting is off")
		themes = preference.NewMemoryThemeRepository()
	}

	consoleUseCase := usecase.NewConsoleUseCase(sessions, themes, usecase.Settings{
		DefaultTheme: entity.Theme(cfg.DefaultTheme),
		TicketFare:   cfg.TicketFare,
	}, log)

	r := NewRouter(cfg, log, Deps{
		UseCase:     consoleUseCase,
		JWT:         jwtService,
		RedisClient: redisClient,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		if cfg.SessionIdleTimeout <= 0 {
			return
		}
		log.Info("Sweeping sessions idle for more than %s", cfg.SessionIdleTimeout)
		sessions.RunSweeper(sweepCtx, sweepInterval(cfg.SessionIdleTimeout), cfg.SessionIdleTimeout)
	}()

	go func() {
		log.Info("Console service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down console service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopSweeper()
	<-sweeperDone
	sessions.Close()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Console service exited")
}

func sweepInterval(idle time.Duration) time.Duration {
	interval := idle / 4
	if interval < time.Second {
		return time.Second
	}
	if interval > 5*time.Minute {
		return 5 * time.Minute
	}
	return interval
}
