package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"pokeforge/src/auth"
	"pokeforge/src/cache"
	"pokeforge/src/config"
	"pokeforge/src/generator"
	"pokeforge/src/handlers"
	"pokeforge/src/logx"
	"pokeforge/src/metrics"
	"pokeforge/src/middleware"
	"pokeforge/src/models"
)

func main() {
	_ = godotenv.Load()

	logx.Init(os.Getenv("ENVIRONMENT") != "production")

	cfg, err := config.LoadConfig()
	if err != nil {
		logx.Fatal(err, "failed to load config")
	}
	logx.Info("config loaded")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logx.Fatal(err, "failed to connect to redis", "address", cfg.Redis.Address)
	}
	logx.Info("redis connected", "address", cfg.Redis.Address)

	userStore := auth.NewUserStore()
	tokenService := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	stateStore := auth.NewStateStore(redisClient, 10*time.Minute)

	authConfig := &auth.Config{
		FrontendURL:    cfg.Auth.FrontendURL,
		CookieDomain:   cfg.Auth.CookieDomain,
		CookieSecure:   cfg.Auth.CookieSecure,
		CookieSameSite: cfg.Auth.CookieSameSite,
		TokenTTL:       cfg.Auth.TokenTTL,
	}

	oauthConfig := auth.GetGoogleOAuthConfig(
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.Auth.GoogleRedirectURL,
	)

	authHandler := auth.NewHandler(oauthConfig, stateStore, userStore, tokenService, authConfig)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userStore)
	logx.Info("authentication system initialized")

	sdClient := generator.NewClient(&cfg.Generator)
	logx.Info("image generator client ready",
		"endpoint", cfg.Generator.Endpoint,
		"sampler", cfg.Generator.Sampler,
	)

	var generationCache models.CacheStore
	if cfg.Cache.Enabled {
		generationCache = cache.NewRedisCache(redisClient, cfg.Cache.TTL)
		logx.Info("generation cache enabled", "ttl", cfg.Cache.TTL.String())
	}

	collector := metrics.NewCollector()
	generateHandler := handlers.NewGenerateHandler(sdClient, generationCache, collector)

	limiter := middleware.NewIPRateLimiter(
		rate.Limit(cfg.RateLimit.RequestsPerSecond),
		cfg.RateLimit.Burst,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(collector.Middleware())
	r.Use(corsMiddleware(cfg.Auth.FrontendURL))

	r.GET("/metrics", collector.Handler())

	api := r.Group("/api")
	{
		api.GET("/health", generateHandler.HealthCheck)
		api.GET("/google", authHandler.Login)
		api.GET("/callback", authHandler.Callback)
		api.POST("/logout", authHandler.Logout)
		api.GET("/user-profile", authMiddleware.RequireAuth(), authHandler.Profile)
		api.POST("/generate-pokemon",
			authMiddleware.RequireAuth(),
			limiter.Limit(),
			generateHandler.HandleGenerate,
		)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "server failed")
		}
	}()

	logx.Info("pokeforge running", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logx.Fatal(err, "server forced to shutdown")
	}

	logx.Info("server exited")
}

func corsMiddleware(frontendURL string) gin.HandlerFunc {
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	var allowedOrigins []string

	if allowedOriginsEnv != "" {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
		for i := range allowedOrigins {
			allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
		}
	} else if frontendURL != "" {
		allowedOrigins = []string{frontendURL}
	} else {
		allowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:3001",
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Requests without an Origin header (curl, health checks) pass through.
		if origin == "" {
			c.Next()
			return
		}

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		if !allowed {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
