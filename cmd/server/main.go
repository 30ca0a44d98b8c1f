package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dharmasatrya/skysearch/internal/airports"
	"github.com/dharmasatrya/skysearch/internal/auth"
	"github.com/dharmasatrya/skysearch/internal/handler"
	"github.com/dharmasatrya/skysearch/internal/ratelimit"
	"github.com/dharmasatrya/skysearch/internal/search"
	"github.com/dharmasatrya/skysearch/internal/skyapi"
)

type Config struct {
	Port         string
	SkyAPIKey    string
	SkyAPIHost   string
	SkyBaseURL   string
	RedisEnabled bool
	RedisHost    string
	RedisPort    string
}

func main() {
	// A missing .env is fine; everything has a default or comes from the
	// environment proper.
	_ = godotenv.Load()

	cfg := loadConfig()
	initLogger()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewEndpointLimiterWithDefaults()
	limiter.SetEndpointLimit(skyapi.EndpointSearchFlights, 2, 5)

	client := skyapi.New(skyapi.Config{
		BaseURL: cfg.SkyBaseURL,
		APIKey:  cfg.SkyAPIKey,
		APIHost: cfg.SkyAPIHost,
		Limiter: limiter,
		Logger:  log.Logger,
	})

	mode := search.ModeUnconfigured
	if client.Configured() {
		mode = search.ModeLive
	}
	log.Info().Stringer("mode", mode).Msg("flight data source selected")

	resolver := airports.NewResolver(client, log.Logger)
	orchestrator := search.NewOrchestrator(mode, resolver, client, log.Logger)

	var userStore auth.Store
	if cfg.RedisEnabled {
		redisStore, err := auth.NewRedisStore(auth.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		userStore = redisStore
		log.Info().Str("host", cfg.RedisHost+":"+cfg.RedisPort).Msg("redis user store enabled")
	} else {
		userStore = auth.NewMemoryStore()
		log.Info().Msg("in-memory user store enabled")
	}
	defer userStore.Close()

	authService := auth.NewService(userStore, log.Logger)

	searchHandler := handler.NewSearchHandler(orchestrator)
	airportHandler := handler.NewAirportHandler(resolver)
	authHandler := handler.NewAuthHandler(authService)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/flights/mock", searchHandler.Mock)
	api.GET("/status", searchHandler.Status)
	api.GET("/airports/search", airportHandler.Search)
	api.GET("/airports/nearby", airportHandler.Nearby)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)
	e.GET("/health", handler.HealthHandler)

	log.Info().Str("port", cfg.Port).Msg("starting flight search server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getEnv("ENV", "development") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
	log.Logger = log.Logger.With().Str("service", "skysearch").Logger()
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		SkyAPIKey:    getEnv("SKY_API_KEY", ""),
		SkyAPIHost:   getEnv("SKY_API_HOST", skyapi.DefaultAPIHost),
		SkyBaseURL:   getEnv("SKY_BASE_URL", skyapi.DefaultBaseURL),
		RedisEnabled: getEnvBool("REDIS_ENABLED", false),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
