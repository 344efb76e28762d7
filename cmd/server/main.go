package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/qarenlabs/travelsearch/internal/cache"
	"github.com/qarenlabs/travelsearch/internal/catalog"
	"github.com/qarenlabs/travelsearch/internal/handler"
	"github.com/qarenlabs/travelsearch/internal/intent"
	"github.com/qarenlabs/travelsearch/internal/locations"
	"github.com/qarenlabs/travelsearch/internal/models"
	"github.com/qarenlabs/travelsearch/internal/providers"
	"github.com/qarenlabs/travelsearch/internal/search"
)

type Config struct {
	Port                string
	CacheBackend        string
	RedisHost           string
	RedisPort           string
	FlightCacheTTL      time.Duration
	LocationCacheTTL    time.Duration
	AmadeusClientID     string
	AmadeusClientSecret string
	OpenAIAPIKey        string
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	provider := initializeProvider(cfg)
	log.Printf("Using offer provider: %s", provider.Name())

	resultCache := initializeResultCache(cfg)
	defer resultCache.Close()

	locationCache := cache.NewMemory[[]models.Location](cfg.LocationCacheTTL)

	orchestrator := search.NewOrchestrator(provider, resultCache)
	extractor := intent.NewExtractor(cfg.OpenAIAPIKey)
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not set, intent extraction will return unknown")
	}

	productCatalog, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	searchHandler := handler.NewSearchHandler(orchestrator)
	intentHandler := handler.NewIntentHandler(extractor)
	locationsHandler := handler.NewLocationsHandler(locations.NewClient(locationCache))
	productsHandler := handler.NewProductsHandler(productCatalog)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/intent", intentHandler.Extract)
	api.GET("/locations", locationsHandler.Suggest)
	api.POST("/products/search", productsHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:                getEnv("PORT", "8080"),
		CacheBackend:        getEnv("CACHE_BACKEND", "memory"),
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		FlightCacheTTL:      getEnvDuration("FLIGHT_CACHE_TTL", 5*time.Minute),
		LocationCacheTTL:    getEnvDuration("LOCATION_CACHE_TTL", 24*time.Hour),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func initializeProvider(cfg Config) providers.OfferProvider {
	if cfg.AmadeusClientID != "" && cfg.AmadeusClientSecret != "" {
		amadeus, err := providers.NewAmadeusProvider(providers.AmadeusConfig{
			ClientID:     cfg.AmadeusClientID,
			ClientSecret: cfg.AmadeusClientSecret,
		})
		if err != nil {
			log.Fatalf("Failed to initialize Amadeus provider: %v", err)
		}
		return amadeus
	}

	log.Println("Amadeus credentials not set, using fallback offer provider")
	return providers.NewFallbackProvider()
}

func initializeResultCache(cfg Config) cache.ResultCache {
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.FlightCacheTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.FlightCacheTTL)
		return redisCache

	case "off":
		log.Println("Cache disabled")
		return cache.NewNoOpCache()

	default:
		log.Printf("In-memory cache enabled (TTL: %v)", cfg.FlightCacheTTL)
		return cache.NewMemoryResultCache(cfg.FlightCacheTTL)
	}
}
