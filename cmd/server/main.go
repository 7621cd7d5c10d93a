package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"carcast/internal/catalog"
	"carcast/internal/config"
	"carcast/internal/jobs"
	repos "carcast/internal/repositories/mongodb"
	"carcast/internal/services"
	"carcast/pkg/cache"
	"carcast/pkg/database"
	"carcast/pkg/logger"
	"carcast/pkg/maps"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     cfg.App.LogFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Database
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Cache
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Geocoder
	var geocoder maps.Geocoder
	if cfg.Maps.Provider == "google" && cfg.Maps.GoogleMaps.APIKey != "" {
		geocoder, err = maps.NewGoogleMapsGeocoder(cfg.Maps.GoogleMaps.APIKey)
		if err != nil {
			appLogger.Fatalf("Failed to create geocoder: %v", err)
		}
	} else {
		appLogger.Warn("No Google Maps API key, using static ZIP table")
		geocoder = maps.NewStaticGeocoder(nil)
	}

	// Repositories and services
	vehicleRepo := repos.NewVehicleRepository(db.Database, redisCache)
	predictionRepo := repos.NewPredictionRepository(db.Database)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := predictionRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Fatalf("Failed to create prediction indexes: %v", err)
	}
	cancelIndex()

	serviceCatalog := catalog.NewCatalog()
	pricingService := services.NewPricingService(serviceCatalog, geocoder, redisCache, cfg.Forecast.RegionRadiusMiles, cfg.Maps.GeocodeTimeout, appLogger)
	predictionService := services.NewPredictionService(vehicleRepo, serviceCatalog, pricingService, cfg.Forecast.DefaultMonthlyMiles, nil, appLogger)
	forecastService := services.NewForecastService(vehicleRepo, predictionRepo, redisCache, nil, appLogger)
	mileageService := services.NewMileageService(vehicleRepo, predictionRepo, predictionService, forecastService, cfg.Forecast.DefaultHorizon, nil, appLogger)

	// Nightly fleet refresh
	refresher := jobs.NewRefresher(vehicleRepo, mileageService, cfg.Forecast.RefreshWorkers, appLogger)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Forecast.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
		defer cancel()
		if err := refresher.RefreshAll(ctx); err != nil {
			appLogger.WithError(err).Error("Fleet refresh failed")
		}
	}); err != nil {
		appLogger.Fatalf("Invalid refresh schedule %q: %v", cfg.Forecast.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// The engine is a library; the server surface is just a health probe.
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server exited: %v", err)
	}
}
