package config

type ForecastConfig struct {
	// DefaultMonthlyMiles stands in for averageMonthlyMiles when the vehicle
	// has no derived driving rate. Predictions built on it are flagged
	// low-confidence.
	DefaultMonthlyMiles int     `yaml:"default_monthly_miles"`
	DefaultHorizon      int     `yaml:"default_horizon_months"`
	RegionRadiusMiles   float64 `yaml:"region_radius_miles"`
	RefreshSchedule     string  `yaml:"refresh_schedule"`
	RefreshWorkers      int     `yaml:"refresh_workers"`
}

func loadForecastConfig() *ForecastConfig {
	return &ForecastConfig{
		DefaultMonthlyMiles: getEnvAsInt("FORECAST_DEFAULT_MONTHLY_MILES", 1000),
		DefaultHorizon:      getEnvAsInt("FORECAST_DEFAULT_HORIZON_MONTHS", 24),
		RegionRadiusMiles:   getEnvAsFloat64("FORECAST_REGION_RADIUS_MILES", 75.0),
		RefreshSchedule:     getEnv("FORECAST_REFRESH_SCHEDULE", "0 3 * * *"),
		RefreshWorkers:      getEnvAsInt("FORECAST_REFRESH_WORKERS", 8),
	}
}
