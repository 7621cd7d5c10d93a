package utils

import "time"

// Application Constants
const (
	AppName    = "CarCast"
	AppVersion = "1.0.0"

	// Defaults
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Forecasting
	DefaultMonthlyMiles    = 1000 // assumed driving rate when none is known
	DefaultHorizonMonths   = 24
	MaxHorizonMonths       = 120
	RegionMatchRadiusMiles = 75.0
	RegionTieToleranceMi   = 1e-6
	FallbackMultiplier     = 1.0

	// Geocoding
	GeocodeTimeout = 2 * time.Second

	// Earth radius used for great-circle distances, in miles
	EarthRadiusMiles = 3959.0

	// Probability tiers for the mileage model
	MileageTierEarly     = 0.80
	MileageTierLate      = 0.95
	MileageFactorEarly   = 0.30
	MileageFactorLate    = 0.70
	MileageFactorDue     = 1.00
	AgeFactorCap         = 2.0

	// Cache TTLs
	PricingCacheTTL  = 24 * time.Hour
	ForecastCacheTTL = 15 * time.Minute
)
