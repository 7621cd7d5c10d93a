package services

import (
	"context"
	"fmt"
	"time"

	"carcast/internal/catalog"
	"carcast/internal/models"
	"carcast/internal/utils"
	"carcast/internal/validators"
	"carcast/pkg/logger"
	"carcast/pkg/maps"
)

// RegionalPricing is the outcome of a ZIP resolution. MatchedCenter is empty
// when no center lies within the match radius; Degraded marks resolutions
// that fell back to the neutral multiplier because geocoding was unavailable.
type RegionalPricing struct {
	Multiplier    float64 `json:"multiplier"`
	MatchedCenter string  `json:"matched_center,omitempty"`
	Degraded      bool    `json:"degraded,omitempty"`
}

type PricingService interface {
	Resolve(ctx context.Context, zipCode string) (*RegionalPricing, error)
}

type pricingService struct {
	catalog        *catalog.Catalog
	geocoder       maps.Geocoder
	cache          CacheService
	radiusMiles    float64
	geocodeTimeout time.Duration
	log            *logger.Logger
}

func NewPricingService(cat *catalog.Catalog, geocoder maps.Geocoder, cache CacheService, radiusMiles float64, geocodeTimeout time.Duration, log *logger.Logger) PricingService {
	return &pricingService{
		catalog:        cat,
		geocoder:       geocoder,
		cache:          cache,
		radiusMiles:    radiusMiles,
		geocodeTimeout: geocodeTimeout,
		log:            log,
	}
}

func (s *pricingService) Resolve(ctx context.Context, zipCode string) (*RegionalPricing, error) {
	if err := validators.ValidateZipCode(zipCode); err != nil {
		return nil, err
	}

	// ZIP-to-multiplier is stable reference data, cache hits skip geocoding.
	cacheKey := pricingCacheKey(zipCode)
	if s.cache != nil {
		var cached RegionalPricing
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	geocodeCtx, cancel := context.WithTimeout(ctx, s.geocodeTimeout)
	defer cancel()

	location, err := s.geocoder.GeocodeZip(geocodeCtx, zipCode)
	if err != nil {
		// A forecast with neutral pricing beats no forecast. Absorb the
		// failure, flag the result, and let callers surface reduced
		// confidence.
		s.log.WithError(err).LogDegradedPricing(zipCode, "geocoding failed")
		return &RegionalPricing{
			Multiplier: utils.FallbackMultiplier,
			Degraded:   true,
		}, nil
	}

	pricing := s.nearestCenter(location)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, pricing, utils.PricingCacheTTL)
	}

	return pricing, nil
}

// nearestCenter scans every regional center for the closest match. Ties
// within the float tolerance resolve alphabetically by center name so output
// is reproducible.
func (s *pricingService) nearestCenter(location *maps.Location) *RegionalPricing {
	var best *models.RegionalCenter
	bestDistance := 0.0

	centers := s.catalog.RegionalCenters()
	for i := range centers {
		center := &centers[i]
		distance := utils.CalculateDistanceMiles(location.Latitude, location.Longitude, center.Latitude, center.Longitude)

		switch {
		case best == nil:
			best = center
			bestDistance = distance
		case distance < bestDistance-utils.RegionTieToleranceMi:
			best = center
			bestDistance = distance
		case distance <= bestDistance+utils.RegionTieToleranceMi && center.Name < best.Name:
			best = center
			bestDistance = distance
		}
	}

	if best == nil || bestDistance > s.radiusMiles {
		return &RegionalPricing{Multiplier: utils.FallbackMultiplier}
	}

	return &RegionalPricing{
		Multiplier:    best.PricingMultiplier,
		MatchedCenter: best.Name,
	}
}

func pricingCacheKey(zipCode string) string {
	return fmt.Sprintf("pricing:zip:%s", zipCode)
}
