package services

import (
	"context"
	"testing"
	"time"

	"carcast/internal/catalog"
	"carcast/internal/models"
	"carcast/pkg/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingForTest(geocoder maps.Geocoder) PricingService {
	return NewPricingService(catalog.NewCatalog(), geocoder, nil, 75.0, 2*time.Second, newTestLogger())
}

func TestResolveMatchesNearestCenter(t *testing.T) {
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))

	result, err := pricing.Resolve(context.Background(), "90012")
	require.NoError(t, err)

	assert.Equal(t, 1.25, result.Multiplier)
	assert.Equal(t, "Los Angeles", result.MatchedCenter)
	assert.False(t, result.Degraded)
}

func TestResolveNearbyZipMatchesMetro(t *testing.T) {
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))

	// Hoboken NJ sits within 75 miles of the New York center
	result, err := pricing.Resolve(context.Background(), "07030")
	require.NoError(t, err)

	assert.Equal(t, 1.30, result.Multiplier)
	assert.Equal(t, "New York", result.MatchedCenter)
}

func TestResolveOutsideAllRadiiFallsBack(t *testing.T) {
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))

	// Bozeman MT is hundreds of miles from every center
	result, err := pricing.Resolve(context.Background(), "59715")
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Multiplier)
	assert.Empty(t, result.MatchedCenter)
	assert.False(t, result.Degraded)
}

func TestResolveGeocoderFailureDegrades(t *testing.T) {
	pricing := newPricingForTest(failingGeocoder{})

	result, err := pricing.Resolve(context.Background(), "90012")
	require.NoError(t, err, "geocoding failures must not surface as errors")

	assert.Equal(t, 1.0, result.Multiplier)
	assert.Empty(t, result.MatchedCenter)
	assert.True(t, result.Degraded)
}

func TestResolveInvalidZip(t *testing.T) {
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))

	_, err := pricing.Resolve(context.Background(), "not-a-zip")
	assert.ErrorIs(t, err, models.ErrInvalidZipFormat)
}

func TestResolveTieBreaksAlphabetically(t *testing.T) {
	centers := []models.RegionalCenter{
		{Name: "Beta", ReferenceZip: "00002", Latitude: 40.0, Longitude: -75.0, PricingMultiplier: 1.10},
		{Name: "Alpha", ReferenceZip: "00001", Latitude: 40.0, Longitude: -75.0, PricingMultiplier: 1.20},
	}
	cat := catalog.NewCatalogWith(nil, centers)
	geocoder := maps.NewStaticGeocoder(map[string]maps.Location{
		"19104": {Latitude: 40.0, Longitude: -75.0},
	})
	pricing := NewPricingService(cat, geocoder, nil, 75.0, 2*time.Second, newTestLogger())

	result, err := pricing.Resolve(context.Background(), "19104")
	require.NoError(t, err)

	assert.Equal(t, "Alpha", result.MatchedCenter)
	assert.Equal(t, 1.20, result.Multiplier)
}

func TestResolveReproducible(t *testing.T) {
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))

	first, err := pricing.Resolve(context.Background(), "60601")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := pricing.Resolve(context.Background(), "60601")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
