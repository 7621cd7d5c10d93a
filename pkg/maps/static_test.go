package maps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGeocoderDefaultTable(t *testing.T) {
	geocoder := NewStaticGeocoder(nil)

	loc, err := geocoder.GeocodeZip(context.Background(), "90012")
	require.NoError(t, err)
	assert.InDelta(t, 34.05, loc.Latitude, 0.1)
	assert.InDelta(t, -118.24, loc.Longitude, 0.1)
}

func TestStaticGeocoderUnknownZip(t *testing.T) {
	geocoder := NewStaticGeocoder(nil)

	_, err := geocoder.GeocodeZip(context.Background(), "00000")
	assert.Error(t, err)
}

func TestStaticGeocoderCustomTable(t *testing.T) {
	geocoder := NewStaticGeocoder(map[string]Location{
		"12345": {Latitude: 1.0, Longitude: 2.0},
	})

	loc, err := geocoder.GeocodeZip(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loc.Latitude)

	_, err = geocoder.GeocodeZip(context.Background(), "90012")
	assert.Error(t, err)
}

func TestStaticGeocoderHonorsContext(t *testing.T) {
	geocoder := NewStaticGeocoder(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := geocoder.GeocodeZip(ctx, "90012")
	assert.ErrorIs(t, err, context.Canceled)
}
