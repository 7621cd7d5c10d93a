package maps

import (
	"context"
	"fmt"
)

// StaticGeocoder serves coordinates from a fixed in-memory table. Used in
// development and tests where no Google Maps key is available.
type StaticGeocoder struct {
	table map[string]Location
}

func NewStaticGeocoder(table map[string]Location) *StaticGeocoder {
	if table == nil {
		table = defaultZipTable
	}
	return &StaticGeocoder{table: table}
}

func (s *StaticGeocoder) GeocodeZip(ctx context.Context, zipCode string) (*Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc, ok := s.table[zipCode]
	if !ok {
		return nil, fmt.Errorf("no geocoding result for zip %s", zipCode)
	}
	return &loc, nil
}

// defaultZipTable covers the regional reference ZIPs plus a handful of
// nearby and remote codes used in development.
var defaultZipTable = map[string]Location{
	"30303": {Latitude: 33.7490, Longitude: -84.3880},   // Atlanta
	"02108": {Latitude: 42.3601, Longitude: -71.0589},   // Boston
	"60601": {Latitude: 41.8781, Longitude: -87.6298},   // Chicago
	"75201": {Latitude: 32.7767, Longitude: -96.7970},   // Dallas
	"80202": {Latitude: 39.7392, Longitude: -104.9903},  // Denver
	"77002": {Latitude: 29.7604, Longitude: -95.3698},   // Houston
	"90012": {Latitude: 34.0522, Longitude: -118.2437},  // Los Angeles
	"33131": {Latitude: 25.7617, Longitude: -80.1918},   // Miami
	"55401": {Latitude: 44.9778, Longitude: -93.2650},   // Minneapolis
	"10007": {Latitude: 40.7128, Longitude: -74.0060},   // New York
	"85004": {Latitude: 33.4484, Longitude: -112.0740},  // Phoenix
	"98104": {Latitude: 47.6062, Longitude: -122.3321},  // Seattle
	"07030": {Latitude: 40.7440, Longitude: -74.0324},   // Hoboken, NJ
	"59715": {Latitude: 45.6770, Longitude: -111.0429},  // Bozeman, MT
	"99501": {Latitude: 61.2181, Longitude: -149.9003},  // Anchorage, AK
}
