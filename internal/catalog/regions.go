package catalog

import "carcast/internal/models"

// defaultRegionalCenters anchors the metro pricing zones. Multipliers reflect
// relative labor-rate differences against the national baseline of 1.0.
var defaultRegionalCenters = []models.RegionalCenter{
	{Name: "Atlanta", ReferenceZip: "30303", Latitude: 33.7490, Longitude: -84.3880, PricingMultiplier: 0.98},
	{Name: "Boston", ReferenceZip: "02108", Latitude: 42.3601, Longitude: -71.0589, PricingMultiplier: 1.18},
	{Name: "Chicago", ReferenceZip: "60601", Latitude: 41.8781, Longitude: -87.6298, PricingMultiplier: 1.08},
	{Name: "Dallas", ReferenceZip: "75201", Latitude: 32.7767, Longitude: -96.7970, PricingMultiplier: 0.95},
	{Name: "Denver", ReferenceZip: "80202", Latitude: 39.7392, Longitude: -104.9903, PricingMultiplier: 1.02},
	{Name: "Houston", ReferenceZip: "77002", Latitude: 29.7604, Longitude: -95.3698, PricingMultiplier: 0.92},
	{Name: "Los Angeles", ReferenceZip: "90012", Latitude: 34.0522, Longitude: -118.2437, PricingMultiplier: 1.25},
	{Name: "Miami", ReferenceZip: "33131", Latitude: 25.7617, Longitude: -80.1918, PricingMultiplier: 1.05},
	{Name: "Minneapolis", ReferenceZip: "55401", Latitude: 44.9778, Longitude: -93.2650, PricingMultiplier: 0.97},
	{Name: "New York", ReferenceZip: "10007", Latitude: 40.7128, Longitude: -74.0060, PricingMultiplier: 1.30},
	{Name: "Phoenix", ReferenceZip: "85004", Latitude: 33.4484, Longitude: -112.0740, PricingMultiplier: 0.90},
	{Name: "Seattle", ReferenceZip: "98104", Latitude: 47.6062, Longitude: -122.3321, PricingMultiplier: 1.15},
}
