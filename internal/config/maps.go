package config

import "time"

type MapsConfig struct {
	Provider       string            `yaml:"provider"`
	GoogleMaps     *GoogleMapsConfig `yaml:"google_maps"`
	GeocodeTimeout time.Duration     `yaml:"geocode_timeout"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		Provider: getEnv("MAPS_PROVIDER", "google"),
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		GeocodeTimeout: getEnvAsDuration("GEOCODE_TIMEOUT", 2*time.Second),
	}
}
