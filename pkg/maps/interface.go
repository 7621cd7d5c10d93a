package maps

import "context"

// Geocoder resolves a US ZIP code to coordinates. Implementations must honor
// the context deadline; callers bound every lookup with a short timeout.
type Geocoder interface {
	GeocodeZip(ctx context.Context, zipCode string) (*Location, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
