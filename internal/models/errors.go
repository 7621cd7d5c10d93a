package models

import "errors"

var (
	// ErrInvalidZipFormat is returned when a ZIP code cannot be parsed to
	// coordinates at all.
	ErrInvalidZipFormat = errors.New("invalid zip code format")

	// ErrGeocodingUnavailable marks a degraded pricing lookup. It is absorbed
	// by the pricing resolver (neutral multiplier) and never reaches callers.
	ErrGeocodingUnavailable = errors.New("geocoding unavailable")

	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrInvalidHorizon = errors.New("forecast horizon out of range")

	// ErrMileageRegression rejects odometer updates below the stored reading.
	ErrMileageRegression = errors.New("mileage update below current reading")

	// ErrStoreWriteConflict signals a concurrent prediction write for the same
	// vehicle. Retried once before being surfaced.
	ErrStoreWriteConflict = errors.New("concurrent prediction write for vehicle")
)
