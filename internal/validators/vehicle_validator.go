package validators

import (
	"fmt"
	"time"

	"carcast/internal/models"
	"carcast/internal/utils"
)

// ValidateVehicle checks a profile record before it is persisted.
func ValidateVehicle(v *models.Vehicle) error {
	if v.OwnerID.IsZero() {
		return fmt.Errorf("owner_id is required")
	}
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("make and model are required")
	}
	if err := ValidateVehicleYear(v.Year); err != nil {
		return err
	}
	if err := ValidateMileageReading(v.CurrentMileage); err != nil {
		return err
	}
	return ValidateZipCode(v.ZipCode)
}

func ValidateVehicleYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < 1980 || year > maxYear {
		return fmt.Errorf("year must be in 1980..%d, got %d", maxYear, year)
	}
	return nil
}

// ValidateZipCode wraps the format check in the engine's error taxonomy.
func ValidateZipCode(zipCode string) error {
	if !utils.IsValidZipCode(zipCode) {
		return fmt.Errorf("%w: %q", models.ErrInvalidZipFormat, zipCode)
	}
	return nil
}

func ValidateMileageReading(mileage int) error {
	if mileage < 0 {
		return fmt.Errorf("mileage must be non-negative, got %d", mileage)
	}
	return nil
}

// ValidateHorizon bounds the forecast window.
func ValidateHorizon(months int) error {
	if months <= 0 || months > utils.MaxHorizonMonths {
		return fmt.Errorf("%w: %d not in 1..%d", models.ErrInvalidHorizon, months, utils.MaxHorizonMonths)
	}
	return nil
}
