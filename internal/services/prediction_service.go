package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"carcast/internal/catalog"
	"carcast/internal/models"
	"carcast/internal/repositories/interfaces"
	"carcast/internal/utils"
	"carcast/internal/validators"
	"carcast/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PredictionService interface {
	// Generate loads the vehicle and produces its prediction set over the
	// horizon. Output is deterministic for a fixed vehicle state and clock.
	Generate(ctx context.Context, vehicleID primitive.ObjectID, horizonMonths int) ([]*models.MaintenancePrediction, error)

	// GenerateForVehicle runs the same projection against an already-loaded
	// vehicle record.
	GenerateForVehicle(ctx context.Context, vehicle *models.Vehicle, horizonMonths int) ([]*models.MaintenancePrediction, error)
}

type predictionService struct {
	vehicleRepo         interfaces.VehicleRepository
	catalog             *catalog.Catalog
	pricing             PricingService
	defaultMonthlyMiles int
	now                 func() time.Time
	log                 *logger.Logger
}

func NewPredictionService(
	vehicleRepo interfaces.VehicleRepository,
	cat *catalog.Catalog,
	pricing PricingService,
	defaultMonthlyMiles int,
	now func() time.Time,
	log *logger.Logger,
) PredictionService {
	if now == nil {
		now = time.Now
	}
	return &predictionService{
		vehicleRepo:         vehicleRepo,
		catalog:             cat,
		pricing:             pricing,
		defaultMonthlyMiles: defaultMonthlyMiles,
		now:                 now,
		log:                 log,
	}
}

func (s *predictionService) Generate(ctx context.Context, vehicleID primitive.ObjectID, horizonMonths int) ([]*models.MaintenancePrediction, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return s.GenerateForVehicle(ctx, vehicle, horizonMonths)
}

func (s *predictionService) GenerateForVehicle(ctx context.Context, vehicle *models.Vehicle, horizonMonths int) ([]*models.MaintenancePrediction, error) {
	if err := validators.ValidateHorizon(horizonMonths); err != nil {
		return nil, err
	}

	pricing, err := s.pricing.Resolve(ctx, vehicle.ZipCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve regional pricing: %w", err)
	}

	now := s.now()

	monthlyMiles := s.defaultMonthlyMiles
	lowConfidence := true
	if vehicle.AverageMonthlyMiles != nil && *vehicle.AverageMonthlyMiles > 0 {
		monthlyMiles = *vehicle.AverageMonthlyMiles
		lowConfidence = false
	}

	var predictions []*models.MaintenancePrediction
	for _, def := range s.catalog.Definitions() {
		def := def
		if def.HasMileageTrigger() {
			predictions = append(predictions, s.mileagePredictions(&def, vehicle, pricing, now, monthlyMiles, lowConfidence, horizonMonths)...)
		}
		if def.HasAgeTrigger() {
			predictions = append(predictions, s.agePredictions(&def, vehicle, pricing, now, horizonMonths)...)
		}
	}

	// Stable output order regardless of catalog ordering.
	sort.Slice(predictions, func(i, j int) bool {
		if !predictions[i].PredictedDate.Equal(predictions[j].PredictedDate) {
			return predictions[i].PredictedDate.Before(predictions[j].PredictedDate)
		}
		return predictions[i].ServiceType < predictions[j].ServiceType
	})

	return predictions, nil
}

// mileagePredictions projects every future interval multiple the vehicle
// reaches within the horizon at its assumed driving rate.
func (s *predictionService) mileagePredictions(def *models.ServiceDefinition, vehicle *models.Vehicle, pricing *RegionalPricing, now time.Time, monthlyMiles int, lowConfidence bool, horizonMonths int) []*models.MaintenancePrediction {
	interval := *def.MileageInterval
	maxMileage := vehicle.CurrentMileage + monthlyMiles*horizonMonths
	probability := catalog.MileageProbability(def, vehicle.CurrentMileage)

	var out []*models.MaintenancePrediction
	for next := (vehicle.CurrentMileage/interval + 1) * interval; next <= maxMileage; next += interval {
		monthsOut := float64(next-vehicle.CurrentMileage) / float64(monthlyMiles)
		mileage := next

		out = append(out, &models.MaintenancePrediction{
			VehicleID:        vehicle.ID,
			ServiceType:      def.ServiceType,
			Description:      def.Description,
			PredictedDate:    utils.AddFractionalMonths(now, monthsOut),
			PredictedMileage: &mileage,
			EstimatedCost:    catalog.EstimatedCost(def, pricing.Multiplier),
			Probability:      probability,
			IsRoutine:        def.IsRoutine,
			Priority:         def.Priority,
			LowConfidence:    lowConfidence,
			PricingDegraded:  pricing.Degraded,
		})
	}

	return out
}

// agePredictions emits one prediction per age-interval anniversary inside the
// horizon. No mileage attaches to these; they fire on the calendar alone.
func (s *predictionService) agePredictions(def *models.ServiceDefinition, vehicle *models.Vehicle, pricing *RegionalPricing, now time.Time, horizonMonths int) []*models.MaintenancePrediction {
	interval := *def.AgeIntervalMonths
	ageNow := vehicle.AgeMonths(now)

	first := ((ageNow + interval - 1) / interval) * interval
	if first == 0 {
		first = interval
	}

	var out []*models.MaintenancePrediction
	for age := first; age-ageNow <= horizonMonths; age += interval {
		predictedDate := now.AddDate(0, age-ageNow, 0)

		out = append(out, &models.MaintenancePrediction{
			VehicleID:       vehicle.ID,
			ServiceType:     def.ServiceType,
			Description:     def.Description,
			PredictedDate:   predictedDate,
			EstimatedCost:   catalog.EstimatedCost(def, pricing.Multiplier),
			Probability:     catalog.AgeProbability(def, vehicle, predictedDate),
			IsRoutine:       def.IsRoutine,
			Priority:        def.Priority,
			PricingDegraded: pricing.Degraded,
		})
	}

	return out
}
