package services

import (
	"context"
	"fmt"
	"time"

	"carcast/internal/models"
	"carcast/internal/repositories/interfaces"
	"carcast/internal/utils"
	"carcast/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ForecastService interface {
	// GetVehicleForecast rolls one vehicle's active predictions into monthly
	// buckets covering every month of [from, to].
	GetVehicleForecast(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MonthlyForecastBucket, error)

	// GetOwnerForecast sums buckets across all of the owner's vehicles.
	GetOwnerForecast(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]*models.MonthlyForecastBucket, error)

	// GetOwnerCategoryForecast wraps the owner buckets as the
	// "vehicle_expenses" category stream for the budget consumer.
	GetOwnerCategoryForecast(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) (*models.CategoryForecast, error)

	// GetVehicleHistory returns retired and elapsed predictions, for comparing
	// past forecasts against actual service records.
	GetVehicleHistory(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MaintenancePrediction, error)

	// InvalidateVehicle drops cached buckets after a regeneration.
	InvalidateVehicle(ctx context.Context, vehicleID, ownerID primitive.ObjectID)
}

type forecastService struct {
	vehicleRepo    interfaces.VehicleRepository
	predictionRepo interfaces.PredictionRepository
	cache          CacheService
	now            func() time.Time
	log            *logger.Logger
}

func NewForecastService(
	vehicleRepo interfaces.VehicleRepository,
	predictionRepo interfaces.PredictionRepository,
	cache CacheService,
	now func() time.Time,
	log *logger.Logger,
) ForecastService {
	if now == nil {
		now = time.Now
	}
	return &forecastService{
		vehicleRepo:    vehicleRepo,
		predictionRepo: predictionRepo,
		cache:          cache,
		now:            now,
		log:            log,
	}
}

func (s *forecastService) GetVehicleForecast(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MonthlyForecastBucket, error) {
	cacheKey := vehicleForecastCacheKey(vehicleID, from, to)
	if s.cache != nil {
		var cached []*models.MonthlyForecastBucket
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	predictions, err := s.predictionRepo.GetActiveByVehicle(ctx, vehicleID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	buckets := bucketize(predictions, &vehicleID, from, to)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, buckets, utils.ForecastCacheTTL)
	}

	return buckets, nil
}

func (s *forecastService) GetOwnerForecast(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]*models.MonthlyForecastBucket, error) {
	cacheKey := ownerForecastCacheKey(ownerID, from, to)
	if s.cache != nil {
		var cached []*models.MonthlyForecastBucket
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner vehicles: %w", err)
	}

	var all []*models.MaintenancePrediction
	for _, vehicle := range vehicles {
		predictions, err := s.predictionRepo.GetActiveByVehicle(ctx, vehicle.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load predictions: %w", err)
		}
		all = append(all, predictions...)
	}

	buckets := bucketize(all, nil, from, to)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, buckets, utils.ForecastCacheTTL)
	}

	return buckets, nil
}

func (s *forecastService) GetOwnerCategoryForecast(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) (*models.CategoryForecast, error) {
	buckets, err := s.GetOwnerForecast(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return &models.CategoryForecast{
		OwnerID:  ownerID,
		Category: models.ForecastCategory,
		Buckets:  buckets,
	}, nil
}

func (s *forecastService) GetVehicleHistory(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MaintenancePrediction, error) {
	history, err := s.predictionRepo.GetHistoryByVehicle(ctx, vehicleID, from, to, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load prediction history: %w", err)
	}
	return history, nil
}

func (s *forecastService) InvalidateVehicle(ctx context.Context, vehicleID, ownerID primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, fmt.Sprintf("forecast:vehicle:%s:*", vehicleID.Hex())); err != nil {
		s.log.WithError(err).WithVehicleID(vehicleID).Warn("Failed to invalidate vehicle forecast cache")
	}
	if err := s.cache.DeleteByPattern(ctx, fmt.Sprintf("forecast:owner:%s:*", ownerID.Hex())); err != nil {
		s.log.WithError(err).WithOwnerID(ownerID).Warn("Failed to invalidate owner forecast cache")
	}
}

// bucketize sums predictions into one bucket per month of the range. Routine
// items go in at full cost; non-routine items at probability-weighted expected
// value.
func bucketize(predictions []*models.MaintenancePrediction, vehicleID *primitive.ObjectID, from, to time.Time) []*models.MonthlyForecastBucket {
	keys := utils.MonthKeysBetween(from, to)
	byKey := make(map[string]*models.MonthlyForecastBucket, len(keys))

	var buckets []*models.MonthlyForecastBucket
	for _, key := range keys {
		bucket := &models.MonthlyForecastBucket{
			VehicleID: vehicleID,
			MonthKey:  key,
		}
		byKey[key] = bucket
		buckets = append(buckets, bucket)
	}

	for _, p := range predictions {
		bucket, ok := byKey[utils.MonthKey(p.PredictedDate)]
		if !ok {
			continue
		}
		if p.IsRoutine {
			bucket.RoutineCost = utils.RoundCurrency(bucket.RoutineCost + p.EstimatedCost)
		} else {
			bucket.AgeBasedExpectedCost = utils.RoundCurrency(bucket.AgeBasedExpectedCost + p.ExpectedCost())
		}
	}

	for _, bucket := range buckets {
		bucket.TotalCost = utils.RoundCurrency(bucket.RoutineCost + bucket.AgeBasedExpectedCost)
	}

	return buckets
}

// Cache keys carry the exact range bounds: predictions are filtered on full
// timestamps, so two ranges in the same months are not interchangeable.
func vehicleForecastCacheKey(vehicleID primitive.ObjectID, from, to time.Time) string {
	return fmt.Sprintf("forecast:vehicle:%s:%s:%s", vehicleID.Hex(), from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
}

func ownerForecastCacheKey(ownerID primitive.ObjectID, from, to time.Time) string {
	return fmt.Sprintf("forecast:owner:%s:%s:%s", ownerID.Hex(), from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
}
