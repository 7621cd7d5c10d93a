package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carcast/internal/models"
	"carcast/internal/repositories/interfaces"
	"carcast/internal/utils"
	"carcast/internal/validators"
	"carcast/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MileageService is the single entry point for state changes that invalidate
// predictions: odometer updates, ZIP changes, and scheduled refreshes.
type MileageService interface {
	// OnMileageUpdated validates and stores a new odometer reading, then
	// regenerates the vehicle's predictions. Readings below the current
	// mileage are rejected with models.ErrMileageRegression and leave all
	// state unchanged.
	OnMileageUpdated(ctx context.Context, vehicleID primitive.ObjectID, newMileage int) ([]*models.MaintenancePrediction, error)

	// OnZipCodeChanged re-resolves regional pricing and regenerates. Mileage
	// is untouched.
	OnZipCodeChanged(ctx context.Context, vehicleID primitive.ObjectID, newZipCode string) ([]*models.MaintenancePrediction, error)

	// Regenerate rebuilds predictions from current vehicle state. Used by the
	// nightly fleet refresh.
	Regenerate(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.MaintenancePrediction, error)
}

type mileageService struct {
	vehicleRepo    interfaces.VehicleRepository
	predictionRepo interfaces.PredictionRepository
	predictions    PredictionService
	forecasts      ForecastService
	locks          *utils.KeyedMutex
	horizonMonths  int
	now            func() time.Time
	log            *logger.Logger
}

func NewMileageService(
	vehicleRepo interfaces.VehicleRepository,
	predictionRepo interfaces.PredictionRepository,
	predictions PredictionService,
	forecasts ForecastService,
	horizonMonths int,
	now func() time.Time,
	log *logger.Logger,
) MileageService {
	if now == nil {
		now = time.Now
	}
	return &mileageService{
		vehicleRepo:    vehicleRepo,
		predictionRepo: predictionRepo,
		predictions:    predictions,
		forecasts:      forecasts,
		locks:          utils.NewKeyedMutex(),
		horizonMonths:  horizonMonths,
		now:            now,
		log:            log,
	}
}

func (s *mileageService) OnMileageUpdated(ctx context.Context, vehicleID primitive.ObjectID, newMileage int) ([]*models.MaintenancePrediction, error) {
	if err := validators.ValidateMileageReading(newMileage); err != nil {
		return nil, err
	}

	s.locks.Lock(vehicleID.Hex())
	defer s.locks.Unlock(vehicleID.Hex())

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	// Odometers do not go backward.
	if newMileage < vehicle.CurrentMileage {
		return nil, fmt.Errorf("%w: %d < %d", models.ErrMileageRegression, newMileage, vehicle.CurrentMileage)
	}

	if err := s.vehicleRepo.UpdateMileage(ctx, vehicleID, newMileage); err != nil {
		return nil, err
	}
	s.log.LogMileageUpdate(vehicleID, vehicle.CurrentMileage, newMileage)

	vehicle.CurrentMileage = newMileage
	return s.regenerateForVehicle(ctx, vehicle)
}

func (s *mileageService) OnZipCodeChanged(ctx context.Context, vehicleID primitive.ObjectID, newZipCode string) ([]*models.MaintenancePrediction, error) {
	if err := validators.ValidateZipCode(newZipCode); err != nil {
		return nil, err
	}

	s.locks.Lock(vehicleID.Hex())
	defer s.locks.Unlock(vehicleID.Hex())

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateZipCode(ctx, vehicleID, newZipCode); err != nil {
		return nil, err
	}

	vehicle.ZipCode = newZipCode
	return s.regenerateForVehicle(ctx, vehicle)
}

func (s *mileageService) Regenerate(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.MaintenancePrediction, error) {
	s.locks.Lock(vehicleID.Hex())
	defer s.locks.Unlock(vehicleID.Hex())

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	return s.regenerateForVehicle(ctx, vehicle)
}

func (s *mileageService) regenerateForVehicle(ctx context.Context, vehicle *models.Vehicle) ([]*models.MaintenancePrediction, error) {
	predictions, err := s.predictions.GenerateForVehicle(ctx, vehicle, s.horizonMonths)
	if err != nil {
		return nil, err
	}

	now := s.now()
	batchID := uuid.NewString()
	err = s.predictionRepo.ReplaceFuture(ctx, vehicle.ID, predictions, batchID, now)
	if errors.Is(err, models.ErrStoreWriteConflict) {
		// Generation is deterministic, so a single retry under a fresh batch
		// id is safe.
		s.log.WithVehicleID(vehicle.ID).WithBatchID(batchID).Warn("Prediction write conflict, retrying once")
		batchID = uuid.NewString()
		err = s.predictionRepo.ReplaceFuture(ctx, vehicle.ID, predictions, batchID, now)
	}
	if err != nil {
		return nil, err
	}

	s.forecasts.InvalidateVehicle(ctx, vehicle.ID, vehicle.OwnerID)
	s.log.LogGenerationBatch(vehicle.ID, batchID, len(predictions), s.horizonMonths)

	return predictions, nil
}
