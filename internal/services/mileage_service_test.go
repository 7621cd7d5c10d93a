package services

import (
	"context"
	"testing"
	"time"

	"carcast/internal/catalog"
	"carcast/internal/models"
	"carcast/pkg/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mileageFixture struct {
	vehicleRepo    *fakeVehicleRepo
	predictionRepo *fakePredictionRepo
	service        MileageService
}

func newMileageFixture(vehicles ...*models.Vehicle) *mileageFixture {
	vehicleRepo := newFakeVehicleRepo(vehicles...)
	predictionRepo := newFakePredictionRepo()
	pricing := newPricingForTest(maps.NewStaticGeocoder(nil))
	log := newTestLogger()

	generator := NewPredictionService(vehicleRepo, catalog.NewCatalog(), pricing, 1000, func() time.Time { return frozenNow }, log)
	forecasts := NewForecastService(vehicleRepo, predictionRepo, nil, nil, log)

	return &mileageFixture{
		vehicleRepo:    vehicleRepo,
		predictionRepo: predictionRepo,
		service:        NewMileageService(vehicleRepo, predictionRepo, generator, forecasts, 24, func() time.Time { return frozenNow }, log),
	}
}

func TestOnMileageUpdated(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	predictions, err := fixture.service.OnMileageUpdated(context.Background(), vehicle.ID, 36500)
	require.NoError(t, err)
	require.NotEmpty(t, predictions)

	updated, err := fixture.vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 36500, updated.CurrentMileage)

	// Predictions reflect the new odometer: next oil change at 40,000
	oilChanges := findByType(predictions, "oil_change")
	require.NotEmpty(t, oilChanges)
	assert.Equal(t, 40000, *oilChanges[0].PredictedMileage)
}

func TestOnMileageUpdatedRegressionRejected(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	_, err := fixture.service.OnMileageUpdated(context.Background(), vehicle.ID, 30000)
	assert.ErrorIs(t, err, models.ErrMileageRegression)

	// Rejection leaves both the vehicle and the store untouched
	unchanged, err := fixture.vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 34000, unchanged.CurrentMileage)
	assert.Empty(t, fixture.predictionRepo.all(vehicle.ID))
}

func TestOnMileageUpdatedNegativeReadingRejected(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	_, err := fixture.service.OnMileageUpdated(context.Background(), vehicle.ID, -100)
	require.Error(t, err)
	assert.Empty(t, fixture.predictionRepo.all(vehicle.ID))
}

func TestOnMileageUpdatedEqualReadingAccepted(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	_, err := fixture.service.OnMileageUpdated(context.Background(), vehicle.ID, 34000)
	assert.NoError(t, err)
}

func TestOnMileageUpdatedSupersedesFutureKeepsPast(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	pastDate := frozenNow.AddDate(0, -2, 0)
	futureDate := frozenNow.AddDate(0, 2, 0)
	require.NoError(t, fixture.predictionRepo.ReplaceFuture(context.Background(), vehicle.ID, []*models.MaintenancePrediction{
		{ServiceType: "oil_change", PredictedDate: pastDate, EstimatedCost: 56.25, IsRoutine: true},
		{ServiceType: "oil_change", PredictedDate: futureDate, EstimatedCost: 56.25, IsRoutine: true},
	}, "batch-seed", frozenNow.AddDate(0, -3, 0)))

	_, err := fixture.service.OnMileageUpdated(context.Background(), vehicle.ID, 36500)
	require.NoError(t, err)

	var pastActive, futureSeedActive int
	for _, p := range fixture.predictionRepo.all(vehicle.ID) {
		if p.BatchID != "batch-seed" {
			continue
		}
		if p.PredictedDate.Equal(pastDate) && p.IsActive() {
			pastActive++
		}
		if p.PredictedDate.Equal(futureDate) && p.IsActive() {
			futureSeedActive++
		}
	}
	assert.Equal(t, 1, pastActive, "past-dated rows survive as history")
	assert.Equal(t, 0, futureSeedActive, "future-dated rows are retired")
}

func TestOnZipCodeChanged(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	// Moving from Los Angeles (x1.25) to Houston (x0.92) reprices everything
	predictions, err := fixture.service.OnZipCodeChanged(context.Background(), vehicle.ID, "77002")
	require.NoError(t, err)

	updated, err := fixture.vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "77002", updated.ZipCode)
	assert.Equal(t, 34000, updated.CurrentMileage, "mileage is untouched by a move")

	oilChanges := findByType(predictions, "oil_change")
	require.NotEmpty(t, oilChanges)
	assert.Equal(t, 41.4, oilChanges[0].EstimatedCost)
}

func TestOnZipCodeChangedInvalidZip(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)

	_, err := fixture.service.OnZipCodeChanged(context.Background(), vehicle.ID, "banana")
	assert.ErrorIs(t, err, models.ErrInvalidZipFormat)
}

func TestRegenerateRetriesOnceOnWriteConflict(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)
	fixture.predictionRepo.conflictsLeft = 1

	predictions, err := fixture.service.Regenerate(context.Background(), vehicle.ID)
	require.NoError(t, err, "a single conflict is absorbed by the retry")
	assert.NotEmpty(t, predictions)
}

func TestRegenerateSurfacesRepeatedConflict(t *testing.T) {
	vehicle := testVehicle()
	fixture := newMileageFixture(vehicle)
	fixture.predictionRepo.conflictsLeft = 2

	_, err := fixture.service.Regenerate(context.Background(), vehicle.ID)
	assert.ErrorIs(t, err, models.ErrStoreWriteConflict)
}

func TestRegenerateUnknownVehicle(t *testing.T) {
	fixture := newMileageFixture()

	_, err := fixture.service.Regenerate(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrVehicleNotFound)
}
