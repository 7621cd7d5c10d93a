package interfaces

import (
	"context"
	"time"

	"carcast/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	GetAllIDs(ctx context.Context) ([]primitive.ObjectID, error)

	// UpdateMileage persists a new odometer reading. Callers are responsible
	// for rejecting regressions before calling.
	UpdateMileage(ctx context.Context, id primitive.ObjectID, mileage int) error
	UpdateZipCode(ctx context.Context, id primitive.ObjectID, zipCode string) error
	UpdateAverageMonthlyMiles(ctx context.Context, id primitive.ObjectID, miles *int) error
}

type PredictionRepository interface {
	// EnsureIndexes creates the indexes the prediction queries depend on.
	EnsureIndexes(ctx context.Context) error

	// ReplaceFuture retires every active prediction for the vehicle dated on or
	// after now (marking it superseded by batchID) and inserts the new batch.
	// Past-dated predictions are never touched. Returns
	// models.ErrStoreWriteConflict when another batch won the active-batch swap.
	ReplaceFuture(ctx context.Context, vehicleID primitive.ObjectID, predictions []*models.MaintenancePrediction, batchID string, now time.Time) error

	// GetActiveByVehicle returns non-superseded predictions in [from, to].
	GetActiveByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MaintenancePrediction, error)

	// GetHistoryByVehicle returns predictions in [from, to] that are either
	// superseded or elapsed as of asOf, for forecast-accuracy analysis.
	GetHistoryByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to, asOf time.Time) ([]*models.MaintenancePrediction, error)

	ActiveBatchID(ctx context.Context, vehicleID primitive.ObjectID) (string, error)
}
