package mongodb

import (
	"context"
	"fmt"
	"time"

	"carcast/internal/models"
	"carcast/internal/repositories/interfaces"
	"carcast/internal/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CacheService is the slice of the redis cache the repositories use.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := validators.ValidateVehicle(vehicle); err != nil {
		return fmt.Errorf("invalid vehicle: %w", err)
	}

	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if r.cache != nil {
		var vehicle models.Vehicle
		if err := r.cache.Get(ctx, vehicleCacheKey(id), &vehicle); err == nil {
			return &vehicle, nil
		}
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, vehicleCacheKey(id), vehicle, 15*time.Minute)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	filter := bson.M{"owner_id": ownerID}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner ID: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetAllIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle ids: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle id: %w", err)
		}
		ids = append(ids, doc.ID)
	}

	return ids, nil
}

func (r *vehicleRepository) UpdateMileage(ctx context.Context, id primitive.ObjectID, mileage int) error {
	return r.update(ctx, id, bson.M{"current_mileage": mileage})
}

func (r *vehicleRepository) UpdateZipCode(ctx context.Context, id primitive.ObjectID, zipCode string) error {
	return r.update(ctx, id, bson.M{"zip_code": zipCode})
}

func (r *vehicleRepository) UpdateAverageMonthlyMiles(ctx context.Context, id primitive.ObjectID, miles *int) error {
	return r.update(ctx, id, bson.M{"average_monthly_miles": miles})
}

func (r *vehicleRepository) update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrVehicleNotFound
	}

	// Invalidate cache
	if r.cache != nil {
		r.cache.Delete(ctx, vehicleCacheKey(id))
	}

	return nil
}

func vehicleCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("vehicle:%s", id.Hex())
}
