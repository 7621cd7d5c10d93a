package mongodb

import (
	"context"
	"fmt"
	"time"

	"carcast/internal/models"
	"carcast/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type predictionRepository struct {
	collection *mongo.Collection
	batches    *mongo.Collection
}

func NewPredictionRepository(db *mongo.Database) interfaces.PredictionRepository {
	return &predictionRepository{
		collection: db.Collection("maintenance_predictions"),
		batches:    db.Collection("prediction_batches"),
	}
}

// EnsureIndexes creates the indexes the prediction queries depend on.
func (r *predictionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "predicted_date", Value: 1}}},
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "superseded_by", Value: 1}}},
		{Keys: bson.D{{Key: "batch_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create prediction indexes: %w", err)
	}
	return nil
}

func (r *predictionRepository) ReplaceFuture(ctx context.Context, vehicleID primitive.ObjectID, predictions []*models.MaintenancePrediction, batchID string, now time.Time) error {
	// Compare-and-swap the active batch pointer. A concurrent writer that got
	// there first changes the expected value and the filter misses, which
	// surfaces as a conflict instead of interleaved partial writes.
	expected, err := r.ActiveBatchID(ctx, vehicleID)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": vehicleID, "active_batch": expected}
	update := bson.M{"$set": bson.M{"active_batch": batchID, "updated_at": now}}

	res := r.batches.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetUpsert(true))
	if err := res.Err(); err != nil && err != mongo.ErrNoDocuments {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrStoreWriteConflict
		}
		return fmt.Errorf("failed to swap active batch: %w", err)
	}

	// Retire active future-dated predictions. Past-dated rows stay untouched
	// so elapsed forecasts remain auditable against actual service records.
	_, err = r.collection.UpdateMany(ctx, bson.M{
		"vehicle_id":     vehicleID,
		"predicted_date": bson.M{"$gte": now},
		"superseded_by":  bson.M{"$exists": false},
	}, bson.M{
		"$set": bson.M{"superseded_by": batchID},
	})
	if err != nil {
		return fmt.Errorf("failed to retire predictions: %w", err)
	}

	if len(predictions) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(predictions))
	for _, p := range predictions {
		p.ID = primitive.NewObjectID()
		p.VehicleID = vehicleID
		p.BatchID = batchID
		p.CreatedAt = now
		docs = append(docs, p)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert prediction batch: %w", err)
	}

	return nil
}

func (r *predictionRepository) GetActiveByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MaintenancePrediction, error) {
	filter := bson.M{
		"vehicle_id":     vehicleID,
		"superseded_by":  bson.M{"$exists": false},
		"predicted_date": bson.M{"$gte": from, "$lte": to},
	}
	return r.find(ctx, filter)
}

func (r *predictionRepository) GetHistoryByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to, asOf time.Time) ([]*models.MaintenancePrediction, error) {
	filter := bson.M{
		"vehicle_id":     vehicleID,
		"predicted_date": bson.M{"$gte": from, "$lte": to},
		"$or": []bson.M{
			{"superseded_by": bson.M{"$exists": true}},
			{"predicted_date": bson.M{"$lt": asOf}},
		},
	}
	return r.find(ctx, filter)
}

func (r *predictionRepository) ActiveBatchID(ctx context.Context, vehicleID primitive.ObjectID) (string, error) {
	var doc struct {
		ActiveBatch string `bson:"active_batch"`
	}
	err := r.batches.FindOne(ctx, bson.M{"_id": vehicleID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("failed to read active batch: %w", err)
	}
	return doc.ActiveBatch, nil
}

func (r *predictionRepository) find(ctx context.Context, filter bson.M) ([]*models.MaintenancePrediction, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "predicted_date", Value: 1},
		{Key: "service_type", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find predictions: %w", err)
	}
	defer cursor.Close(ctx)

	var predictions []*models.MaintenancePrediction
	for cursor.Next(ctx) {
		var p models.MaintenancePrediction
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode prediction: %w", err)
		}
		predictions = append(predictions, &p)
	}

	return predictions, nil
}
