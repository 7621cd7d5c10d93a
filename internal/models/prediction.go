package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenancePrediction is one forecast occurrence of a catalog service for a
// vehicle. Predictions are immutable once written: a recomputation retires the
// old batch (SupersededBy) and inserts a new one, it never edits rows in place.
type MaintenancePrediction struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID        primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id"`
	ServiceType      string             `json:"service_type" bson:"service_type"`
	Description      string             `json:"description" bson:"description"`
	PredictedDate    time.Time          `json:"predicted_date" bson:"predicted_date"`
	PredictedMileage *int               `json:"predicted_mileage" bson:"predicted_mileage"`
	EstimatedCost    float64            `json:"estimated_cost" bson:"estimated_cost"`
	Probability      float64            `json:"probability" bson:"probability"`
	IsRoutine        bool               `json:"is_routine" bson:"is_routine"`
	Priority         ServicePriority    `json:"priority" bson:"priority"`
	LowConfidence    bool               `json:"low_confidence" bson:"low_confidence"`
	PricingDegraded  bool               `json:"pricing_degraded" bson:"pricing_degraded"`
	BatchID          string             `json:"batch_id" bson:"batch_id"`
	SupersededBy     string             `json:"superseded_by,omitempty" bson:"superseded_by,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

func (p *MaintenancePrediction) IsActive() bool {
	return p.SupersededBy == ""
}

// ExpectedCost is the probability-weighted cost used for non-routine items.
func (p *MaintenancePrediction) ExpectedCost() float64 {
	return p.Probability * p.EstimatedCost
}
