package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ForecastCategory is the category key the owner budget consumer files
// vehicle costs under.
const ForecastCategory = "vehicle_expenses"

// MonthlyForecastBucket is the per-month rollup of predictions. A nil
// VehicleID means the bucket aggregates every vehicle of the owner.
type MonthlyForecastBucket struct {
	VehicleID            *primitive.ObjectID `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	MonthKey             string              `json:"month_key" bson:"month_key"` // YYYY-MM
	RoutineCost          float64             `json:"routine_cost" bson:"routine_cost"`
	AgeBasedExpectedCost float64             `json:"age_based_expected_cost" bson:"age_based_expected_cost"`
	TotalCost            float64             `json:"total_cost" bson:"total_cost"`
}

// CategoryForecast is the stream handed to the external budget consumer.
type CategoryForecast struct {
	OwnerID  primitive.ObjectID       `json:"owner_id"`
	Category string                   `json:"category"`
	Buckets  []*MonthlyForecastBucket `json:"buckets"`
}
