package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID             primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Year                int                `json:"year" bson:"year" validate:"required"`
	Make                string             `json:"make" bson:"make" validate:"required"`
	Model               string             `json:"model" bson:"model" validate:"required"`
	CurrentMileage      int                `json:"current_mileage" bson:"current_mileage"`
	ZipCode             string             `json:"zip_code" bson:"zip_code" validate:"required"`
	AverageMonthlyMiles *int               `json:"average_monthly_miles" bson:"average_monthly_miles"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" bson:"updated_at"`
}

// AgeMonths approximates vehicle age from the model year, counted from
// January 1 of that year. The profile store carries no purchase date.
func (v *Vehicle) AgeMonths(asOf time.Time) int {
	if asOf.Year() < v.Year {
		return 0
	}
	return int(asOf.Month()) - 1 + 12*(asOf.Year()-v.Year)
}
