package models

type ServicePriority string

const (
	ServicePriorityLow    ServicePriority = "low"
	ServicePriorityMedium ServicePriority = "medium"
	ServicePriorityHigh   ServicePriority = "high"
)

// ServiceDefinition is one row of the static maintenance catalog. Which
// interval fields are set decides the forecasting model: MileageInterval
// drives the mileage model, AgeIntervalMonths the age model, and an item
// may carry both, in which case each model fires independently.
type ServiceDefinition struct {
	ServiceType       string          `json:"service_type" bson:"service_type"`
	Description       string          `json:"description" bson:"description"`
	MileageInterval   *int            `json:"mileage_interval" bson:"mileage_interval"`
	AgeIntervalMonths *int            `json:"age_interval_months" bson:"age_interval_months"`
	BaseCost          float64         `json:"base_cost" bson:"base_cost"`
	BaseProbability   float64         `json:"base_probability" bson:"base_probability"`
	IsRoutine         bool            `json:"is_routine" bson:"is_routine"`
	Priority          ServicePriority `json:"priority" bson:"priority"`
}

func (d *ServiceDefinition) HasMileageTrigger() bool {
	return d.MileageInterval != nil && *d.MileageInterval > 0
}

func (d *ServiceDefinition) HasAgeTrigger() bool {
	return d.AgeIntervalMonths != nil && *d.AgeIntervalMonths > 0
}
