package catalog

import "carcast/internal/models"

func miles(n int) *int  { return &n }
func months(n int) *int { return &n }

// defaultServiceDefinitions is the static maintenance catalog. Routine items
// are mileage-driven scheduled maintenance; age-based items are probabilistic
// wear checks. A few carry both triggers and fire from each independently.
var defaultServiceDefinitions = []models.ServiceDefinition{
	{ServiceType: "oil_change", Description: "Engine oil and filter change", MileageInterval: miles(5000), BaseCost: 45, BaseProbability: 0.95, IsRoutine: true, Priority: models.ServicePriorityHigh},
	{ServiceType: "tire_rotation", Description: "Tire rotation and pressure check", MileageInterval: miles(7500), BaseCost: 25, BaseProbability: 0.85, IsRoutine: true, Priority: models.ServicePriorityMedium},
	{ServiceType: "engine_air_filter", Description: "Engine air filter replacement", MileageInterval: miles(15000), BaseCost: 35, BaseProbability: 0.80, IsRoutine: true, Priority: models.ServicePriorityLow},
	{ServiceType: "cabin_air_filter", Description: "Cabin air filter replacement", MileageInterval: miles(15000), AgeIntervalMonths: months(12), BaseCost: 30, BaseProbability: 0.75, IsRoutine: true, Priority: models.ServicePriorityLow},
	{ServiceType: "brake_pads", Description: "Brake pad replacement", MileageInterval: miles(30000), BaseCost: 250, BaseProbability: 0.70, IsRoutine: false, Priority: models.ServicePriorityHigh},
	{ServiceType: "brake_fluid", Description: "Brake fluid flush", AgeIntervalMonths: months(36), BaseCost: 90, BaseProbability: 0.60, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "transmission_fluid", Description: "Transmission fluid service", MileageInterval: miles(60000), BaseCost: 180, BaseProbability: 0.65, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "coolant_flush", Description: "Engine coolant flush", AgeIntervalMonths: months(60), BaseCost: 110, BaseProbability: 0.55, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "spark_plugs", Description: "Spark plug replacement", MileageInterval: miles(60000), BaseCost: 160, BaseProbability: 0.60, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "battery", Description: "12V battery replacement", AgeIntervalMonths: months(48), BaseCost: 180, BaseProbability: 0.55, IsRoutine: false, Priority: models.ServicePriorityHigh},
	{ServiceType: "wiper_blades", Description: "Wiper blade replacement", AgeIntervalMonths: months(12), BaseCost: 28, BaseProbability: 0.80, IsRoutine: true, Priority: models.ServicePriorityLow},
	{ServiceType: "timing_belt", Description: "Timing belt replacement", MileageInterval: miles(90000), BaseCost: 650, BaseProbability: 0.50, IsRoutine: false, Priority: models.ServicePriorityHigh},
	{ServiceType: "suspension_check", Description: "Suspension and steering inspection", AgeIntervalMonths: months(36), BaseCost: 120, BaseProbability: 0.50, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "wheel_alignment", Description: "Four-wheel alignment", AgeIntervalMonths: months(24), BaseCost: 95, BaseProbability: 0.55, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "serpentine_belt", Description: "Serpentine belt replacement", MileageInterval: miles(60000), AgeIntervalMonths: months(72), BaseCost: 130, BaseProbability: 0.50, IsRoutine: false, Priority: models.ServicePriorityMedium},
	{ServiceType: "tire_replacement", Description: "Full set tire replacement", MileageInterval: miles(50000), BaseCost: 600, BaseProbability: 0.60, IsRoutine: false, Priority: models.ServicePriorityHigh},
	{ServiceType: "fuel_filter", Description: "Fuel filter replacement", MileageInterval: miles(30000), BaseCost: 75, BaseProbability: 0.55, IsRoutine: false, Priority: models.ServicePriorityLow},
	{ServiceType: "power_steering_fluid", Description: "Power steering fluid service", AgeIntervalMonths: months(50), BaseCost: 80, BaseProbability: 0.45, IsRoutine: false, Priority: models.ServicePriorityLow},
	{ServiceType: "differential_service", Description: "Differential fluid service", MileageInterval: miles(30000), BaseCost: 100, BaseProbability: 0.45, IsRoutine: false, Priority: models.ServicePriorityLow},
	{ServiceType: "state_inspection", Description: "Annual state safety inspection", AgeIntervalMonths: months(12), BaseCost: 40, BaseProbability: 0.90, IsRoutine: true, Priority: models.ServicePriorityHigh},
}
