package catalog

import (
	"math"
	"time"

	"carcast/internal/models"
	"carcast/internal/utils"
)

// Catalog holds the static service definitions and regional pricing centers.
// Read-only after construction; safe for concurrent use.
type Catalog struct {
	definitions []models.ServiceDefinition
	centers     []models.RegionalCenter
	byType      map[string]*models.ServiceDefinition
}

func NewCatalog() *Catalog {
	return NewCatalogWith(defaultServiceDefinitions, defaultRegionalCenters)
}

// NewCatalogWith builds a catalog from explicit data, for deployments that
// load the reference tables from elsewhere.
func NewCatalogWith(defs []models.ServiceDefinition, centers []models.RegionalCenter) *Catalog {
	byType := make(map[string]*models.ServiceDefinition, len(defs))
	for i := range defs {
		byType[defs[i].ServiceType] = &defs[i]
	}
	return &Catalog{
		definitions: defs,
		centers:     centers,
		byType:      byType,
	}
}

func (c *Catalog) Definitions() []models.ServiceDefinition {
	return c.definitions
}

func (c *Catalog) RegionalCenters() []models.RegionalCenter {
	return c.centers
}

func (c *Catalog) DefinitionByType(serviceType string) (*models.ServiceDefinition, bool) {
	def, ok := c.byType[serviceType]
	return def, ok
}

// MileageProgress is the fraction of the way from the last interval multiple
// to the next occurrence. A mileage exactly on a multiple belongs to the next
// cycle, so progress is 0 there, not 1.
func MileageProgress(currentMileage, interval int) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(currentMileage%interval) / float64(interval)
}

// MileageProbability models the likelihood of a mileage-interval service
// being due, rising in tiers as the odometer approaches the next multiple.
func MileageProbability(def *models.ServiceDefinition, currentMileage int) float64 {
	if !def.HasMileageTrigger() {
		return 0
	}
	progress := MileageProgress(currentMileage, *def.MileageInterval)
	switch {
	case progress >= utils.MileageTierLate:
		return utils.MileageFactorDue * def.BaseProbability
	case progress >= utils.MileageTierEarly:
		return utils.MileageFactorLate * def.BaseProbability
	default:
		return utils.MileageFactorEarly * def.BaseProbability
	}
}

// AgeProbability scales base probability by how far the vehicle is past the
// age interval, capped at 2x so very old vehicles don't grow unbounded.
func AgeProbability(def *models.ServiceDefinition, vehicle *models.Vehicle, asOf time.Time) float64 {
	if !def.HasAgeTrigger() {
		return 0
	}
	ageMonths := vehicle.AgeMonths(asOf)
	ageFactor := math.Min(float64(ageMonths)/float64(*def.AgeIntervalMonths), utils.AgeFactorCap)
	return math.Min(def.BaseProbability*ageFactor, 1.0)
}

// EstimatedCost applies the regional multiplier to the catalog base cost.
func EstimatedCost(def *models.ServiceDefinition, regionalMultiplier float64) float64 {
	return utils.RoundCurrency(def.BaseCost * regionalMultiplier)
}
