package models

// RegionalCenter anchors a metro pricing zone to a reference coordinate.
// Loaded once at startup and read-only afterwards.
type RegionalCenter struct {
	Name              string  `json:"name" bson:"name"`
	ReferenceZip      string  `json:"reference_zip" bson:"reference_zip"`
	Latitude          float64 `json:"latitude" bson:"latitude"`
	Longitude         float64 `json:"longitude" bson:"longitude"`
	PricingMultiplier float64 `json:"pricing_multiplier" bson:"pricing_multiplier"`
}
