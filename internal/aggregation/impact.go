package aggregation

import "github.com/Dan9191/waste-service/internal/models"

// Factor is the saving per kilogram of diverted waste
type Factor struct {
	CarbonSaved float64 // kg CO2 per kg
	WaterSaved  float64 // litres per kg
}

// FactorTable maps a waste type to its conversion factor. Unknown types count as {0,0}.
type FactorTable map[models.WasteType]Factor

// Lookup returns the factor for t, or the zero factor
func (ft FactorTable) Lookup(t models.WasteType) Factor {
	if f, ok := ft[t]; ok {
		return f
	}
	return Factor{}
}

// DefaultFactors covers the material types plus the divertible collection types.
// general waste is landfilled and has no saving.
// compost uses the organic factor; recycling is the mean of the four materials.
var DefaultFactors = FactorTable{
	"plastic":             {CarbonSaved: 2.5, WaterSaved: 10},
	"paper":               {CarbonSaved: 1.8, WaterSaved: 5},
	"glass":               {CarbonSaved: 0.6, WaterSaved: 2},
	"metal":               {CarbonSaved: 4.0, WaterSaved: 7},
	"organic":             {CarbonSaved: 0.5, WaterSaved: 1},
	models.WasteCompost:   {CarbonSaved: 0.5, WaterSaved: 1},
	models.WasteRecycling: {CarbonSaved: 2.225, WaterSaved: 6},
}

// EnvironmentalImpact sums amount * factor over every record
func EnvironmentalImpact(records []models.WasteRecord, factors FactorTable) models.ImpactMetrics {
	var m models.ImpactMetrics
	for _, r := range records {
		f := factors.Lookup(r.WasteType)
		m.CarbonSaved += r.Amount * f.CarbonSaved
		m.WaterSaved += r.Amount * f.WaterSaved
	}
	m.TreesEquivalent = m.CarbonSaved / CarbonPerTree
	return m
}
