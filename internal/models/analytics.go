package models

import "time"

// WasteStatistics represents totals and shares per waste type over a window
type WasteStatistics struct {
	TotalWaste        float64               `json:"totalWaste"`
	WasteByType       map[WasteType]float64 `json:"wasteByType"`
	PercentagesByType map[WasteType]float64 `json:"percentagesByType"`
}

// ImpactMetrics represents estimated environmental savings
type ImpactMetrics struct {
	CarbonSaved     float64 `json:"carbonSaved"`     // kg CO2
	WaterSaved      float64 `json:"waterSaved"`      // litres
	TreesEquivalent float64 `json:"treesEquivalent"` // CarbonSaved / 21
}

// StatisticsSnapshot is a persisted result of the periodic processing job
type StatisticsSnapshot struct {
	ID          int64           `json:"id"`
	RunID       string          `json:"runId"`
	WindowStart time.Time       `json:"windowStart"`
	WindowEnd   time.Time       `json:"windowEnd"`
	RecordCount int             `json:"recordCount"`
	Statistics  WasteStatistics `json:"statistics"`
	Impact      ImpactMetrics   `json:"impact"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ChartPoint is one day of the 7-day waste chart
type ChartPoint struct {
	Day    string  `json:"day"` // "Sun".."Sat"
	Amount float64 `json:"amount"`
}

// DashboardUser is the user subset shown on the dashboard
type DashboardUser struct {
	Name string `json:"name"`
	Date string `json:"date"` // Format: YYYY-MM-DD
}

// WasteSummary represents rounded 30-day totals
type WasteSummary struct {
	GeneralWaste float64 `json:"generalWaste"`
	Recycling    float64 `json:"recycling"`
	Compost      float64 `json:"compost"`
	Total        float64 `json:"total"`
	Comparison   float64 `json:"comparison"` // % change against the previous 30 days
}

// WasteTracking represents the chart and rate figures
type WasteTracking struct {
	ChartData           []ChartPoint `json:"chartData"`
	WeeklyAverage       float64      `json:"weeklyAverage"`
	RecyclingRate       float64      `json:"recyclingRate"`
	WeeklyComparison    float64      `json:"weeklyComparison"`    // % change of the last 7 days against the 7 before
	RecyclingComparison float64      `json:"recyclingComparison"` // rate points against the previous 30 days
}

// DashboardSummary is the composite dashboard response
type DashboardSummary struct {
	User                 DashboardUser         `json:"user"`
	WasteSummary         WasteSummary          `json:"wasteSummary"`
	UpcomingCollections  []Collection          `json:"upcomingCollections"`
	RecyclingTips        []RecyclingTip        `json:"recyclingTips"`
	WasteTracking        WasteTracking         `json:"wasteTracking"`
	DisposalLocations    []NearbyLocation      `json:"disposalLocations"`
	EducationalResources []EducationalResource `json:"educationalResources"`
	EnvironmentalImpact  ImpactMetrics         `json:"environmentalImpact"`
}

// NearbyLocation is a disposal location annotated with its distance from the query point
type NearbyLocation struct {
	DisposalLocation
	DistanceKm float64 `json:"distanceKm"`
}
