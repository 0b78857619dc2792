// Package aggregation turns raw waste records into dashboard statistics.
// Every function here is pure: the result depends only on the arguments.
package aggregation

import (
	"math"
	"sort"
	"time"

	"github.com/Dan9191/waste-service/internal/models"
)

const (
	// ChartDays is the number of daily buckets in the weekly chart
	ChartDays = 7
	// CarbonPerTree is the kg of CO2 one tree absorbs per year
	CarbonPerTree = 21.0
	// WeeksPerWindow converts a 30-day total into a weekly average
	WeeksPerWindow = 4.0

	day = 24 * time.Hour
)

var dayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Totals is the summed amount per waste type
type Totals map[models.WasteType]float64

// Sum returns the overall total
func (t Totals) Sum() float64 {
	// Sorted keys keep float addition order stable between calls.
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	var sum float64
	for _, k := range keys {
		sum += t[models.WasteType(k)]
	}
	return sum
}

// TotalsByType sums amount grouped by waste type
func TotalsByType(records []models.WasteRecord) Totals {
	totals := Totals{}
	for _, r := range records {
		totals[r.WasteType] += r.Amount
	}
	return totals
}

// PercentageByType returns each type's share of the total in percent.
// When the total is zero every type gets 0.
func PercentageByType(totals Totals) map[models.WasteType]float64 {
	shares := make(map[models.WasteType]float64, len(totals))
	sum := totals.Sum()
	for t, v := range totals {
		if sum == 0 {
			shares[t] = 0
			continue
		}
		shares[t] = v / sum * 100
	}
	return shares
}

// RecyclingRate is the recycling share of the total in percent, 0 for an empty total
func RecyclingRate(totals Totals) float64 {
	sum := totals.Sum()
	if sum == 0 {
		return 0
	}
	return totals[models.WasteRecycling] / sum * 100
}

// Statistics bundles total, per-type totals and percentages
func Statistics(records []models.WasteRecord) models.WasteStatistics {
	totals := TotalsByType(records)
	return models.WasteStatistics{
		TotalWaste:        totals.Sum(),
		WasteByType:       totals,
		PercentagesByType: PercentageByType(totals),
	}
}

// WeeklyBuckets partitions records into seven daily buckets, 0 = oldest, 6 = today.
// A record lands in bucket 6 - floor((now - date) / 24h); records outside [0,6] are dropped.
func WeeklyBuckets(records []models.WasteRecord, now time.Time) [ChartDays]float64 {
	var buckets [ChartDays]float64
	for _, r := range records {
		elapsed := now.Sub(r.Date)
		idx := ChartDays - 1 - int(math.Floor(float64(elapsed)/float64(day)))
		if idx < 0 || idx >= ChartDays {
			continue
		}
		buckets[idx] += r.Amount
	}
	return buckets
}

// ChartData labels each weekly bucket with the weekday it covers, amounts rounded to 0.1
func ChartData(records []models.WasteRecord, now time.Time) []models.ChartPoint {
	buckets := WeeklyBuckets(records, now)
	points := make([]models.ChartPoint, ChartDays)
	for i, amount := range buckets {
		date := now.AddDate(0, 0, -(ChartDays - 1 - i))
		points[i] = models.ChartPoint{
			Day:    dayNames[date.Weekday()],
			Amount: Round(amount, 1),
		}
	}
	return points
}

// WeeklyAverage spreads a 30-day total over four weeks, rounded to 0.1
func WeeklyAverage(total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round(total/WeeksPerWindow, 1)
}

// PercentChange is the relative change from previous to current in percent, 0 without a baseline
func PercentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Round rounds v half away from zero to the given number of decimals
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Between filters records to start <= date <= end
func Between(records []models.WasteRecord, start, end time.Time) []models.WasteRecord {
	out := make([]models.WasteRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out
}
