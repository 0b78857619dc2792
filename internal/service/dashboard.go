package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/waste-service/internal/aggregation"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

// DashboardSummary composes the dashboard for one user over the last 30 days.
// Comparison figures measure against the 30 days (or 7 days for the weekly one) before that.
func (s *Service) DashboardSummary(ctx context.Context, userID int64) (*models.DashboardSummary, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowStart := now.AddDate(0, 0, -dashboardWindowDays)
	previousStart := windowStart.AddDate(0, 0, -dashboardWindowDays)

	all, err := s.store.ListWasteRecords(ctx, repository.WasteRecordFilter{UserID: userID, Start: previousStart, End: now})
	if err != nil {
		return nil, fmt.Errorf("failed to load waste records: %w", err)
	}
	current := aggregation.Between(all, windowStart, now)
	previous := aggregation.Between(all, previousStart, windowStart.Add(-time.Nanosecond))

	totals := aggregation.TotalsByType(current)
	prevTotals := aggregation.TotalsByType(previous)
	total := totals.Sum()
	rate := aggregation.RecyclingRate(totals)

	weekStart := now.AddDate(0, 0, -7)
	lastWeek := aggregation.TotalsByType(aggregation.Between(current, weekStart, now)).Sum()
	weekBefore := aggregation.TotalsByType(aggregation.Between(all, weekStart.AddDate(0, 0, -7), weekStart.Add(-time.Nanosecond))).Sum()

	upcoming, err := s.store.ListUpcomingCollections(ctx, now, dashboardItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming collections: %w", err)
	}
	tips, err := s.store.ListTips(ctx, "", dashboardItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load recycling tips: %w", err)
	}
	nearby, err := repository.NearbyLocations(ctx, s.store, repository.NearbyQuery{
		Lat: s.config.DefaultLat, Lon: s.config.DefaultLon, Limit: dashboardItems,
	})
	if err != nil {
		return nil, err
	}
	resources, err := s.store.ListResources(ctx, "", dashboardItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load educational resources: %w", err)
	}

	impact := aggregation.EnvironmentalImpact(current, s.factors)

	return &models.DashboardSummary{
		User: models.DashboardUser{
			Name: user.FullName,
			Date: now.Format("2006-01-02"),
		},
		WasteSummary: models.WasteSummary{
			GeneralWaste: aggregation.Round(totals[models.WasteGeneral], 0),
			Recycling:    aggregation.Round(totals[models.WasteRecycling], 0),
			Compost:      aggregation.Round(totals[models.WasteCompost], 0),
			Total:        aggregation.Round(total, 0),
			Comparison:   aggregation.Round(aggregation.PercentChange(prevTotals.Sum(), total), 0),
		},
		UpcomingCollections: upcoming,
		RecyclingTips:       tips,
		WasteTracking: models.WasteTracking{
			ChartData:           aggregation.ChartData(current, now),
			WeeklyAverage:       aggregation.WeeklyAverage(total),
			RecyclingRate:       aggregation.Round(rate, 0),
			WeeklyComparison:    aggregation.Round(aggregation.PercentChange(weekBefore, lastWeek), 0),
			RecyclingComparison: aggregation.Round(rate-aggregation.RecyclingRate(prevTotals), 0),
		},
		DisposalLocations:    nearby,
		EducationalResources: resources,
		EnvironmentalImpact: models.ImpactMetrics{
			CarbonSaved:     aggregation.Round(impact.CarbonSaved, 1),
			WaterSaved:      aggregation.Round(impact.WaterSaved, 1),
			TreesEquivalent: aggregation.Round(impact.TreesEquivalent, 1),
		},
	}, nil
}
