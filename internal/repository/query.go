package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/umahmood/haversine"

	"github.com/Dan9191/waste-service/internal/models"
)

// WasteRecordFilter selects waste records. A zero UserID matches every user and a
// zero Start or End leaves that side of the range open. Both bounds are inclusive.
type WasteRecordFilter struct {
	UserID int64
	Start  time.Time
	End    time.Time
}

// Match reports whether r passes the filter
func (f WasteRecordFilter) Match(r models.WasteRecord) bool {
	if f.UserID != 0 && r.UserID != f.UserID {
		return false
	}
	if !f.Start.IsZero() && r.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && r.Date.After(f.End) {
		return false
	}
	return true
}

// Empty reports whether the range is inverted and can match nothing
func (f WasteRecordFilter) Empty() bool {
	return !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End)
}

// NearbyQuery asks for the closest locations to a point
type NearbyQuery struct {
	Lat      float64
	Lon      float64
	Limit    int     // <= 0 means every location
	RadiusKm float64 // <= 0 means unbounded
}

// DistanceKm is the great-circle distance between two points
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)
	return km
}

// RankByDistance sorts locations by non-decreasing distance from the query point,
// ties broken by id, and applies the radius and limit.
func RankByDistance(locations []models.DisposalLocation, q NearbyQuery) []models.NearbyLocation {
	ranked := make([]models.NearbyLocation, 0, len(locations))
	for _, l := range locations {
		d := DistanceKm(q.Lat, q.Lon, l.Latitude, l.Longitude)
		if q.RadiusKm > 0 && d > q.RadiusKm {
			continue
		}
		ranked = append(ranked, models.NearbyLocation{DisposalLocation: l, DistanceKm: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].ID < ranked[j].ID
	})
	if q.Limit > 0 && len(ranked) > q.Limit {
		ranked = ranked[:q.Limit]
	}
	return ranked
}

// NearbyLocations loads every location from repo and ranks them against q
func NearbyLocations(ctx context.Context, repo LocationRepository, q NearbyQuery) ([]models.NearbyLocation, error) {
	locations, err := repo.ListLocations(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return RankByDistance(locations, q), nil
}

func limitSlice[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
