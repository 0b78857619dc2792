package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/models"
)

// Seattle-area points used by the seed data
var (
	ecoCenter     = models.DisposalLocation{ID: 1, Name: "City Recycling Center", Latitude: 47.6062, Longitude: -122.3321}
	greenWaste    = models.DisposalLocation{ID: 2, Name: "Green Waste Facility", Latitude: 47.6205, Longitude: -122.3493}
	hazardousDrop = models.DisposalLocation{ID: 3, Name: "Hazardous Waste Drop-off", Latitude: 47.5952, Longitude: -122.3316}
)

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(47.6, -122.3, 47.6, -122.3), 1e-9)

	// one degree of latitude is roughly 111 km
	assert.InDelta(t, 111, DistanceKm(0, 0, 1, 0), 1)
}

func TestRankByDistance_SortedAndLimited(t *testing.T) {
	locations := []models.DisposalLocation{greenWaste, hazardousDrop, ecoCenter}

	ranked := RankByDistance(locations, NearbyQuery{Lat: 47.6062, Lon: -122.3321, Limit: 2})
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, int64(3), ranked[1].ID)
	assert.InDelta(t, 0, ranked[0].DistanceKm, 1e-9)
	assert.LessOrEqual(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
}

func TestRankByDistance_TiesBrokenByID(t *testing.T) {
	a := models.DisposalLocation{ID: 7, Latitude: 1, Longitude: 0}
	b := models.DisposalLocation{ID: 4, Latitude: -1, Longitude: 0}

	ranked := RankByDistance([]models.DisposalLocation{a, b}, NearbyQuery{})
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(4), ranked[0].ID)
	assert.Equal(t, int64(7), ranked[1].ID)
}

func TestRankByDistance_Radius(t *testing.T) {
	locations := []models.DisposalLocation{ecoCenter, greenWaste, hazardousDrop}

	ranked := RankByDistance(locations, NearbyQuery{Lat: 47.6062, Lon: -122.3321, RadiusKm: 1.5})
	require.Len(t, ranked, 2)
	for _, l := range ranked {
		assert.LessOrEqual(t, l.DistanceKm, 1.5)
	}
}

func TestNearbyLocations_UsesRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, l := range []models.DisposalLocation{greenWaste, ecoCenter, hazardousDrop} {
		l := l
		require.NoError(t, store.CreateLocation(ctx, &l))
	}

	ranked, err := NearbyLocations(ctx, store, NearbyQuery{Lat: 47.6205, Lon: -122.3493, Limit: 1})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Green Waste Facility", ranked[0].Name)
}

func TestWasteRecordFilter_Match(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	r := models.WasteRecord{UserID: 1, Date: day}

	assert.True(t, WasteRecordFilter{}.Match(r))
	assert.True(t, WasteRecordFilter{Start: day, End: day}.Match(r), "bounds are inclusive")
	assert.False(t, WasteRecordFilter{UserID: 2}.Match(r))
	assert.False(t, WasteRecordFilter{Start: day.Add(time.Second)}.Match(r))
	assert.False(t, WasteRecordFilter{End: day.Add(-time.Second)}.Match(r))
	assert.True(t, WasteRecordFilter{Start: day, End: day.Add(-time.Second)}.Empty())
}
