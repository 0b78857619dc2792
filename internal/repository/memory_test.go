package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

func strPtr(s string) *string { return &s }

func newUser(username, email string) *models.User {
	return &models.User{Username: username, Email: email, FullName: "Test User", PasswordHash: "hash"}
}

func TestMemoryStore_CreateUserAssignsDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	u := newUser("alex", "alex@example.com")
	require.NoError(t, store.CreateUser(ctx, u))

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, models.DefaultRole, u.Role)
	assert.NotNil(t, u.Preferences)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestMemoryStore_DuplicateUserLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.CreateUser(ctx, newUser("alex", "alex@example.com")))

	tests := []struct {
		name string
		user *models.User
		msg  string
	}{
		{name: "email differs only in case", user: newUser("other", "ALEX@example.com"), msg: "Email already exists"},
		{name: "username taken", user: newUser("alex", "new@example.com"), msg: "Username already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreateUser(ctx, tt.user)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrConflict))
			assert.Equal(t, tt.msg, apperr.Message(err, ""))
			assert.Zero(t, tt.user.ID)
		})
	}

	_, err := store.FindUserByUsername(ctx, "other")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	u := newUser("second", "second@example.com")
	require.NoError(t, store.CreateUser(ctx, u))
	assert.Equal(t, int64(2), u.ID, "failed inserts must not consume ids")
}

func TestMemoryStore_UpdateThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	u := newUser("alex", "alex@example.com")
	require.NoError(t, store.CreateUser(ctx, u))
	require.NoError(t, store.CreateUser(ctx, newUser("sam", "sam@example.com")))

	updated, err := store.UpdateUser(ctx, u.ID, models.UserPatch{FullName: strPtr("Alex Johnson")})
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", updated.FullName)

	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", got.FullName)

	_, err = store.UpdateUser(ctx, u.ID, models.UserPatch{Email: strPtr("sam@example.com")})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = store.UpdateUser(ctx, 99, models.UserPatch{FullName: strPtr("x")})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestMemoryStore_MergePreferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	u := newUser("alex", "alex@example.com")
	u.Preferences = map[string]any{"theme": "light", "units": "kg"}
	require.NoError(t, store.CreateUser(ctx, u))

	merged, err := store.MergePreferences(ctx, u.ID, map[string]any{"theme": "dark"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "dark", "units": "kg"}, merged.Preferences)

	merged.Preferences["units"] = "lb"
	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "kg", got.Preferences["units"], "returned maps must not alias stored state")
}

func TestMemoryStore_WasteRecordFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i, userID := range []int64{1, 1, 2, 1} {
		require.NoError(t, store.CreateWasteRecord(ctx, &models.WasteRecord{
			UserID: userID, WasteType: models.WasteGeneral, Amount: 1, Date: day.AddDate(0, 0, i),
		}))
	}

	all, err := store.ListWasteRecords(ctx, WasteRecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	user1, err := store.ListWasteRecords(ctx, WasteRecordFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, user1, 3)

	bounded, err := store.ListWasteRecords(ctx, WasteRecordFilter{UserID: 1, Start: day.AddDate(0, 0, 1), End: day.AddDate(0, 0, 3)})
	require.NoError(t, err)
	require.Len(t, bounded, 2)
	assert.Equal(t, []int64{2, 4}, []int64{bounded[0].ID, bounded[1].ID})

	inverted, err := store.ListWasteRecords(ctx, WasteRecordFilter{Start: day.AddDate(0, 0, 3), End: day})
	require.NoError(t, err)
	assert.Empty(t, inverted)
	assert.NotNil(t, inverted)
}

func TestMemoryStore_UpcomingCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{3, -1, 1, 2} {
		require.NoError(t, store.CreateCollection(ctx, &models.Collection{
			WasteType: models.WasteRecycling, ScheduledDate: now.AddDate(0, 0, offset), TimeWindow: "8AM - 10AM", LocationID: 1,
		}))
	}

	upcoming, err := store.ListUpcomingCollections(ctx, now, 2)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, now.AddDate(0, 0, 1), upcoming[0].ScheduledDate)
	assert.Equal(t, now.AddDate(0, 0, 2), upcoming[1].ScheduledDate)
}

func TestMemoryStore_DueReminders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	due := &models.Reminder{UserID: 1, CollectionID: 1, ReminderTime: now.Add(-time.Minute), IsActive: true}
	later := &models.Reminder{UserID: 1, CollectionID: 1, ReminderTime: now.Add(time.Hour), IsActive: true}
	inactive := &models.Reminder{UserID: 1, CollectionID: 1, ReminderTime: now.Add(-time.Hour), IsActive: false}
	for _, r := range []*models.Reminder{due, later, inactive} {
		require.NoError(t, store.CreateReminder(ctx, r))
	}

	found, err := store.ListDueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, due.ID, found[0].ID)

	off := false
	_, err = store.UpdateReminder(ctx, due.ID, models.ReminderPatch{IsActive: &off})
	require.NoError(t, err)

	found, err = store.ListDueReminders(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMemoryStore_LocationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loc := &models.DisposalLocation{
		Name: "Eco Center", Latitude: 47.6, Longitude: -122.3,
		AcceptedWasteTypes: []string{"plastic", "Glass"}, OperatingHours: "9-5",
	}
	require.NoError(t, store.CreateLocation(ctx, loc))

	glass, err := store.ListLocations(ctx, "glass")
	require.NoError(t, err)
	assert.Len(t, glass, 1)

	none, err := store.ListLocations(ctx, "electronics")
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := store.UpdateLocation(ctx, loc.ID, models.LocationPatch{Name: strPtr("Eco Hub")})
	require.NoError(t, err)
	assert.Equal(t, "Eco Hub", updated.Name)
	assert.Equal(t, []string{"plastic", "Glass"}, updated.AcceptedWasteTypes)

	require.NoError(t, store.DeleteLocation(ctx, loc.ID))
	_, err = store.GetLocation(ctx, loc.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(store.DeleteLocation(ctx, loc.ID), apperr.ErrNotFound))
}

func TestMemoryStore_ContentFiltersAndLimits(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, c := range []string{"plastic", "paper", "plastic"} {
		require.NoError(t, store.CreateTip(ctx, &models.RecyclingTip{Title: c, Category: c}))
	}
	for _, rt := range []string{"article", "video"} {
		require.NoError(t, store.CreateResource(ctx, &models.EducationalResource{Title: rt, ResourceType: rt}))
	}

	tips, err := store.ListTips(ctx, "plastic", 0)
	require.NoError(t, err)
	assert.Len(t, tips, 2)

	tips, err = store.ListTips(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, tips, 2)

	resources, err := store.ListResources(ctx, "video", 5)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "video", resources[0].Title)
}

func TestMemoryStore_SnapshotsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, run := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveSnapshot(ctx, &models.StatisticsSnapshot{RunID: run}))
	}

	snaps, err := store.ListSnapshots(ctx, 2)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "c", snaps[0].RunID)
	assert.Equal(t, "b", snaps[1].RunID)
}
