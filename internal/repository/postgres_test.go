package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

// openTestPostgres connects to WASTE_TEST_DB_CONN and truncates every table
func openTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	conn := os.Getenv("WASTE_TEST_DB_CONN")
	if conn == "" {
		t.Skip("WASTE_TEST_DB_CONN not set")
	}
	db, err := sql.Open("postgres", conn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewPostgresStore(db)
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	_, err = db.ExecContext(ctx, `TRUNCATE waste.users, waste.waste_records, waste.reminders, waste.collections,
		waste.disposal_locations, waste.recycling_tips, waste.educational_resources, waste.statistics_snapshots
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return store
}

func TestPostgresStore_Users(t *testing.T) {
	store := openTestPostgres(t)
	ctx := context.Background()

	u := &models.User{Username: "alex", Email: "alex@example.com", FullName: "Alex", PasswordHash: "hash",
		Preferences: map[string]any{"theme": "light"}}
	require.NoError(t, store.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	err := store.CreateUser(ctx, &models.User{Username: "other", Email: "ALEX@example.com", FullName: "x", PasswordHash: "h"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.Equal(t, "Email already exists", apperr.Message(err, ""))

	found, err := store.FindUserByEmail(ctx, "Alex@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	merged, err := store.MergePreferences(ctx, u.ID, map[string]any{"units": "kg"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "light", "units": "kg"}, merged.Preferences)

	name := "Alex Johnson"
	updated, err := store.UpdateUser(ctx, u.ID, models.UserPatch{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)
	assert.Equal(t, "alex", updated.Username)

	_, err = store.GetUser(ctx, 999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestPostgresStore_RecordsAndReminders(t *testing.T) {
	store := openTestPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateWasteRecord(ctx, &models.WasteRecord{
			UserID: 1, WasteType: models.WasteRecycling, Amount: 1.5, Date: now.AddDate(0, 0, -i),
		}))
	}
	recent, err := store.ListWasteRecords(ctx, WasteRecordFilter{UserID: 1, Start: now.AddDate(0, 0, -1)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	c := &models.Collection{WasteType: models.WasteGeneral, ScheduledDate: now.Add(time.Hour), TimeWindow: "8AM - 10AM", LocationID: 1}
	require.NoError(t, store.CreateCollection(ctx, c))

	err = store.CreateReminder(ctx, &models.Reminder{UserID: 1, CollectionID: 999, ReminderTime: now, IsActive: true})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	rem := &models.Reminder{UserID: 1, CollectionID: c.ID, ReminderTime: now.Add(-time.Minute), IsActive: true}
	require.NoError(t, store.CreateReminder(ctx, rem))
	due, err := store.ListDueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, rem.ID, due[0].ID)
}

func TestPostgresStore_Locations(t *testing.T) {
	store := openTestPostgres(t)
	ctx := context.Background()

	loc := &models.DisposalLocation{Name: "Eco Center", Address: "1 Main", City: "Seattle", Latitude: 47.6, Longitude: -122.3,
		AcceptedWasteTypes: []string{"plastic", "glass"}, OperatingHours: "9-5"}
	require.NoError(t, store.CreateLocation(ctx, loc))

	byType, err := store.ListLocations(ctx, "Glass")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, []string{"plastic", "glass"}, byType[0].AcceptedWasteTypes)
	assert.Nil(t, byType[0].PhoneNumber)

	require.NoError(t, store.DeleteLocation(ctx, loc.ID))
	assert.True(t, errors.Is(store.DeleteLocation(ctx, loc.ID), apperr.ErrNotFound))
}
