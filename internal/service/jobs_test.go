package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/models"
)

func TestProcessWasteData_LastDayOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	addRecord(t, svc, 1, models.WasteRecycling, 4, testNow.Add(-2*time.Hour))
	addRecord(t, svc, 2, models.WasteGeneral, 4, testNow.Add(-23*time.Hour))
	addRecord(t, svc, 1, models.WasteCompost, 10, testNow.Add(-25*time.Hour))

	snap, err := svc.ProcessWasteData(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.RunID)
	assert.Equal(t, 2, snap.RecordCount)
	assert.InDelta(t, 8, snap.Statistics.TotalWaste, 1e-9)
	assert.InDelta(t, 50, snap.Statistics.PercentagesByType[models.WasteRecycling], 1e-9)
	assert.InDelta(t, 8.9, snap.Impact.CarbonSaved, 1e-9)

	second, err := svc.ProcessWasteData(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, snap.RunID, second.RunID)

	snaps, err := svc.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second.ID, snaps[0].ID)
}

func TestDispatchReminders(t *testing.T) {
	svc, store, notifier := newTestService(t)
	ctx := context.Background()
	u := createAlex(t, svc)

	c, err := svc.CreateCollection(ctx, &models.Collection{WasteType: "recycling", ScheduledDate: testNow.Add(12 * time.Hour), TimeWindow: "8AM - 10AM"})
	require.NoError(t, err)

	due, err := svc.CreateReminder(ctx, &models.Reminder{UserID: u.ID, CollectionID: c.ID, ReminderTime: testNow.Add(-time.Minute), IsActive: true})
	require.NoError(t, err)
	later, err := svc.CreateReminder(ctx, &models.Reminder{UserID: u.ID, CollectionID: c.ID, ReminderTime: testNow.Add(time.Hour), IsActive: true})
	require.NoError(t, err)
	orphan, err := svc.CreateReminder(ctx, &models.Reminder{UserID: 404, CollectionID: c.ID, ReminderTime: testNow.Add(-time.Hour), IsActive: true})
	require.NoError(t, err)

	sent, err := svc.DispatchReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []int64{c.ID}, notifier.sent)

	for _, tc := range []struct {
		id     int64
		active bool
	}{{due.ID, false}, {later.ID, true}, {orphan.ID, false}} {
		r, err := store.GetReminder(ctx, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.active, r.IsActive, "reminder %d", tc.id)
	}

	sent, err = svc.DispatchReminders(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent, "sent reminders are not sent twice")
}

func TestDispatchReminders_FailureKeepsReminderActive(t *testing.T) {
	svc, store, notifier := newTestService(t)
	ctx := context.Background()
	u := createAlex(t, svc)
	notifier.fail = true

	c, err := svc.CreateCollection(ctx, &models.Collection{WasteType: "general", ScheduledDate: testNow.Add(time.Hour)})
	require.NoError(t, err)
	r, err := svc.CreateReminder(ctx, &models.Reminder{UserID: u.ID, CollectionID: c.ID, ReminderTime: testNow, IsActive: true})
	require.NoError(t, err)

	sent, err := svc.DispatchReminders(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	stored, err := store.GetReminder(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}
