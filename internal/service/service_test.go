package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

// Wednesday noon
var testNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	sent []int64
	fail bool
}

func (n *fakeNotifier) SendCollectionReminder(ctx context.Context, user *models.User, c *models.Collection) error {
	if n.fail {
		return errors.New("smtp unavailable")
	}
	n.sent = append(n.sent, c.ID)
	return nil
}

func newTestService(t *testing.T) (*Service, *repository.MemoryStore, *fakeNotifier) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour, DefaultLat: 47.6062, DefaultLon: -122.3321}
	store := repository.NewMemoryStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, logger, cfg, notifier)
	svc.now = func() time.Time { return testNow }
	return svc, store, notifier
}

func createAlex(t *testing.T, svc *Service) *models.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), NewUser{
		Username: "alex", Email: "alex@example.com", Password: "password123", FullName: "Alex Johnson",
	})
	require.NoError(t, err)
	return u
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	u := createAlex(t, svc)

	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.Equal(t, models.DefaultRole, u.Role)

	_, err := svc.CreateUser(context.Background(), NewUser{Username: "alex2", Email: "alex@example.com", Password: "x"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestGetUser_NotFoundMessage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetUser(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "User not found", apperr.Message(err, ""))
}

func TestUpdatePreferences(t *testing.T) {
	svc, _, _ := newTestService(t)
	u := createAlex(t, svc)
	ctx := context.Background()

	prefs, err := svc.UpdatePreferences(ctx, u.ID, map[string]any{"notifications": true})
	require.NoError(t, err)
	assert.Equal(t, true, prefs["notifications"])

	_, err = svc.UpdatePreferences(ctx, u.ID, nil)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestLoginAndParseToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	u := createAlex(t, svc)
	ctx := context.Background()

	_, token, err := svc.Login(ctx, "alex@example.com", "password123")
	require.NoError(t, err)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, _, err = svc.Login(ctx, "alex@example.com", "wrong")
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	assert.Equal(t, "Invalid credentials", apperr.Message(err, ""))

	svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	_, err = svc.ParseToken(token)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized), "token expires after the configured ttl")
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	u := createAlex(t, svc)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, "wrong", "newpass123")
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "password123", "newpass123"))
	_, _, err = svc.Login(ctx, "alex@example.com", "newpass123")
	assert.NoError(t, err)
}

func TestCreateWasteRecord_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateWasteRecord(ctx, &models.WasteRecord{UserID: 1, WasteType: "general", Amount: -1})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "amount", apperr.Fields(err)[0].Field)

	rec, err := svc.CreateWasteRecord(ctx, &models.WasteRecord{UserID: 1, WasteType: " Recycling ", Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, models.WasteRecycling, rec.WasteType)
	assert.Equal(t, testNow, rec.Date)
}

func TestCreateReminder_RequiresCollection(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateReminder(ctx, &models.Reminder{UserID: 1, CollectionID: 9, ReminderTime: testNow, IsActive: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "collectionId", apperr.Fields(err)[0].Field)

	c, err := svc.CreateCollection(ctx, &models.Collection{WasteType: "general", ScheduledDate: testNow.Add(time.Hour), TimeWindow: "8AM - 10AM"})
	require.NoError(t, err)
	r, err := svc.CreateReminder(ctx, &models.Reminder{UserID: 1, CollectionID: c.ID, ReminderTime: testNow, IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
}

func TestUpcomingCollections_DefaultLimit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.CreateCollection(ctx, &models.Collection{WasteType: "general", ScheduledDate: testNow.AddDate(0, 0, i-1)})
		require.NoError(t, err)
	}

	upcoming, err := svc.UpcomingCollections(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, upcoming, DefaultUpcomingLimit)
	assert.True(t, upcoming[0].ScheduledDate.After(testNow))
}

func TestNearbyLocations_DefaultLimit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.CreateLocation(ctx, &models.DisposalLocation{Name: "loc", Latitude: 47.6 + float64(i)/100, Longitude: -122.3})
		require.NoError(t, err)
	}

	nearby, err := svc.NearbyLocations(ctx, repository.NearbyQuery{Lat: 47.6, Lon: -122.3})
	require.NoError(t, err)
	require.Len(t, nearby, DefaultNearbyLimit)
	assert.Equal(t, int64(1), nearby[0].ID)
}

func TestDeleteLocation_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteLocation(context.Background(), 3)
	assert.Equal(t, "Disposal location not found", apperr.Message(err, ""))
}

func TestExportWasteRecords(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateWasteRecord(ctx, &models.WasteRecord{UserID: 1, WasteType: "compost", Amount: 2, Date: testNow})
	require.NoError(t, err)

	raw, err := svc.ExportWasteRecords(ctx, repository.WasteRecordFilter{UserID: 1})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<WasteReport")
	assert.Contains(t, string(raw), "<WasteType>compost</WasteType>")
}

func TestCreateCollection_BlankWasteType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateCollection(context.Background(), &models.Collection{WasteType: "   ", ScheduledDate: testNow.Add(time.Hour)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "wasteType", apperr.Fields(err)[0].Field)

	all, err := svc.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateUser_PasswordTooLong(t *testing.T) {
	svc, _, _ := newTestService(t)

	// 40 two-byte runes: 80 bytes
	_, err := svc.CreateUser(context.Background(), NewUser{
		Username: "alex", Email: "alex@example.com", Password: strings.Repeat("é", 40), FullName: "Alex Johnson",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "password", apperr.Fields(err)[0].Field)

	u := createAlex(t, svc)
	err = svc.ChangePassword(context.Background(), u.ID, "password123", strings.Repeat("x", 80))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "newPassword", apperr.Fields(err)[0].Field)
}
