package repository

import (
	"context"
	"time"

	"github.com/Dan9191/waste-service/internal/models"
)

// UserRepository stores users. Email and username are unique.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	MergePreferences(ctx context.Context, id int64, prefs map[string]any) (*models.User, error)
	SetPasswordHash(ctx context.Context, id int64, hash string) error
}

// WasteRecordRepository stores immutable waste records
type WasteRecordRepository interface {
	CreateWasteRecord(ctx context.Context, record *models.WasteRecord) error
	ListWasteRecords(ctx context.Context, filter WasteRecordFilter) ([]models.WasteRecord, error)
}

// CollectionRepository stores scheduled pickups
type CollectionRepository interface {
	CreateCollection(ctx context.Context, c *models.Collection) error
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)
	// ListUpcomingCollections returns collections scheduled strictly after the given time,
	// soonest first.
	ListUpcomingCollections(ctx context.Context, after time.Time, limit int) ([]models.Collection, error)
}

// ReminderRepository stores collection reminders
type ReminderRepository interface {
	CreateReminder(ctx context.Context, r *models.Reminder) error
	GetReminder(ctx context.Context, id int64) (*models.Reminder, error)
	ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	// ListDueReminders returns active reminders whose time is at or before the given time
	ListDueReminders(ctx context.Context, at time.Time) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, patch models.ReminderPatch) (*models.Reminder, error)
}

// LocationRepository stores disposal locations
type LocationRepository interface {
	CreateLocation(ctx context.Context, l *models.DisposalLocation) error
	GetLocation(ctx context.Context, id int64) (*models.DisposalLocation, error)
	// ListLocations returns every location, or those accepting wasteType when it is not empty
	ListLocations(ctx context.Context, wasteType string) ([]models.DisposalLocation, error)
	UpdateLocation(ctx context.Context, id int64, patch models.LocationPatch) (*models.DisposalLocation, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// ContentRepository stores recycling tips and educational resources.
// An empty category/type lists everything; limit <= 0 means no limit.
type ContentRepository interface {
	CreateTip(ctx context.Context, tip *models.RecyclingTip) error
	ListTips(ctx context.Context, category string, limit int) ([]models.RecyclingTip, error)
	CreateResource(ctx context.Context, res *models.EducationalResource) error
	ListResources(ctx context.Context, resourceType string, limit int) ([]models.EducationalResource, error)
}

// StatisticsRepository stores snapshots written by the processing job
type StatisticsRepository interface {
	SaveSnapshot(ctx context.Context, s *models.StatisticsSnapshot) error
	// ListSnapshots returns the newest snapshots first
	ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error)
}

// Store is the full set of entity collections behind one backing
type Store interface {
	UserRepository
	WasteRecordRepository
	CollectionRepository
	ReminderRepository
	LocationRepository
	ContentRepository
	StatisticsRepository

	Ping(ctx context.Context) error
	Close() error
}
