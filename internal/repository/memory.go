package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

// table is one keyed entity collection with a process-local id counter.
// Ids from different processes collide, so the memory store suits a single instance only.
type table[T any] struct {
	lastID int64
	rows   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) nextID() int64 {
	t.lastID++
	return t.lastID
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// scan returns matching rows in id order
func (t *table[T]) scan(match func(T) bool) []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v := t.rows[id]; match == nil || match(v) {
			out = append(out, v)
		}
	}
	return out
}

// MemoryStore keeps every collection in process memory
type MemoryStore struct {
	mu          sync.RWMutex
	now         func() time.Time
	users       *table[models.User]
	records     *table[models.WasteRecord]
	collections *table[models.Collection]
	reminders   *table[models.Reminder]
	locations   *table[models.DisposalLocation]
	tips        *table[models.RecyclingTip]
	resources   *table[models.EducationalResource]
	snapshots   *table[models.StatisticsSnapshot]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore initializes an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:         time.Now,
		users:       newTable[models.User](),
		records:     newTable[models.WasteRecord](),
		collections: newTable[models.Collection](),
		reminders:   newTable[models.Reminder](),
		locations:   newTable[models.DisposalLocation](),
		tips:        newTable[models.RecyclingTip](),
		resources:   newTable[models.EducationalResource](),
		snapshots:   newTable[models.StatisticsSnapshot](),
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func cloneUser(u models.User) models.User {
	u.Preferences = models.MergePreferences(u.Preferences, nil)
	return u
}

func cloneLocation(l models.DisposalLocation) models.DisposalLocation {
	l.AcceptedWasteTypes = append([]string{}, l.AcceptedWasteTypes...)
	return l
}

// CreateUser stores a new user, rejecting a taken email or username
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUniqueLocked(0, user.Email, user.Username); err != nil {
		return err
	}
	now := s.now()
	user.ID = s.users.nextID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.DefaultRole
	}
	if user.Preferences == nil {
		user.Preferences = map[string]any{}
	}
	s.users.rows[user.ID] = cloneUser(*user)
	return nil
}

func (s *MemoryStore) checkUniqueLocked(selfID int64, email, username string) error {
	for id, u := range s.users.rows {
		if id == selfID {
			continue
		}
		if email != "" && strings.EqualFold(u.Email, email) {
			return fmt.Errorf("email %q: %w", email, apperr.Conflict("Email already exists"))
		}
		if username != "" && u.Username == username {
			return fmt.Errorf("username %q: %w", username, apperr.Conflict("Username already exists"))
		}
	}
	return nil
}

// GetUser retrieves a user by id
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	c := cloneUser(u)
	return &c, nil
}

// FindUserByEmail retrieves a user by email, case-insensitively
func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

// FindUserByUsername retrieves a user by username
func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Username == username })
}

func (s *MemoryStore) findUser(match func(models.User) bool) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.users.scan(match)
	if len(found) == 0 {
		return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
	}
	c := cloneUser(found[0])
	return &c, nil
}

// UpdateUser applies a profile patch
func (s *MemoryStore) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	var email, username string
	if patch.Email != nil {
		email = *patch.Email
	}
	if patch.Username != nil {
		username = *patch.Username
	}
	if err := s.checkUniqueLocked(id, email, username); err != nil {
		return nil, err
	}
	u = cloneUser(u)
	patch.Apply(&u)
	u.UpdatedAt = s.now()
	s.users.rows[id] = u
	c := cloneUser(u)
	return &c, nil
}

// MergePreferences writes prefs over the stored preferences
func (s *MemoryStore) MergePreferences(ctx context.Context, id int64, prefs map[string]any) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	u.Preferences = models.MergePreferences(u.Preferences, prefs)
	u.UpdatedAt = s.now()
	s.users.rows[id] = u
	c := cloneUser(u)
	return &c, nil
}

// SetPasswordHash replaces the stored password hash
func (s *MemoryStore) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	u.PasswordHash = hash
	u.UpdatedAt = s.now()
	s.users.rows[id] = u
	return nil
}

// CreateWasteRecord stores a new waste record
func (s *MemoryStore) CreateWasteRecord(ctx context.Context, record *models.WasteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.records.nextID()
	s.records.rows[record.ID] = *record
	return nil
}

// ListWasteRecords returns records matching the filter in id order
func (s *MemoryStore) ListWasteRecords(ctx context.Context, filter WasteRecordFilter) ([]models.WasteRecord, error) {
	if filter.Empty() {
		return []models.WasteRecord{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records.scan(filter.Match), nil
}

// CreateCollection stores a new collection
func (s *MemoryStore) CreateCollection(ctx context.Context, c *models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.collections.nextID()
	s.collections.rows[c.ID] = *c
	return nil
}

// GetCollection retrieves a collection by id
func (s *MemoryStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections.get(id)
	if !ok {
		return nil, fmt.Errorf("collection %d: %w", id, apperr.ErrNotFound)
	}
	return &c, nil
}

// ListCollections returns every collection in id order
func (s *MemoryStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collections.scan(nil), nil
}

// ListUpcomingCollections returns collections scheduled after the given time, soonest first
func (s *MemoryStore) ListUpcomingCollections(ctx context.Context, after time.Time, limit int) ([]models.Collection, error) {
	s.mu.RLock()
	upcoming := s.collections.scan(func(c models.Collection) bool { return c.ScheduledDate.After(after) })
	s.mu.RUnlock()

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(upcoming[j].ScheduledDate)
	})
	return limitSlice(upcoming, limit), nil
}

// CreateReminder stores a new reminder
func (s *MemoryStore) CreateReminder(ctx context.Context, r *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.reminders.nextID()
	s.reminders.rows[r.ID] = *r
	return nil
}

// GetReminder retrieves a reminder by id
func (s *MemoryStore) GetReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reminders.get(id)
	if !ok {
		return nil, fmt.Errorf("reminder %d: %w", id, apperr.ErrNotFound)
	}
	return &r, nil
}

// ListRemindersByUser returns a user's reminders in id order
func (s *MemoryStore) ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reminders.scan(func(r models.Reminder) bool { return r.UserID == userID }), nil
}

// ListDueReminders returns active reminders due at or before the given time
func (s *MemoryStore) ListDueReminders(ctx context.Context, at time.Time) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reminders.scan(func(r models.Reminder) bool {
		return r.IsActive && !r.ReminderTime.After(at)
	}), nil
}

// UpdateReminder applies a reminder patch
func (s *MemoryStore) UpdateReminder(ctx context.Context, id int64, patch models.ReminderPatch) (*models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders.get(id)
	if !ok {
		return nil, fmt.Errorf("reminder %d: %w", id, apperr.ErrNotFound)
	}
	if patch.IsActive != nil {
		r.IsActive = *patch.IsActive
	}
	s.reminders.rows[id] = r
	return &r, nil
}

// CreateLocation stores a new disposal location
func (s *MemoryStore) CreateLocation(ctx context.Context, l *models.DisposalLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	l.ID = s.locations.nextID()
	l.CreatedAt = now
	l.UpdatedAt = now
	s.locations.rows[l.ID] = cloneLocation(*l)
	return nil
}

// GetLocation retrieves a disposal location by id
func (s *MemoryStore) GetLocation(ctx context.Context, id int64) (*models.DisposalLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locations.get(id)
	if !ok {
		return nil, fmt.Errorf("location %d: %w", id, apperr.ErrNotFound)
	}
	c := cloneLocation(l)
	return &c, nil
}

// ListLocations returns locations in id order, optionally only those accepting wasteType
func (s *MemoryStore) ListLocations(ctx context.Context, wasteType string) ([]models.DisposalLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.locations.scan(func(l models.DisposalLocation) bool {
		return wasteType == "" || l.Accepts(wasteType)
	})
	for i := range found {
		found[i] = cloneLocation(found[i])
	}
	return found, nil
}

// UpdateLocation applies a location patch
func (s *MemoryStore) UpdateLocation(ctx context.Context, id int64, patch models.LocationPatch) (*models.DisposalLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations.get(id)
	if !ok {
		return nil, fmt.Errorf("location %d: %w", id, apperr.ErrNotFound)
	}
	l = cloneLocation(l)
	patch.Apply(&l)
	l.UpdatedAt = s.now()
	s.locations.rows[id] = l
	c := cloneLocation(l)
	return &c, nil
}

// DeleteLocation removes a disposal location
func (s *MemoryStore) DeleteLocation(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locations.get(id); !ok {
		return fmt.Errorf("location %d: %w", id, apperr.ErrNotFound)
	}
	delete(s.locations.rows, id)
	return nil
}

// CreateTip stores a new recycling tip
func (s *MemoryStore) CreateTip(ctx context.Context, tip *models.RecyclingTip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tip.ID = s.tips.nextID()
	s.tips.rows[tip.ID] = *tip
	return nil
}

// ListTips returns tips in id order, optionally filtered by category
func (s *MemoryStore) ListTips(ctx context.Context, category string, limit int) ([]models.RecyclingTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.tips.scan(func(t models.RecyclingTip) bool { return category == "" || t.Category == category })
	return limitSlice(found, limit), nil
}

// CreateResource stores a new educational resource
func (s *MemoryStore) CreateResource(ctx context.Context, res *models.EducationalResource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = s.resources.nextID()
	s.resources.rows[res.ID] = *res
	return nil
}

// ListResources returns resources in id order, optionally filtered by type
func (s *MemoryStore) ListResources(ctx context.Context, resourceType string, limit int) ([]models.EducationalResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.resources.scan(func(r models.EducationalResource) bool {
		return resourceType == "" || r.ResourceType == resourceType
	})
	return limitSlice(found, limit), nil
}

// SaveSnapshot stores a processing snapshot
func (s *MemoryStore) SaveSnapshot(ctx context.Context, snap *models.StatisticsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.ID = s.snapshots.nextID()
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = s.now()
	}
	s.snapshots.rows[snap.ID] = *snap
	return nil
}

// ListSnapshots returns snapshots newest first
func (s *MemoryStore) ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	s.mu.RLock()
	found := s.snapshots.scan(nil)
	s.mu.RUnlock()

	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return limitSlice(found, limit), nil
}
