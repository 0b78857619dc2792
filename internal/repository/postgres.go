package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

//go:embed schema.sql
var schemaSQL string

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore provides database operations on PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore initializes a store over an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the schema and tables when they do not exist
func (r *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresStore) Close() error {
	return r.db.Close()
}

// classify turns driver errors into apperr kinds
func classify(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			msg := "Username already exists"
			if strings.Contains(pqErr.Constraint, "email") {
				msg = "Email already exists"
			}
			return fmt.Errorf("failed to %s: %w", what, apperr.Conflict(msg))
		case pgForeignKeyViolation:
			return fmt.Errorf("failed to %s: %w", what, apperr.Validation("Referenced entity does not exist"))
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to %s: %w", what, apperr.ErrNotFound)
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

const userColumns = `id, username, email, full_name, password_hash, role, preferences, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var prefs []byte
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.PasswordHash,
		&user.Role, &prefs, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	user.Preferences = map[string]any{}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &user.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
	}
	return user, nil
}

// CreateUser creates a new user in the database
func (r *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.DefaultRole
	}
	if user.Preferences == nil {
		user.Preferences = map[string]any{}
	}
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	query := `
		INSERT INTO waste.users (username, email, full_name, password_hash, role, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.FullName, user.PasswordHash, user.Role, prefs).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return classify(err, "create user")
	}
	return nil
}

// GetUser retrieves a user by id
func (r *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM waste.users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "find user")
	}
	return user, nil
}

// FindUserByEmail retrieves a user by email
func (r *PostgresStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM waste.users WHERE lower(email) = lower($1)`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, classify(err, "find user")
	}
	return user, nil
}

// FindUserByUsername retrieves a user by username
func (r *PostgresStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM waste.users WHERE username = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, classify(err, "find user")
	}
	return user, nil
}

// UpdateUser applies a profile patch
func (r *PostgresStore) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	query := `
		UPDATE waste.users
		SET username = COALESCE($2, username),
		    email = COALESCE($3, email),
		    full_name = COALESCE($4, full_name),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, patch.Username, patch.Email, patch.FullName))
	if err != nil {
		return nil, classify(err, "update user")
	}
	return user, nil
}

// MergePreferences writes prefs over the stored preferences
func (r *PostgresStore) MergePreferences(ctx context.Context, id int64, prefs map[string]any) (*models.User, error) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}
	query := `
		UPDATE waste.users
		SET preferences = preferences || $2::jsonb, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, raw))
	if err != nil {
		return nil, classify(err, "update preferences")
	}
	return user, nil
}

// SetPasswordHash replaces the stored password hash
func (r *PostgresStore) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE waste.users SET password_hash = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id, hash)
	if err != nil {
		return classify(err, "update password")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CreateWasteRecord creates a new waste record
func (r *PostgresStore) CreateWasteRecord(ctx context.Context, record *models.WasteRecord) error {
	query := `
		INSERT INTO waste.waste_records (user_id, waste_type, amount, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, record.UserID, string(record.WasteType), record.Amount, record.Date).
		Scan(&record.ID); err != nil {
		return classify(err, "create waste record")
	}
	return nil
}

// ListWasteRecords returns records matching the filter in id order
func (r *PostgresStore) ListWasteRecords(ctx context.Context, filter WasteRecordFilter) ([]models.WasteRecord, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.End.IsZero() {
		args = append(args, filter.End)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	query := `SELECT id, user_id, waste_type, amount, date FROM waste.waste_records`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list waste records")
	}
	defer rows.Close()

	records := []models.WasteRecord{}
	for rows.Next() {
		var rec models.WasteRecord
		var wt string
		if err := rows.Scan(&rec.ID, &rec.UserID, &wt, &rec.Amount, &rec.Date); err != nil {
			return nil, classify(err, "scan waste record")
		}
		rec.WasteType = models.WasteType(wt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list waste records")
	}
	return records, nil
}

const collectionColumns = `id, waste_type, scheduled_date, time_window, location_id, is_recurring, recurring_pattern`

func scanCollection(row rowScanner) (models.Collection, error) {
	var c models.Collection
	var wt string
	var pattern sql.NullString
	if err := row.Scan(&c.ID, &wt, &c.ScheduledDate, &c.TimeWindow, &c.LocationID, &c.IsRecurring, &pattern); err != nil {
		return c, err
	}
	c.WasteType = models.WasteType(wt)
	c.RecurringPattern = nullString(pattern)
	return c, nil
}

func (r *PostgresStore) queryCollections(ctx context.Context, query string, args ...any) ([]models.Collection, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list collections")
	}
	defer rows.Close()

	out := []models.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, classify(err, "scan collection")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list collections")
	}
	return out, nil
}

// CreateCollection creates a new collection
func (r *PostgresStore) CreateCollection(ctx context.Context, c *models.Collection) error {
	query := `
		INSERT INTO waste.collections (waste_type, scheduled_date, time_window, location_id, is_recurring, recurring_pattern)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, string(c.WasteType), c.ScheduledDate, c.TimeWindow, c.LocationID,
		c.IsRecurring, c.RecurringPattern).Scan(&c.ID); err != nil {
		return classify(err, "create collection")
	}
	return nil
}

// GetCollection retrieves a collection by id
func (r *PostgresStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	c, err := scanCollection(r.db.QueryRowContext(ctx,
		`SELECT `+collectionColumns+` FROM waste.collections WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err, "find collection")
	}
	return &c, nil
}

// ListCollections returns every collection in id order
func (r *PostgresStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return r.queryCollections(ctx, `SELECT `+collectionColumns+` FROM waste.collections ORDER BY id`)
}

// ListUpcomingCollections returns collections scheduled after the given time, soonest first
func (r *PostgresStore) ListUpcomingCollections(ctx context.Context, after time.Time, limit int) ([]models.Collection, error) {
	return r.queryCollections(ctx, `
		SELECT `+collectionColumns+` FROM waste.collections
		WHERE scheduled_date > $1
		ORDER BY scheduled_date, id
		LIMIT $2`, after, limitArg(limit))
}

const reminderColumns = `id, user_id, collection_id, reminder_time, is_active`

func scanReminder(row rowScanner) (models.Reminder, error) {
	var rem models.Reminder
	err := row.Scan(&rem.ID, &rem.UserID, &rem.CollectionID, &rem.ReminderTime, &rem.IsActive)
	return rem, err
}

func (r *PostgresStore) queryReminders(ctx context.Context, query string, args ...any) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list reminders")
	}
	defer rows.Close()

	out := []models.Reminder{}
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, classify(err, "scan reminder")
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list reminders")
	}
	return out, nil
}

// CreateReminder creates a new reminder
func (r *PostgresStore) CreateReminder(ctx context.Context, rem *models.Reminder) error {
	query := `
		INSERT INTO waste.reminders (user_id, collection_id, reminder_time, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, rem.UserID, rem.CollectionID, rem.ReminderTime, rem.IsActive).
		Scan(&rem.ID); err != nil {
		return classify(err, "create reminder")
	}
	return nil
}

// GetReminder retrieves a reminder by id
func (r *PostgresStore) GetReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	rem, err := scanReminder(r.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM waste.reminders WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err, "find reminder")
	}
	return &rem, nil
}

// ListRemindersByUser returns a user's reminders in id order
func (r *PostgresStore) ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return r.queryReminders(ctx,
		`SELECT `+reminderColumns+` FROM waste.reminders WHERE user_id = $1 ORDER BY id`, userID)
}

// ListDueReminders returns active reminders due at or before the given time
func (r *PostgresStore) ListDueReminders(ctx context.Context, at time.Time) ([]models.Reminder, error) {
	return r.queryReminders(ctx,
		`SELECT `+reminderColumns+` FROM waste.reminders WHERE is_active AND reminder_time <= $1 ORDER BY id`, at)
}

// UpdateReminder applies a reminder patch
func (r *PostgresStore) UpdateReminder(ctx context.Context, id int64, patch models.ReminderPatch) (*models.Reminder, error) {
	rem, err := scanReminder(r.db.QueryRowContext(ctx, `
		UPDATE waste.reminders SET is_active = COALESCE($2, is_active)
		WHERE id = $1
		RETURNING `+reminderColumns, id, patch.IsActive))
	if err != nil {
		return nil, classify(err, "update reminder")
	}
	return &rem, nil
}

const locationColumns = `id, name, address, city, latitude, longitude, accepted_waste_types, operating_hours,
	phone_number, website, created_at, updated_at`

func scanLocation(row rowScanner) (models.DisposalLocation, error) {
	var l models.DisposalLocation
	var accepted string
	var phone, website sql.NullString
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Latitude, &l.Longitude, &accepted,
		&l.OperatingHours, &phone, &website, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return l, err
	}
	l.AcceptedWasteTypes = models.SplitWasteTypes(accepted)
	l.PhoneNumber = nullString(phone)
	l.Website = nullString(website)
	return l, nil
}

// CreateLocation creates a new disposal location
func (r *PostgresStore) CreateLocation(ctx context.Context, l *models.DisposalLocation) error {
	query := `
		INSERT INTO waste.disposal_locations
			(name, address, city, latitude, longitude, accepted_waste_types, operating_hours, phone_number, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	if err := r.db.QueryRowContext(ctx, query, l.Name, l.Address, l.City, l.Latitude, l.Longitude,
		models.JoinWasteTypes(l.AcceptedWasteTypes), l.OperatingHours, l.PhoneNumber, l.Website).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return classify(err, "create location")
	}
	return nil
}

// GetLocation retrieves a disposal location by id
func (r *PostgresStore) GetLocation(ctx context.Context, id int64) (*models.DisposalLocation, error) {
	l, err := scanLocation(r.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM waste.disposal_locations WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err, "find location")
	}
	return &l, nil
}

// ListLocations returns locations in id order, optionally only those accepting wasteType
func (r *PostgresStore) ListLocations(ctx context.Context, wasteType string) ([]models.DisposalLocation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+locationColumns+` FROM waste.disposal_locations
		WHERE $1 = '' OR lower($1) = ANY (string_to_array(lower(replace(accepted_waste_types, ' ', '')), ','))
		ORDER BY id`, strings.TrimSpace(wasteType))
	if err != nil {
		return nil, classify(err, "list locations")
	}
	defer rows.Close()

	out := []models.DisposalLocation{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, classify(err, "scan location")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list locations")
	}
	return out, nil
}

// UpdateLocation applies a location patch
func (r *PostgresStore) UpdateLocation(ctx context.Context, id int64, patch models.LocationPatch) (*models.DisposalLocation, error) {
	var accepted *string
	if patch.AcceptedWasteTypes != nil {
		joined := models.JoinWasteTypes(patch.AcceptedWasteTypes)
		accepted = &joined
	}
	query := `
		UPDATE waste.disposal_locations
		SET name = COALESCE($2, name),
		    address = COALESCE($3, address),
		    city = COALESCE($4, city),
		    latitude = COALESCE($5, latitude),
		    longitude = COALESCE($6, longitude),
		    accepted_waste_types = COALESCE($7, accepted_waste_types),
		    operating_hours = COALESCE($8, operating_hours),
		    phone_number = COALESCE($9, phone_number),
		    website = COALESCE($10, website),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + locationColumns
	l, err := scanLocation(r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Address, patch.City,
		patch.Latitude, patch.Longitude, accepted, patch.OperatingHours, patch.PhoneNumber, patch.Website))
	if err != nil {
		return nil, classify(err, "update location")
	}
	return &l, nil
}

// DeleteLocation removes a disposal location
func (r *PostgresStore) DeleteLocation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM waste.disposal_locations WHERE id = $1`, id)
	if err != nil {
		return classify(err, "delete location")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("location %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CreateTip creates a new recycling tip
func (r *PostgresStore) CreateTip(ctx context.Context, tip *models.RecyclingTip) error {
	query := `
		INSERT INTO waste.recycling_tips (title, description, category, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, tip.Title, tip.Description, tip.Category, tip.ImageURL).
		Scan(&tip.ID); err != nil {
		return classify(err, "create recycling tip")
	}
	return nil
}

// ListTips returns tips in id order, optionally filtered by category
func (r *PostgresStore) ListTips(ctx context.Context, category string, limit int) ([]models.RecyclingTip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, category, image_url FROM waste.recycling_tips
		WHERE $1 = '' OR category = $1
		ORDER BY id
		LIMIT $2`, category, limitArg(limit))
	if err != nil {
		return nil, classify(err, "list recycling tips")
	}
	defer rows.Close()

	out := []models.RecyclingTip{}
	for rows.Next() {
		var tip models.RecyclingTip
		var image sql.NullString
		if err := rows.Scan(&tip.ID, &tip.Title, &tip.Description, &tip.Category, &image); err != nil {
			return nil, classify(err, "scan recycling tip")
		}
		tip.ImageURL = nullString(image)
		out = append(out, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list recycling tips")
	}
	return out, nil
}

// CreateResource creates a new educational resource
func (r *PostgresStore) CreateResource(ctx context.Context, res *models.EducationalResource) error {
	query := `
		INSERT INTO waste.educational_resources (title, description, image_url, content_url, resource_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, res.Title, res.Description, res.ImageURL, res.ContentURL, res.ResourceType).
		Scan(&res.ID); err != nil {
		return classify(err, "create educational resource")
	}
	return nil
}

// ListResources returns resources in id order, optionally filtered by type
func (r *PostgresStore) ListResources(ctx context.Context, resourceType string, limit int) ([]models.EducationalResource, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, image_url, content_url, resource_type FROM waste.educational_resources
		WHERE $1 = '' OR resource_type = $1
		ORDER BY id
		LIMIT $2`, resourceType, limitArg(limit))
	if err != nil {
		return nil, classify(err, "list educational resources")
	}
	defer rows.Close()

	out := []models.EducationalResource{}
	for rows.Next() {
		var res models.EducationalResource
		if err := rows.Scan(&res.ID, &res.Title, &res.Description, &res.ImageURL, &res.ContentURL, &res.ResourceType); err != nil {
			return nil, classify(err, "scan educational resource")
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list educational resources")
	}
	return out, nil
}

// SaveSnapshot stores a processing snapshot
func (r *PostgresStore) SaveSnapshot(ctx context.Context, s *models.StatisticsSnapshot) error {
	stats, err := json.Marshal(s.Statistics)
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	impact, err := json.Marshal(s.Impact)
	if err != nil {
		return fmt.Errorf("failed to encode impact: %w", err)
	}
	query := `
		INSERT INTO waste.statistics_snapshots (run_id, window_start, window_end, record_count, statistics, impact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	if err := r.db.QueryRowContext(ctx, query, s.RunID, s.WindowStart, s.WindowEnd, s.RecordCount, stats, impact).
		Scan(&s.ID, &s.CreatedAt); err != nil {
		return classify(err, "save statistics snapshot")
	}
	return nil
}

// ListSnapshots returns snapshots newest first
func (r *PostgresStore) ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, window_start, window_end, record_count, statistics, impact, created_at
		FROM waste.statistics_snapshots
		ORDER BY id DESC
		LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, classify(err, "list statistics snapshots")
	}
	defer rows.Close()

	out := []models.StatisticsSnapshot{}
	for rows.Next() {
		var s models.StatisticsSnapshot
		var stats, impact []byte
		if err := rows.Scan(&s.ID, &s.RunID, &s.WindowStart, &s.WindowEnd, &s.RecordCount, &stats, &impact, &s.CreatedAt); err != nil {
			return nil, classify(err, "scan statistics snapshot")
		}
		if err := json.Unmarshal(stats, &s.Statistics); err != nil {
			return nil, fmt.Errorf("failed to decode statistics: %w", err)
		}
		if err := json.Unmarshal(impact, &s.Impact); err != nil {
			return nil, fmt.Errorf("failed to decode impact: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list statistics snapshots")
	}
	return out, nil
}
