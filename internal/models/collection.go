package models

import "time"

// Collection is a scheduled curbside pickup
type Collection struct {
	ID               int64     `json:"id"`
	WasteType        WasteType `json:"wasteType"`
	ScheduledDate    time.Time `json:"scheduledDate"`
	TimeWindow       string    `json:"timeWindow"` // e.g. "8AM - 10AM"
	LocationID       int64     `json:"locationId"`
	IsRecurring      bool      `json:"isRecurring"`
	RecurringPattern *string   `json:"recurringPattern"` // e.g. "weekly", "biweekly"
}

// Reminder notifies a user ahead of a collection
type Reminder struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CollectionID int64     `json:"collectionId"`
	ReminderTime time.Time `json:"reminderTime"`
	IsActive     bool      `json:"isActive"`
}

// ReminderPatch holds the mutable reminder fields
type ReminderPatch struct {
	IsActive *bool
}
