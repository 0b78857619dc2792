package service

import (
	"context"
	"errors"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

// CreateCollection schedules a pickup
func (s *Service) CreateCollection(ctx context.Context, c *models.Collection) (*models.Collection, error) {
	c.WasteType = models.NormalizeWasteType(string(c.WasteType))
	if c.WasteType == "" {
		return nil, apperr.Validation("Invalid collection data",
			apperr.FieldError{Field: "wasteType", Message: "wasteType is required"})
	}
	if c.ScheduledDate.IsZero() {
		return nil, apperr.Validation("Invalid collection data",
			apperr.FieldError{Field: "scheduledDate", Message: "scheduledDate is required"})
	}
	if !c.IsRecurring {
		c.RecurringPattern = nil
	}
	if err := s.store.CreateCollection(ctx, c); err != nil {
		return nil, err
	}
	s.log.Infof("Collection %d scheduled for %s", c.ID, c.ScheduledDate.Format("2006-01-02"))
	return c, nil
}

// GetCollection retrieves a collection by id
func (s *Service) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	c, err := s.store.GetCollection(ctx, id)
	if err != nil {
		return nil, notFound(err, "Collection not found")
	}
	return c, nil
}

// ListCollections returns every collection
func (s *Service) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.store.ListCollections(ctx)
}

// UpcomingCollections returns the next collections after now, soonest first
func (s *Service) UpcomingCollections(ctx context.Context, limit int) ([]models.Collection, error) {
	return s.store.ListUpcomingCollections(ctx, s.now(), limitOr(limit, DefaultUpcomingLimit))
}

// CreateReminder stores a reminder for an existing collection
func (s *Service) CreateReminder(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	if _, err := s.store.GetCollection(ctx, r.CollectionID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Validation("Invalid reminder data",
				apperr.FieldError{Field: "collectionId", Message: "collection does not exist"})
		}
		return nil, err
	}
	if err := s.store.CreateReminder(ctx, r); err != nil {
		return nil, err
	}
	s.log.Infof("Reminder %d created for user %d", r.ID, r.UserID)
	return r, nil
}

// ListReminders returns a user's reminders
func (s *Service) ListReminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return s.store.ListRemindersByUser(ctx, userID)
}

// UpdateReminder applies a reminder patch
func (s *Service) UpdateReminder(ctx context.Context, id int64, patch models.ReminderPatch) (*models.Reminder, error) {
	r, err := s.store.UpdateReminder(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "Reminder not found")
	}
	return r, nil
}
