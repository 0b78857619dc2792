package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/aggregation"
	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

// ProcessingWindow is how far back each processing run looks
const ProcessingWindow = 24 * time.Hour

// ProcessWasteData aggregates every record of the last 24 hours and stores a snapshot
func (s *Service) ProcessWasteData(ctx context.Context) (*models.StatisticsSnapshot, error) {
	end := s.now()
	start := end.Add(-ProcessingWindow)
	runID := uuid.NewString()
	log := s.log.WithField("run_id", runID)
	log.Info("Starting waste data processing job")

	records, err := s.store.ListWasteRecords(ctx, repository.WasteRecordFilter{Start: start, End: end})
	if err != nil {
		log.Errorf("Error processing waste data: %v", err)
		return nil, fmt.Errorf("failed to load waste records: %w", err)
	}

	snapshot := &models.StatisticsSnapshot{
		RunID:       runID,
		WindowStart: start,
		WindowEnd:   end,
		RecordCount: len(records),
		Statistics:  aggregation.Statistics(records),
		Impact:      aggregation.EnvironmentalImpact(records, s.factors),
		CreatedAt:   end,
	}
	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		log.Errorf("Error storing statistics: %v", err)
		return nil, fmt.Errorf("failed to save statistics: %w", err)
	}

	log.WithFields(logrus.Fields{
		"records":     snapshot.RecordCount,
		"total_waste": snapshot.Statistics.TotalWaste,
	}).Info("Completed waste data processing job successfully")
	return snapshot, nil
}

// ListSnapshots returns the latest processing snapshots
func (s *Service) ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	return s.store.ListSnapshots(ctx, limitOr(limit, DefaultContentLimit))
}

// DispatchReminders sends every due reminder and deactivates it.
// A reminder whose delivery fails stays active and is retried on the next run.
func (s *Service) DispatchReminders(ctx context.Context) (int, error) {
	due, err := s.store.ListDueReminders(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to load due reminders: %w", err)
	}

	sent := 0
	inactive := false
	for _, r := range due {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		log := s.log.WithFields(logrus.Fields{"reminder_id": r.ID, "user_id": r.UserID, "collection_id": r.CollectionID})

		err := s.deliverReminder(ctx, r)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			log.Warn("Reminder target no longer exists, deactivating")
		case err != nil:
			log.Warnf("Reminder delivery failed: %v", err)
			continue
		default:
			sent++
		}
		if _, err := s.store.UpdateReminder(ctx, r.ID, models.ReminderPatch{IsActive: &inactive}); err != nil {
			log.Errorf("Failed to deactivate reminder: %v", err)
		}
	}

	if len(due) > 0 {
		s.log.Infof("Dispatched %d of %d due reminders", sent, len(due))
	}
	return sent, nil
}

func (s *Service) deliverReminder(ctx context.Context, r models.Reminder) error {
	user, err := s.store.GetUser(ctx, r.UserID)
	if err != nil {
		return err
	}
	c, err := s.store.GetCollection(ctx, r.CollectionID)
	if err != nil {
		return err
	}
	return s.notifier.SendCollectionReminder(ctx, user, c)
}
