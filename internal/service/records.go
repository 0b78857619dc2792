package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/waste-service/internal/aggregation"
	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/report"
	"github.com/Dan9191/waste-service/internal/repository"
)

// CreateWasteRecord stores a weighed disposal. A missing date means now.
func (s *Service) CreateWasteRecord(ctx context.Context, record *models.WasteRecord) (*models.WasteRecord, error) {
	record.WasteType = models.NormalizeWasteType(string(record.WasteType))
	if record.WasteType == "" {
		return nil, apperr.Validation("Invalid waste record data",
			apperr.FieldError{Field: "wasteType", Message: "wasteType is required"})
	}
	if record.Amount < 0 {
		return nil, apperr.Validation("Invalid waste record data",
			apperr.FieldError{Field: "amount", Message: "amount must not be negative"})
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}
	if err := s.store.CreateWasteRecord(ctx, record); err != nil {
		return nil, err
	}
	s.log.Debugf("Waste record %d created for user %d: %.2f kg %s", record.ID, record.UserID, record.Amount, record.WasteType)
	return record, nil
}

// ListWasteRecords returns records matching the filter
func (s *Service) ListWasteRecords(ctx context.Context, filter repository.WasteRecordFilter) ([]models.WasteRecord, error) {
	return s.store.ListWasteRecords(ctx, filter)
}

// ExportWasteRecords renders the filtered records with their statistics as an XML report
func (s *Service) ExportWasteRecords(ctx context.Context, filter repository.WasteRecordFilter) ([]byte, error) {
	records, err := s.store.ListWasteRecords(ctx, filter)
	if err != nil {
		return nil, err
	}
	doc := report.WasteReport{
		UserID:      filter.UserID,
		Start:       filter.Start,
		End:         filter.End,
		GeneratedAt: s.now(),
		Records:     records,
		Statistics:  aggregation.Statistics(records),
		Impact:      aggregation.EnvironmentalImpact(records, s.factors),
	}
	out, err := doc.XML()
	if err != nil {
		return nil, fmt.Errorf("failed to render waste report: %w", err)
	}
	return out, nil
}
