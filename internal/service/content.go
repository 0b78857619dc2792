package service

import (
	"context"

	"github.com/Dan9191/waste-service/internal/models"
)

func (s *Service) CreateTip(ctx context.Context, tip *models.RecyclingTip) (*models.RecyclingTip, error) {
	if err := s.store.CreateTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// ListTips returns tips, optionally in one category
func (s *Service) ListTips(ctx context.Context, category string, limit int) ([]models.RecyclingTip, error) {
	return s.store.ListTips(ctx, category, limitOr(limit, DefaultContentLimit))
}

func (s *Service) CreateResource(ctx context.Context, res *models.EducationalResource) (*models.EducationalResource, error) {
	if err := s.store.CreateResource(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListResources returns educational resources, optionally of one type
func (s *Service) ListResources(ctx context.Context, resourceType string, limit int) ([]models.EducationalResource, error) {
	return s.store.ListResources(ctx, resourceType, limitOr(limit, DefaultContentLimit))
}
