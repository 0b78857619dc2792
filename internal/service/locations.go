package service

import (
	"context"

	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

// CreateLocation stores a disposal location
func (s *Service) CreateLocation(ctx context.Context, l *models.DisposalLocation) (*models.DisposalLocation, error) {
	if l.AcceptedWasteTypes == nil {
		l.AcceptedWasteTypes = []string{}
	}
	if err := s.store.CreateLocation(ctx, l); err != nil {
		return nil, err
	}
	s.log.Infof("Disposal location created: %s", l.Name)
	return l, nil
}

// GetLocation retrieves a disposal location by id
func (s *Service) GetLocation(ctx context.Context, id int64) (*models.DisposalLocation, error) {
	l, err := s.store.GetLocation(ctx, id)
	if err != nil {
		return nil, notFound(err, "Disposal location not found")
	}
	return l, nil
}

// ListLocations returns every location, or those accepting wasteType
func (s *Service) ListLocations(ctx context.Context, wasteType string) ([]models.DisposalLocation, error) {
	return s.store.ListLocations(ctx, wasteType)
}

// UpdateLocation applies a location patch
func (s *Service) UpdateLocation(ctx context.Context, id int64, patch models.LocationPatch) (*models.DisposalLocation, error) {
	l, err := s.store.UpdateLocation(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "Disposal location not found")
	}
	return l, nil
}

// DeleteLocation removes a disposal location
func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.store.DeleteLocation(ctx, id); err != nil {
		return notFound(err, "Disposal location not found")
	}
	s.log.Infof("Disposal location deleted: %d", id)
	return nil
}

// NearbyLocations ranks locations by distance from the query point
func (s *Service) NearbyLocations(ctx context.Context, q repository.NearbyQuery) ([]models.NearbyLocation, error) {
	q.Limit = limitOr(q.Limit, DefaultNearbyLimit)
	return repository.NearbyLocations(ctx, s.store, q)
}
