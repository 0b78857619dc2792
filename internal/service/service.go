package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/aggregation"
	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

// Default list sizes when the client does not pass a limit
const (
	DefaultUpcomingLimit = 10
	DefaultNearbyLimit   = 5
	DefaultContentLimit  = 10

	dashboardItems      = 3
	dashboardWindowDays = 30
)

// Notifier delivers collection reminders to users
type Notifier interface {
	SendCollectionReminder(ctx context.Context, user *models.User, c *models.Collection) error
}

// Service handles business logic
type Service struct {
	store    repository.Store
	log      *logrus.Logger
	config   *config.Config
	notifier Notifier
	factors  aggregation.FactorTable
	now      func() time.Time
}

// NewService initializes a new service
func NewService(store repository.Store, log *logrus.Logger, cfg *config.Config, notifier Notifier) *Service {
	return &Service{
		store:    store,
		log:      log,
		config:   cfg,
		notifier: notifier,
		factors:  aggregation.DefaultFactors,
		now:      time.Now,
	}
}

// Ping checks the backing store
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// notFound replaces a repository not-found error with one carrying a public message
func notFound(err error, msg string) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

func limitOr(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

// Environment is the deployment name from config
func (s *Service) Environment() string {
	return s.config.Env
}

// Now is the service clock
func (s *Service) Now() time.Time {
	return s.now()
}
