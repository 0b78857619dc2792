package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/models"
)

const (
	ProcessingJobTimeout = 5 * time.Minute
	ReminderJobTimeout   = 2 * time.Minute
)

// Jobs is the work the scheduler triggers
type Jobs interface {
	ProcessWasteData(ctx context.Context) (*models.StatisticsSnapshot, error)
	DispatchReminders(ctx context.Context) (int, error)
}

// Scheduler runs the periodic processing and reminder jobs in UTC
type Scheduler struct {
	cron *cron.Cron
	jobs Jobs
	log  *logrus.Logger
}

// New schedules both jobs. An empty spec disables that job.
func New(jobs Jobs, log *logrus.Logger, processingSpec, reminderSpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		jobs: jobs,
		log:  log,
	}

	if processingSpec != "" {
		if _, err := s.cron.AddFunc(processingSpec, s.runProcessing); err != nil {
			return nil, fmt.Errorf("failed to schedule waste processing %q: %w", processingSpec, err)
		}
	}
	if reminderSpec != "" {
		if _, err := s.cron.AddFunc(reminderSpec, s.runReminders); err != nil {
			return nil, fmt.Errorf("failed to schedule reminder dispatch %q: %w", reminderSpec, err)
		}
	}
	log.Infof("Scheduled cron jobs: processing='%s', reminders='%s'", processingSpec, reminderSpec)
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Cron jobs still running at shutdown")
	}
}

// Entries reports how many jobs are scheduled
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) runProcessing() {
	ctx, cancel := context.WithTimeout(context.Background(), ProcessingJobTimeout)
	defer cancel()

	s.log.Info("Starting waste processing cron job...")
	if _, err := s.jobs.ProcessWasteData(ctx); err != nil {
		s.log.WithError(err).Error("Waste processing job failed")
	}
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), ReminderJobTimeout)
	defer cancel()

	sent, err := s.jobs.DispatchReminders(ctx)
	if err != nil {
		s.log.WithError(err).Error("Reminder dispatch job failed")
		return
	}
	if sent > 0 {
		s.log.Infof("Reminder dispatch sent %d reminders", sent)
	}
}

// Job names accepted by RunJob
const (
	JobProcess   = "process"
	JobReminders = "reminders"
)

// RunJob runs one named job synchronously, for triggers outside the cron loop
func RunJob(ctx context.Context, jobs Jobs, name string) error {
	switch name {
	case JobProcess, "":
		_, err := jobs.ProcessWasteData(ctx)
		return err
	case JobReminders:
		_, err := jobs.DispatchReminders(ctx)
		return err
	default:
		return fmt.Errorf("unknown job %q", name)
	}
}
