package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/models"
)

type fakeJobs struct {
	processed  int
	dispatched int
	err        error
}

func (f *fakeJobs) ProcessWasteData(ctx context.Context) (*models.StatisticsSnapshot, error) {
	f.processed++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	return &models.StatisticsSnapshot{}, f.err
}

func (f *fakeJobs) DispatchReminders(ctx context.Context) (int, error) {
	f.dispatched++
	return 2, f.err
}

func TestNew(t *testing.T) {
	logger, _ := test.NewNullLogger()

	s, err := New(&fakeJobs{}, logger, "0 0 * * *", "*/5 * * * *")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s, err = New(&fakeJobs{}, logger, "", "*/5 * * * *")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	_, err = New(&fakeJobs{}, logger, "not a spec", "")
	assert.Error(t, err)
}

func TestRunJobs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	jobs := &fakeJobs{}
	s, err := New(jobs, logger, "@hourly", "@every 5m")
	require.NoError(t, err)
	hook.Reset()

	s.runProcessing()
	s.runReminders()
	assert.Equal(t, 1, jobs.processed)
	assert.Equal(t, 1, jobs.dispatched)
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, e.Level)
	}

	jobs.err = errors.New("store down")
	hook.Reset()
	s.runReminders()
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestStartStop(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := New(&fakeJobs{}, logger, "@hourly", "")
	require.NoError(t, err)

	s.Start()
	s.Stop(context.Background())
}

func TestRunJob(t *testing.T) {
	jobs := &fakeJobs{}
	ctx, cancel := context.WithTimeout(context.Background(), ProcessingJobTimeout)
	defer cancel()

	require.NoError(t, RunJob(ctx, jobs, ""))
	require.NoError(t, RunJob(ctx, jobs, JobReminders))
	assert.Equal(t, 1, jobs.processed)
	assert.Equal(t, 1, jobs.dispatched)
	assert.Error(t, RunJob(ctx, jobs, "vacuum"))
}

func TestDefaultProcessingSpec_RunsDaily(t *testing.T) {
	sched, err := cron.ParseStandard("0 0 * * *")
	require.NoError(t, err)

	first := sched.Next(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	second := sched.Next(first)
	assert.Equal(t, 24*time.Hour, second.Sub(first), "runs must not overlap the 24h processing window")
}
