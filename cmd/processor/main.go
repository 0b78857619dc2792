// Command processor runs the scheduled jobs from EventBridge rules.
// The rule's detail selects the job: {"job":"process"} or {"job":"reminders"}.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/app"
	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/scheduler"
)

type jobDetail struct {
	Job string `json:"job"`
}

var (
	a      *app.App
	logger *logrus.Logger
)

func init() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	cfg.SeedData = false
	logger = app.NewLogger(cfg)

	a, err = app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize application: %v", err)
	}
}

func handleEvent(ctx context.Context, event events.CloudWatchEvent) error {
	var detail jobDetail
	if len(event.Detail) > 0 {
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			logger.Warnf("Ignoring unreadable event detail: %v", err)
		}
	}
	logger.WithFields(logrus.Fields{"event_id": event.ID, "job": detail.Job}).Info("Processing scheduled event")
	return scheduler.RunJob(ctx, a.Service, detail.Job)
}

func main() {
	lambda.Start(handleEvent)
}
