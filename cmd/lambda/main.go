// Command lambda serves the REST API behind an API Gateway HTTP API
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/app"
	"github.com/Dan9191/waste-service/internal/config"
)

var proxy func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// init runs once per cold start
func init() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger := app.NewLogger(cfg)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize application: %v", err)
	}
	proxy = a.LambdaHandler()
	logger.Infof("Lambda API initialized (store=%s)", cfg.StoreBackend)
}

func main() {
	lambda.Start(proxy)
}
