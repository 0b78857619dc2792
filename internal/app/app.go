package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/handler"
	"github.com/Dan9191/waste-service/internal/middleware"
	"github.com/Dan9191/waste-service/internal/repository"
	"github.com/Dan9191/waste-service/internal/service"
	"github.com/Dan9191/waste-service/internal/utils/email"
)

// App holds the wired layers shared by every entry point
type App struct {
	Config  *config.Config
	Log     *logrus.Logger
	Store   repository.Store
	Service *service.Service
	Router  *mux.Router
}

// NewLogger builds the JSON logger at the configured level
func NewLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// New opens the configured store, seeds it when asked and builds the router
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var notifier service.Notifier = email.NewLogNotifier(logger)
	if cfg.SMTPEnabled() {
		notifier = email.NewSender(cfg, logger)
	}
	svc := service.NewService(store, logger, cfg, notifier)

	if cfg.SeedData {
		if err := Seed(ctx, svc); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to seed data: %w", err)
		}
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	handler.NewHandler(svc, logger).RegisterRoutes(r)

	return &App{Config: cfg, Log: logger, Store: store, Service: svc, Router: r}, nil
}

// Handler wraps the router with CORS
func (a *App) Handler() http.Handler {
	co := cors.New(cors.Options{
		AllowedOrigins: a.Config.CORSOrigin,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
	})
	return co.Handler(a.Router)
}

func (a *App) Close() error {
	return a.Store.Close()
}

// OpenStore connects the backend selected by STORE_BACKEND
func OpenStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		store := repository.NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Using PostgreSQL store")
		return store, nil

	case config.BackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.DynamoEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
			}
		})
		store := repository.NewDynamoStore(client, cfg.DynamoTable)
		if cfg.DynamoCreateTable {
			if err := store.EnsureTable(ctx); err != nil {
				return nil, err
			}
		}
		logger.Infof("Using DynamoDB store: table=%s region=%s", cfg.DynamoTable, cfg.AWSRegion)
		return store, nil

	default:
		logger.Info("Using in-memory store")
		return repository.NewMemoryStore(), nil
	}
}
