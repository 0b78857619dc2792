package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	StoreBackend string
	SeedData     bool
	DBConn       string

	DynamoTable       string
	AWSRegion         string
	DynamoEndpoint    string
	DynamoCreateTable bool

	JWTSecret  string
	JWTTTL     time.Duration
	CORSOrigin []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	ProcessingCron string
	ReminderCron   string

	// Point the dashboard measures location distances from
	DefaultLat float64
	DefaultLon float64
}

// NewConfig loads configuration from environment variables, reading .env first when present
func NewConfig() (*Config, error) {
	_ = godotenv.Load() // ok if missing

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=waste sslmode=disable"),
		DynamoTable:    getEnv("DYNAMODB_TABLE", "waste-service"),
		AWSRegion:      getEnv("AWS_REGION", "us-west-2"),
		DynamoEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "noreply@waste-service.local"),
		ProcessingCron: getEnv("PROCESSING_CRON", "0 0 * * *"),
		ReminderCron:   getEnv("REMINDER_CRON", "*/5 * * * *"),
	}

	var err error
	if cfg.SeedData, err = getBool("SEED_DATA", true); err != nil {
		return nil, err
	}
	if cfg.DynamoCreateTable, err = getBool("DYNAMODB_CREATE_TABLE", false); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.DefaultLat, err = getFloat("DEFAULT_LAT", 47.6062); err != nil {
		return nil, err
	}
	if cfg.DefaultLon, err = getFloat("DEFAULT_LON", -122.3321); err != nil {
		return nil, err
	}
	for _, origin := range strings.Split(getEnv("CORS_ORIGIN", "*"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSOrigin = append(cfg.CORSOrigin, o)
		}
	}

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required")
		}
	case BackendDynamoDB:
		if cfg.DynamoTable == "" {
			return nil, fmt.Errorf("DYNAMODB_TABLE is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DefaultLat < -90 || cfg.DefaultLat > 90 || cfg.DefaultLon < -180 || cfg.DefaultLon > 180 {
		return nil, fmt.Errorf("DEFAULT_LAT/DEFAULT_LON out of range")
	}

	return cfg, nil
}

// SMTPEnabled reports whether reminder e-mails can be delivered
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, defaultVal float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
