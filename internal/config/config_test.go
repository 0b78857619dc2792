package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("CORS_ORIGIN", "http://localhost:5173, https://app.example.com")

	cfg, err := NewConfig()
	require.Error(t, err, "empty backend is not a known backend")
	assert.Nil(t, cfg)

	t.Setenv("STORE_BACKEND", "Memory")
	cfg, err = NewConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "0 0 * * *", cfg.ProcessingCron)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.CORSOrigin)
	assert.False(t, cfg.SMTPEnabled())
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "backend", key: "STORE_BACKEND", val: "mongo"},
		{name: "seed flag", key: "SEED_DATA", val: "sometimes"},
		{name: "ttl", key: "JWT_TTL", val: "a day"},
		{name: "latitude", key: "DEFAULT_LAT", val: "north"},
		{name: "latitude range", key: "DEFAULT_LAT", val: "91"},
		{name: "jwt secret", key: "JWT_SECRET", val: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_BACKEND", BackendMemory)
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendDynamoDB)
	t.Setenv("DYNAMODB_TABLE", "waste-test")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("DEFAULT_LAT", "40.7128")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "waste-test", cfg.DynamoTable)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.InDelta(t, 40.7128, cfg.DefaultLat, 1e-9)
	assert.True(t, cfg.SMTPEnabled())
}
