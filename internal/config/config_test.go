package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://blog-dev@localhost:5432/blog?sslmode=disable")

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int32(4), cfg.DBMaxConnections)
	assert.Equal(t, int64(1048576), cfg.MaxRequestBodySize)
}

func TestNewServerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "0"},
		{"bad environment", "ENVIRONMENT", "sandbox"},
		{"bad max connections", "DB_MAX_CONNECTIONS", "0"},
		{"bad request body size", "MAX_REQUEST_BODY_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://blog-dev@localhost:5432/blog?sslmode=disable")
			t.Setenv(tt.key, tt.value)

			_, err := NewServerConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewServerConfig_MinGreaterThanMax(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://blog-dev@localhost:5432/blog?sslmode=disable")
	t.Setenv("DB_MIN_CONNECTIONS", "8")
	t.Setenv("DB_MAX_CONNECTIONS", "4")

	_, err := NewServerConfig()
	assert.Error(t, err)
}
