package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("APP_BASE_URL", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("CONTENT_PATH", "")
	t.Setenv("CONTENT_WATCH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Equal(t, "localhost:8080", cfg.GetAppBaseURL())
	assert.Equal(t, "", cfg.GetContentPath())
	assert.False(t, cfg.GetContentWatch())
	assert.Equal(t, "text", cfg.GetLogFormat())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("APP_BASE_URL", "vep.example.com")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("CONTENT_PATH", "content/about.yaml")
	t.Setenv("CONTENT_WATCH", "true")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)

	var p Provider = cfg
	assert.Equal(t, ":9000", p.GetAddr())
	assert.Equal(t, "vep.example.com", p.GetAppBaseURL())
	assert.Equal(t, "content/about.yaml", p.GetContentPath())
	assert.True(t, p.GetContentWatch())
	assert.Equal(t, "json", p.GetLogFormat())
	assert.Equal(t, "info", p.GetLogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad watch flag", key: "CONTENT_WATCH", val: "sometimes"},
		{name: "bad base url", key: "APP_BASE_URL", val: "not a host!"},
		{name: "short secret", key: "SESSION_SECRET", val: "short"},
		{name: "unknown log format", key: "LOG_FORMAT", val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
