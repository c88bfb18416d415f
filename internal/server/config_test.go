package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "USE_HTTP2", "CORS_ORIGINS", "CLOUD_TTL", "BODY_LIMIT", "TAGCLOUD_CONFIG"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, DefaultCloudTTL, cfg.CloudTTL)
	assert.Equal(t, DefaultBodyLimit, cfg.BodyLimit)
	assert.Empty(t, cfg.SettingsPath)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("CLOUD_TTL", "30s")
	t.Setenv("BODY_LIMIT", "512K")
	t.Setenv("TAGCLOUD_CONFIG", "configs/tagcloud.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.Equal(t, 30*time.Second, cfg.CloudTTL)
	assert.Equal(t, "512K", cfg.BodyLimit)
	assert.Equal(t, "configs/tagcloud.yaml", cfg.SettingsPath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port not a number", key: "PORT", val: "http"},
		{name: "port out of range", key: "PORT", val: "70000"},
		{name: "bad ttl", key: "CLOUD_TTL", val: "forever"},
		{name: "zero ttl", key: "CLOUD_TTL", val: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("CLOUD_TTL", "")
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
