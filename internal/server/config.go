package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/tag-cloud/pkg/config/env"
	"github.com/DjordjeVuckovic/tag-cloud/pkg/stringsutil"
)

const (
	DefaultPort      = "8080"
	DefaultCloudTTL  = 10 * time.Minute
	DefaultBodyLimit = "2M"
)

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string
	CloudTTL     time.Duration
	BodyLimit    string
	SettingsPath string
}

// LoadConfig reads the server configuration from the environment.
// The .env file has already been applied by the caller.
func LoadConfig() (*Config, error) {
	port := env.String("PORT", DefaultPort)
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	ttl, err := env.Duration("CLOUD_TTL", DefaultCloudTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloud ttl: %w", err)
	}
	if ttl <= 0 {
		return nil, errors.New("cloud ttl must be positive")
	}

	origins := stringsutil.SplitTrim(env.String("CORS_ORIGINS", ""), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:         port,
		UseHttp2:     env.Bool("USE_HTTP2"),
		CorsOrigins:  origins,
		CloudTTL:     ttl,
		BodyLimit:    env.String("BODY_LIMIT", DefaultBodyLimit),
		SettingsPath: env.String("TAGCLOUD_CONFIG", ""),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
