package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	POS      POSConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type UpstreamConfig struct {
	// BaseURL of the inventory API, e.g. http://127.0.0.1:8000/api/.
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`
}

type POSConfig struct {
	// SessionTTL evicts cart sessions idle longer than this.
	SessionTTL time.Duration `envconfig:"POS_SESSION_TTL" default:"2h"`
	// LowStockThreshold marks items as low stock on the dashboard.
	LowStockThreshold int `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
}

type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load builds Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	return cfg, nil
}
