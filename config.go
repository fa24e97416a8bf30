package blobstream

import (
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Directory for materialized backing files (empty = OS temp dir)
	TempDir string `env:"BLOBSTREAM_TEMP_DIR"`

	// Name pattern for materialized backing files, in os.CreateTemp form
	TempPattern string `env:"BLOBSTREAM_TEMP_PATTERN,default:blobstream-*.tmp"`

	// Timeout in seconds for http/https sources (0 = no timeout)
	HTTPTimeoutSeconds int `env:"BLOBSTREAM_HTTP_TIMEOUT_SECONDS,default:0"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	defaultConfig     Config
	defaultConfigOnce sync.Once
)

// loadConfig returns the environment-derived defaults, loading them once.
// A load failure leaves the zero-value fallbacks in place; construction
// must not fail just because the environment is malformed.
func loadConfig() Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = Config{TempPattern: "blobstream-*.tmp"}
		if cfg, err := GetConfig(); err == nil {
			defaultConfig = *cfg
		}
	})
	return defaultConfig
}
