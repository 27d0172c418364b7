package pathkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Run the absoluteness check when constructing paths
	Validate bool `env:"PATHKIT_VALIDATE,default:true"`

	// Default codec for encoding and decoding path streams (json, yaml, msgpack, cty)
	Codec string `env:"PATHKIT_CODEC,default:json"`

	// Logging
	LogLevel  string `env:"PATHKIT_LOG_LEVEL,default:info"`
	LogFormat string `env:"PATHKIT_LOG_FORMAT,default:text"` // text, logfmt or json

	// SQLite database holding named path bindings
	StorePath string `env:"PATHKIT_STORE_PATH,default:./pathkit.db"`

	// Algorithm used for path fingerprints
	ChecksumAlgorithm string `env:"PATHKIT_CHECKSUM,default:xxhash"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options converts the config into constructor options that report to r
func (c *Config) Options(r Reporter) []Option {
	return []Option{
		WithValidation(c.Validate),
		WithReporter(r),
	}
}
