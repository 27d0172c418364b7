package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gobeaver/pathkit"
)

// Settings is the resolved command configuration.
type Settings struct {
	Validate  bool   `mapstructure:"validate"`
	Codec     string `mapstructure:"codec"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	StorePath string `mapstructure:"store"`
	Checksum  string `mapstructure:"checksum"`
	NoColor   bool   `mapstructure:"no_color"`
}

// flagKeys maps persistent flags onto settings keys.
var flagKeys = map[string]string{
	"codec":      "codec",
	"log-level":  "log_level",
	"log-format": "log_format",
	"store":      "store",
	"checksum":   "checksum",
	"no-color":   "no_color",
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// LoadSettings resolves settings from, in increasing precedence, the
// environment defaults of pathkit.Config, the config file at cfgFile (if
// any) and the flags that were set explicitly.
func LoadSettings(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	env, err := pathkit.GetConfig()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("validate", env.Validate)
	v.SetDefault("codec", env.Codec)
	v.SetDefault("log_level", env.LogLevel)
	v.SetDefault("log_format", env.LogFormat)
	v.SetDefault("store", env.StorePath)
	v.SetDefault("checksum", env.ChecksumAlgorithm)
	v.SetDefault("no_color", false)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := flags.Lookup("no-validate"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("validate", false)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	s.StorePath = expandPath(s.StorePath)
	return &s, nil
}
