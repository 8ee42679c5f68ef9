package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Catalog
		Console
		Log
	}

	Catalog struct {
		Backend  string // "memory" or "indexed"
		SeedDemo bool   // Preload the demo books
	}
	Console struct {
		Color bool
	}
	Log struct {
		Level  string
		Format string // "console" or "json"
	}
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"backend":    "catalog_backend",
	"seed-demo":  "catalog_seed_demo",
	"color":      "console_color",
	"log-level":  "log_level",
	"log-format": "log_format",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("catalog_backend", DefaultBackend)
	v.SetDefault("catalog_seed_demo", false)
	v.SetDefault("console_color", true)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	return v
}

// NewConfig reads the configuration from the environment.
func NewConfig() *Config {
	return fromViper(newViper())
}

// NewConfigWithFlags reads the configuration from the environment, letting
// any flag in fs that was set on the command line take precedence.
func NewConfigWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Catalog: Catalog{
			Backend:  v.GetString("CATALOG_BACKEND"),
			SeedDemo: v.GetBool("CATALOG_SEED_DEMO"),
		},
		Console: Console{
			Color: v.GetBool("CONSOLE_COLOR"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
