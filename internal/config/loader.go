package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// defaultConfigFile is tried when the caller doesn't specify one.
const defaultConfigFile = "raffled.toml"

// Load loads configuration from, in priority order: built-in defaults, a
// TOML config file, then RAFFLED_-prefixed environment variables. An
// empty configPath falls back to defaultConfigFile; if that file also
// doesn't exist, Load proceeds on defaults alone rather than failing, so
// `raffled serve` works out of the box against an empty config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	path := configPath
	if path == "" {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	} else if configPath != "" {
		return nil, fmt.Errorf("config: file does not exist: %s", configPath)
	}

	v.SetEnvPrefix("RAFFLED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}
