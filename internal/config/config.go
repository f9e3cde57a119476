package config

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keeps runtime settings for the CLI.
type Config struct {
	DatabasePath string
	Demo         bool
}

// Load resolves configuration in order of precedence: explicit flag values,
// VENTO_ environment variables, a .vento.yaml in the home or working
// directory, then defaults.
func Load(flagDB string, flagDemo bool) (Config, error) {
	v := viper.New()
	v.SetDefault("database", "~/.vento/events.db")
	v.SetDefault("demo", false)
	v.SetConfigName(".vento")
	v.SetEnvPrefix("VENTO")
	v.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DatabasePath: v.GetString("database"),
		Demo:         v.GetBool("demo"),
	}
	if flagDB != "" {
		cfg.DatabasePath = flagDB
	}
	if flagDemo {
		cfg.Demo = true
	}

	expanded, err := homedir.Expand(cfg.DatabasePath)
	if err != nil {
		return Config{}, fmt.Errorf("expand database path: %w", err)
	}
	cfg.DatabasePath = expanded

	return cfg, nil
}
