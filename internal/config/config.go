package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultConfigDir  = ".hookline"
	DefaultConfigFile = "config.json"
	DefaultLogPath    = "/tmp/hookline.log"
	EnvPrefix         = "HOOKLINE"
)

// Load reads the config file (if present) and environment overrides, and
// returns a populated Config. The configPath flag may override the default
// location. A missing config file is not an error: env-only deployments are
// supported.
func Load(configPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotExist(err) {
			// Config file exists but is malformed.
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the keys the relay pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Channels.StaffURL == "" {
		return fmt.Errorf("config: channels.staff_url is required")
	}
	if c.Channels.ExternalURL == "" {
		return fmt.Errorf("config: channels.external_url is required")
	}
	if c.Forge.Token == "" {
		return fmt.Errorf("config: forge.token is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("channels.staff_url", "")
	v.SetDefault("channels.external_url", "")

	v.SetDefault("forge.provider", "github")
	v.SetDefault("forge.token", "")
	v.SetDefault("forge.host", "")

	v.SetDefault("log.path", DefaultLogPath)
	v.SetDefault("policy.path", "")
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "no such file")
}
