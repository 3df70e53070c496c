package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerequity-server/internal/util"
)

// Config provides configuration for the poker equity server
type Config struct {
	loaded bool

	// PGDSN enables the simulation history store when set
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}

	Equity struct {
		// DefaultTrials is used when a request does not specify a trial count
		DefaultTrials int `yaml:"defaultTrials" envconfig:"default_trials"`

		// MaxTrials caps a single request
		MaxTrials int `yaml:"maxTrials" envconfig:"max_trials"`

		// Workers caps the parallel simulation workers; 0 means one per CPU
		Workers int `yaml:"workers"`
	}
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{}
	c.MigrationsPath = "./sql"
	c.Equity.DefaultTrials = 10000
	c.Equity.MaxTrials = 1000000
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults plus environment overrides apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("PEQ_CONFIG_FILE", "config.yaml")
	if file, err := os.Open(configFile); err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("peq", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
