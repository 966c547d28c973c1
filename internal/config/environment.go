package config

import (
	"fmt"
	"time"
)

// EnvironmentApp holds application-level settings derived from the
// shared structured config.
type EnvironmentApp struct {
	// DeviceSecret is the secret the local cache encryption key is
	// derived from.
	DeviceSecret string
	// Version is the application version string.
	Version string
}

// EnvironmentAdapter holds network settings used by the remote
// datasource transport.
type EnvironmentAdapter struct {
	// HTTPAddress is the base URL of the vault API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// EnvironmentDB contains local cache database settings.
type EnvironmentDB struct {
	// DSN is the SQLite file path of the cache database.
	DSN string
}

// EnvironmentStorage groups local storage backend settings.
type EnvironmentStorage struct {
	// DB holds local cache database settings.
	DB EnvironmentDB
}

// EnvironmentWorkers contains background worker settings.
type EnvironmentWorkers struct {
	// SyncInterval defines how often the background share sync runs.
	SyncInterval time.Duration
}

// EnvironmentConfig is the explicit environment value handed to
// repository and datasource constructors. It replaces any notion of a
// hidden process-wide configuration global: it is created once at
// process start and torn down (together with everything built from it)
// on logout.
type EnvironmentConfig struct {
	// App contains application-level settings.
	App EnvironmentApp
	// Adapter contains remote transport addresses and timeouts.
	Adapter EnvironmentAdapter
	// Storage contains local cache settings.
	Storage EnvironmentStorage
	// Workers contains background job settings.
	Workers EnvironmentWorkers
}

// GetEnvironmentConfig builds and validates the engine's environment
// view from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the engine runtime, and validates the resulting
// [EnvironmentConfig].
func GetEnvironmentConfig() (*EnvironmentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	envCfg := &EnvironmentConfig{
		App: EnvironmentApp{
			DeviceSecret: cfg.App.DeviceSecret,
			Version:      cfg.App.Version,
		},
		Adapter: EnvironmentAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: EnvironmentStorage{
			DB: EnvironmentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: EnvironmentWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}

	if err := envCfg.validate(); err != nil {
		return nil, err
	}

	return envCfg, nil
}
