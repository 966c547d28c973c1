// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies
// the engine's invariants before it is used at startup.
//
// Structured-level validation is intentionally loose; the strict checks
// live on [EnvironmentConfig.validate], which sees the final view.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *EnvironmentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DeviceSecret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
