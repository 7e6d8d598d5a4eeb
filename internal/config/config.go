// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// recipe-keeper client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the cloud drive endpoint settings.
	Adapter Adapter `envPrefix:"DRIVE_"`

	// Storage holds the local cache persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the sync scheduler settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Drived holds settings of the local drive emulator daemon.
	Drived Drived `envPrefix:"DRIVED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the outbound drive transport.
type Adapter struct {
	// Address is the drive API endpoint, either "host:port" or a full URL.
	// Env: DRIVE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single drive call
	// (e.g. "30s", "1m").
	// Env: DRIVE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local durable cache.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path used by the client cache
	// (e.g. "~/.recipe-keeper/cache.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the scheduler settings of the sync engine.
type Sync struct {
	// DebounceInterval is the quiet period after the last local edit before
	// an automatic sync fires (e.g. "15s").
	// Env: SYNC_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`
}

// Drived holds settings of the drive emulator used for local development and
// end-to-end testing of the sync engine.
type Drived struct {
	// Address is the listen address of the emulator (e.g. ":8080").
	// Env: DRIVED_ADDRESS
	Address string `env:"ADDRESS"`

	// JWTSecret signs the access tokens the emulator issues and accepts.
	// Env: DRIVED_JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is the lifetime of issued access tokens (e.g. "24h").
	// Env: DRIVED_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
