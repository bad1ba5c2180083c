package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// engine. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the tenant scope and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the on-device persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds connection settings for the remote store.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds intervals and retry settings for the synchronization
	// engine and its background workers.
	Sync Sync `envPrefix:"SYNC_"`

	// Diagnostics holds settings for the local diagnostics HTTP endpoint.
	Diagnostics Diagnostics `envPrefix:"DIAG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TenantID is the tenant scope all local records and remote calls are
	// bound to.
	// Env: APP_TENANT_ID
	TenantID string `env:"TENANT_ID"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the on-device persistence layer.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the on-device SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "possync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds connection settings for the remote store. Exactly one of
// HTTPAddress or DatabaseURI must be set: the former selects the HTTP
// adapter, the latter the direct Postgres adapter.
type Remote struct {
	// HTTPAddress is the base URL of the remote store's HTTP API.
	// Env: REMOTE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// DatabaseURI is the Postgres connection string for deployments that
	// reach the hosted backend directly, without an API tier.
	// Env: REMOTE_DATABASE_URI
	DatabaseURI string `env:"DATABASE_URI"`

	// RequestTimeout bounds every single outbound remote call. In-flight
	// sync passes have no cancellation primitive, so this timeout is what
	// keeps a pass's duration bounded.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login and Password authenticate the operator session against the
	// HTTP remote store.
	// Env: REMOTE_LOGIN / REMOTE_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// Sync holds intervals and retry settings for the engine's background work.
type Sync struct {
	// Interval is how often the background sync job triggers a full pass.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// ProbeInterval is how often the connection monitor probes remote
	// reachability.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// PendingPollInterval is how often the pending-count poller refreshes
	// the diagnostics counter.
	// Env: SYNC_PENDING_POLL_INTERVAL
	PendingPollInterval time.Duration `env:"PENDING_POLL_INTERVAL"`

	// RetryBase and RetryCap shape the capped exponential backoff applied
	// between failed sync passes.
	// Env: SYNC_RETRY_BASE / SYNC_RETRY_CAP
	RetryBase time.Duration `env:"RETRY_BASE"`
	RetryCap  time.Duration `env:"RETRY_CAP"`

	// PruneAfter is the retention window for synced pending sales. Zero
	// disables pruning.
	// Env: SYNC_PRUNE_AFTER
	PruneAfter time.Duration `env:"PRUNE_AFTER"`
}

// Diagnostics holds settings for the local HTTP endpoint that surfaces the
// pending-sync count and the manual "sync now" trigger.
type Diagnostics struct {
	// HTTPAddress is the listen address, in "host:port" format.
	// Env: DIAG_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// defaultConfig carries the built-in fallbacks merged in last, so any field
// left zero by env, flags and JSON still gets a workable value.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "possync.db"}},
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Sync: Sync{
			Interval:            5 * time.Minute,
			ProbeInterval:       30 * time.Second,
			PendingPollInterval: 5 * time.Second,
			RetryBase:           2 * time.Second,
			RetryCap:            2 * time.Minute,
		},
		Diagnostics: Diagnostics{HTTPAddress: "127.0.0.1:8099"},
	}
}

// GetConfig loads, merges, and validates the engine configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
