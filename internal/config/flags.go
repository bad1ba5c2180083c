package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-t tenant identifier
//	-d local database path
//	-r remote store HTTP base URL
//	-remote-database-uri remote Postgres connection string
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-login/-password remote operator credentials
//	-sync-interval background sync interval (e.g., "5m")
//	-diag-address diagnostics endpoint listen address
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var tenantID string
	var databaseDSN string
	var remoteAddress string
	var remoteDatabaseURI string
	var requestTimeout time.Duration
	var login, password string
	var syncInterval time.Duration
	var diagAddress string
	var jsonConfigPath string

	flag.StringVar(&tenantID, "t", "", "Tenant identifier")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&remoteAddress, "r", "", "Remote store HTTP base URL")
	flag.StringVar(&remoteDatabaseURI, "remote-database-uri", "", "Remote Postgres connection string")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.StringVar(&login, "login", "", "Remote operator login")
	flag.StringVar(&password, "password", "", "Remote operator password")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&diagAddress, "diag-address", "", "Diagnostics endpoint listen address")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TenantID: tenantID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			HTTPAddress:    remoteAddress,
			DatabaseURI:    remoteDatabaseURI,
			RequestTimeout: requestTimeout,
			Login:          login,
			Password:       password,
		},
		Sync: Sync{
			Interval: syncInterval,
		},
		Diagnostics: Diagnostics{
			HTTPAddress: diagAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
