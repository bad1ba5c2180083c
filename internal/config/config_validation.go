package config

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TenantID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// Exactly one remote transport must be selected.
	if (cfg.Remote.HTTPAddress == "") == (cfg.Remote.DatabaseURI == "") {
		return ErrInvalidRemoteConfigs
	}
	if cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.ProbeInterval <= 0 ||
		cfg.Sync.PendingPollInterval <= 0 || cfg.Sync.RetryBase <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
