package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TenantID string `json:"tenant_id"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		HTTPAddress    string   `json:"http_address"`
		DatabaseURI    string   `json:"database_uri"`
		RequestTimeout Duration `json:"request_timeout"`
		Login          string   `json:"login"`
		Password       string   `json:"password"`
	} `json:"remote,omitempty"`

	Sync struct {
		Interval            Duration `json:"interval"`
		ProbeInterval       Duration `json:"probe_interval"`
		PendingPollInterval Duration `json:"pending_poll_interval"`
		RetryBase           Duration `json:"retry_base"`
		RetryCap            Duration `json:"retry_cap"`
		PruneAfter          Duration `json:"prune_after"`
	} `json:"sync,omitempty"`

	Diagnostics struct {
		HTTPAddress string `json:"http_address"`
	} `json:"diagnostics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TenantID: jsonCfg.App.TenantID,
			Version:  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			HTTPAddress:    jsonCfg.Remote.HTTPAddress,
			DatabaseURI:    jsonCfg.Remote.DatabaseURI,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			Login:          jsonCfg.Remote.Login,
			Password:       jsonCfg.Remote.Password,
		},
		Sync: Sync{
			Interval:            time.Duration(jsonCfg.Sync.Interval),
			ProbeInterval:       time.Duration(jsonCfg.Sync.ProbeInterval),
			PendingPollInterval: time.Duration(jsonCfg.Sync.PendingPollInterval),
			RetryBase:           time.Duration(jsonCfg.Sync.RetryBase),
			RetryCap:            time.Duration(jsonCfg.Sync.RetryCap),
			PruneAfter:          time.Duration(jsonCfg.Sync.PruneAfter),
		},
		Diagnostics: Diagnostics{
			HTTPAddress: jsonCfg.Diagnostics.HTTPAddress,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
