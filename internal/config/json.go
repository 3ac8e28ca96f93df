package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		PasswordCost  int      `json:"password_cost"`
		LocalDev      bool     `json:"local_dev"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Mongo struct {
			URI               string `json:"uri"`
			Database          string `json:"database"`
			MaxPoolSize       uint64 `json:"max_pool_size"`
			ClientsCollection string `json:"clients_collection"`
			SitesCollection   string `json:"sites_collection"`
			TestsCollection   string `json:"tests_collection"`
			JobsCollection    string `json:"jobs_collection"`
			FilesCollection   string `json:"files_collection"`
		} `json:"mongo,omitempty"`

		Files struct {
			MaxUploadBytes int64 `json:"max_upload_bytes"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RequireAuth     bool     `json:"require_auth"`
	} `json:"server,omitempty"`
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

	mongoCfg := jsonCfg.Storage.Mongo
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			PasswordCost:  jsonCfg.App.PasswordCost,
			LocalDev:      jsonCfg.App.LocalDev,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Mongo: Mongo{
				URI:               mongoCfg.URI,
				Database:          mongoCfg.Database,
				MaxPoolSize:       mongoCfg.MaxPoolSize,
				ClientsCollection: mongoCfg.ClientsCollection,
				SitesCollection:   mongoCfg.SitesCollection,
				TestsCollection:   mongoCfg.TestsCollection,
				JobsCollection:    mongoCfg.JobsCollection,
				FilesCollection:   mongoCfg.FilesCollection,
			},
			Files: Files{
				MaxUploadBytes: jsonCfg.Storage.Files.MaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RequireAuth:     jsonCfg.Server.RequireAuth,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
