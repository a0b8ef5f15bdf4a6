package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MaxBodyBytes    int64    `json:"max_body_bytes"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var fileCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs %s: %w", jsonFilePath, err)
	}

	return fileCfg.toStructured(), nil
}

// toStructured converts the file layout into a [StructuredConfig]. The JSON
// file path itself is never taken from the file.
func (c *StructuredJSONConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Name: c.App.Name, Version: c.App.Version},
		Server: Server{
			HTTPAddress:     c.Server.HTTPAddress,
			RequestTimeout:  time.Duration(c.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(c.Server.ShutdownTimeout),
			MaxBodyBytes:    c.Server.MaxBodyBytes,
			AllowedOrigins:  c.Server.AllowedOrigins,
		},
		Log: Log{Level: c.Log.Level},
	}
}

// Duration is a [time.Duration] that decodes from either a duration string
// ("30s", "1m") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
