package config

import "time"

// Default values applied after all other sources have been merged.
const (
	DefaultHTTPAddress     = "0.0.0.0:5000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultAppName         = "Caesar Cipher API"
	DefaultAppVersion      = "1.0"
	DefaultLogLevel        = "debug"

	DefaultServerURL      = "http://localhost:5000"
	DefaultClientTimeout  = 15 * time.Second
	DefaultClientLogLevel = "warn"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			AllowedOrigins:  []string{"*"},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultClientTimeout,
		},
		Log: Log{
			Level: DefaultClientLogLevel,
		},
	}
}
