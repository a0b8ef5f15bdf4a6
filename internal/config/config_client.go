package config

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter holds the address and timeout used to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Command holds the operation requested on the command line.
	// It is never read from the environment.
	Command Command
}

// Adapter holds outbound connection settings for the client.
type Adapter struct {
	// HTTPAddress is the base URL of the cipher server
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Command is a single client invocation.
type Command struct {
	Operation       string
	Text            string
	Shift           int
	CopyToClipboard bool
}

// GetClientConfig loads the client configuration from the environment and
// the process arguments, fills in defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	return buildClientConfig(os.Args[1:])
}

func buildClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, defaultClientConfig()} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
