// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"slices"

	"github.com/rs/zerolog"
)

// ClientOperations lists the operations understood by the client.
var ClientOperations = []string{"info", "encrypt", "decrypt", "analyze", "brute-force", "interactive"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs)
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: no allowed origins", ErrInvalidServerConfigs)
	}

	if cfg.App.Name == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return validateLogLevel(cfg.Log.Level)
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if !slices.Contains(ClientOperations, cfg.Command.Operation) {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidCommand, cfg.Command.Operation)
	}

	return validateLogLevel(cfg.Log.Level)
}

func validateLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
