package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-max-body-bytes largest accepted request body
//	-allowed-origins comma-separated CORS origins
//	-log-level log level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var maxBodyBytes int64
	var allowedOrigins string
	var logLevel string

	fs := flag.NewFlagSet("cipher-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size in bytes")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS allowed origins")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			MaxBodyBytes:    maxBodyBytes,
			AllowedOrigins:  splitList(allowedOrigins),
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseClientFlags parses the client flags from args. Positional arguments
// left after the flags are joined with spaces and used as the text when
// -text is not given.
//
// Flags:
//
//	-server base URL of the cipher server
//	-timeout request timeout (e.g., "15s")
//	-log-level log level name
//	-op operation: info, encrypt, decrypt, analyze, brute-force
//	-text text to send
//	-shift rotation key for encrypt and decrypt
//	-copy copy the resulting text to the clipboard
func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("cipher-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Cipher server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Command.Operation, "op", "", "Operation: info, encrypt, decrypt, analyze, brute-force, interactive")
	fs.StringVar(&cfg.Command.Text, "text", "", "Text to process")
	fs.IntVar(&cfg.Command.Shift, "shift", 0, "Shift for encrypt/decrypt (1-25)")
	fs.BoolVar(&cfg.Command.CopyToClipboard, "copy", false, "Copy the result to the clipboard")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Command.Text == "" && fs.NArg() > 0 {
		cfg.Command.Text = strings.Join(fs.Args(), " ")
	}

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns the address as host:port, or an empty string when the
// address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP
// literal; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address %q", host)
	}

	a.Host, a.Port = host, port
	return nil
}
