// Package config loads the nconsole CLI configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/nconsole/logger"
	"github.com/philipp01105/nconsole/transport"
)

// Transport kinds
const (
	TransportStdout  = "stdout"
	TransportStderr  = "stderr"
	TransportFile    = "file"
	TransportDiscard = "discard"
)

var (
	// ErrUnknownTransport is returned for an unsupported transport kind.
	ErrUnknownTransport = errors.New("config: unknown transport")
	// ErrMissingPath is returned when the file transport has no path.
	ErrMissingPath = errors.New("config: file transport requires a path")
)

// DefaultFiles are searched, in order, when Load is called without a path.
var DefaultFiles = []string{"nconsole.yaml", ".nconsole.yaml"}

// Config represents the full configuration of the CLI.
type Config struct {
	// Transport is one of stdout, stderr, file or discard.
	Transport string `yaml:"transport"`
	// Path is the device or file for the file transport, e.g. /dev/ttyUSB0.
	Path string `yaml:"path"`
	// Level is the facade maximum level: off, error, warn, info, debug, trace.
	Level string `yaml:"level"`
	// CRLF translates '\n' into "\r\n" on the way out.
	CRLF bool `yaml:"crlf"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportStdout,
		Level:     "info",
	}
}

// Load reads configuration from a file.
// If path is empty, DefaultFiles are searched and the defaults are used
// when none exists. Environment variables NCONSOLE_TRANSPORT,
// NCONSOLE_PATH, NCONSOLE_LEVEL and NCONSOLE_CRLF override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, path, err := read(path)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, err
		}
		return data, path, nil
	}
	for _, name := range DefaultFiles {
		data, err := os.ReadFile(name)
		if err == nil {
			return data, name, nil
		}
	}
	return nil, "", nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("NCONSOLE_TRANSPORT"); ok {
		cfg.Transport = v
	}
	if v, ok := os.LookupEnv("NCONSOLE_PATH"); ok {
		cfg.Path = v
	}
	if v, ok := os.LookupEnv("NCONSOLE_LEVEL"); ok {
		cfg.Level = v
	}
	if v, ok := os.LookupEnv("NCONSOLE_CRLF"); ok {
		cfg.CRLF = v == "1" || v == "true"
	}
}

// Validate checks the transport kind and level.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdout, TransportStderr, TransportDiscard:
	case TransportFile:
		if c.Path == "" {
			return ErrMissingPath
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
	if _, err := logger.ParseLevelFilter(c.Level); err != nil {
		return fmt.Errorf("config: level %q: %w", c.Level, err)
	}
	return nil
}

// MaxLevel returns the configured facade maximum level.
func (c *Config) MaxLevel() logger.LevelFilter {
	f, err := logger.ParseLevelFilter(c.Level)
	if err != nil {
		return logger.InfoFilter
	}
	return f
}

// Build constructs the configured transport.
func (c *Config) Build() (transport.Transport, error) {
	switch c.Transport {
	case TransportStdout:
		return transport.NewWriter(transport.WriterConfig{Writer: os.Stdout, CRLF: c.CRLF}), nil
	case TransportStderr:
		return transport.NewWriter(transport.WriterConfig{Writer: os.Stderr, CRLF: c.CRLF}), nil
	case TransportDiscard:
		return transport.Discard, nil
	case TransportFile:
		if c.Path == "" {
			return nil, ErrMissingPath
		}
		return transport.Open(c.Path, c.CRLF)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
}
