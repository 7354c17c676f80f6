// Package config loads handrank settings from an HCL file, with environment
// variable overrides for the service address and log level.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variable names that override file settings
const (
	// EnvAddr overrides server.address
	EnvAddr = "HANDRANK_ADDR"

	// EnvLogLevel overrides log_level
	EnvLogLevel = "HANDRANK_LOG_LEVEL"

	// EnvWorkers overrides server.workers
	EnvWorkers = "HANDRANK_WORKERS"
)

const (
	defaultAddress  = "localhost:8080"
	defaultLogLevel = "info"
)

// Config represents the complete handrank configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Server   *ServerSettings `hcl:"server,block"`
}

// ServerSettings configures the showdown service
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	// Workers is the number of goroutines used to rank a batch. 0 picks a
	// default from the CPU count.
	Workers int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Server: &ServerSettings{
			Address: defaultAddress,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
}

// ApplyEnv overrides settings from HANDRANK_* environment variables.
func (c *Config) ApplyEnv() error {
	c.applyDefaults()

	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Address = addr
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if workers := os.Getenv(EnvWorkers); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Server.Workers = n
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.Server == nil || c.Server.Address == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.Server.Workers < 0 {
		return fmt.Errorf("server workers must not be negative: %d", c.Server.Workers)
	}

	return nil
}
