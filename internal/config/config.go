package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/neocrym/log-with-context/logger"
)

// Config holds the demo binary's settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// ListenAddress is the address the demo HTTP server binds to.
	ListenAddress string `mapstructure:"listen_address" yaml:"listen_address"`
	// ServiceName names the logger and is attached to the root context frame.
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	// StaticFields are pushed onto the root context frame at startup.
	StaticFields map[string]string `mapstructure:"static_fields" yaml:"static_fields,omitempty"`
	// ParsedLogLevel is the parsed zap log level. It is derived, not persisted.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = "logctx-demo.yaml"

	// DefaultListenAddress is the default HTTP listen address.
	DefaultListenAddress = "localhost:8080"

	// DefaultServiceName is the default logger name for the demo binary.
	DefaultServiceName = "logctx-demo"

	// DefaultLogLevel is used when the file specifies none.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the file permission for written config files.
	DefaultFilePermissions = 0o600
)

// Static error definitions for better error handling.
var (
	// ErrConfigIsNotSet indicates a nil configuration was provided.
	ErrConfigIsNotSet = errors.New("configuration is not set")
	// ErrUnknownLogLevel indicates the log level string is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Load reads configuration from the provided path, falling back to defaults
// when the file does not exist, and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	cfg := defaultConfig()

	if _, err := os.Stat(filepath.Clean(path)); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}

		if err := Validate(cfg); err != nil {
			return nil, err
		}

		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return ErrConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate fills defaults for omitted fields and checks the rest.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	parsedLogLevel, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultListenAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	return nil
}

// defaultConfig returns a configuration with all defaults applied.
func defaultConfig() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		ListenAddress: DefaultListenAddress,
		ServiceName:   DefaultServiceName,
	}
}
