package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// GeneratorConfig holds conversion pipeline configuration
type GeneratorConfig struct {
	// MaxUploadBytes caps the accepted workbook size.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
	// ErrorDisplayLimit caps how many validation errors are shown in logs
	// and CLI output; the API always returns the full list.
	ErrorDisplayLimit int `mapstructure:"error_display_limit"`
	// BundleCacheSize bounds the number of generated archives the server
	// keeps available for download; oldest entries are evicted first.
	BundleCacheSize int `mapstructure:"bundle_cache_size"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration, used by the CLI where no
// config file is expected.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Generator: GeneratorConfig{
			MaxUploadBytes:    16 << 20,
			ErrorDisplayLimit: 20,
			BundleCacheSize:   32,
		},
		Logger: LoggerConfig{
			Level:      "info",
			OutputPath: "stdout",
			Format:     "console",
		},
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	viper.SetDefault("generator.max_upload_bytes", 16<<20)
	viper.SetDefault("generator.error_display_limit", 20)
	viper.SetDefault("generator.bundle_cache_size", 32)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("server.host", "DTW_SERVER_HOST")
	viper.BindEnv("server.port", "DTW_SERVER_PORT")
	viper.BindEnv("logger.level", "DTW_LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Generator.MaxUploadBytes <= 0 {
		return fmt.Errorf("generator.max_upload_bytes must be positive")
	}
	if c.Generator.ErrorDisplayLimit < 0 {
		return fmt.Errorf("generator.error_display_limit must not be negative")
	}
	if c.Generator.BundleCacheSize <= 0 {
		return fmt.Errorf("generator.bundle_cache_size must be positive")
	}
	return nil
}
