// Package config loads canvas settings from CANVAS_* environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageFilesystem = "filesystem"
	StorageMinio      = "minio"
)

type Config struct {
	Port            int    `mapstructure:"port"`
	UploadDir       string `mapstructure:"upload_dir"`
	FileSizeLimitKB int64  `mapstructure:"file_size_limit_kb"`
	RedisURL        string `mapstructure:"redis_url"`
	// AllowedOrigins is a space separated list of origin patterns.
	AllowedOrigins    string `mapstructure:"allowed_origins"`
	WatermarkFilePath string `mapstructure:"watermark_file_path"`
	EnableTracing     bool   `mapstructure:"enable_tracing"`

	StorageBackend string `mapstructure:"storage_backend"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessKey string `mapstructure:"minio_access_key"`
	MinioSecretKey string `mapstructure:"minio_secret_key"`
	MinioLocation  string `mapstructure:"minio_location"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioSSL       bool   `mapstructure:"minio_ssl"`

	MongoConnectionString string `mapstructure:"mongo_connection_string"`

	Workers         int     `mapstructure:"workers"`
	CollapseMisses  bool    `mapstructure:"collapse_misses"`
	OverlayFontSize float64 `mapstructure:"overlay_font_size"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from cfgFile, when given, and the environment.
// Environment variables take precedence over the file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("CANVAS")
	v.AutomaticEnv()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("file_size_limit_kb", 4096)
	v.SetDefault("redis_url", "redis://127.0.0.1/")
	v.SetDefault("allowed_origins", "")
	v.SetDefault("watermark_file_path", "")
	v.SetDefault("enable_tracing", false)

	v.SetDefault("storage_backend", StorageFilesystem)
	v.SetDefault("minio_endpoint", "")
	v.SetDefault("minio_access_key", "")
	v.SetDefault("minio_secret_key", "")
	v.SetDefault("minio_location", "us-east-1")
	v.SetDefault("minio_bucket", "canvas")
	v.SetDefault("minio_ssl", false)

	v.SetDefault("mongo_connection_string", "")

	v.SetDefault("workers", 0)
	v.SetDefault("collapse_misses", false)
	v.SetDefault("overlay_font_size", 12)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	if c.FileSizeLimitKB <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFileSizeLimit, c.FileSizeLimitKB)
	}

	switch c.StorageBackend {
	case StorageFilesystem:
		if c.UploadDir == "" {
			return ErrMissingUploadDir
		}
	case StorageMinio:
		if c.MinioEndpoint == "" || c.MinioAccessKey == "" || c.MinioSecretKey == "" || c.MinioBucket == "" {
			return ErrMissingMinioSettings
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageBackend, c.StorageBackend)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.LogFormat] {
		return fmt.Errorf("%w: %s (must be text or json)", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// Origins returns the configured origin patterns, nil means any origin.
func (c *Config) Origins() []string {
	origins := strings.Fields(c.AllowedOrigins)
	if len(origins) == 0 {
		return nil
	}

	return origins
}

func (c *Config) FileSizeLimitBytes() int64 {
	return c.FileSizeLimitKB * 1024
}

var (
	ErrInvalidPort           = errors.New("invalid port")
	ErrInvalidFileSizeLimit  = errors.New("invalid file size limit")
	ErrMissingUploadDir      = errors.New("upload_dir is required for the filesystem backend")
	ErrMissingMinioSettings  = errors.New("minio_endpoint, minio_access_key, minio_secret_key and minio_bucket are required for the minio backend")
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	ErrInvalidLogLevel       = errors.New("invalid log level")
	ErrInvalidLogFormat      = errors.New("invalid log format")
)
