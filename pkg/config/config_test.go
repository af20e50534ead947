package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(4096), cfg.FileSizeLimitKB)
	assert.Equal(t, int64(4096*1024), cfg.FileSizeLimitBytes())
	assert.Equal(t, "redis://127.0.0.1/", cfg.RedisURL)
	assert.Equal(t, StorageFilesystem, cfg.StorageBackend)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, float64(12), cfg.OverlayFontSize)
	assert.False(t, cfg.EnableTracing)
	assert.False(t, cfg.CollapseMisses)
	assert.Nil(t, cfg.Origins())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CANVAS_PORT", "8080")
	t.Setenv("CANVAS_UPLOAD_DIR", "/data/uploads")
	t.Setenv("CANVAS_FILE_SIZE_LIMIT_KB", "16")
	t.Setenv("CANVAS_ALLOWED_ORIGINS", "https://a.example  https://*.b.example")
	t.Setenv("CANVAS_ENABLE_TRACING", "true")
	t.Setenv("CANVAS_WORKERS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/data/uploads", cfg.UploadDir)
	assert.Equal(t, int64(16*1024), cfg.FileSizeLimitBytes())
	assert.Equal(t, []string{"https://a.example", "https://*.b.example"}, cfg.Origins())
	assert.True(t, cfg.EnableTracing)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	content := "port: 4000\nlog_format: json\ncollapse_misses: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.CollapseMisses)
}

func TestLoad_EnvironmentWinsOverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\n"), 0o644))
	t.Setenv("CANVAS_PORT", "5000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsIncompleteMinioSettings(t *testing.T) {
	t.Setenv("CANVAS_STORAGE_BACKEND", StorageMinio)
	t.Setenv("CANVAS_MINIO_ENDPOINT", "localhost:9000")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingMinioSettings)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("CANVAS_STORAGE_BACKEND", "s3")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrUnknownStorageBackend)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:            3000,
			UploadDir:       "uploads",
			FileSizeLimitKB: 4096,
			StorageBackend:  StorageFilesystem,
			LogLevel:        "info",
			LogFormat:       "text",
		}
	}

	tests := []struct {
		name   string
		change func(c *Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"port out of range", func(c *Config) { c.Port = 70000 }, ErrInvalidPort},
		{"zero size limit", func(c *Config) { c.FileSizeLimitKB = 0 }, ErrInvalidFileSizeLimit},
		{"empty upload dir", func(c *Config) { c.UploadDir = "" }, ErrMissingUploadDir},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, ErrInvalidLogLevel},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.change(&cfg)

			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "debug", LogFormat: "json"})

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
