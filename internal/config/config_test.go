package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"url": "https://example.com",
		"max_pages": 8,
		"delay_ms": 500,
		"output_path": "report.json",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, 8, cfg.MaxPages)
	assert.Equal(t, 500, cfg.DelayMs)
	assert.Equal(t, "report.json", cfg.OutputPath)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		DelayMs: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delay_ms")
}

func TestValidate_MaxPagesOverLimit(t *testing.T) {
	cfg := &Config{
		MaxPages: 50,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_pages")
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		URL:      "https://example.com",
		MaxPages: 6,
		DelayMs:  1000,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		URL: "https://example.com",
	}
	defaults := Config{
		URL:        "https://ignored.example.com",
		MaxPages:   4,
		OutputPath: "out.json",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://example.com", merged.URL, "explicit values win over defaults")
	assert.Equal(t, 4, merged.MaxPages)
	assert.Equal(t, "out.json", merged.OutputPath)
	assert.Equal(t, DefaultDelayMs, merged.DelayMs, "built-in default applies last")
	assert.Equal(t, DefaultTimeoutSec, merged.TimeoutSec)
}

func TestMergeWithDefaults_CacheSettings(t *testing.T) {
	cfg := &Config{}
	defaults := Config{
		CacheTTLHour: 48,
		SkipCache:    true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 48, merged.CacheTTLHour)
	assert.True(t, merged.SkipCache, "config file skip_cache carries through the merge")
}

func TestMergeWithDefaults_BoolsTrueWins(t *testing.T) {
	cfg := &Config{Verbose: true}
	defaults := Config{UseBrowser: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.True(t, merged.Verbose)
	assert.True(t, merged.UseBrowser)
	assert.False(t, merged.SkipCache)
}

func TestDurationHelpers(t *testing.T) {
	cfg := &Config{DelayMs: 250, TimeoutSec: 10, CacheTTLHour: 24}

	assert.Equal(t, 250*time.Millisecond, cfg.Delay())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
}
