package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/wfo-parser/pkg/dates"
)

// TestLoadServerConfig_Defaults tests the built-in defaults
func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, 15*time.Minute, cfg.DownloadTTL)
	assert.Equal(t, dates.OrderAuto, cfg.DefaultDateOrder)
}

// TestLoadServerConfig_EnvOverrides tests environment variable overrides
func TestLoadServerConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WFO_LISTEN_ADDR", ":9999")
	t.Setenv("WFO_DOWNLOAD_TTL", "30s")
	t.Setenv("WFO_DATE_ORDER", "mdy")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.DownloadTTL)
	assert.Equal(t, dates.OrderMonthDayYear, cfg.DefaultDateOrder)
}

// TestLoadServerConfig_InvalidTTL tests rejection of a malformed duration
func TestLoadServerConfig_InvalidTTL(t *testing.T) {
	t.Setenv("WFO_DOWNLOAD_TTL", "soon")
	_, err := LoadServerConfig("")
	require.Error(t, err)
}

// TestServerConfig_Validate tests validation of unusable values
func TestServerConfig_Validate(t *testing.T) {
	cfg := NewDefaultServerConfig()
	cfg.DownloadTTL = 0
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultServerConfig()
	cfg.MaxUploadBytes = -1
	assert.Error(t, cfg.Validate())

	assert.NoError(t, NewDefaultServerConfig().Validate())
}
