package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

func TestConfigShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	configPath = "/home/user/.bidassist/config.toml"

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "URL: http://localhost:8000")
	assert.Contains(t, out, "Timeout: none")
	assert.Contains(t, out, "Address: :8080")
	assert.Contains(t, out, "Interval: 2s")
	assert.Contains(t, out, "Config file: /home/user/.bidassist/config.toml")
}

func TestConfigSetBackend(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set-backend", "https://rfp.example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://rfp.example.com", ts.Settings.BackendURL)
	assert.Contains(t, out, "Backend set to https://rfp.example.com")
}

func TestConfigSetBackend_Invalid(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "set-backend", "ftp://rfp.example.com")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, ts.Settings.BackendURL)
}

func TestConfigReset(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "reset")

	require.NoError(t, err)
	require.NotNil(t, ts.Settings.Saved)
	assert.Equal(t, domain.DefaultBackendURL, ts.Settings.Saved.Backend.URL)
}

func TestConfigWizard(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	rootCmd.SetIn(strings.NewReader("http://10.0.0.5:8000\n30\n\n5\n"))

	_, err := execute(t, "config", "wizard")

	require.NoError(t, err)
	require.NotNil(t, ts.Settings.Saved)
	assert.Equal(t, "http://10.0.0.5:8000", ts.Settings.Saved.Backend.URL)
	assert.Equal(t, 30*time.Second, ts.Settings.Saved.Backend.Timeout)
	assert.Equal(t, ":8080", ts.Settings.Saved.Serve.Addr)
	assert.Equal(t, 5*time.Second, ts.Settings.Saved.Watch.Interval)
}

func TestParseSeconds(t *testing.T) {
	current := 7 * time.Second

	assert.Equal(t, current, parseSeconds("", current))
	assert.Equal(t, current, parseSeconds("abc", current))
	assert.Equal(t, current, parseSeconds("-1", current))
	assert.Equal(t, time.Duration(0), parseSeconds("0", current))
	assert.Equal(t, 12*time.Second, parseSeconds("12", current))
}

func TestDescribeDuration(t *testing.T) {
	assert.Equal(t, "none", describeDuration(0, "none"))
	assert.Equal(t, "1m30s", describeDuration(90*time.Second, "none"))
}
