package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/web"
)

func TestServeCmd_Flags(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "", addr.DefValue)
	require.NotNil(t, serveCmd.Flags().Lookup("log-json"))
}

func TestServeCmd_RequiresServices(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "serve", "--addr", "127.0.0.1:0")
	serveAddr = ""

	assert.ErrorIs(t, err, web.ErrMissingDashboardService)
}

func TestWatchCmd_RequiresDirectory(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "watch", "/nonexistent/bidassist-inbox")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch /nonexistent/bidassist-inbox")
}

func TestWatchCmd_RequiresUploadService(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "watch", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload service not configured")
}

func TestWatchCmd_IntervalFlag(t *testing.T) {
	flag := watchCmd.Flags().Lookup("interval")
	require.NotNil(t, flag)
	assert.Equal(t, "0s", flag.DefValue)
}
