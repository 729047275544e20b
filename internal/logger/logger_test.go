package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetup_InvalidLevel verifies an unknown level is rejected.
func TestSetup_InvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	assert.Error(t, Setup(cfg))
}

// TestSetup_FileOutput verifies JSON lines are written to a file path.
func TestSetup_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settlement.log")
	t.Cleanup(func() {
		require.NoError(t, Setup(DefaultConfig()))
	})

	require.NoError(t, Setup(LogConfig{Level: "debug", Format: "json", Output: path}))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log := WithGroup("test", "TW-0101")
	log.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"group_code":"TW-0101"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}
