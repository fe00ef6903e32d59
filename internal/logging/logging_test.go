package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{level: "debug", debugSeen: true, infoSeen: true},
		{level: "info", infoSeen: true},
		{level: "warn"},
		{level: "bogus", infoSeen: true},
		{level: "", infoSeen: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.level)
			log.Debug().Msg("debug line")
			log.Info().Msg("info line")

			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tt.infoSeen, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}

func TestToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	log, err := ToFile(dir, "info")
	require.NoError(t, err)
	log.Info().Str("note", "1").Msg("saved")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"saved"`)
	assert.Contains(t, string(data), `"note":"1"`)
}

func TestClose_WithoutFile(t *testing.T) {
	assert.NoError(t, New(&bytes.Buffer{}, "info").Close())
}
