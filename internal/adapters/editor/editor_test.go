package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		env        string
		wantArgs   []string
	}{
		{name: "configured editor wins", configured: "nano", env: "vim", wantArgs: []string{"nano", "/tmp/x.txt"}},
		{name: "editor flags", configured: "code --wait", wantArgs: []string{"code", "--wait", "/tmp/x.txt"}},
		{name: "environment fallback", env: "hx", wantArgs: []string{"hx", "/tmp/x.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			t.Setenv("VISUAL", "")

			cmd, err := NewOpener(tt.configured).Command("/tmp/x.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestSession(t *testing.T) {
	s, err := NewSession(4, "first draft")
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, strings.HasSuffix(s.Path(), ".txt"))

	_, changed, err := s.Result()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(s.Path(), []byte("second draft"), 0o600))
	edited, changed, err := s.Result()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "second draft", edited)

	require.NoError(t, s.Close())
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Close())
}

func TestSession_StructuredPayloadUsesJSON(t *testing.T) {
	s, err := NewSession(1, `[{"type":"paragraph"}]`)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, ".json", filepath.Ext(s.Path()))
}
