package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "toast.log")

	l, closer, err := New("debug", file)
	require.NoError(t, err)

	l.Debug().Str("kind", "success").Msg("pushed")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "pushed", entry["message"])
	assert.Equal(t, "success", entry["kind"])
	assert.Contains(t, entry, "time")
}

func TestNew_appendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "toast.log")

	for _, msg := range []string{"first", "second"} {
		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}

func TestNew_level(t *testing.T) {
	l, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNew_invalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNew_unwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, closer, err := New("info", filepath.Join(blocker, "toast.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create log dir")
	assert.NotNil(t, closer)
}

func TestDefaultFile_stateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	assert.Equal(t, "/tmp/state/toast/toast.log", DefaultFile("toast"))
}

func TestDefaultFile_fallback(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")

	got := DefaultFile("toast")
	assert.True(t, strings.HasSuffix(got, filepath.Join("toast", "toast.log")), got)
}
