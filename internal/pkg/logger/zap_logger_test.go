package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")
	l := NewZapLogger(path, true)

	l.Info("CORE", "questions generated", map[string]interface{}{"count": 3})
	l.Debug("CORE", "below file level", nil)
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Module  string                 `json:"module"`
		Details map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "questions generated", entry.Message)
	assert.Equal(t, "CORE", entry.Module)
	assert.EqualValues(t, 3, entry.Details["count"])
}

func TestNopLogger_AcceptsNilDetails(t *testing.T) {
	l := NewNopLogger()

	assert.NotPanics(t, func() {
		l.Error("CORE", "boom", nil)
		l.Warn("CORE", "careful", map[string]interface{}{"error": "x"})
	})
}
