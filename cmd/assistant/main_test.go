package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "assistant.log"))
	t.Setenv("METADATA_BACKEND", "memory")
	return execute(args...)
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_WarnsThatMemoryBackendIsNotPersistent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "assistant.log")
	t.Setenv("LOG_FILE_PATH", logPath)
	t.Setenv("METADATA_BACKEND", "memory")

	_, err := execute("metadata", "toggle", "--dev", "--no-color", writeDraft(t, "x"))
	require.NoError(t, err)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Metadata is kept in memory and is lost when the command exits")
	assert.Contains(t, string(logged), `"module":"CLI"`)
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_Questions(t *testing.T) {
	out, err := runCLI(t, "questions", "--dev", "--no-color", writeDraft(t, "A draft."))

	require.NoError(t, err)
	assert.Contains(t, out, "What do you currently believe about this?")
}

func TestCLI_Highlights(t *testing.T) {
	out, err := runCLI(t, "highlights", "--dev", "--no-color", writeDraft(t, "I think it works."))

	require.NoError(t, err)
	assert.Contains(t, out, `[claim] 0-7 "I think"`)
}

func TestCLI_MetadataToggle(t *testing.T) {
	out, err := runCLI(t, "metadata", "toggle", "--dev", "--no-color", writeDraft(t, "x"))

	require.NoError(t, err)
	assert.Equal(t, "draft.md\n  assistant: on\n", out)
}

func TestCLI_ToggleWithoutDocumentFails(t *testing.T) {
	out, err := runCLI(t, "metadata", "toggle", "--dev", "--no-color", filepath.Join(t.TempDir(), "missing.md"))

	assert.True(t, errors.Is(err, errActionFailed))
	assert.Equal(t, "No active document\n", out)
}
