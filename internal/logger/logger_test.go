// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLast(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b))
	var last []byte
	for sc.Scan() {
		last = append([]byte(nil), sc.Bytes()...)
	}
	require.NotEmpty(t, last, "no log lines written")
	require.NoError(t, json.Unmarshal(last, &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

// TestNew_RoleAndTimestamp verifies that every entry carries the role label
// and a timestamp.
func TestNew_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeLast(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldIsFunctionName verifies that the caller is recorded in
// the "func" field as a function name instead of file:line.
func TestNew_CallerFieldIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := New("caller-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("where")

	entry := decodeLast(t, buf.Bytes())
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, entry["func"], "TestNew_CallerFieldIsFunctionName")
}

// TestNew_LevelFilters verifies that entries below the configured level are dropped.
func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf, zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeLast(t, buf.Bytes())["message"])
}

// TestNewFileLogger_WritesToFile verifies that entries land in the given file.
func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.log")

	l, closer, err := NewFileLogger("form", path, "info")
	require.NoError(t, err)

	l.Debug().Msg("below level")
	l.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeLast(t, data)
	assert.Equal(t, "to file", entry["message"])
	assert.NotContains(t, string(data), "below level")
}

// TestNewFileLogger_Appends verifies that an existing log file is not truncated.
func TestNewFileLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"message\":\"old\"}\n"), 0o644))

	l, closer, err := NewFileLogger("form", path, "")
	require.NoError(t, err)
	l.Info().Msg("new")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "old")
	assert.Contains(t, string(data), "new")
}

// TestNewFileLogger_InvalidLevel verifies that unknown level names are rejected.
func TestNewFileLogger_InvalidLevel(t *testing.T) {
	_, _, err := NewFileLogger("form", filepath.Join(t.TempDir(), "x.log"), "loud")
	require.ErrorIs(t, err, ErrInvalidLevel)
}

// TestNewFileLogger_FallbackToStderr verifies that an unopenable path does not
// fail startup.
func TestNewFileLogger_FallbackToStderr(t *testing.T) {
	l, closer, err := NewFileLogger("form", filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "error")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NoError(t, closer.Close())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent and is a distinct instance.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeLast(t, buf.Bytes())["role"])
}

// TestFromContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf, zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Info().Msg("from context")

	assert.Equal(t, "ctx-role", decodeLast(t, buf.Bytes())["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
