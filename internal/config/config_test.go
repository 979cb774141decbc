// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-upload-form/internal/staging"
)

// ── helpers ──

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Upload: Upload{MaxFileSize: 1024, AllowedTypes: []string{"image/png"}},
		Log:    Log{File: "form.log", Level: "info"},
	}
}

// ── env ──

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"UPLOAD_MAX_FILE_SIZE": "2048",
		"UPLOAD_ALLOWED_TYPES": "image/png,image/gif",
		"LOG_FILE":             "/tmp/form.log",
		"LOG_LEVEL":            "debug",
		"UI_ALT_SCREEN":        "true",
		"CONFIG":               "/etc/form.json",
	})
	cfg := &StructuredConfig{}

	// Act
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{"image/png", "image/gif"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "/tmp/form.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "/etc/form.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	setEnvVars(t, map[string]string{"UPLOAD_MAX_FILE_SIZE": "five"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── flags ──

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-max-file-size", "100",
		"-allowed-types", "image/png, image/jpeg",
		"-allowed-types", "image/gif",
		"-log-file", "x.log",
		"-log-level", "warn",
		"-alt-screen",
		"-c", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{"image/png", "image/jpeg", "image/gif"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})

	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestTypeList_String(t *testing.T) {
	l := TypeList{"image/png", "image/gif"}
	assert.Equal(t, "image/png,image/gif", l.String())

	var nilList *TypeList
	assert.Equal(t, "", nilList.String())
}

// ── json ──

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"upload": {"max_file_size": 4096, "allowed_types": ["image/webp"]},
		"log": {"file": "json.log", "level": "error"},
		"ui": {"alt_screen": true}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, int64(4096), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{"image/webp"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "json.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"upload": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// ── validation ──

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "zero size", mutate: func(c *StructuredConfig) { c.Upload.MaxFileSize = 0 }, wantErr: ErrInvalidUploadConfigs},
		{name: "negative size", mutate: func(c *StructuredConfig) { c.Upload.MaxFileSize = -1 }, wantErr: ErrInvalidUploadConfigs},
		{name: "no types", mutate: func(c *StructuredConfig) { c.Upload.AllowedTypes = nil }, wantErr: ErrInvalidUploadConfigs},
		{name: "bad type", mutate: func(c *StructuredConfig) { c.Upload.AllowedTypes = []string{"png"} }, wantErr: ErrInvalidUploadConfigs},
		{name: "no log file", mutate: func(c *StructuredConfig) { c.Log.File = "" }, wantErr: ErrInvalidLogConfigs},
		{name: "bad level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPolicy_CopiesTypes(t *testing.T) {
	cfg := validConfig()

	p := cfg.Policy()
	p.AllowedTypes[0] = "image/gif"

	assert.Equal(t, int64(1024), p.MaxSize)
	assert.Equal(t, "image/png", cfg.Upload.AllowedTypes[0])
}

// ── builder ──

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()

	assert.NotNil(t, b.configs)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()

	assert.ErrorIs(t, err, ErrInvalidUploadConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, staging.DefaultMaxSize, cfg.Upload.MaxFileSize)
	assert.Equal(t, staging.DefaultPolicy().AllowedTypes, cfg.Upload.AllowedTypes)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultLogFileName, filepath.Base(cfg.Log.File))
	assert.False(t, cfg.UI.AltScreen)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	_, err := newConfigBuilder().withDefaults().withFlags([]string{"-unknown"}).build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	setEnvVars(t, map[string]string{
		"UPLOAD_MAX_FILE_SIZE": "2048",
		"LOG_LEVEL":            "debug",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-log-level", "warn"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, staging.DefaultPolicy().AllowedTypes, cfg.Upload.AllowedTypes)
}

func TestGetStructuredConfig_JSONFromFlag(t *testing.T) {
	path := writeTempJSONConfig(t, `{"upload": {"allowed_types": ["image/gif"]}, "log": {"level": "error"}}`)

	cfg, err := GetStructuredConfig([]string{"-c", path, "-log-level", "debug"})

	require.NoError(t, err)
	assert.Equal(t, []string{"image/gif"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, staging.DefaultMaxSize, cfg.Upload.MaxFileSize)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestGetStructuredConfig_JSONFromEnv(t *testing.T) {
	path := writeTempJSONConfig(t, `{"ui": {"alt_screen": true}}`)
	setEnvVars(t, map[string]string{"CONFIG": path})

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.True(t, cfg.UI.AltScreen)
}

func TestGetStructuredConfig_MissingJSON(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetStructuredConfig_InvalidResult(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-allowed-types", "nonsense"})

	assert.ErrorIs(t, err, ErrInvalidUploadConfigs)
}
