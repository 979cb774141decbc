// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	Upload struct {
		MaxFileSize  int64    `json:"max_file_size"`
		AllowedTypes []string `json:"allowed_types"`
	} `json:"upload,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	UI struct {
		AltScreen bool `json:"alt_screen"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Upload: Upload{
			MaxFileSize:  jsonCfg.Upload.MaxFileSize,
			AllowedTypes: jsonCfg.Upload.AllowedTypes,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		UI: UI{
			AltScreen: jsonCfg.UI.AltScreen,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
