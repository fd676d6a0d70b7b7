// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// File is an optional fbctl.yaml holding display preferences and default
// flag values. Source is the resolved path, used by the cli-altsrc flag
// sources; Data is the parsed document.
type File struct {
	Source string
	Data   map[string]interface{}
}

var file File

// LoadFile locates and parses fbctl.yaml. A missing file is not an error to
// the caller; flags and display settings simply keep their defaults.
func LoadFile() (File, error) {
	path, err := filePath()
	if err != nil {
		return File{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}

	file = File{Source: path, Data: data}
	return file, nil
}

// get traverses the map using a dotted key path.
func (f File) get(kspec string) (any, error) {
	keys := strings.Split(kspec, ".")
	var current interface{} = f.Data

	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at path %q", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at path %q", kspec)
		}
	}

	return current, nil
}

// GetString returns the string at the dotted key path, or the default.
func GetString(key string, defaultValue string) string {
	val, err := file.get(key)
	if err != nil {
		return defaultValue
	}
	s, ok := val.(string)
	if !ok {
		return defaultValue
	}
	return s
}

// GetInt returns the int at the dotted key path, or the default.
func GetInt(key string, defaultValue int) int {
	val, err := file.get(key)
	if err != nil {
		return defaultValue
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

func filePath() (string, error) {
	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		f := filepath.Join(c, "fbctl.yaml")
		if fileInfo, err := os.Stat(f); err == nil && !fileInfo.IsDir() {
			log.Debugf("using config file: %s", f)
			return f, nil
		}
	}
	return "", errors.New("no config file found in standard locations")
}
