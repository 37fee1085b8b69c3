// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ftdetect detects the format of descriptor files.
package ftdetect

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type FileType int

const (
	Unknown FileType = iota
	TOML
	YAML
	JSON
)

func (t FileType) String() string {
	switch t {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

type file struct {
	f    io.ReadSeeker
	path string
}

// DetectFile returns the format of the file at path, by extension if it has
// a known one and by content otherwise.
func DetectFile(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()
	return Detect(path, f)
}

// Detect is like DetectFile for content that is already open. path is only
// used for its extension and may be empty.
func Detect(path string, r io.ReadSeeker) (FileType, error) {
	f := &file{f: r, path: path}
	return f.detect()
}

func (f *file) detect() (FileType, error) {
	if ft, ok := f.detectByName(); ok {
		return ft, nil
	}
	bs, err := f.readAll()
	if err != nil {
		return Unknown, err
	}
	if detectJSON(bs) {
		return JSON, nil
	}
	if detectTOML(bs) {
		return TOML, nil
	}
	if detectYAML(bs) {
		return YAML, nil
	}
	return Unknown, fmt.Errorf("unable to detect file type")
}

func (f *file) detectByName() (FileType, bool) {
	if f.path == "" {
		return Unknown, false
	}
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".toml":
		return TOML, true
	case ".yml", ".yaml":
		return YAML, true
	case ".json":
		return JSON, true
	}
	return Unknown, false
}

func (f *file) readAll() ([]byte, error) {
	if f.f == nil {
		return nil, fmt.Errorf("file is nil")
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to start of file: %w", err)
	}
	bs, err := io.ReadAll(f.f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to start of file: %w", err)
	}
	return bs, nil
}

// detectJSON checks for a top-level object.
func detectJSON(bs []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(bs), []byte("{"))
}

// detectTOML checks that the content decodes as a non-empty TOML document.
func detectTOML(bs []byte) bool {
	var m map[string]any
	if _, err := toml.Decode(string(bs), &m); err != nil {
		return false
	}
	return len(m) > 0
}

// detectYAML checks for a top-level mapping.
func detectYAML(bs []byte) bool {
	var m map[string]any
	if err := yaml.Unmarshal(bs, &m); err != nil {
		return false
	}
	return len(m) > 0
}
