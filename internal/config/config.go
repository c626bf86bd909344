// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the optional wasmbind.toml project file.
//
//	templates = "templates"   # override template directory
//	output = "out"            # default output directory
//
//	[markers]
//	rust = ["wasm_bindgen", "no_mangle"]
//	cpp = ["EMSCRIPTEN_KEEPALIVE"]
//
//	[types.rust]
//	Handle = "u32"            # alias applied before type resolution
//
// Relative paths are resolved against the directory of the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for by [Discover].
const FileName = "wasmbind.toml"

// Config is the decoded project file.
type Config struct {
	// Templates is an override template directory.
	Templates string `toml:"templates"`

	// Output is the default output directory.
	Output string `toml:"output"`

	// Markers maps a source language tag to its export markers.
	Markers map[string][]string `toml:"markers"`

	// Types maps a source language tag to token aliases.
	Types map[string]map[string]string `toml:"types"`

	// Path is the file the config was read from. Empty for defaults.
	Path string `toml:"-"`
}

// MarkersFor returns the markers configured for a source language, or nil.
func (c *Config) MarkersFor(lang string) []string {
	if c == nil {
		return nil
	}
	return c.Markers[lang]
}

// AliasesFor returns the type aliases configured for a source language, or nil.
func (c *Config) AliasesFor(lang string) map[string]string {
	if c == nil {
		return nil
	}
	return c.Types[lang]
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg.Path = abs
	root := filepath.Dir(abs)
	cfg.Templates = resolve(root, cfg.Templates)
	cfg.Output = resolve(root, cfg.Output)

	for lang, markers := range cfg.Markers {
		for _, m := range markers {
			if strings.TrimSpace(m) == "" {
				return nil, fmt.Errorf("%s: [markers].%s contains an empty marker", path, lang)
			}
		}
	}
	return &cfg, nil
}

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

// Find walks up from startDir looking for [FileName].
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest config file above startDir. When there is
// none it returns an empty config and no error.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Config{}, nil
	}
	return Load(path)
}
