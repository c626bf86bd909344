// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `
templates = "tmpl"
output = "/abs/out"

[markers]
rust = ["wasm_bindgen", "export"]

[types.rust]
Handle = "u32"
Name = "&str"

[types.cpp]
handle_t = "uint32_t"
`)

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal(filepath.Join(dir, "tmpl"), cfg.Templates)
	require.Equal("/abs/out", cfg.Output)
	require.Equal([]string{"wasm_bindgen", "export"}, cfg.MarkersFor("rust"))
	require.Nil(cfg.MarkersFor("cpp"))
	require.Equal(map[string]string{"Handle": "u32", "Name": "&str"}, cfg.AliasesFor("rust"))
	require.Equal(map[string]string{"handle_t": "uint32_t"}, cfg.AliasesFor("cpp"))
	require.True(filepath.IsAbs(cfg.Path))
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
templates = "t"
tempaltes = "typo"
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tempaltes")
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: `templates = `},
		{name: "wrong type", content: `output = 3`},
		{name: "empty marker", content: "[markers]\nrust = [\"\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			require.Error(t, err)
		})
	}
}

func TestDiscover(t *testing.T) {
	require := require.New(t)
	root := t.TempDir()
	writeConfig(t, root, `output = "gen"`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(err)
	require.Equal(filepath.Join(root, "gen"), cfg.Output)
}

func TestDiscoverNone(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Empty(t, cfg.Path)
	require.Nil(t, cfg.MarkersFor("rust"))
}

func TestNilConfig(t *testing.T) {
	var cfg *Config
	require.Nil(t, cfg.MarkersFor("rust"))
	require.Nil(t, cfg.AliasesFor("rust"))
}
