// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated bindings are accepted by the target
// toolchain.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const rustInput = `use wasm_bindgen::prelude::*;

#[wasm_bindgen]
pub fn add(a: i32, b: i32) -> i32 {
    a + b
}

#[wasm_bindgen]
pub fn greet(name: &str) -> String {
    format!("Hello, {}!", name)
}

#[wasm_bindgen]
pub fn scale(x: f32, factor: Option<f64>) -> Option<f32> {
    Some(x)
}

#[wasm_bindgen]
pub fn checksum(data: Vec<u8>) -> u64 {
    0
}

#[wasm_bindgen]
pub fn reset() {}
`

const cppInput = `#include <emscripten.h>
#include <optional>

extern "C" {

EMSCRIPTEN_KEEPALIVE
int add(int a, int b) { return a + b; }

EMSCRIPTEN_KEEPALIVE
const char* greet(const char* name) { return name; }

EMSCRIPTEN_KEEPALIVE
std::optional<double> ratio(std::optional<int> num, unsigned int type) { return {}; }

EMSCRIPTEN_KEEPALIVE
void log_point(Point p) {}

}
`

// generate runs the CLI over input and returns the output directory.
func generate(t *testing.T, source, target, input string) string {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "bindings")
	_, stderr, code := runCLI(t, dir, []byte(input), "generate", source, target, "-", "demo_math", "-o", out, "--quiet")
	if code != 0 {
		t.Fatalf("wasmbind generate: exit %d\n%s", code, stderr)
	}
	return out
}

// TestCppOutputCompiles checks the generated C++ with -fsyntax-only. The
// implementation file needs wasm.h and is only checked when WASMER_DIR is
// set.
func TestCppOutputCompiles(t *testing.T) {
	cxx, err := exec.LookPath("c++")
	if err != nil {
		t.Skip("c++ not installed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out := generate(t, "rust", "cpp", rustInput)

	files := []string{"demo.cpp"}
	args := []string{"-std=c++17", "-fsyntax-only", "-Wall"}
	if dir := os.Getenv("WASMER_DIR"); dir != "" {
		files = append(files, "demo_math.cpp")
		args = append(args, "-I", filepath.Join(dir, "include"))
	}

	for _, f := range files {
		t.Run(f, func(t *testing.T) {
			cmd := exec.CommandContext(ctx, cxx, append(args, f)...)
			cmd.Dir = out
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				t.Fatalf("%s: %v\n%s", f, err, stderr.String())
			}
		})
	}
}

// TestRustOutputChecks runs cargo check on the generated crate. Linking
// is not exercised, so the C++ library does not need to exist.
func TestRustOutputChecks(t *testing.T) {
	if _, err := exec.LookPath("cargo"); err != nil {
		t.Skip("cargo not installed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	out := generate(t, "cpp", "rust", cppInput)

	start := time.Now()
	cmd := exec.CommandContext(ctx, "cargo", "check", "--offline", "--examples", "--lib")
	cmd.Dir = out
	cmd.Env = append(os.Environ(), "CARGO_TARGET_DIR="+filepath.Join(t.TempDir(), "target"))
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("cargo check failed: %v\n%s", err, output)
	}
	t.Logf("cargo check: %v", time.Since(start))
}
