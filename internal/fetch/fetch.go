// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fetch loads the source text to generate bindings from.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// DefaultTimeout bounds remote fetches when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configures how to load the source text.
type Options struct {
	// Path is a local file path, "-" for standard input, or an
	// http:// or https:// URL.
	Path string

	// Timeout for network operations.
	Timeout time.Duration

	// Stdin is read when Path is "-". Defaults to os.Stdin.
	Stdin io.Reader

	// Client is used for URLs. Defaults to http.DefaultClient.
	Client *http.Client
}

// Result contains the loaded text and where it came from.
type Result struct {
	Text []byte

	// Source describes where the text was loaded from.
	Source string
}

// Load reads the source text selected by opts.Path.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	switch {
	case opts.Path == "":
		return nil, fmt.Errorf("no input path")
	case opts.Path == Stdin:
		return loadStdin(opts.Stdin)
	case isURL(opts.Path):
		return loadURL(ctx, opts)
	default:
		return loadFile(strings.TrimPrefix(opts.Path, "file://"))
	}
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// loadFile reads the source from a local file.
func loadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return &Result{Text: data, Source: path}, nil
}

func loadStdin(r io.Reader) (*Result, error) {
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &Result{Text: data, Source: "<stdin>"}, nil
}

// loadURL fetches the source over HTTP.
func loadURL(ctx context.Context, opts Options) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", opts.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", opts.Path, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Result{Text: data, Source: opts.Path}, nil
}
