// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build wasmbind_minimal

package main

import (
	"github.com/albertocavalcante/wasmbind/generator"
	"github.com/albertocavalcante/wasmbind/generators/cpp"
)

func init() {
	// Minimal build: only the rust -> cpp generator
	generator.Register(cpp.NewGenerator())
}
