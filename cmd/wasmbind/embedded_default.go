// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !wasmbind_minimal

package main

import (
	"github.com/albertocavalcante/wasmbind/generator"
	"github.com/albertocavalcante/wasmbind/generators/cpp"
	"github.com/albertocavalcante/wasmbind/generators/rust"
)

func init() {
	generator.Register(cpp.NewGenerator())
	generator.Register(rust.NewGenerator())
}
