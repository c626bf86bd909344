// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnsupportedPair is returned by [Lookup] for a pair with no generator.
var ErrUnsupportedPair = errors.New("unsupported conversion pair")

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the registry under its source:target pair.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	key := g.Metadata().Pair()
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("generator for %q already registered", key))
	}
	registry[key] = g
}

// Lookup returns the generator converting source to target.
func Lookup(source, target string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[PairKey(source, target)]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnsupportedPair, source, target)
	}
	return g, nil
}

// List returns all registered pair keys, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// All returns all registered generators, sorted by pair.
func All() []Generator {
	keys := List()
	mu.RLock()
	defer mu.RUnlock()
	gens := make([]Generator, 0, len(keys))
	for _, key := range keys {
		if g, ok := registry[key]; ok {
			gens = append(gens, g)
		}
	}
	return gens
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
