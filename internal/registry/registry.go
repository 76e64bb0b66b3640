// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package registry holds the in-memory stores shared by a generation
// run: the record definitions registered so far and the generation
// requests still waiting for their flatten dependencies.
package registry

import (
	"sort"
	"sync"

	"github.com/dacolabs/confdocs/internal/record"
)

// Definitions maps record names to their registered definitions. A later
// registration under the same name replaces the earlier one; entries are
// never removed. The store lives for a single run.
type Definitions struct {
	mu     sync.RWMutex
	byName map[string]record.Definition
}

// NewDefinitions returns an empty definition store.
func NewDefinitions() *Definitions {
	return &Definitions{byName: make(map[string]record.Definition)}
}

// Put registers a definition under its name, replacing any earlier one.
func (d *Definitions) Put(def record.Definition) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byName[def.Name] = def
}

// Get returns the definition registered under name.
func (d *Definitions) Get(name string) (record.Definition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	def, ok := d.byName[name]
	return def, ok
}

// Has reports whether a definition is registered under name.
func (d *Definitions) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.byName[name]
	return ok
}

// Names returns all registered record names in sorted order.
func (d *Definitions) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.byName))
	for name := range d.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
