// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docgen drives documentation generation for configuration
// records. Declarations stream in from source scanning; each one may
// register its record, request a reference table in a target file, or
// both. Requests whose flatten dependencies are not registered yet wait
// in a queue that is re-checked after every registration, so
// declaration order never changes what ends up in the files.
package docgen

import (
	"errors"
	"fmt"

	"github.com/dacolabs/confdocs/internal/record"
	"github.com/dacolabs/confdocs/internal/registry"
	"github.com/dacolabs/confdocs/internal/render"
)

// UpdateFunc writes rendered content into a target file's marker
// region. Generation normally uses docfile.Update; checks use an
// in-memory variant.
type UpdateFunc func(target, content string) error

// Declaration is one annotated struct as captured from source: its
// definition, whether it registers the record, and the output it
// requests, if any.
type Declaration struct {
	Definition record.Definition
	Register   bool
	Output     *record.Output
}

// Engine holds the state of one generation run: the definition store,
// the queue of requests waiting for dependencies, and the update func
// that writes finished content.
type Engine struct {
	defs    *registry.Definitions
	pending *registry.Pending
	update  UpdateFunc
}

// NewEngine returns an empty engine that writes through update.
func NewEngine(update UpdateFunc) *Engine {
	return &Engine{
		defs:    registry.NewDefinitions(),
		pending: registry.NewPending(),
		update:  update,
	}
}

// Process handles one declaration. Registration happens first and
// re-checks every queued request, so a record declared later in the
// source unblocks requests queued before it. An output request is
// generated immediately when all flatten references are registered and
// queued otherwise; queuing is not an error. A request left queued at
// the end of the run surfaces through Pending, never through the error
// return.
func (e *Engine) Process(decl Declaration) error {
	var errs []error

	if decl.Register {
		e.defs.Put(decl.Definition)
		if err := e.sweepPending(); err != nil {
			errs = append(errs, err)
		}
	}

	if decl.Output != nil {
		req := record.Request{Definition: decl.Definition, Output: *decl.Output}
		if Resolvable(e.defs, decl.Definition) {
			if err := e.generate(req); err != nil {
				errs = append(errs, err)
			}
		} else {
			e.pending.Add(req)
		}
	}

	return errors.Join(errs...)
}

// Pending returns the requests still waiting for registrations, targets
// in sorted order and insertion order within a target.
func (e *Engine) Pending() []record.Request {
	var reqs []record.Request
	for _, target := range e.pending.Targets() {
		reqs = append(reqs, e.pending.Requests(target)...)
	}
	return reqs
}

// Missing returns the flatten reference names of def that are not
// registered, in field order without duplicates.
func (e *Engine) Missing(def record.Definition) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, f := range def.Fields {
		if !f.Attrs.Flatten {
			continue
		}
		ref := f.RefName()
		if seen[ref] || e.defs.Has(ref) {
			continue
		}
		seen[ref] = true
		missing = append(missing, ref)
	}
	return missing
}

// Registered returns the names of all registered records, sorted.
func (e *Engine) Registered() []string {
	return e.defs.Names()
}

// generate expands, renders, and writes one request.
func (e *Engine) generate(req record.Request) error {
	expanded := Expand(e.defs, req.Definition)
	content, err := render.Table(expanded, req.Output.Format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", req.Definition.Name, err)
	}
	return e.update(req.Output.Target, content)
}

// sweepPending generates every queued request that has become
// resolvable. Failed requests leave the queue with their error
// collected; unready ones stay.
func (e *Engine) sweepPending() error {
	return e.pending.Sweep(func(req record.Request) (bool, error) {
		if !Resolvable(e.defs, req.Definition) {
			return false, nil
		}
		if err := e.generate(req); err != nil {
			return false, err
		}
		return true, nil
	})
}
