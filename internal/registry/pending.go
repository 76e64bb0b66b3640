// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/dacolabs/confdocs/internal/record"
)

// Pending queues generation requests whose dependencies are not all
// registered yet, keyed by target path. Requests for one target keep
// their insertion order.
type Pending struct {
	mu       sync.Mutex
	byTarget map[string][]record.Request
}

// NewPending returns an empty request queue.
func NewPending() *Pending {
	return &Pending{byTarget: make(map[string][]record.Request)}
}

// Add appends a request to its target's queue.
func (p *Pending) Add(req record.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	target := req.Output.Target
	p.byTarget[target] = append(p.byTarget[target], req)
}

// Sweep feeds every queued request to process, visiting targets in
// sorted order and requests in insertion order. The queue stays locked
// for the whole pass; process must not call back into it.
//
// process reports whether the request was generated. Generated requests
// are removed, unready ones stay queued, and a request that fails is
// removed with its error collected into the joined return value. Targets
// whose queues drain are dropped entirely.
func (p *Pending) Sweep(process func(record.Request) (bool, error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	targets := make([]string, 0, len(p.byTarget))
	for target := range p.byTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	var errs []error
	for _, target := range targets {
		var remaining []record.Request
		for _, req := range p.byTarget[target] {
			generated, err := process(req)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !generated {
				remaining = append(remaining, req)
			}
		}
		if len(remaining) == 0 {
			delete(p.byTarget, target)
		} else {
			p.byTarget[target] = remaining
		}
	}
	return errors.Join(errs...)
}

// Targets returns the target paths that still have queued requests, in
// sorted order.
func (p *Pending) Targets() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	targets := make([]string, 0, len(p.byTarget))
	for target := range p.byTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}

// Requests returns a copy of one target's queue in insertion order.
func (p *Pending) Requests(target string) []record.Request {
	p.mu.Lock()
	defer p.mu.Unlock()

	queue := p.byTarget[target]
	out := make([]record.Request, len(queue))
	copy(out, queue)
	return out
}

// Len returns the total number of queued requests across all targets.
func (p *Pending) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, queue := range p.byTarget {
		n += len(queue)
	}
	return n
}
