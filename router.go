// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uriroute

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rivaas-dev/uriroute/compiler"
	"github.com/rivaas-dev/uriroute/convert"
)

// Router builds a segment-indexed routing tree from URI templates and
// compiles it into a decision program for matching request paths.
//
// Registration (AddRoute) must be serialized by the caller, matching the
// concurrency contract of the routing tree and converter registry; Find is
// safe for concurrent use from many goroutines, including concurrently
// with a registration that hasn't completed yet — the two are only
// required to be individually serialized, and Find always observes either
// the pre- or post-registration tree, never a partial one.
type Router struct {
	registrationMu sync.Mutex
	root           *node
	registry       *convert.Registry

	compileMu sync.Mutex
	dirty     atomic.Bool
	program   atomic.Pointer[compiler.Program]

	diagnostics       DiagnosticHandler
	pendingConverters []namedConstructor
	eagerCompile      bool
}

// New builds a Router. The built-in converters (int, uuid, datetime, path)
// are always available; further ones may be added with WithConverter.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		root:     newTree(),
		registry: convert.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, nc := range r.pendingConverters {
		if err := r.registry.Register(nc.name, nc.ctor); err != nil {
			return nil, err
		}
	}
	r.pendingConverters = nil
	r.dirty.Store(true)

	if r.eagerCompile {
		r.Compile()
	}
	return r, nil
}

// MustNew is New but panics on error; intended for package-level router
// construction where a bad converter registration is a programming error.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// AddRouteOption configures a single AddRoute call.
type AddRouteOption func(*addRouteConfig)

type addRouteConfig struct {
	methods      any
	forceCompile bool
}

// WithMethods attaches an opaque method-dispatch table to the route. The
// router never interprets it; Find returns it verbatim alongside the
// matched resource.
func WithMethods(methods any) AddRouteOption {
	return func(c *addRouteConfig) { c.methods = methods }
}

// WithImmediateCompile forces a synchronous recompile of the decision
// program before AddRoute returns, instead of leaving it for the next
// Find. Useful when registration happens on a hot path that must not pay
// for the next lookup's compile.
func WithImmediateCompile() AddRouteOption {
	return func(c *addRouteConfig) { c.forceCompile = true }
}

// AddRoute binds template to resource. Registering the same template twice
// replaces the previous binding; replaced reports whether that happened.
//
// On any validation or conflict failure the tree is left exactly as it was
// found — see tree.insert — and err is an *UnacceptableRoute.
func (r *Router) AddRoute(template string, resource any, opts ...AddRouteOption) (replaced bool, err error) {
	cfg := addRouteConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r.registrationMu.Lock()
	segs, err := parseTemplate(template, r.registry)
	if err == nil {
		replaced, err = r.root.insert(template, segs, resource, cfg.methods)
	}
	r.registrationMu.Unlock()

	if err != nil {
		r.emit(DiagRouteRejected, err.Error(), map[string]any{"template": template})
		return false, err
	}

	r.dirty.Store(true)
	if replaced {
		r.emit(DiagRouteReplaced, "route replaced", map[string]any{"template": template})
	} else {
		r.emit(DiagRouteRegistered, "route registered", map[string]any{"template": template})
	}

	if cfg.forceCompile {
		r.Compile()
	}
	return replaced, nil
}

// RegisterConverter extends the registry after construction. name must be
// a valid identifier and must not already be registered.
func (r *Router) RegisterConverter(name string, ctor convert.Constructor) error {
	r.registrationMu.Lock()
	defer r.registrationMu.Unlock()
	return r.registry.Register(name, ctor)
}

// Compile rebuilds the decision program from the current tree immediately.
// Find calls it lazily on first use after a registration, so most callers
// never need to call it directly; it's exposed for hosts that want to pay
// the compile cost outside of a request.
func (r *Router) Compile() {
	r.compileMu.Lock()
	defer r.compileMu.Unlock()
	if !r.dirty.Load() {
		return
	}

	// registrationMu is held until dirty is cleared, so an AddRoute that
	// inserts after the tree was lowered re-marks the router dirty only
	// after this compile has cleared it.
	r.registrationMu.Lock()
	tree := lowerRoot(r.root)
	prog := compiler.Compile(tree)
	r.program.Store(prog)
	r.dirty.Store(false)
	r.registrationMu.Unlock()

	r.emit(DiagCompileTriggered, "decision program compiled", nil)
}

// Find matches path (a request URI) against the compiled routing tree. It
// returns the bound resource, the method table passed to WithMethods (nil
// if none), the extracted parameters, and the original template, or
// ok=false if nothing matches.
//
// A Dirty router (one with registrations since the last compile) compiles
// under compileMu before servicing the lookup; a Ready router services it
// without contention.
func (r *Router) Find(path string) (resource, methods any, params map[string]any, template string, ok bool) {
	if r.dirty.Load() {
		r.Compile()
	}

	prog := r.program.Load()
	if prog == nil {
		return nil, nil, nil, "", false
	}

	term, params, ok := prog.Find(splitPath(path))
	if !ok {
		return nil, nil, nil, "", false
	}
	t := term.Value.(*terminal)
	return t.resource, t.methods, params, t.template, true
}

// Explain returns a human-readable rendering of the compiled decision
// program, forcing a compile if the router is Dirty. It is advisory
// diagnostic output, not part of the matching contract.
func (r *Router) Explain() string {
	if r.dirty.Load() {
		r.Compile()
	}
	prog := r.program.Load()
	if prog == nil {
		return ""
	}
	return prog.Explain()
}

// splitPath mirrors parseTemplate's segmentation exactly: a leading slash
// is stripped and the remainder split on "/", so that "" segments
// (trailing or consecutive slashes) round-trip the same way on both sides.
func splitPath(path string) []string {
	stripped := strings.TrimPrefix(path, "/")
	if stripped == "" {
		return []string{""}
	}
	return strings.Split(stripped, "/")
}
