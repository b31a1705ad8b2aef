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

// DiagnosticEvent represents a build-time router event. These are
// informational: the router functions correctly whether a handler is
// installed or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered fires the first time a template is bound to a
	// resource.
	DiagRouteRegistered DiagnosticKind = "route_registered"
	// DiagRouteReplaced fires when re-registering an identical template
	// overwrites a previous binding.
	DiagRouteReplaced DiagnosticKind = "route_replaced"
	// DiagRouteRejected fires when AddRoute returns an UnacceptableRoute.
	DiagRouteRejected DiagnosticKind = "route_rejected"
	// DiagCompileTriggered fires when the decision program is (re)built,
	// either from the first Find after registration or from an explicit
	// Compile call.
	DiagCompileTriggered DiagnosticKind = "compile_triggered"
)

// DiagnosticHandler receives diagnostic events from the router.
// Implementations may log, emit metrics, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The router's matching behavior is unchanged whether diagnostics
// are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := uriroute.DiagnosticHandlerFunc(func(e uriroute.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := uriroute.MustNew(uriroute.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) { f(e) }

func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
