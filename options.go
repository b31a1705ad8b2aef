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

import "github.com/rivaas-dev/uriroute/convert"

// Option configures a Router at construction time.
type Option func(*Router)

// WithDiagnostics sets a diagnostic handler for the router. Diagnostic
// events are optional informational events (route registered/replaced/
// rejected, compile triggered); the router matches correctly whether a
// handler is installed or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := uriroute.DiagnosticHandlerFunc(func(e uriroute.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := uriroute.MustNew(uriroute.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithConverter registers a named converter constructor in addition to the
// built-ins (int, uuid, datetime, path). name must be a valid identifier
// and must not collide with a built-in or a previously registered name.
//
// Example:
//
//	r := uriroute.MustNew(uriroute.WithConverter("slug", func(a convert.Args) (convert.Converter, error) {
//	    return convert.Func(func(fragment string) (any, bool) {
//	        return fragment, slugPattern.MatchString(fragment)
//	    }), nil
//	}))
func WithConverter(name string, ctor convert.Constructor) Option {
	return func(r *Router) {
		r.pendingConverters = append(r.pendingConverters, namedConstructor{name: name, ctor: ctor})
	}
}

type namedConstructor struct {
	name string
	ctor convert.Constructor
}

// WithEagerCompile forces the decision program to be built during New
// instead of lazily on the first Find call. Useful for moving compilation
// cost out of a request-serving hot path and into process startup.
func WithEagerCompile() Option {
	return func(r *Router) {
		r.eagerCompile = true
	}
}
