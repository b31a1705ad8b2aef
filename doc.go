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

// Package uriroute is a build-time-compiled URI router.
//
// A pool of URI templates, each bound to a resource, is organized into a
// segment-indexed routing tree. Templates may mix literal text, single
// field substitutions and mixed literal/field segments with named
// converters. The tree is lowered, lazily and once, into a decision
// program that the hot path interprets with minimal branching.
//
// The package only addresses path routing: structure, compilation and
// lookup. HTTP method dispatch, responder validation, and all I/O are
// left to the host application; a method table attached with WithMethods
// is returned by Find without being interpreted.
package uriroute
