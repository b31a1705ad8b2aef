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

// Package compiler lowers a routing tree into a decision program: a tree of
// typed constructs (guards, fragment assembly, converter invocations,
// parameter assignment, and returns) that the hot path interprets with no
// backtracking. Besides the output parameter map, a lookup allocates only
// its scratch state: converter slots and the captured-group map.
//
// The construct vocabulary and the shape of Compile mirror Falcon's
// CompiledRouter AST generator (_generate_ast / the _Cx* node classes):
// sibling nodes at a tree level become sequential guarded statements tried
// in order, and parameter assignment is deferred on a stack that is only
// flushed immediately before a successful ReturnMatch. This package has no
// dependency on the root uriroute package; Node and Converter are narrow
// copies of the shapes it needs, to avoid an import cycle.
package compiler
