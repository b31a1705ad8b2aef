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

package compiler

import "regexp"

// Kind tags a Node's segment shape. This is a copy of uriroute.SegmentKind
// to avoid an import cycle.
type Kind uint8

const (
	Literal Kind = iota
	SimpleField
	ComplexField
)

// Converter is a copy of convert.Converter to avoid an import cycle: the
// compiler only needs to call converters, never construct them.
type Converter interface {
	Convert(fragment string) (value any, ok bool)
	ConsumesMultipleSegments() bool
}

// FieldConverter binds one field name inside a ComplexField segment to the
// converter instance that was registered for it, in declaration order.
type FieldConverter struct {
	Field     string
	Converter Converter
}

// Node is the input to Compile: a narrow, compiler-owned view of one
// position in a routing tree. The root package builds a Node tree from its
// own tree before calling Compile.
type Node struct {
	Kind Kind

	// Literal
	Text string

	// SimpleField
	FieldName        string
	FieldConverter   Converter // nil if the field has no converter
	MultiSegment     bool      // true iff FieldConverter.ConsumesMultipleSegments()

	// ComplexField
	Pattern    *regexp.Regexp // named groups, one per field
	Converters []FieldConverter

	Terminal *Terminal
	Children []*Node
}

// Terminal is the opaque payload returned by Program.Find on a match. The
// root package stores whatever it needs (resource, method table, original
// template) and type-asserts it back out.
type Terminal struct {
	Value any
}
