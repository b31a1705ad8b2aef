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

package convert

import "errors"

// Registration errors. Register returns ErrNameInvalid and ErrNameExists;
// New returns ErrUnknownConverter and ErrConstructorFailed. The uriroute
// package returns Register's errors unwrapped, and reports a converter that
// cannot be built during AddRoute as an *UnacceptableRoute whose cause is
// its own ErrUnknownConverter or ErrConverterInstantiation.
var (
	ErrNameInvalid       = errors.New("convert: name is not a valid identifier")
	ErrNameExists        = errors.New("convert: name is already registered")
	ErrUnknownConverter  = errors.New("convert: unknown converter")
	ErrConstructorFailed = errors.New("convert: constructor failed")
)

// Converter is a polymorphic value object: it validates and transforms a
// field fragment (or, for multi-segment converters, the remaining path) into
// a typed value, or rejects it. Converter instances are shared across
// requests and must be safe for concurrent use; that is a contract on
// converter authors and is not enforced by this package.
type Converter interface {
	// Convert validates and transforms fragment. ok is false to reject,
	// in which case the branch that invoked it is disqualified but no
	// error is raised.
	Convert(fragment string) (value any, ok bool)

	// ConsumesMultipleSegments reports whether this converter is a
	// "multi-segment" converter: one whose match consumes the rest of
	// the path. A segment using such a converter must be a template
	// terminal; it may not have children (invariant 4).
	ConsumesMultipleSegments() bool
}

// Constructor builds a Converter from a parsed argument string. It is
// invoked once per field-expression use, at template registration time;
// an error here is surfaced to the caller wrapped as UnacceptableRoute.
type Constructor func(args Args) (Converter, error)

// Func adapts a plain function into a single-segment Converter.
type Func func(fragment string) (any, bool)

func (f Func) Convert(fragment string) (any, bool) { return f(fragment) }
func (f Func) ConsumesMultipleSegments() bool      { return false }

// MultiSegmentFunc adapts a plain function into a multi-segment Converter.
type MultiSegmentFunc func(remaining string) (any, bool)

func (f MultiSegmentFunc) Convert(remaining string) (any, bool) { return f(remaining) }
func (f MultiSegmentFunc) ConsumesMultipleSegments() bool       { return true }
