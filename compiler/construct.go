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

// ConstructKind tags the decision-program construct vocabulary. Each value
// corresponds to one node type in Falcon's _Cx* AST hierarchy; Go expresses
// the sum type as a tagged struct (Construct) rather than an interface
// hierarchy, since the interpreter that walks it (Program.Find) and
// Program.Explain are its only consumers and a type switch per node would
// just reintroduce the tag.
type ConstructKind uint8

const (
	// GuardPathLength enters Then iff the request path's segment count
	// satisfies Op against N: '>' means len(path) > N, '=' means
	// len(path) == N+1.
	GuardPathLength ConstructKind = iota
	// TestLiteral enters Then iff path[SegIndex] == Text.
	TestLiteral
	// TestPattern enters Then iff Pattern matches path[SegIndex]; on
	// success the named submatches become available to CaptureGroups.
	TestPattern
	// ConvertGuard enters Then iff Converters[ConverterIdx].Convert
	// applied to the current fragment register succeeds; the converted
	// value is stored in slot Slot for a later AssignParamFromSlot.
	ConvertGuard
	// SetFragmentFromPath sets the fragment register to path[SegIndex].
	SetFragmentFromPath
	// SetFragmentFromRemaining sets the fragment register to the
	// remaining path segments from SegIndex on, joined with "/".
	SetFragmentFromRemaining
	// SetFragmentFromNamedGroup sets the fragment register to the most
	// recently captured named group GroupName.
	SetFragmentFromNamedGroup
	// CaptureGroups snapshots the named groups from the most recent
	// TestPattern match for subsequent Set/AssignParamsFromGroups use.
	CaptureGroups
	// AssignParamFromPath sets params[ParamName] = path[SegIndex]. The
	// compiler emits Assign* constructs only immediately before the
	// ReturnMatch they feed.
	AssignParamFromPath
	// AssignParamFromSlot sets params[ParamName] = Slots[Slot].
	AssignParamFromSlot
	// AssignParamsFromGroups sets a param for every captured group not
	// named in Exclude.
	AssignParamsFromGroups
	// ReturnMatch reports the match at Returns[ReturnIdx]. Execution stops.
	ReturnMatch
	// ReturnNone ends the sequence it appears in without a match; the
	// constructs that follow the enclosing guard still run.
	ReturnNone
)

// Construct is one node of the decision program. Only the fields relevant
// to Kind are populated; Then holds the nested sequence executed when a
// guard construct's condition holds, or simply the next statement for a
// non-guard construct.
type Construct struct {
	Kind ConstructKind

	// GuardPathLength
	Op byte
	N  int

	// TestLiteral / SetFragmentFromPath / SetFragmentFromRemaining /
	// AssignParamFromPath
	SegIndex int
	Text     string

	// TestPattern
	Pattern *regexp.Regexp

	// ConvertGuard
	ConverterIdx int
	Slot         int

	// SetFragmentFromNamedGroup
	GroupName string

	// AssignParamFromPath / AssignParamFromSlot
	ParamName string

	// AssignParamsFromGroups
	Exclude []string

	// ReturnMatch
	ReturnIdx int

	Then []*Construct
}
