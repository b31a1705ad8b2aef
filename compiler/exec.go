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

import "strings"

// state is the mutable scratch space for one Find call. None of it is
// shared across calls or goroutines.
type state struct {
	path   []string
	slots  []any
	params map[string]any

	fragment  string
	lastMatch []string
	groupIdx  []string // SubexpNames of the pattern that produced lastMatch
	groups    map[string]string
}

// Find runs the compiled decision program against path, a request URI
// already split into its '/'-delimited segments the same way templates
// were. It returns the matched Terminal and assembled parameters, or
// ok=false if no route matches.
//
// Find performs no backtracking across segments already consumed: a guard
// that fails simply falls through to the next sibling construct at the
// same level. Assign* constructs only appear in the program immediately
// before the ReturnMatch they feed (see compile.go's pending/materialize
// machinery), so a branch explored and abandoned — a converter rejecting
// partway through a ComplexField segment, say — never executes an
// Assign*: it was never emitted there in the first place.
func (p *Program) Find(path []string) (*Terminal, map[string]any, bool) {
	st := &state{path: path}
	if p.slots > 0 {
		st.slots = make([]any, p.slots)
	}

	if term := p.run(st, p.Root); term != nil {
		return term, st.params, true
	}
	return nil, nil, false
}

// run executes a sequence of sibling constructs in order, returning the
// matched terminal the first time a ReturnMatch is reached.
func (p *Program) run(st *state, seq []*Construct) *Terminal {
	for _, c := range seq {
		switch c.Kind {
		case GuardPathLength:
			ok := len(st.path) > c.N
			if c.Op == '=' {
				ok = len(st.path) == c.N+1
			}
			if !ok {
				continue
			}
			if term := p.run(st, c.Then); term != nil {
				return term
			}

		case TestLiteral:
			if c.SegIndex >= len(st.path) || st.path[c.SegIndex] != c.Text {
				continue
			}
			if term := p.run(st, c.Then); term != nil {
				return term
			}

		case TestPattern:
			if c.SegIndex >= len(st.path) {
				continue
			}
			m := c.Pattern.FindStringSubmatch(st.path[c.SegIndex])
			if m == nil {
				continue
			}
			prevMatch, prevIdx := st.lastMatch, st.groupIdx
			st.lastMatch, st.groupIdx = m, c.Pattern.SubexpNames()
			if term := p.run(st, c.Then); term != nil {
				return term
			}
			st.lastMatch, st.groupIdx = prevMatch, prevIdx

		case ConvertGuard:
			value, ok := p.Converters[c.ConverterIdx].Convert(st.fragment)
			if !ok {
				continue
			}
			st.slots[c.Slot] = value
			if term := p.run(st, c.Then); term != nil {
				return term
			}

		case SetFragmentFromPath:
			st.fragment = st.path[c.SegIndex]

		case SetFragmentFromRemaining:
			st.fragment = strings.Join(st.path[c.SegIndex:], "/")

		case SetFragmentFromNamedGroup:
			st.fragment = st.groups[c.GroupName]

		case CaptureGroups:
			st.groups = make(map[string]string, len(st.groupIdx))
			for i, name := range st.groupIdx {
				if name != "" {
					st.groups[name] = st.lastMatch[i]
				}
			}

		case AssignParamFromPath:
			st.setParam(c.ParamName, st.path[c.SegIndex])

		case AssignParamFromSlot:
			st.setParam(c.ParamName, st.slots[c.Slot])

		case AssignParamsFromGroups:
			excluded := make(map[string]bool, len(c.Exclude))
			for _, e := range c.Exclude {
				excluded[e] = true
			}
			for name, value := range st.groups {
				if !excluded[name] {
					st.setParam(name, value)
				}
			}

		case ReturnMatch:
			return p.Returns[c.ReturnIdx]

		case ReturnNone:
			return nil
		}
	}
	return nil
}

func (st *state) setParam(name string, value any) {
	if st.params == nil {
		st.params = make(map[string]any, 4)
	}
	st.params[name] = value
}
