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

import "sort"

// Program is the immutable result of Compile: a decision tree of
// constructs plus the converter instances and return payloads it
// references by index. A *Program is safe for concurrent use by Find once
// compilation has finished; nothing about a lookup mutates it.
type Program struct {
	Root       []*Construct
	Converters []Converter
	Returns    []*Terminal
	slots      int
}

func (p *Program) addConverter(c Converter) int {
	p.Converters = append(p.Converters, c)
	return len(p.Converters) - 1
}

func (p *Program) addReturn(t *Terminal) int {
	p.Returns = append(p.Returns, t)
	return len(p.Returns) - 1
}

func (p *Program) nextSlot() int {
	s := p.slots
	p.slots++
	return s
}

// pending is a not-yet-materialized parameter write, threaded through
// compilation as an ordinary Go value (mirroring Falcon's params_stack list
// of un-emitted assign nodes). Each recursive branch carries its own copy,
// so a branch that never reaches a ReturnMatch simply never materializes
// its pending writes into the program: there is nothing to roll back at
// match time, because nothing speculative was ever emitted.
type pending struct {
	fromPath   bool // path segment vs. converter slot
	fromGroups bool // bulk AssignParamsFromGroups
	segIndex   int
	slot       int
	paramName  string
	exclude    []string
}

func withPending(base []pending, p pending) []pending {
	out := make([]pending, len(base), len(base)+1)
	copy(out, base)
	return append(out, p)
}

func materialize(items []pending) []*Construct {
	out := make([]*Construct, 0, len(items))
	for _, it := range items {
		switch {
		case it.fromGroups:
			out = append(out, &Construct{Kind: AssignParamsFromGroups, Exclude: it.exclude})
		case it.fromPath:
			out = append(out, &Construct{Kind: AssignParamFromPath, SegIndex: it.segIndex, ParamName: it.paramName})
		default:
			out = append(out, &Construct{Kind: AssignParamFromSlot, Slot: it.slot, ParamName: it.paramName})
		}
	}
	return out
}

// Compile lowers a routing tree into a decision Program. Sibling nodes at
// each level are ordered Literal, ComplexField, SimpleField: literals are
// the cheapest and most selective test, and ComplexField is tried before
// the catch-all SimpleField so a more specific pattern gets first refusal.
func Compile(root *Node) *Program {
	p := &Program{}
	p.Root = generate(p, root.Children, 0, nil)
	return p
}

func generate(p *Program, nodes []*Node, level int, pend []pending) []*Construct {
	if len(nodes) == 0 {
		return nil
	}

	ordered := orderSiblings(nodes)

	fastReturn := true
	for _, n := range ordered {
		if n.Kind != Literal {
			fastReturn = false
			break
		}
	}

	var body []*Construct
	for _, n := range ordered {
		body = append(body, generateNode(p, n, level, pend)...)
	}
	if fastReturn {
		body = append(body, &Construct{Kind: ReturnNone})
	}

	guard := &Construct{Kind: GuardPathLength, Op: '>', N: level, Then: body}
	return []*Construct{guard}
}

func orderSiblings(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	rank := func(k Kind) int {
		switch k {
		case Literal:
			return 0
		case ComplexField:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i].Kind) < rank(out[j].Kind) })
	return out
}

func generateNode(p *Program, n *Node, level int, pend []pending) []*Construct {
	switch n.Kind {
	case Literal:
		test := &Construct{Kind: TestLiteral, SegIndex: level, Text: n.Text}
		test.Then = continuation(p, n, level, pend)
		return []*Construct{test}

	case SimpleField:
		if n.FieldConverter == nil {
			pend = withPending(pend, pending{fromPath: true, segIndex: level, paramName: n.FieldName})
			return continuation(p, n, level, pend)
		}

		setKind := SetFragmentFromPath
		if n.MultiSegment {
			setKind = SetFragmentFromRemaining
		}
		setCx := &Construct{Kind: setKind, SegIndex: level}

		slot := p.nextSlot()
		convCx := &Construct{Kind: ConvertGuard, ConverterIdx: p.addConverter(n.FieldConverter), Slot: slot}
		pend = withPending(pend, pending{slot: slot, paramName: n.FieldName})
		convCx.Then = continuation(p, n, level, pend)

		return []*Construct{setCx, convCx}

	case ComplexField:
		test := &Construct{Kind: TestPattern, SegIndex: level, Pattern: n.Pattern}
		test.Then = append([]*Construct{{Kind: CaptureGroups}}, generateComplexFields(p, n, level, pend)...)
		return []*Construct{test}

	default:
		return nil
	}
}

// generateComplexFields unrolls a ComplexField segment's per-field
// converters into a chain of nested ConvertGuards, then assigns whatever
// fields were left unconverted directly from the captured groups.
func generateComplexFields(p *Program, n *Node, level int, pend []pending) []*Construct {
	excluded := make([]string, 0, len(n.Converters))
	for _, fc := range n.Converters {
		excluded = append(excluded, fc.Field)
	}

	return generateConverterChain(p, n, level, 0, excluded, pend)
}

func generateConverterChain(p *Program, n *Node, level, i int, excluded []string, pend []pending) []*Construct {
	if i == len(n.Converters) {
		if hasUnconvertedGroups(n.Pattern.SubexpNames(), excluded) {
			pend = withPending(pend, pending{fromGroups: true, exclude: excluded})
		}
		return continuation(p, n, level, pend)
	}

	fc := n.Converters[i]
	setCx := &Construct{Kind: SetFragmentFromNamedGroup, GroupName: fc.Field}

	slot := p.nextSlot()
	convCx := &Construct{Kind: ConvertGuard, ConverterIdx: p.addConverter(fc.Converter), Slot: slot}
	next := withPending(pend, pending{slot: slot, paramName: fc.Field})
	convCx.Then = generateConverterChain(p, n, level, i+1, excluded, next)

	return []*Construct{setCx, convCx}
}

func hasUnconvertedGroups(names, excluded []string) bool {
	ex := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		ex[e] = true
	}
	for _, name := range names {
		if name != "" && !ex[name] {
			return true
		}
	}
	return false
}

// continuation builds what runs after a node's own segment test succeeds:
// a terminal check guarded by exact path-length match (so "/foo/23/bar" is
// never mistaken for a match of "/foo/{id}"), with the accumulated pending
// assignments materialized immediately before the ReturnMatch, followed by
// the next level's sibling attempts. A node whose field consumed the
// remaining path (MultiSegment) can never have children — the tree
// enforces this — so its terminal, if present, returns unconditionally.
func continuation(p *Program, n *Node, level int, pend []pending) []*Construct {
	var out []*Construct
	if n.Terminal != nil {
		idx := p.addReturn(n.Terminal)
		matchSeq := append(materialize(pend), &Construct{Kind: ReturnMatch, ReturnIdx: idx})
		if n.MultiSegment {
			out = append(out, matchSeq...)
		} else {
			out = append(out, &Construct{Kind: GuardPathLength, Op: '=', N: level, Then: matchSeq})
		}
	}
	if len(n.Children) > 0 {
		out = append(out, generate(p, n.Children, level+1, pend)...)
	}
	return out
}
