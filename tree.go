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

// node is one segment position in the routing tree. The zero node (raw ""
// literal, no terminal, no children) is the tree root and is never itself
// reachable by a request path.
type node struct {
	seg      parsedSegment
	terminal *terminal
	children []*node
}

// terminal records what a fully matched path template resolves to.
type terminal struct {
	resource any
	methods  any
	template string
}

func newTree() *node {
	return &node{}
}

// conflictsWith reports whether a new sibling with segment b may not coexist
// with an existing sibling a, per the sibling conflict table:
//
//	Literal      x anything      -> never conflicts
//	SimpleField  x SimpleField   -> always conflicts
//	SimpleField  x ComplexField  -> never conflicts
//	ComplexField x ComplexField  -> conflicts iff identical shape signature
func conflictsWith(a, b parsedSegment) bool {
	switch a.kind {
	case Literal:
		return false
	case SimpleField:
		return b.kind == SimpleField
	case ComplexField:
		if b.kind != ComplexField {
			return false
		}
		return shapeSignature(a.raw) == shapeSignature(b.raw)
	default:
		return false
	}
}

// insert adds template's parsed segments to the tree rooted at root, binding
// the final node's terminal to resource/methods. It reports whether an
// existing terminal was replaced.
//
// Validation (sibling conflicts, the no-children-below-a-multi-segment-field
// invariant) runs to completion before any node is created or any terminal
// is overwritten, so a rejected call leaves the tree exactly as it was
// found: callers never observe a partially inserted template.
func (root *node) insert(template string, segs []parsedSegment, resource, methods any) (replaced bool, err error) {
	cur := root
	k := 0
	for ; k < len(segs); k++ {
		seg := segs[k]
		existing := findChild(cur, seg.raw)
		if existing == nil {
			break
		}
		if k < len(segs)-1 {
			if _, ok := existing.seg.multiSegmentConverter(); ok {
				return false, unacceptable(template,
					"a path beneath \""+existing.seg.raw+"\" was already registered with a multi-segment converter, which must be the final segment of its template",
					ErrMultiSegmentChild)
			}
		}
		cur = existing
	}

	if k < len(segs) {
		seg := segs[k]
		for _, c := range cur.children {
			if conflictsWith(c.seg, seg) {
				return false, unacceptable(template,
					"segment \""+seg.raw+"\" conflicts with an already-registered sibling \""+c.seg.raw+"\"",
					ErrFieldConflict)
			}
		}
		for j := k; j < len(segs)-1; j++ {
			if _, ok := segs[j].multiSegmentConverter(); ok {
				return false, unacceptable(template,
					"segment \""+segs[j].raw+"\" uses a multi-segment converter and must be the final segment of its template",
					ErrMultiSegmentChild)
			}
		}
	}

	for ; k < len(segs); k++ {
		child := &node{seg: segs[k]}
		cur.children = append(cur.children, child)
		cur = child
	}

	replaced = cur.terminal != nil
	cur.terminal = &terminal{resource: resource, methods: methods, template: template}
	return replaced, nil
}

func findChild(n *node, raw string) *node {
	for _, c := range n.children {
		if c.seg.raw == raw {
			return c
		}
	}
	return nil
}
