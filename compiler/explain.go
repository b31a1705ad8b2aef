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

import (
	"fmt"
	"strconv"
	"strings"
)

// Explain renders the decision program as indented pseudocode, for
// diagnostics and tests. It is not on any hot path.
func (p *Program) Explain() string {
	var b strings.Builder
	explainSeq(&b, p.Root, 0)
	return b.String()
}

func explainSeq(b *strings.Builder, seq []*Construct, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range seq {
		switch c.Kind {
		case GuardPathLength:
			op := ">"
			if c.Op == '=' {
				op = "=="
				fmt.Fprintf(b, "%sif len(path) %s %d:\n", indent, op, c.N+1)
			} else {
				fmt.Fprintf(b, "%sif len(path) %s %d:\n", indent, op, c.N)
			}
			explainSeq(b, c.Then, depth+1)
		case TestLiteral:
			fmt.Fprintf(b, "%sif path[%d] == %q:\n", indent, c.SegIndex, c.Text)
			explainSeq(b, c.Then, depth+1)
		case TestPattern:
			fmt.Fprintf(b, "%sif path[%d] =~ %s:\n", indent, c.SegIndex, c.Pattern.String())
			explainSeq(b, c.Then, depth+1)
		case ConvertGuard:
			fmt.Fprintf(b, "%sif convert[%d](fragment) ok -> slot %d:\n", indent, c.ConverterIdx, c.Slot)
			explainSeq(b, c.Then, depth+1)
		case SetFragmentFromPath:
			fmt.Fprintf(b, "%sfragment = path[%d]\n", indent, c.SegIndex)
		case SetFragmentFromRemaining:
			fmt.Fprintf(b, "%sfragment = join(path[%d:])\n", indent, c.SegIndex)
		case SetFragmentFromNamedGroup:
			fmt.Fprintf(b, "%sfragment = groups[%s]\n", indent, c.GroupName)
		case CaptureGroups:
			fmt.Fprintf(b, "%scapture groups\n", indent)
		case AssignParamFromPath:
			fmt.Fprintf(b, "%sparams[%s] = path[%d]\n", indent, c.ParamName, c.SegIndex)
		case AssignParamFromSlot:
			fmt.Fprintf(b, "%sparams[%s] = slot[%d]\n", indent, c.ParamName, c.Slot)
		case AssignParamsFromGroups:
			fmt.Fprintf(b, "%sparams.update(groups except %s)\n", indent, strconv.Quote(strings.Join(c.Exclude, ",")))
		case ReturnMatch:
			fmt.Fprintf(b, "%sreturn match[%d]\n", indent, c.ReturnIdx)
		case ReturnNone:
			fmt.Fprintf(b, "%sreturn none\n", indent)
		}
	}
}
