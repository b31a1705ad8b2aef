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

import "github.com/rivaas-dev/uriroute/compiler"

// lower converts one routing-tree node (and its subtree) into the narrow
// Node shape compiler.Compile consumes. convert.Converter values satisfy
// compiler.Converter structurally, so instances pass through unwrapped.
func lower(n *node) *compiler.Node {
	cn := &compiler.Node{}

	switch n.seg.kind {
	case Literal:
		cn.Kind = compiler.Literal
		cn.Text = n.seg.raw

	case SimpleField:
		cn.Kind = compiler.SimpleField
		cn.FieldName = n.seg.fieldName
		if len(n.seg.converters) > 0 {
			ref := n.seg.converters[0]
			cn.FieldConverter = ref.instance
			cn.MultiSegment = ref.instance.ConsumesMultipleSegments()
		}

	case ComplexField:
		cn.Kind = compiler.ComplexField
		cn.Pattern = n.seg.pattern
		for _, ref := range n.seg.converters {
			cn.Converters = append(cn.Converters, compiler.FieldConverter{Field: ref.field, Converter: ref.instance})
		}
	}

	if n.terminal != nil {
		cn.Terminal = &compiler.Terminal{Value: n.terminal}
	}
	for _, c := range n.children {
		cn.Children = append(cn.Children, lower(c))
	}
	return cn
}

func lowerRoot(root *node) *compiler.Node {
	cn := &compiler.Node{}
	for _, c := range root.children {
		cn.Children = append(cn.Children, lower(c))
	}
	return cn
}
