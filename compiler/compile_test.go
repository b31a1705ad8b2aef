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
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intConv struct{}

func (intConv) ConsumesMultipleSegments() bool { return false }
func (intConv) Convert(fragment string) (any, bool) {
	n, err := strconv.Atoi(fragment)
	if err != nil {
		return nil, false
	}
	return n, true
}

type pathConv struct{}

func (pathConv) ConsumesMultipleSegments() bool { return true }
func (pathConv) Convert(fragment string) (any, bool) {
	return fragment, true
}

func split(p string) []string {
	if len(p) > 0 && p[0] == '/' {
		p = p[1:]
	}
	if p == "" {
		return []string{""}
	}
	out := []string{}
	cur := ""
	for _, r := range p {
		if r == '/' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	out = append(out, cur)
	return out
}

func TestCompileLiteralRoute(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "items", Terminal: &Terminal{Value: "items-list"}},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/items"))
	require.True(t, ok)
	assert.Equal(t, "items-list", term.Value)
	assert.Empty(t, params)

	_, _, ok = prog.Find(split("/other"))
	assert.False(t, ok)
}

func TestCompileSimpleFieldWithConverter(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "items", Children: []*Node{
			{Kind: SimpleField, FieldName: "id", FieldConverter: intConv{}, Terminal: &Terminal{Value: "item-detail"}},
		}},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/items/42"))
	require.True(t, ok)
	assert.Equal(t, "item-detail", term.Value)
	assert.Equal(t, 42, params["id"])

	_, _, ok = prog.Find(split("/items/notanumber"))
	assert.False(t, ok)
}

func TestCompileDoesNotMatchExtraSegments(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "a", Children: []*Node{
			{Kind: SimpleField, FieldName: "x", Terminal: &Terminal{Value: "a-x"}},
		}},
	}}
	prog := Compile(root)

	_, _, ok := prog.Find(split("/a/1/b"))
	assert.False(t, ok)

	term, params, ok := prog.Find(split("/a/1"))
	require.True(t, ok)
	assert.Equal(t, "a-x", term.Value)
	assert.Equal(t, "1", params["x"])
}

func TestCompileMultiSegmentConverterConsumesRest(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "files", Children: []*Node{
			{
				Kind:           SimpleField,
				FieldName:      "rest",
				FieldConverter: pathConv{},
				MultiSegment:   true,
				Terminal:       &Terminal{Value: "files-rest"},
			},
		}},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/files/a/b/c"))
	require.True(t, ok)
	assert.Equal(t, "files-rest", term.Value)
	assert.Equal(t, "a/b/c", params["rest"])
}

func TestCompileComplexFieldSplitsFragments(t *testing.T) {
	pattern := regexp.MustCompile(`^(?P<name>.+)\.(?P<ext>.+)$`)
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "img", Children: []*Node{
			{
				Kind:    ComplexField,
				Pattern: pattern,
				Terminal: &Terminal{
					Value: "img-file",
				},
			},
		}},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/img/cat.png"))
	require.True(t, ok)
	assert.Equal(t, "img-file", term.Value)
	assert.Equal(t, "cat", params["name"])
	assert.Equal(t, "png", params["ext"])
}

func TestCompileComplexFieldWithPerFieldConverter(t *testing.T) {
	pattern := regexp.MustCompile(`^(?P<name>.+)\.(?P<rev>.+)$`)
	root := &Node{Children: []*Node{
		{
			Kind:    ComplexField,
			Pattern: pattern,
			Converters: []FieldConverter{
				{Field: "rev", Converter: intConv{}},
			},
			Terminal: &Terminal{Value: "versioned"},
		},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/report.7"))
	require.True(t, ok)
	assert.Equal(t, "versioned", term.Value)
	assert.Equal(t, "report", params["name"])
	assert.Equal(t, 7, params["rev"])

	_, _, ok = prog.Find(split("/report.notanumber"))
	assert.False(t, ok)
}

// TestCompileFailedConverterDoesNotLeakParams exercises the deferred
// assignment property directly: a sibling SimpleField branch must not see
// params queued by an abandoned ComplexField attempt at the same level.
func TestCompileFailedConverterDoesNotLeakParams(t *testing.T) {
	pattern := regexp.MustCompile(`^(?P<name>.+)\.(?P<rev>.+)$`)
	root := &Node{Children: []*Node{
		{
			Kind:    ComplexField,
			Pattern: pattern,
			Converters: []FieldConverter{
				{Field: "rev", Converter: intConv{}},
			},
			Terminal: &Terminal{Value: "versioned"},
		},
		{
			Kind:      SimpleField,
			FieldName: "slug",
			Terminal:  &Terminal{Value: "slug-catchall"},
		},
	}}
	prog := Compile(root)

	term, params, ok := prog.Find(split("/report.notanumber"))
	require.True(t, ok)
	assert.Equal(t, "slug-catchall", term.Value)
	assert.Equal(t, "report.notanumber", params["slug"])
	_, hasName := params["name"]
	_, hasRev := params["rev"]
	assert.False(t, hasName)
	assert.False(t, hasRev)
}

func TestCompileRootTemplate(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "", Terminal: &Terminal{Value: "root"}},
	}}
	prog := Compile(root)

	term, _, ok := prog.Find(split(""))
	require.True(t, ok)
	assert.Equal(t, "root", term.Value)
}

func TestExplainRenders(t *testing.T) {
	root := &Node{Children: []*Node{
		{Kind: Literal, Text: "items", Terminal: &Terminal{Value: "items-list"}},
	}}
	prog := Compile(root)
	out := prog.Explain()
	assert.Contains(t, out, `path[0] == "items"`)
	assert.Contains(t, out, "return match[0]")
}
