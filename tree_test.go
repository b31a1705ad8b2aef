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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivaas-dev/uriroute/convert"
)

func mustSegs(t *testing.T, reg *convert.Registry, template string) []parsedSegment {
	t.Helper()
	segs, err := parseTemplate(template, reg)
	require.NoError(t, err)
	return segs
}

func TestTreeInsertAndReplace(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	replaced, err := root.insert("/items", mustSegs(t, reg, "/items"), "r1", nil)
	require.NoError(t, err)
	assert.False(t, replaced)

	replaced, err = root.insert("/items", mustSegs(t, reg, "/items"), "r2", nil)
	require.NoError(t, err)
	assert.True(t, replaced)

	items := findChild(root, "items")
	require.NotNil(t, items)
	assert.Equal(t, "r2", items.terminal.resource)
}

func TestTreeAllowsLiteralAndFieldSiblings(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/static", mustSegs(t, reg, "/a/static"), "r1", nil)
	require.NoError(t, err)
	_, err = root.insert("/a/{x}", mustSegs(t, reg, "/a/{x}"), "r2", nil)
	require.NoError(t, err)

	a := findChild(root, "a")
	require.NotNil(t, a)
	assert.Len(t, a.children, 2)
}

func TestTreeRejectsSimpleFieldSiblingConflict(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/{x}", mustSegs(t, reg, "/a/{x}"), "r1", nil)
	require.NoError(t, err)

	_, err = root.insert("/a/{y}", mustSegs(t, reg, "/a/{y}"), "r2", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldConflict)

	a := findChild(root, "a")
	require.NotNil(t, a)
	require.Len(t, a.children, 1)
	assert.Equal(t, "r1", a.children[0].terminal.resource)
}

func TestTreeAllowsSimpleAndComplexFieldSiblings(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/{x}", mustSegs(t, reg, "/a/{x}"), "r1", nil)
	require.NoError(t, err)
	_, err = root.insert("/a/{name}.{ext}", mustSegs(t, reg, "/a/{name}.{ext}"), "r2", nil)
	require.NoError(t, err)

	a := findChild(root, "a")
	require.Len(t, a.children, 2)
}

func TestTreeRejectsComplexFieldSameShapeConflict(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/{name}.{ext}", mustSegs(t, reg, "/a/{name}.{ext}"), "r1", nil)
	require.NoError(t, err)

	_, err = root.insert("/a/{base}.{suffix}", mustSegs(t, reg, "/a/{base}.{suffix}"), "r2", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldConflict)
}

func TestTreeAllowsComplexFieldDifferentShape(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/{name}.{ext}", mustSegs(t, reg, "/a/{name}.{ext}"), "r1", nil)
	require.NoError(t, err)

	_, err = root.insert("/a/{name}-{ext}", mustSegs(t, reg, "/a/{name}-{ext}"), "r2", nil)
	require.NoError(t, err)

	a := findChild(root, "a")
	require.Len(t, a.children, 2)
}

func TestTreeRejectsChildrenBeneathMultiSegmentConverter(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/files/{rest:path}", mustSegs(t, reg, "/files/{rest:path}"), "r1", nil)
	require.NoError(t, err)

	_, err = root.insert("/files/{rest:path}/more", mustSegs(t, reg, "/files/{rest:path}/more"), "r2", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMultiSegmentChild)

	files := findChild(root, "files")
	require.NotNil(t, files)
	assert.Len(t, files.children, 1)
}

func TestTreeInsertFailureLeavesTreeUnchanged(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a/{x}", mustSegs(t, reg, "/a/{x}"), "r1", nil)
	require.NoError(t, err)

	before := findChild(root, "a")
	beforeChildCount := len(before.children)

	_, err = root.insert("/a/{y}/extra", mustSegs(t, reg, "/a/{y}/extra"), "r2", nil)
	require.Error(t, err)

	after := findChild(root, "a")
	assert.Len(t, after.children, beforeChildCount)
	assert.Equal(t, "r1", after.children[0].terminal.resource)
}

func TestTreeLiteralNodeCanHaveChildrenAndOwnTerminal(t *testing.T) {
	reg := convert.NewRegistry()
	root := newTree()

	_, err := root.insert("/a", mustSegs(t, reg, "/a"), "r1", nil)
	require.NoError(t, err)
	_, err = root.insert("/a/b", mustSegs(t, reg, "/a/b"), "r2", nil)
	require.NoError(t, err)

	a := findChild(root, "a")
	require.NotNil(t, a)
	require.NotNil(t, a.terminal)
	assert.Equal(t, "r1", a.terminal.resource)
	require.Len(t, a.children, 1)
	assert.Equal(t, "r2", a.children[0].terminal.resource)
}
