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

func TestParseTemplateSegmentKinds(t *testing.T) {
	reg := convert.NewRegistry()

	segs, err := parseTemplate("/items/{id:int}/edit", reg)
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, Literal, segs[0].kind)
	assert.Equal(t, SimpleField, segs[1].kind)
	assert.Equal(t, "id", segs[1].fieldName)
	assert.Equal(t, Literal, segs[2].kind)

	segs, err = parseTemplate("/img/{name}.{ext}", reg)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, ComplexField, segs[1].kind)
	assert.ElementsMatch(t, []string{"name", "ext"}, segs[1].groupNames)
	assert.True(t, segs[1].pattern.MatchString("cat.png"))
	m := segs[1].pattern.FindStringSubmatch("cat.png")
	idx := segs[1].pattern.SubexpIndex("name")
	assert.Equal(t, "cat", m[idx])
}

func TestParseTemplateRejectsWhitespace(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/a /b", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWhitespaceInTemplate)
}

func TestParseTemplateRejectsDuplicateFieldNames(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/{x}/{x}", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestParseTemplateRejectsUnknownConverter(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/{id:nope}", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownConverter)
}

func TestParseTemplateRejectsMissingConverterName(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/{id:}", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConverterName)
}

func TestParseTemplateRejectsInvalidFieldName(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/{1bad}", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFieldName)
}

func TestParseTemplateRejectsMultiSegmentInComplexSegment(t *testing.T) {
	reg := convert.NewRegistry()
	_, err := parseTemplate("/files/prefix-{rest:path}", reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMultiSegmentChild)
}

func TestShapeSignature(t *testing.T) {
	assert.Equal(t, shapeSignature("{name}.{ext}"), shapeSignature("{a}.{b}"))
	assert.NotEqual(t, shapeSignature("{name}.{ext}"), shapeSignature("{name}_{ext}"))
}

func TestEmptyTemplateIsRoot(t *testing.T) {
	reg := convert.NewRegistry()
	segs, err := parseTemplate("", reg)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "", segs[0].raw)
	assert.Equal(t, Literal, segs[0].kind)
}

func TestTrailingSlashProducesEmptySegment(t *testing.T) {
	reg := convert.NewRegistry()
	segs, err := parseTemplate("/a/", reg)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "a", segs[0].raw)
	assert.Equal(t, "", segs[1].raw)
}
