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
	"regexp"
	"strings"

	"github.com/rivaas-dev/uriroute/convert"
)

// SegmentKind is the tag of the Literal/SimpleField/ComplexField sum type.
type SegmentKind uint8

const (
	// Literal segments contain no field expressions.
	Literal SegmentKind = iota
	// SimpleField segments are exactly one field expression spanning the
	// entire segment.
	SimpleField
	// ComplexField segments mix literal text with one or more field
	// expressions.
	ComplexField
)

func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case SimpleField:
		return "simple-field"
	case ComplexField:
		return "complex-field"
	default:
		return "unknown"
	}
}

// converterRef is a parsed (field_name, converter_name, argstr) triple, in
// declaration order, for fields that named a converter, plus the converter
// instance built from argstr at registration time.
type converterRef struct {
	field     string
	converter string
	argstr    string
	instance  convert.Converter
}

// parsedSegment is the output of parsing one '/'-delimited template segment.
type parsedSegment struct {
	raw        string
	kind       SegmentKind
	fieldName  string         // set iff kind == SimpleField
	pattern    *regexp.Regexp // set iff kind == ComplexField; named groups == field names
	groupNames []string       // ComplexField: field names in the order the regex captures them
	numFields  int
	converters []converterRef
}

// fieldPattern matches one {name[:converter[(argstr)]]} field expression.
// The '}' character cannot appear inside argstr.
var fieldPattern = regexp.MustCompile(`\{([^}:]*)(:([^}(]*)(\(([^}]*)\))?)?\}`)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// regexMetacharacters are escaped outside of {...} spans when building a
// ComplexField's pattern (invariant 6). Braces themselves are left alone;
// they only ever appear as part of a field expression by this point.
const regexMetacharacters = `.()[]?$*+^|\`

// parseTemplate splits a URI template into segment strings and parses each
// one. A single leading slash is stripped; any further leading slash
// yields an empty first segment. Empty segments (consecutive or trailing
// slashes) are permitted and match empty path segments.
func parseTemplate(template string, registry *convert.Registry) ([]parsedSegment, error) {
	stripped := strings.TrimPrefix(template, "/")

	withPlaceholders := fieldPattern.ReplaceAllString(stripped, "{FIELD}")
	if strings.ContainsFunc(withPlaceholders, isWhitespace) {
		return nil, unacceptable(template, "URI templates may not include whitespace", ErrWhitespaceInTemplate)
	}

	var rawSegments []string
	if stripped == "" {
		rawSegments = []string{""}
	} else {
		rawSegments = strings.Split(stripped, "/")
	}

	used := make(map[string]bool, 4)
	out := make([]parsedSegment, 0, len(rawSegments))
	for _, raw := range rawSegments {
		seg, err := parseSegment(template, raw, registry, used)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func parseSegment(template, raw string, registry *convert.Registry, used map[string]bool) (parsedSegment, error) {
	matches := fieldPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return parsedSegment{raw: raw, kind: Literal}, nil
	}

	seg := parsedSegment{raw: raw, numFields: len(matches)}

	// Validate every field expression and collect converter references,
	// regardless of segment shape.
	groupNames := make([]string, 0, len(matches))
	for _, m := range matches {
		name := raw[m[2]:m[3]]
		if !identifierPattern.MatchString(name) {
			return parsedSegment{}, unacceptable(template,
				"field name \""+name+"\" is not a valid identifier", ErrInvalidFieldName)
		}
		if used[name] {
			return parsedSegment{}, unacceptable(template,
				"field name \""+name+"\" is duplicated", ErrDuplicateFieldName)
		}
		used[name] = true
		groupNames = append(groupNames, name)

		hasSep := m[4] != -1 && m[4] != m[5]
		if hasSep {
			cname := raw[m[6]:m[7]]
			if cname == "" {
				return parsedSegment{}, unacceptable(template,
					"missing converter for field \""+name+"\"", ErrMissingConverterName)
			}
			if !registry.Has(cname) {
				return parsedSegment{}, unacceptable(template,
					"unknown converter \""+cname+"\"", ErrUnknownConverter)
			}
			argstr := ""
			if m[10] != -1 {
				argstr = raw[m[10]:m[11]]
			}
			instance, err := registry.New(cname, argstr)
			if err != nil {
				return parsedSegment{}, unacceptable(template,
					"cannot instantiate converter \""+cname+"\": "+err.Error(), ErrConverterInstantiation)
			}
			seg.converters = append(seg.converters, converterRef{field: name, converter: cname, argstr: argstr, instance: instance})
		}
	}

	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(raw) {
		seg.kind = SimpleField
		seg.fieldName = groupNames[0]
		return seg, nil
	}

	for _, ref := range seg.converters {
		if ref.instance.ConsumesMultipleSegments() {
			return parsedSegment{}, unacceptable(template,
				"cannot use multi-segment converter \""+ref.converter+"\" of field \""+ref.field+
					"\" in a segment that includes other characters or fields", ErrMultiSegmentChild)
		}
	}

	seg.kind = ComplexField
	seg.groupNames = groupNames
	pattern, err := buildComplexPattern(raw)
	if err != nil {
		return parsedSegment{}, unacceptable(template, "invalid complex field pattern: "+err.Error(), nil)
	}
	seg.pattern = pattern
	return seg, nil
}

// multiSegmentConverter returns the converter instance of this segment's
// multi-segment field, if any. Only a SimpleField segment may legally carry
// one (validated above for ComplexField).
func (s parsedSegment) multiSegmentConverter() (convert.Converter, bool) {
	for _, ref := range s.converters {
		if ref.instance.ConsumesMultipleSegments() {
			return ref.instance, true
		}
	}
	return nil, false
}

// buildComplexPattern turns a mixed literal/field segment into an anchored
// regular expression: every field expression becomes a named capture over
// ".+", and every regex metacharacter outside of {...} spans is escaped
// (invariant 6).
func buildComplexPattern(raw string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')

	last := 0
	for _, m := range fieldPattern.FindAllStringSubmatchIndex(raw, -1) {
		b.WriteString(escapeLiteral(raw[last:m[0]]))
		name := raw[m[2]:m[3]]
		b.WriteString("(?P<")
		b.WriteString(name)
		b.WriteString(">.+)")
		last = m[1]
	}
	b.WriteString(escapeLiteral(raw[last:]))
	b.WriteByte('$')

	return regexp.Compile(b.String())
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(regexMetacharacters, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// shapeSignature is a segment's text with every field expression replaced
// by a fixed placeholder. Two ComplexField siblings conflict iff their
// shape signatures are identical (they would compile to the same literal
// spans around captures, differing only in the capture names).
func shapeSignature(raw string) string {
	return fieldPattern.ReplaceAllString(raw, "\x00")
}
