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

package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// intConverter parses a fragment as a base-10 integer, optionally
// constrained by min, max and an exact digit count. Mirrors the intent of
// Falcon's built-in IntConverter.
type intConverter struct {
	min, max      int64
	hasMin, hasMax bool
	numDigits     int64
}

func newIntConverter(args Args) (Converter, error) {
	c := &intConverter{numDigits: args.IntKeyword("num_digits", 0)}
	if v, ok := args.Keyword["min"]; ok {
		c.min, c.hasMin = v.(int64)
	}
	if v, ok := args.Keyword["max"]; ok {
		c.max, c.hasMax = v.(int64)
	}
	return c, nil
}

func (c *intConverter) ConsumesMultipleSegments() bool { return false }

func (c *intConverter) Convert(fragment string) (any, bool) {
	if fragment == "" {
		return nil, false
	}
	if c.numDigits > 0 {
		digits := fragment
		if strings.HasPrefix(digits, "-") {
			digits = digits[1:]
		}
		if int64(len(digits)) != c.numDigits {
			return nil, false
		}
	}
	n, err := strconv.ParseInt(fragment, 10, 64)
	if err != nil {
		return nil, false
	}
	if c.hasMin && n < c.min {
		return nil, false
	}
	if c.hasMax && n > c.max {
		return nil, false
	}
	return n, true
}

// uuidConverter parses a fragment as a github.com/google/uuid.UUID.
type uuidConverter struct{}

func newUUIDConverter(Args) (Converter, error) { return uuidConverter{}, nil }

func (uuidConverter) ConsumesMultipleSegments() bool { return false }

func (uuidConverter) Convert(fragment string) (any, bool) {
	id, err := uuid.Parse(fragment)
	if err != nil {
		return nil, false
	}
	return id, true
}

// dateTimeConverter parses a fragment as a time.Time using a layout, RFC3339
// by default; a "format" keyword argument overrides it with a Go reference
// layout string.
type dateTimeConverter struct {
	layout string
}

func newDateTimeConverter(args Args) (Converter, error) {
	layout := args.StringKeyword("format", time.RFC3339)
	return &dateTimeConverter{layout: layout}, nil
}

func (c *dateTimeConverter) ConsumesMultipleSegments() bool { return false }

func (c *dateTimeConverter) Convert(fragment string) (any, bool) {
	t, err := time.Parse(c.layout, fragment)
	if err != nil {
		return nil, false
	}
	return t, true
}

// newPathConverter returns the built-in multi-segment "path" converter. It
// never rejects: the remaining segments, already slash-joined by the
// matcher, are split back into a []string.
func newPathConverter(Args) (Converter, error) {
	return MultiSegmentFunc(func(remaining string) (any, bool) {
		if remaining == "" {
			return []string{}, true
		}
		return strings.Split(remaining, "/"), true
	}), nil
}
