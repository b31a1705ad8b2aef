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

// Package convert holds the converter registry: named value-parsers that
// validate and transform a field fragment, or a remaining-path list, into
// a typed value or reject it.
//
// Converter instances are constructed once, at template registration
// time, from a constructor keyed by name plus an opaque argument string.
// They are shared across requests and must be safe to call concurrently;
// that contract is on converter authors and is not enforced here.
package convert
