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
	"errors"
	"fmt"
)

// Static errors for better error handling and testing.
// These are the causes a caller can match with errors.Is; wrap them with
// fmt.Errorf and %w when more context (the offending template) is useful.
// ErrReservedFieldName, ErrConverterNameInvalid, ErrConverterExists and
// ErrResponderKindMismatch are declared but never returned by this package;
// New and RegisterConverter return convert.ErrNameInvalid and
// convert.ErrNameExists as the registry reports them.
var (
	// Template validation errors
	ErrWhitespaceInTemplate  = errors.New("uriroute: URI templates may not include whitespace")
	ErrInvalidFieldName      = errors.New("uriroute: field name is not a valid identifier")
	ErrReservedFieldName     = errors.New("uriroute: field name is reserved by the host runtime")
	ErrDuplicateFieldName    = errors.New("uriroute: field name may not be duplicated in a template")
	ErrMissingConverterName  = errors.New("uriroute: converter separator present but converter name is empty")
	ErrUnknownConverter      = errors.New("uriroute: unknown converter")
	ErrConverterInstantiation = errors.New("uriroute: converter constructor failed")

	// Tree conflict errors
	ErrFieldConflict      = errors.New("uriroute: conflicting field at the same tree level")
	ErrMultiSegmentChild  = errors.New("uriroute: a multi-segment converter terminal may not have children")

	// Registry errors
	ErrConverterNameInvalid = errors.New("uriroute: converter name is not a valid identifier")
	ErrConverterExists      = errors.New("uriroute: converter name is already registered")

	// Responder validation errors (no responder validator is called here)
	ErrResponderKindMismatch = errors.New("uriroute: responder validator rejected a responder")
)

// UnacceptableRoute is returned by Router.AddRoute for any template-level
// validation failure (§4.1) or tree-level conflict (§4.3). It wraps one of
// the sentinel causes above so callers can still use errors.Is, while
// retaining the offending template and a human-readable reason.
type UnacceptableRoute struct {
	Template string
	Reason   string
	Cause    error
}

func (e *UnacceptableRoute) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("uriroute: unacceptable route: %s", e.Reason)
	}
	return fmt.Sprintf("uriroute: unacceptable route %q: %s", e.Template, e.Reason)
}

func (e *UnacceptableRoute) Unwrap() error {
	return e.Cause
}

func unacceptable(template, reason string, cause error) *UnacceptableRoute {
	return &UnacceptableRoute{Template: template, Reason: reason, Cause: cause}
}
