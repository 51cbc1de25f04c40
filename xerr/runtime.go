// SPDX-License-Identifier: Apache-2.0
//
// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xerr catalogs the node's error kinds (spec.md §7) as distinct
// Go types, so callers recover the kind with errors.As rather than by
// matching message text.
package xerr

import (
	"fmt"

	"github.com/binaek/cl0/tokens"
	"github.com/pkg/errors"
)

// ParseError is surface text that did not lex or parse.
type ParseError struct {
	Range    tokens.Range
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: expected %s, found %s", e.Range, e.Expected, e.Found)
}

func ErrParse(r tokens.Range, expected, found string) error {
	return &ParseError{Range: r, Expected: expected, Found: found}
}

// UnknownVariableError is a condition referencing a primitive never stored.
type UnknownVariableError struct{ Name string }

func (e *UnknownVariableError) Error() string { return "unknown variable: " + e.Name }

func ErrUnknownVariable(name string) error {
	return &UnknownVariableError{Name: name}
}

// InvalidActionError is a trigger referencing an event id with no handler.
type InvalidActionError struct{ EventID string }

func (e *InvalidActionError) Error() string {
	return "invalid action: no handler for event " + e.EventID
}

func ErrInvalidAction(eventID string) error {
	return &InvalidActionError{EventID: eventID}
}

// AmbiguousValueError is an attempt to coerce Conflict to a boolean.
type AmbiguousValueError struct{ What string }

func (e *AmbiguousValueError) Error() string { return "ambiguous value: " + e.What }

func ErrAmbiguousValue(what string) error {
	return &AmbiguousValueError{What: what}
}

// NamespaceMissingError is a namespace path with no node in the alias tree.
type NamespaceMissingError struct{ Path []string }

func (e *NamespaceMissingError) Error() string {
	return fmt.Sprintf("namespace missing: %v", e.Path)
}

func ErrNamespaceMissing(path []string) error {
	return &NamespaceMissingError{Path: path}
}

// EmptyAlternativeError is an Alternative action list with zero choices.
type EmptyAlternativeError struct{}

func (e EmptyAlternativeError) Error() string { return "cannot execute empty alternative" }

func ErrEmptyAlternative() error {
	return EmptyAlternativeError{}
}

// NodeDroppedError is a route fired after the node's lifetime ended.
type NodeDroppedError struct{}

func (e NodeDroppedError) Error() string { return "node has been dropped" }

func ErrNodeDropped() error {
	return NodeDroppedError{}
}

// TransportError covers internal/transport failures: a closed message
// channel, a failed task join, a dropped reply.
type TransportError struct{ Reason string }

func (e *TransportError) Error() string { return "transport: " + e.Reason }

func ErrTransport(reason string) error {
	return &TransportError{Reason: reason}
}

// invalidInvocation is a sentinel for caller-misuse errors that don't fit
// one of the named kinds above.
var invalidInvocation = errors.New("invalid invocation")

func ErrInvalidInvocation(format string, args ...any) error {
	return errors.Wrapf(invalidInvocation, format, args...)
}
