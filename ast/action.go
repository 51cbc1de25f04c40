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

package ast

import "strings"

// PrimitiveAction lifts a single primitive event into the Action tree:
// #click, +load, -submit.
type PrimitiveAction struct {
	Event PrimitiveEvent
}

func (PrimitiveAction) actionNode() {}

func (p PrimitiveAction) String() string { return p.Event.String() }

// ActionListKind tags which combinator an ActionList carries.
type ActionListKind int

const (
	Sequence ActionListKind = iota
	Parallel
	Alternative
)

// ActionList is an ordered list of sub-actions combined with one of
// Sequence, Parallel, or Alternative semantics (see the engine's
// action evaluator for the concurrency discipline of each).
type ActionList struct {
	Kind  ActionListKind
	Items []Action
}

func (ActionList) actionNode() {}

func (a ActionList) String() string {
	var sep string
	switch a.Kind {
	case Sequence:
		sep = "; "
	case Parallel:
		sep = ", "
	case Alternative:
		sep = " alt "
	}
	var parts []string
	for _, it := range a.Items {
		parts = append(parts, it.String())
	}
	return strings.Join(parts, sep)
}
