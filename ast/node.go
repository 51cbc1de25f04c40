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

// Package ast defines the CL0 abstract syntax tree: atomic conditions,
// conditions, primitive events, actions, and the four rule kinds. Every
// node is an immutable, closed tagged union encoded as a Go interface with
// an unexported marker method, and renders back to surface syntax via
// String() so that parse(print(r)) == r.
package ast

// Node is implemented by every AST node and gives it a source-faithful
// rendering.
type Node interface {
	String() string
}

// AtomicCondition is the sum type over primitive, compound, and
// sub-compound atomic conditions.
type AtomicCondition interface {
	Node
	atomicConditionNode()
}

// Condition is the sum type over the boolean-connective tree built on
// atomic conditions.
type Condition interface {
	Node
	conditionNode()
}

// PrimitiveEvent is the sum type over Trigger, Production, and Consumption.
type PrimitiveEvent interface {
	Node
	primitiveEventNode()
}

// Action is the sum type over a bare primitive event and the three action
// list combinators.
type Action interface {
	Node
	actionNode()
}

// Rule is the sum type over reactive, declarative, case, and fact rules.
type Rule interface {
	Node
	ruleNode()
}
