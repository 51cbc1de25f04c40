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

// Primitive is a named boolean variable.
type Primitive struct {
	Name string
}

func (Primitive) atomicConditionNode() {}

func (p Primitive) String() string { return p.Name }

// Compound is a brace-delimited bundle of rules, optionally given a local
// alias name.
type Compound struct {
	Rules    []Rule
	Alias    string
	HasAlias bool
}

func (Compound) atomicConditionNode() {}

func (c Compound) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, r := range c.Rules {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.String())
	}
	b.WriteString("}")
	if c.HasAlias {
		b.WriteString(" as ")
		b.WriteString(c.Alias)
	}
	return b.String()
}

// SubCompound qualifies an atomic condition with a leading namespace
// segment: ns.AC.
type SubCompound struct {
	Namespace string
	Inner     AtomicCondition
}

func (SubCompound) atomicConditionNode() {}

func (s SubCompound) String() string {
	return s.Namespace + "." + s.Inner.String()
}
