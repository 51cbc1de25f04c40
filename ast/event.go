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

// Trigger fires a handler's reactive rules for the given bare event name.
type Trigger struct {
	ID string
}

func (Trigger) primitiveEventNode() {}

func (t Trigger) String() string { return "#" + t.ID }

// Production asserts an atomic condition true.
type Production struct {
	AC AtomicCondition
}

func (Production) primitiveEventNode() {}

func (p Production) String() string { return "+" + p.AC.String() }

// Consumption asserts an atomic condition false.
type Consumption struct {
	AC AtomicCondition
}

func (Consumption) primitiveEventNode() {}

func (c Consumption) String() string { return "-" + c.AC.String() }
