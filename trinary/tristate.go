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

// Package trinary implements the node's ternary activation value.
package trinary

import "github.com/pkg/errors"

// Value represents an activation status: True, False, or Conflict.
//
// Conflict is a datum, not an exception: it signals that a value could not
// be coherently resolved (e.g. mixed statuses inside a compound). It only
// becomes an error when a caller coerces it to a boolean.
type Value int

const (
	False Value = iota - 1
	Conflict
	True
)

// Unknown is a legacy alias for Conflict; both names denote the same value.
const Unknown = Conflict

func (v Value) String() string {
	switch v {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Unknown"
	}
}

// Not implements logical negation. Conflict negates to itself.
func (v Value) Not() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Conflict
	}
}

// And implements Kleene conjunction.
func (v Value) And(other Value) Value {
	switch v {
	case True:
		return other
	case False:
		return False
	default:
		if other == False {
			return False
		}
		return Conflict
	}
}

// Or implements Kleene disjunction.
func (v Value) Or(other Value) Value {
	switch v {
	case True:
		return True
	case False:
		return other
	default:
		if other == True {
			return True
		}
		return Conflict
	}
}

func (v Value) Equals(other Value) bool {
	return v == other
}

func (v Value) IsTrue() bool {
	return v == True
}

// ErrAmbiguousValue is returned by ToBool when coercing Conflict to a boolean.
var ErrAmbiguousValue = errors.New("ambiguous value: cannot coerce Conflict to bool")

// ToBool coerces the value to a boolean, failing on Conflict. This is the
// only place a ternary value becomes an error.
func (v Value) ToBool() (bool, error) {
	switch v {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, ErrAmbiguousValue
	}
}

// AsOptionBool returns (value, true) for True/False, or (false, false) for
// Conflict, mirroring the original implementation's as_option_bool.
func (v Value) AsOptionBool() (bool, bool) {
	switch v {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// FromBool converts a plain boolean into a Value.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}
