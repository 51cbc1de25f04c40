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

// Package store implements the node's variable store (spec.md §4.2): an
// atomically-read/written map from primitive name to ternary status.
package store

import (
	"sync"

	"github.com/binaek/cl0/trinary"
	"github.com/binaek/cl0/xerr"
)

// Store is safe for concurrent use. See DESIGN.md for why this is a plain
// sync.RWMutex map rather than a third-party concurrent map: the teacher's
// own ambient choice for equivalent small keyed state is the same.
type Store struct {
	mu   sync.RWMutex
	vars map[string]trinary.Value
}

func New() *Store {
	return &Store{vars: make(map[string]trinary.Value)}
}

// Set atomically inserts or updates a variable. Conflict is rejected: a
// primitive can be made True or False, never stored as ambiguous.
func (s *Store) Set(name string, status trinary.Value) error {
	if status == trinary.Conflict {
		return xerr.ErrAmbiguousValue("cannot store Conflict for variable " + name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = status
	return nil
}

// Get returns the stored status, or Conflict if name was never assigned —
// "no evidence either way".
func (s *Store) Get(name string) trinary.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	if !ok {
		return trinary.Conflict
	}
	return v
}

// Has reports whether name has ever been assigned.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vars[name]
	return ok
}
