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

// Package alias implements the node's alias namespace tree: a tree of named
// rule bundles keyed by dotted paths, supporting get/create/override/merge.
package alias

import (
	"sync"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/xerr"
	"github.com/binaek/gocoll/collection"
)

// Node is one segment of the alias namespace tree: a mapping from child
// segment name to child node (shared, reference-counted by the map itself),
// plus an ordered, deduplicated list of rules belonging to this node.
type Node struct {
	name string

	childrenMu sync.RWMutex
	children   map[string]*Node

	rulesMu sync.Mutex
	rules   []ast.RuleWithArgs
}

func newNode(name string) *Node {
	return &Node{name: name, children: make(map[string]*Node)}
}

// child returns the named child, creating it if absent. Safe under
// concurrent calls: a read-locked lookup is attempted first, falling back
// to a write-locked get-or-create only on a miss.
func (n *Node) child(segment string) *Node {
	n.childrenMu.RLock()
	c, ok := n.children[segment]
	n.childrenMu.RUnlock()
	if ok {
		return c
	}

	n.childrenMu.Lock()
	defer n.childrenMu.Unlock()
	if c, ok := n.children[segment]; ok {
		return c
	}
	c = newNode(segment)
	n.children[segment] = c
	return c
}

func (n *Node) lookupChild(segment string) (*Node, bool) {
	n.childrenMu.RLock()
	defer n.childrenMu.RUnlock()
	c, ok := n.children[segment]
	return c, ok
}

// Tree is the top-level alias namespace, keyed by top-level segment.
type Tree struct {
	topMu sync.RWMutex
	top   map[string]*Node
}

func NewTree() *Tree {
	return &Tree{top: make(map[string]*Node)}
}

func (t *Tree) topChild(segment string) *Node {
	t.topMu.RLock()
	c, ok := t.top[segment]
	t.topMu.RUnlock()
	if ok {
		return c
	}

	t.topMu.Lock()
	defer t.topMu.Unlock()
	if c, ok := t.top[segment]; ok {
		return c
	}
	c = newNode(segment)
	t.top[segment] = c
	return c
}

func (t *Tree) topLookup(segment string) (*Node, bool) {
	t.topMu.RLock()
	defer t.topMu.RUnlock()
	c, ok := t.top[segment]
	return c, ok
}

// resolve walks path from the root, failing if any prefix segment is
// absent.
func (t *Tree) resolve(path []string) (*Node, error) {
	if len(path) == 0 {
		return nil, xerr.ErrNamespaceMissing(path)
	}
	n, ok := t.topLookup(path[0])
	if !ok {
		return nil, xerr.ErrNamespaceMissing(path)
	}
	for _, seg := range path[1:] {
		n, ok = n.lookupChild(seg)
		if !ok {
			return nil, xerr.ErrNamespaceMissing(path)
		}
	}
	return n, nil
}

// resolveOrCreate walks path from the root, creating intermediate nodes as
// needed.
func (t *Tree) resolveOrCreate(path []string) *Node {
	n := t.topChild(path[0])
	for _, seg := range path[1:] {
		n = n.child(seg)
	}
	return n
}

// GetRules returns the rule list at the target node, in insertion order.
func (t *Tree) GetRules(path []string) ([]ast.RuleWithArgs, error) {
	n, err := t.resolve(path)
	if err != nil {
		return nil, err
	}
	n.rulesMu.Lock()
	defer n.rulesMu.Unlock()
	out := make([]ast.RuleWithArgs, len(n.rules))
	copy(out, n.rules)
	return out, nil
}

// CreateRules creates intermediate nodes as needed along path and, at the
// leaf, either replaces the rule list (overrideEntries) or unions it with
// the existing list, preserving insertion order and dropping exact
// duplicates. Returns the previous rule list (nil if it was empty).
func (t *Tree) CreateRules(path []string, rules []ast.RuleWithArgs, overrideEntries bool) ([]ast.RuleWithArgs, error) {
	if len(path) == 0 {
		return nil, xerr.ErrNamespaceMissing(path)
	}
	n := t.resolveOrCreate(path)

	n.rulesMu.Lock()
	defer n.rulesMu.Unlock()

	var previous []ast.RuleWithArgs
	if len(n.rules) > 0 {
		previous = make([]ast.RuleWithArgs, len(n.rules))
		copy(previous, n.rules)
	}

	if overrideEntries {
		merged, err := dedupeOrdered(nil, rules)
		if err != nil {
			return nil, err
		}
		n.rules = merged
		return previous, nil
	}

	merged, err := dedupeOrdered(n.rules, rules)
	if err != nil {
		return nil, err
	}
	n.rules = merged
	return previous, nil
}

// hashedRule pairs a rule with its structural hash, computed once up front
// so dedupeOrdered's dedup pass is a plain map lookup rather than a repeat
// call to ast.Hash per comparison.
type hashedRule struct {
	rwa  ast.RuleWithArgs
	hash uint64
	err  error
}

// dedupeOrdered returns existing followed by every entry of incoming whose
// structural hash was not already present, preserving the order each entry
// first appears in.
func dedupeOrdered(existing, incoming []ast.RuleWithArgs) ([]ast.RuleWithArgs, error) {
	seen := make(map[uint64]struct{}, len(existing)+len(incoming))
	for _, rwa := range existing {
		h, err := ast.Hash(rwa.Rule())
		if err != nil {
			return nil, err
		}
		seen[h] = struct{}{}
	}

	hashedIncoming := collection.Map(collection.From(incoming...), func(rwa ast.RuleWithArgs) hashedRule {
		h, err := ast.Hash(rwa.Rule())
		return hashedRule{rwa: rwa, hash: h, err: err}
	}).Elements()

	out := make([]ast.RuleWithArgs, len(existing), len(existing)+len(hashedIncoming))
	copy(out, existing)
	for _, hr := range hashedIncoming {
		if hr.err != nil {
			return nil, hr.err
		}
		if _, dup := seen[hr.hash]; dup {
			continue
		}
		seen[hr.hash] = struct{}{}
		out = append(out, hr.rwa)
	}
	return out, nil
}
