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

import (
	"strings"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/pkg/errors"
)

// Rule values are tree-shaped interfaces holding slices (ActionList.Items,
// Compound.Rules, Conjunction/Disjunction.Items) and are therefore not
// comparable — Go rejects them as map keys directly. Hash gives every rule
// a stable structural fingerprint so handlers and alias namespaces can key
// on (rule, alias-path) without requiring Rule to be comparable.
func Hash(r Rule) (uint64, error) {
	h, err := hashstructure.Hash(r, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, errors.Wrap(err, "hashing rule")
	}
	return h, nil
}

// RuleKey is the key a handler uses for its (rule, alias-path) map: the
// structural hash of the rule combined with its namespace path, since the
// same rule text can be installed under two different bundles.
type RuleKey struct {
	RuleHash uint64
	Alias    string
}

// NewRuleKey builds the key for a reactive rule under the given alias path.
func NewRuleKey(r Rule, alias []string) (RuleKey, error) {
	h, err := Hash(r)
	if err != nil {
		return RuleKey{}, err
	}
	return RuleKey{RuleHash: h, Alias: strings.Join(alias, ".")}, nil
}
