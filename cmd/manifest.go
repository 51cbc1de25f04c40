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

package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/constants"
	"github.com/binaek/cl0/parser"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Manifest describes a directory of .cl0 source files the CLI loads as a
// single node's initial rule set. The engine core itself owns no file
// format (spec.md §6) — this is purely a CLI-level convenience.
type Manifest struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`

	// Location is the directory the manifest was loaded from; not
	// serialized, filled in by LoadManifest.
	Location string `toml:"-"`
}

// NewManifest builds a fresh manifest for `init`.
func NewManifest(name string) *Manifest {
	return &Manifest{Name: name}
}

// LoadManifest reads dir/cl0.toml. A directory without a manifest is still
// valid — source files are discovered by extension regardless.
func LoadManifest(dir string) (*Manifest, error) {
	m := &Manifest{Location: dir}

	path := filepath.Join(dir, constants.ManifestFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, errors.Wrapf(err, "could not read manifest %s", path)
	}
	if err := toml.Unmarshal(content, m); err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest %s", path)
	}
	m.Location = dir
	return m, nil
}

// WriteManifest encodes m as TOML into dir/cl0.toml.
func WriteManifest(dir string, m *Manifest) error {
	f, err := os.OpenFile(filepath.Join(dir, constants.ManifestFileName), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "could not create manifest file")
	}
	defer func() { _ = f.Close() }()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(m); err != nil {
		return errors.Wrapf(err, "could not encode manifest file")
	}
	return nil
}

// LoadSourceFiles walks dir for every file with the .cl0 extension and
// parses each into a rule list, in traversal order.
func LoadSourceFiles(dir string) ([]ast.Rule, error) {
	var rules []ast.Rule

	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, constants.SourceFileExtension) {
			return nil
		}

		fullPath := filepath.Join(dir, path)
		file, err := os.Open(fullPath)
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()

		p := parser.NewParser(file, fullPath)
		fileRules, err := p.ParseProgram()
		if err != nil {
			return errors.Wrapf(err, "parsing %s", fullPath)
		}
		rules = append(rules, fileRules...)
		return nil
	})

	return rules, err
}

// loadSource resolves location to a rule list: a single file is parsed
// directly, a directory is walked via LoadSourceFiles.
func loadSource(location string) ([]ast.Rule, error) {
	stat, err := os.Stat(location)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", location)
	}
	if stat.IsDir() {
		return LoadSourceFiles(location)
	}

	file, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	p := parser.NewParser(file, location)
	rules, err := p.ParseProgram()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", location)
	}
	return rules, nil
}
