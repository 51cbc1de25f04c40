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

// Package version reports cl0's build provenance: the running binary's
// version plus whatever VCS metadata the Go toolchain embedded at build
// time, for the CLI's "version" subcommand.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// BuildInfo describes one built binary: its identity (name/description/
// website) plus the VCS facts the toolchain recorded when it was built.
type BuildInfo struct {
	Name        string
	Description string
	Website     string

	Version   string
	Commit    string
	TreeState string
	BuiltAt   string
	BuiltBy   string
}

// Option configures a BuildInfo before it is returned by GetVersionInfo.
type Option func(*BuildInfo)

// WithAppDetails sets the binary's display identity.
func WithAppDetails(name, description, website string) Option {
	return func(b *BuildInfo) {
		b.Name = name
		b.Description = description
		b.Website = website
	}
}

// GetVersionInfo reads runtime/debug.BuildInfo for VCS provenance, then
// applies opts (which may override anything pre-filled, e.g. a version
// string baked in at link time via -ldflags).
func GetVersionInfo(opts ...Option) BuildInfo {
	var b BuildInfo

	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				b.Commit = setting.Value
			case "vcs.time":
				b.BuiltAt = setting.Value
			case "vcs.modified":
				if setting.Value == "true" {
					b.TreeState = "dirty"
				} else {
					b.TreeState = "clean"
				}
			}
		}
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			b.Version = bi.Main.Version
		}
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// String renders a human-readable report: identity block, then whichever
// build facts are non-empty, right-padded to a common column.
func (b BuildInfo) String() string {
	var out strings.Builder

	if b.Name != "" {
		if b.Version != "" {
			fmt.Fprintf(&out, "%s v%s\n", b.Name, b.Version)
		} else {
			fmt.Fprintf(&out, "%s\n", b.Name)
		}
	}
	if b.Description != "" {
		fmt.Fprintf(&out, "\n%s\n", b.Description)
	}
	if b.Website != "" {
		fmt.Fprintf(&out, "\n%s\n", b.Website)
	}
	out.WriteString("\n")

	fields := []struct {
		label, value string
	}{
		{"commit", b.Commit},
		{"tree", b.TreeState},
		{"built", b.BuiltAt},
		{"built by", b.BuiltBy},
	}
	width := 0
	for _, f := range fields {
		if f.value != "" && len(f.label) > width {
			width = len(f.label)
		}
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&out, "%-*s  %s\n", width, f.label, f.value)
	}

	return out.String()
}
