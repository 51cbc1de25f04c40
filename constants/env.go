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

// Package constants holds the ambient, CLI-level environment variable
// names. The engine core owns none of these (spec.md §6): they only
// affect how the CLI front end starts up and logs.
package constants

const (
	EnvLogLevel = "CL0_LOG_LEVEL"
	EnvDebug    = "CL0_DEBUG"

	// SourceFileExtension is the surface-syntax file extension the CLI
	// looks for when loading a directory of rules.
	SourceFileExtension = ".cl0"

	// ManifestFileName is the manifest the CLI looks for at the root of a
	// rule-set directory.
	ManifestFileName = "cl0.toml"
)
