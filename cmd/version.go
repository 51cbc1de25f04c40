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
	"context"
	"fmt"

	"github.com/binaek/cl0/version"
	"github.com/binaek/cling"
)

func addVersionCmd(cli *cling.CLI, appVersion string) {
	cli.WithCommand(
		cling.NewCommand("version", func(ctx context.Context, args []string) error {
			info := version.GetVersionInfo(
				version.WithAppDetails("cl0", "a reactive rule engine", "https://github.com/binaek/cl0"),
			)
			info.Version = appVersion
			fmt.Print(info.String())
			return nil
		}),
	)
}
