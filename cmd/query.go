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
	"log/slog"
	"strings"

	"github.com/binaek/cl0/engine"
	"github.com/binaek/cling"
)

func addQueryCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("query", queryCmd).
			WithArgument(cling.NewStringCmdInput("location").
				WithDescription("File or directory of .cl0 source to load into a fresh node").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("path").
				WithDefault("").
				WithDescription("Dotted alias namespace path to query, e.g. ns.rule").
				AsFlag(),
			),
	)
}

type queryCmdArgs struct {
	Location string `cling-name:"location"`
	Path     string `cling-name:"path"`
}

// queryCmd loads a node and reports every rule installed under path, the
// same information the alias tree's get_rules returns (spec.md §4.3).
func queryCmd(ctx context.Context, args []string) error {
	input := queryCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	rules, err := loadSource(input.Location)
	if err != nil {
		return err
	}

	n, err := engine.New(engine.Config{Log: slog.Default()})
	if err != nil {
		return err
	}
	defer n.Close()

	if _, err := n.NewRules(ctx, rules); err != nil {
		return err
	}

	var path []string
	if input.Path != "" {
		path = strings.Split(input.Path, ".")
	}

	installed, err := n.GetRules(ctx, path)
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		fmt.Println("no rules installed at this path")
		return nil
	}
	for _, rwa := range installed {
		status := "-"
		if rwa.Reactive != nil {
			status = rwa.Reactive.Value.String()
		}
		fmt.Printf("[%s] %s\n", status, rwa.Rule().String())
	}
	return nil
}
