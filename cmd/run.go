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

	"github.com/binaek/cl0/engine"
	"github.com/binaek/cling"
)

func addRunCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("run", runCmd).
			WithArgument(cling.NewStringCmdInput("location").
				WithDescription("File or directory of .cl0 source to load into a fresh node").
				AsArgument(),
			).
			WithFlag(cling.
				NewIntCmdInput("dispatch-parallel").
				WithDefault(16).
				WithDescription("Bound on concurrently executing node route handler invocations").
				AsFlag(),
			),
	)
}

type runCmdArgs struct {
	Location         string `cling-name:"location"`
	DispatchParallel int    `cling-name:"dispatch-parallel"`
}

func runCmd(ctx context.Context, args []string) error {
	input := runCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	rules, err := loadSource(input.Location)
	if err != nil {
		return err
	}

	n, err := engine.New(engine.Config{
		Log:              slog.Default(),
		DispatchParallel: int32(input.DispatchParallel),
	})
	if err != nil {
		return err
	}
	defer n.Close()

	results, err := n.NewRules(ctx, rules)
	if err != nil {
		return err
	}

	ok := 0
	for i, succeeded := range results {
		if succeeded {
			ok++
			continue
		}
		fmt.Printf("rule %d failed: %s\n", i, rules[i].String())
	}
	fmt.Printf("%d/%d rule(s) applied\n", ok, len(results))
	return nil
}
