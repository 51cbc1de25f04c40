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

	"github.com/binaek/cling"
)

func addValidateCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("validate", validateCmd).
			WithArgument(cling.NewStringCmdInput("location").
				WithDescription("File or directory of .cl0 source to parse").
				AsArgument(),
			),
	)
}

type validateCmdArgs struct {
	Location string `cling-name:"location"`
}

// validateCmd is parse-only: it never builds a node, it only reports
// whether the source text is grammatically well-formed (spec.md §4.8).
func validateCmd(ctx context.Context, args []string) error {
	input := validateCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	rules, err := loadSource(input.Location)
	if err != nil {
		return err
	}

	fmt.Printf("ok: %d rule(s) parsed\n", len(rules))
	return nil
}
