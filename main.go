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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/binaek/cl0/cmd"
	"github.com/binaek/cl0/constants"
	"github.com/google/uuid"
)

// appVersion is overridable at link time via -ldflags "-X main.appVersion=...".
var appVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args))
}

// run wires up logging and the CLI, executes it against args, and returns
// the process exit code. Kept separate from main so there is a single
// os.Exit call rather than one buried inside command dispatch.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	slog.SetDefault(slog.New(newLogHandler()))

	cli := cmd.Setup(ctx, appVersion)
	if err := cmd.Execute(ctx, cli, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// newLogHandler builds the process-wide JSON handler: level from
// constants.EnvLogLevel (CL0_DEBUG forces debug regardless), plus a fixed
// set of attrs identifying the running instance.
func newLogHandler() slog.Handler {
	if _, debugMode := os.LookupEnv(constants.EnvDebug); debugMode {
		os.Setenv(constants.EnvLogLevel, "DEBUG")
	}

	level := slog.LevelVar{}
	level.Set(parseLogLevel(os.Getenv(constants.EnvLogLevel)))

	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     &level,
	}).WithAttrs(instanceAttrs())
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToUpper(raw) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func instanceAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("app", "cl0"),
		slog.String("version", appVersion),
		slog.String("instance", uuid.NewString()),
	}

	if _, debugMode := os.LookupEnv(constants.EnvDebug); !debugMode {
		return attrs
	}

	attrs = append(attrs, slog.Bool("debug", true), slog.Any("args", os.Args))
	if exec, err := os.Executable(); err == nil {
		attrs = append(attrs, slog.String("executable", exec))
	}
	return attrs
}
