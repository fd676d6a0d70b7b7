// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fbctl/fbctlgo/internal/command"
	mylog "github.com/fbctl/fbctlgo/internal/log"
	"github.com/fbctl/fbctlgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// Fetch/parse/filesystem failures exit 2; flag and config
		// problems exit 1.
		var re command.RuntimeError
		if errors.As(err, &re) {
			return 2
		}
		return 1
	}

	return 0
}
