// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danielhkuo/qarari/cli"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitInvalid = 1 // The decision file failed validation
	ExitError   = 2 // Usage, I/O or parse error
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var invalid *cli.InvalidDecisionError
		if errors.As(err, &invalid) {
			os.Exit(ExitInvalid)
		}
		os.Exit(ExitError)
	}
}
