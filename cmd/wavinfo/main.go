// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/wavinfo/cmd/wavinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// per-file failures were already printed by the subcommand
		if !errors.Is(err, cmd.ErrFilesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
