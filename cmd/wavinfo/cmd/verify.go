// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ik5/wavinfo"
	"github.com/ik5/wavinfo/formats/wav"
	"github.com/ik5/wavinfo/internal/crosscheck"
)

func DefineVerifyCommand(state *State) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>...",
		Short: "Compare the fixed-offset header decode with a chunk-walking decoder",
		Long: `The 'verify' command decodes each file like 'info' does, then decodes it again with the
go-audio WAV decoder and reports every field on which the two disagree.
The usual disagreement is the sample rate of files above 65535 Hz, which the
fixed-offset decoder reads as a 16-bit value. Any disagreement or rejected file
makes the exit status non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunVerify(cmd, state, args)
		},
	}
}

func RunVerify(cmd *cobra.Command, state *State, paths []string) error {
	out := newPrinter(cmd.OutOrStdout(), state.Config.Output)

	failed := 0
	for _, path := range paths {
		data, err := wavinfo.ReadFile(path)
		if err != nil {
			failed++
			state.Logger.Debug("rejected file", "path", path, "error", err)
			failure(cmd.ErrOrStderr(), path, err)
			continue
		}

		info, err := wav.Parse(data)
		if err != nil {
			failed++
			state.Logger.Debug("rejected file", "path", path, "error", err)
			failure(cmd.ErrOrStderr(), path, err)
			continue
		}

		report, err := crosscheck.Check(data, info)
		if err != nil {
			failed++
			state.Logger.Debug("rejected file", "path", path, "error", err)
			failure(cmd.ErrOrStderr(), path, err)
			continue
		}

		state.Logger.Debug("cross-checked header", "path", path, "mismatches", len(report.Mismatches))

		if !report.OK() {
			failed++
		}
		if err := out.verify(path, info, report); err != nil {
			return err
		}
	}

	return state.finish(len(paths), failed)
}
