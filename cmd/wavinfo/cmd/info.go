// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ik5/wavinfo"
)

func DefineInfoCommand(state *State) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Print the header metadata of WAV files",
		Long: `The 'info' command validates the RIFF/WAVE header of each file and prints its
audio format, channel count, sample rate and bit depth.
A file with a structural defect is reported on stderr with the first failed check,
and the remaining files are still processed. The exit status is non-zero if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInfo(cmd, state, args)
		},
	}
}

func RunInfo(cmd *cobra.Command, state *State, paths []string) error {
	out := newPrinter(cmd.OutOrStdout(), state.Config.Output)

	failed := 0
	for _, path := range paths {
		info, err := wavinfo.InspectFile(path)
		if err != nil {
			failed++
			state.Logger.Debug("rejected file", "path", path, "error", err)
			failure(cmd.ErrOrStderr(), path, err)
			continue
		}

		state.Logger.Debug("decoded header",
			"path", path,
			"format", info.Format,
			"channels", info.Channels,
			"frequency", info.Frequency,
			"bits_per_sample", info.BitsPerSample,
		)

		if err := out.info(path, info); err != nil {
			return err
		}
	}

	return state.finish(len(paths), failed)
}
