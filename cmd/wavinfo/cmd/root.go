// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const AppName = "wavinfo"

// ErrFilesFailed is returned when at least one file could not be inspected
// or verified. The per-file reasons have already been printed.
var ErrFilesFailed = errors.New("one or more files failed")

// State is shared by all subcommands once the root command has run its
// persistent pre-run.
type State struct {
	Config *Config
	Logger *slog.Logger
}

func (s *State) init(cmd *cobra.Command) error {
	cfg, err := GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()

	s.Config = cfg
	s.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// finish logs the run summary and turns failures into ErrFilesFailed.
func (s *State) finish(total, failed int) error {
	s.Logger.Info("run finished", "files", total, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, total)
	}
	return nil
}

func NewRootCommand() *cobra.Command {
	state := &State{}

	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         AppName + " - WAV header inspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error (env WAVINFO_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringP("output", "o", OutputText, "report format: text or json (env WAVINFO_OUTPUT)")

	rootCmd.AddCommand(DefineInfoCommand(state))
	rootCmd.AddCommand(DefineVerifyCommand(state))

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
