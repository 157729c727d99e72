// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Log format names accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	log       *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "lvmatrix",
		Short:        "Dense matrix and feed-forward network toolkit",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logFormatText, "log format: text or json")

	root.AddCommand(
		newMulCmd(a),
		newEvalCmd(a),
		newSweepCmd(a),
		newInfoCmd(a),
	)

	return root
}

// newLogger builds a slog.Logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format %q: want %s or %s", format, logFormatText, logFormatJSON)
	}
}
