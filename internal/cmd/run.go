// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/Athryx/gen-initrd/internal/initrd"
)

const outputFileMode = 0o644

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(ctx context.Context, flags *flags) error {
	inputs := flags.imageInputs()

	err := validate(inputs)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	entries, err := loadEntries(ctx, inputs, !flags.SkipELFCheck)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}

	image, err := initrd.Build(entries)
	if err != nil {
		return fmt.Errorf("build image: %w", err)
	}

	err = os.WriteFile(string(flags.Output), image, outputFileMode)
	if err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	slog.Debug("Wrote initrd image",
		slog.String("path", string(flags.Output)),
		slog.Int("size", len(image)))

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags := newFlags(cfg.Stderr)

	err := flags.ParseArgs(append(EnvArgs(), args...))
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "%s %s\n", name, buildInfo.Main.Version)

		return 0
	}

	if flags.Inspect != "" {
		err = inspect(string(flags.Inspect), cfg.Stdout)
	} else {
		err = run(ctx, flags)
	}

	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
