// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
)

const (
	name = "gen-initrd"

	usageMessage = `Usage of 'gen-initrd':
    gen-initrd -init=PATH -part-list=PATH -fs=PATH -ahci=PATH -output=PATH [files...]

Generates an initrd image for the aurora kernel from the given boot-time
programs. Positional arguments are bundled as additional plain files.

Inspecting an existing image:
    gen-initrd -inspect=PATH

All gen-initrd flags can also be provided via environment variable
GEN_INITRD_ARGS. Explicit command line arguments take precedence.
`
)

type flags struct {
	EarlyInit  FilePath
	PartList   FilePath
	FsServer   FilePath
	AhciServer FilePath
	Ext2       FilePath
	Output     FilePath
	Inspect    FilePath
	ExtraFiles []string

	SkipELFCheck bool
	Version      bool
	Debug        bool

	flagSet *flag.FlagSet
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageMessage)
		fs.PrintDefaults()
	}

	fs.Var(
		&f.EarlyInit,
		"init",
		"first executable spawned by the kernel which is responsible for"+
			" mounting the root filesystem and spawning the init process",
	)

	fs.Var(
		&f.PartList,
		"part-list",
		"file read by early-init which describes which filesystem drivers"+
			" to use for which partitions and where to mount them",
	)

	fs.Var(
		&f.FsServer,
		"fs",
		"filesystem server which filesystem drivers will connect to",
	)

	fs.Var(
		&f.AhciServer,
		"ahci",
		"AHCI server to allow filesystem drivers to communicate with drives",
	)

	fs.Var(
		&f.Ext2,
		"ext2",
		"ext2 filesystem driver (optional)",
	)

	fs.Var(
		&f.Output,
		"output",
		"path the initrd image is written to",
	)

	fs.Var(
		&f.Inspect,
		"inspect",
		"print the entry table of an existing image instead of building",
	)

	fs.BoolVar(
		&f.SkipELFCheck,
		"skip-elf-check",
		f.SkipELFCheck,
		"do not check that bundled server executables are ELF executables",
	)

	fs.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	fs.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = fs
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string) error {
	err := &ParseArgsError{msg: msg}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// Version and inspect mode do not need any of the build inputs.
	if f.Version || f.Inspect != "" {
		return nil
	}

	if f.EarlyInit == "" {
		return f.fail("no early-init executable given (use -init)")
	}

	if f.PartList == "" {
		return f.fail("no partition list given (use -part-list)")
	}

	if f.FsServer == "" {
		return f.fail("no filesystem server given (use -fs)")
	}

	if f.AhciServer == "" {
		return f.fail("no AHCI server given (use -ahci)")
	}

	if f.Output == "" {
		return f.fail("no output path given (use -output)")
	}

	for _, file := range f.flagSet.Args() {
		path, err := AbsoluteFilePath(file)
		if err != nil {
			return f.fail(err.Error())
		}

		f.ExtraFiles = append(f.ExtraFiles, path)
	}

	return nil
}
