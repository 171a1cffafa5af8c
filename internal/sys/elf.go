// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys provides inspection helpers for the binaries bundled into an
// initrd image.
package sys

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotELF is returned if a file does not parse as an ELF file.
	ErrNotELF = errors.New("not an ELF file")

	// ErrNotExecutable is returned if an ELF file is not an executable.
	ErrNotExecutable = errors.New("not an executable ELF file")

	// ErrClassNotSupported is returned for 32 bit ELF files. The aurora
	// kernel only loads 64 bit binaries.
	ErrClassNotSupported = errors.New("ELF class not supported")
)

// ValidateELF validates that the given file is a 64 bit ELF executable.
//
// It only inspects the ELF header. Whether the binary actually works in the
// program role it is bundled for is not validated.
func ValidateELF(file io.ReaderAt) error {
	elfFile, err := elf.NewFile(file)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotELF, err)
	}
	defer elfFile.Close()

	if elfFile.Class != elf.ELFCLASS64 {
		return fmt.Errorf("%w: %s", ErrClassNotSupported, elfFile.Class)
	}

	switch elfFile.Type {
	case elf.ET_EXEC, elf.ET_DYN:
		// supported, pass
	default:
		return fmt.Errorf("%w: %s", ErrNotExecutable, elfFile.Type)
	}

	return nil
}
