// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Athryx/gen-initrd/internal/initrd"
	"github.com/Athryx/gen-initrd/internal/sys"
)

// imageInput is one input file for the image, before it is read.
type imageInput struct {
	kind initrd.EntryKind
	path string

	// executable marks inputs that must be ELF executables the kernel or
	// early-init can spawn.
	executable bool
}

// imageInputs returns all input files in the order they appear in the image.
// The order is meaningful to the kernel, so it is fixed: the typed entries
// first, then the optional ext2 driver, then extra files in argument order.
func (f *flags) imageInputs() []imageInput {
	inputs := []imageInput{
		{initrd.KindEarlyInit, string(f.EarlyInit), true},
		{initrd.KindPartList, string(f.PartList), false},
		{initrd.KindFsServer, string(f.FsServer), true},
		{initrd.KindAhciServer, string(f.AhciServer), true},
	}

	if f.Ext2 != "" {
		inputs = append(inputs, imageInput{
			kind:       initrd.KindAnyFile,
			path:       string(f.Ext2),
			executable: true,
		})
	}

	for _, file := range f.ExtraFiles {
		inputs = append(inputs, imageInput{
			kind: initrd.KindAnyFile,
			path: file,
		})
	}

	return inputs
}

// loadEntries reads all input files into entries. The files are independent,
// so they are read concurrently. Each entry keeps the slot its input was
// assigned, so the resulting order is deterministic.
func loadEntries(
	ctx context.Context,
	inputs []imageInput,
	elfCheck bool,
) ([]initrd.Entry, error) {
	entries := make([]initrd.Entry, len(inputs))

	eg, ctx := errgroup.WithContext(ctx)

	for idx, input := range inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			data, err := os.ReadFile(input.path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			if elfCheck && input.executable {
				err := sys.ValidateELF(bytes.NewReader(data))
				if err != nil {
					return fmt.Errorf("%s: %w", input.path, err)
				}
			}

			entries[idx] = initrd.Entry{
				Kind: input.kind,
				Name: filepath.Base(input.path),
				Data: data,
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return entries, nil
}
