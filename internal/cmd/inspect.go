// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Athryx/gen-initrd/internal/initrd"
)

// inspect prints the header and entry table of an existing image. It walks
// the image the same way the kernel's boot loader does.
func inspect(path string, out io.Writer) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	records, err := initrd.Records(image)
	if err != nil {
		return fmt.Errorf("parse image: %w", err)
	}

	fmt.Fprintf(out, "%s: %d entries, %d bytes\n", path, len(records), len(image))

	for idx, rec := range records {
		fmt.Fprintf(out, "%3d  %-11s  %8d bytes @ %-8d  %s\n",
			idx, rec.Kind, rec.DataLen, rec.DataOffset, rec.Name(image))
	}

	return nil
}
