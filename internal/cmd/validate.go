// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// validate checks all input files before any of them is read: they must
// exist and be regular files, and the bundled server executables must carry
// the executable bit.
func validate(inputs []imageInput) error {
	for _, input := range inputs {
		err := ValidateFilePath(input.path)
		if err != nil {
			return fmt.Errorf("%s %s: %w", input.kind, input.path, err)
		}

		if !input.executable {
			continue
		}

		err = unix.Access(input.path, unix.X_OK)
		if err != nil {
			return fmt.Errorf(
				"%s %s: not executable: %w",
				input.kind, input.path, err,
			)
		}
	}

	return nil
}
