// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

const envArgsVar = "GEN_INITRD_ARGS"

// EnvArgs returns gen-initrd arguments from the environment.
//
// They are merged in front of the command line arguments, so explicit
// command line arguments win.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(envArgsVar))
}
