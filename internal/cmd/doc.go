// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for gen-initrd. It
// handles flag parsing, error handling, and output handling.
package cmd
