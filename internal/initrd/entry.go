// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

// Entry is one named, typed binary payload bundled into the image.
//
// The builder treats Data as an opaque blob. Names are not required to be
// unique. How the kernel resolves duplicate names is up to the kernel.
type Entry struct {
	// Kind of the entry.
	Kind EntryKind

	// Name is the logical name of the entry. It must be valid UTF-8.
	Name string

	// Data is the payload of the entry. It may be empty.
	Data []byte
}
