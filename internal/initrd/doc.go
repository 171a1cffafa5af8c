// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package initrd builds initrd images for the aurora kernel.
//
// The image is a single contiguous buffer: a fixed 16 byte header, followed
// by a table of fixed size entry records, followed by the name and payload
// bytes the records point at. All integers are 64 bit little-endian and all
// payload offsets are aligned to 8 bytes, so the kernel's early boot loader
// can walk the table by fixed-stride indexing and fetch payloads by plain
// offset and length slicing, without a parser or dynamic allocation.
package initrd
