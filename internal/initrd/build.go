// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Magic identifies an aurora initrd image. It is the first 8 bytes of every
// image, little-endian encoded like all other integer fields.
const Magic uint64 = 0x39F298AA4B92E836

const (
	headerSize      = 16
	entryRecordSize = 40

	// All name and data offsets are aligned to this boundary so the
	// kernel can read multi-byte fields without unaligned accesses.
	payloadAlign = 8
)

// maxEntries is the largest entry count for which the fixed size prefix of
// header and entry table still fits into a 64 bit offset. Unreachable with
// realistic input, but kept as a defined limit instead of silent wrap.
const maxEntries = (math.MaxUint64 - headerSize) / entryRecordSize

// record is one entry table record in its wire representation.
type record struct {
	kind    uint64
	nameOff uint64
	nameLen uint64
	dataOff uint64
	dataLen uint64
}

// Build serializes the given entries into a single initrd image.
//
// The entries appear in the entry table in the given order. The order is
// preserved because it is meaningful to the kernel, e.g. as mount order for
// part-list entries.
//
// Build fails with a [NameEncodingError] if an entry's name is not valid
// UTF-8, and with [ErrTooManyEntries] if the entry count does not fit the
// header's count field. On error no image is returned.
func Build(entries []Entry) ([]byte, error) {
	if uint64(len(entries)) > maxEntries {
		return nil, ErrTooManyEntries
	}

	// First pass: assign offsets for all variable length fields. The
	// prefix of header and entry table is always a multiple of 8, but
	// name and data lengths are arbitrary, so the cursor is rounded up
	// before every single assignment.
	records := make([]record, len(entries))
	offset := headerSize + uint64(len(entries))*entryRecordSize

	for idx, entry := range entries {
		if !utf8.ValidString(entry.Name) {
			return nil, &NameEncodingError{Index: idx}
		}

		offset = alignUp(offset)
		records[idx] = record{
			kind:    uint64(entry.Kind),
			nameOff: offset,
			nameLen: uint64(len(entry.Name)),
		}

		offset = alignUp(offset + uint64(len(entry.Name)))
		records[idx].dataOff = offset
		records[idx].dataLen = uint64(len(entry.Data))

		offset += uint64(len(entry.Data))
	}

	// Second pass: emit everything into one zero initialized buffer, so
	// alignment padding is zero filled and builds are deterministic.
	image := make([]byte, alignUp(offset))

	binary.LittleEndian.PutUint64(image[0:], Magic)
	binary.LittleEndian.PutUint64(image[8:], uint64(len(entries)))

	for idx, rec := range records {
		pos := headerSize + idx*entryRecordSize
		binary.LittleEndian.PutUint64(image[pos:], rec.kind)
		binary.LittleEndian.PutUint64(image[pos+8:], rec.nameOff)
		binary.LittleEndian.PutUint64(image[pos+16:], rec.nameLen)
		binary.LittleEndian.PutUint64(image[pos+24:], rec.dataOff)
		binary.LittleEndian.PutUint64(image[pos+32:], rec.dataLen)

		copy(image[rec.nameOff:], entries[idx].Name)
		copy(image[rec.dataOff:], entries[idx].Data)
	}

	return image, nil
}

// alignUp rounds offset up to the next multiple of [payloadAlign].
func alignUp(offset uint64) uint64 {
	return (offset + payloadAlign - 1) &^ (payloadAlign - 1)
}
