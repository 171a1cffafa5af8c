// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

import (
	"encoding/binary"
	"fmt"
)

// Record is one entry table record as stored in an image.
type Record struct {
	Kind       EntryKind
	NameOffset uint64
	NameLen    uint64
	DataOffset uint64
	DataLen    uint64
}

// Name slices the entry's name out of the image the record was read from.
func (r Record) Name(image []byte) string {
	return string(image[r.NameOffset : r.NameOffset+r.NameLen])
}

// Data slices the entry's payload out of the image the record was read from.
func (r Record) Data(image []byte) []byte {
	return image[r.DataOffset : r.DataOffset+r.DataLen]
}

// Records parses the header and entry table of the given image. It walks the
// image exactly like the kernel's boot loader does and checks the structural
// guarantees the builder makes: magic value, declared entry count fitting the
// buffer, offsets aligned to 8 bytes and offset plus length within bounds.
func Records(image []byte) ([]Record, error) {
	if len(image) < headerSize {
		return nil, ErrTruncated
	}

	if magic := binary.LittleEndian.Uint64(image[0:]); magic != Magic {
		return nil, fmt.Errorf("%w: %#x", ErrBadMagic, magic)
	}

	count := binary.LittleEndian.Uint64(image[8:])
	if count > (uint64(len(image))-headerSize)/entryRecordSize {
		return nil, fmt.Errorf("%w: %d entries declared", ErrTruncated, count)
	}

	records := make([]Record, count)

	for idx := range records {
		pos := headerSize + idx*entryRecordSize

		kind, err := kindFromWire(binary.LittleEndian.Uint64(image[pos:]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", idx, err)
		}

		rec := Record{
			Kind:       kind,
			NameOffset: binary.LittleEndian.Uint64(image[pos+8:]),
			NameLen:    binary.LittleEndian.Uint64(image[pos+16:]),
			DataOffset: binary.LittleEndian.Uint64(image[pos+24:]),
			DataLen:    binary.LittleEndian.Uint64(image[pos+32:]),
		}

		err = validateField(image, rec.NameOffset, rec.NameLen)
		if err != nil {
			return nil, fmt.Errorf("entry %d: name: %w", idx, err)
		}

		err = validateField(image, rec.DataOffset, rec.DataLen)
		if err != nil {
			return nil, fmt.Errorf("entry %d: data: %w", idx, err)
		}

		records[idx] = rec
	}

	return records, nil
}

// Read parses the given image back into the entry list it was built from.
func Read(image []byte) ([]Entry, error) {
	records, err := Records(image)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(records))
	for idx, rec := range records {
		entries[idx] = Entry{
			Kind: rec.Kind,
			Name: rec.Name(image),
			Data: rec.Data(image),
		}
	}

	return entries, nil
}

func validateField(image []byte, offset, length uint64) error {
	if offset%payloadAlign != 0 {
		return fmt.Errorf("%w: offset %d", ErrUnaligned, offset)
	}

	if offset > uint64(len(image)) || length > uint64(len(image))-offset {
		return fmt.Errorf("%w: offset %d length %d", ErrBounds, offset, length)
	}

	return nil
}
