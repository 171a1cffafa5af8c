// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyEntries is returned if the number of entries does not fit
	// into the 64 bit count field of the image header.
	ErrTooManyEntries = errors.New("too many entries for the image header")

	// ErrBadMagic is returned if an image does not start with [Magic].
	ErrBadMagic = errors.New("bad magic value")

	// ErrTruncated is returned if an image is too short for the entry
	// count its header declares.
	ErrTruncated = errors.New("image is truncated")

	// ErrBounds is returned if an entry record points outside the image.
	ErrBounds = errors.New("record points outside the image")

	// ErrUnaligned is returned if an offset field of an entry record is
	// not aligned to 8 bytes.
	ErrUnaligned = errors.New("offset is not aligned to 8 bytes")

	// ErrUnknownKind is returned if an entry record carries a type tag
	// outside the known set.
	ErrUnknownKind = errors.New("unknown entry kind")
)

// NameEncodingError reports an entry whose name is not valid UTF-8.
type NameEncodingError struct {
	// Index of the offending entry in the input list.
	Index int
}

func (e *NameEncodingError) Error() string {
	return fmt.Sprintf("entry %d: name is not valid UTF-8", e.Index)
}

func (e *NameEncodingError) Is(other error) bool {
	_, ok := other.(*NameEncodingError)
	return ok
}
