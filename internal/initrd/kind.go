// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

import "fmt"

// EntryKind defines the role of an [Entry] in the image.
type EntryKind int

const (
	// KindAnyFile is an opaque file without a special role.
	KindAnyFile EntryKind = iota

	// KindEarlyInit is the first executable spawned by the kernel. It is
	// responsible for mounting the root filesystem and spawning the init
	// process.
	KindEarlyInit

	// KindPartList is the file read by early-init that describes which
	// filesystem drivers to use for which partitions and where to mount
	// them.
	KindPartList

	// KindFsServer is the filesystem server that filesystem drivers
	// connect to.
	KindFsServer

	// KindAhciServer is the AHCI server that allows filesystem drivers to
	// communicate with drives.
	KindAhciServer
)

// String returns a human readable name of the [EntryKind].
func (k EntryKind) String() string {
	switch k {
	case KindAnyFile:
		return "file"
	case KindEarlyInit:
		return "early-init"
	case KindPartList:
		return "part-list"
	case KindFsServer:
		return "fs-server"
	case KindAhciServer:
		return "ahci-server"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// kindFromWire maps the 64 bit wire tag of an entry record back to the
// [EntryKind]. It returns [ErrUnknownKind] for tags outside the known set.
func kindFromWire(value uint64) (EntryKind, error) {
	if value > uint64(KindAhciServer) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, value)
	}

	return EntryKind(value), nil
}
