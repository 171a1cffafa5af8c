// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if command line help is requested.
	ErrHelp = flag.ErrHelp

	// ErrEmptyFilePath is returned if a file path argument is empty.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if an input file is not a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrReadBuildInfo is returned if build info can not be read from the
	// binary.
	ErrReadBuildInfo = errors.New("build info not available")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
