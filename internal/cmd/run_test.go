// SPDX-FileCopyrightText: 2026 The gen-initrd authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/Athryx/gen-initrd/internal/cmd"
	"github.com/Athryx/gen-initrd/internal/initrd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// executableELF builds a header only ELF executable, just enough to pass the
// input validation.
func executableELF() []byte {
	hdr := make([]byte, 64)

	copy(hdr, elf.ELFMAG)
	hdr[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	hdr[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	binary.LittleEndian.PutUint16(hdr[16:], uint16(elf.ET_EXEC))
	binary.LittleEndian.PutUint16(hdr[18:], uint16(elf.EM_X86_64))
	binary.LittleEndian.PutUint32(hdr[20:], uint32(elf.EV_CURRENT))

	return hdr
}

type testInputs struct {
	earlyInit  string
	partList   string
	fsServer   string
	ahciServer string
	output     string
}

func writeTestInputs(t *testing.T) testInputs {
	t.Helper()

	dir := t.TempDir()

	inputs := testInputs{
		earlyInit:  filepath.Join(dir, "early-init"),
		partList:   filepath.Join(dir, "part-list"),
		fsServer:   filepath.Join(dir, "fs-server"),
		ahciServer: filepath.Join(dir, "ahci-server"),
		output:     filepath.Join(dir, "initrd.bin"),
	}

	elfFile := executableELF()
	for _, path := range []string{
		inputs.earlyInit,
		inputs.fsServer,
		inputs.ahciServer,
	} {
		require.NoError(t, os.WriteFile(path, elfFile, 0o755))
	}

	partList := []byte("sda1 ext2 /\n")
	require.NoError(t, os.WriteFile(inputs.partList, partList, 0o644))

	return inputs
}

func runCmd(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	var stdOut, stdErr bytes.Buffer

	rc := cmd.Run(t.Context(), args, cmd.IO{
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdOut,
		Stderr: &stdErr,
	})

	return rc, stdOut.String(), stdErr.String()
}

func TestRunBuildsImage(t *testing.T) {
	inputs := writeTestInputs(t)

	extraFile := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(extraFile, []byte("extra"), 0o644))

	rc, _, stdErr := runCmd(t, []string{
		"-init", inputs.earlyInit,
		"-part-list", inputs.partList,
		"-fs", inputs.fsServer,
		"-ahci", inputs.ahciServer,
		"-output", inputs.output,
		extraFile,
	})
	require.Zero(t, rc, stdErr)

	image, err := os.ReadFile(inputs.output)
	require.NoError(t, err)

	entries, err := initrd.Read(image)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	expected := []struct {
		kind initrd.EntryKind
		name string
	}{
		{initrd.KindEarlyInit, "early-init"},
		{initrd.KindPartList, "part-list"},
		{initrd.KindFsServer, "fs-server"},
		{initrd.KindAhciServer, "ahci-server"},
		{initrd.KindAnyFile, "notes.txt"},
	}

	for idx, e := range expected {
		assert.Equal(t, e.kind, entries[idx].Kind)
		assert.Equal(t, e.name, entries[idx].Name)
	}

	assert.Equal(t, []byte("sda1 ext2 /\n"), entries[1].Data)
	assert.Equal(t, []byte("extra"), entries[4].Data)
}

func TestRunInspect(t *testing.T) {
	inputs := writeTestInputs(t)

	rc, _, stdErr := runCmd(t, []string{
		"-init", inputs.earlyInit,
		"-part-list", inputs.partList,
		"-fs", inputs.fsServer,
		"-ahci", inputs.ahciServer,
		"-output", inputs.output,
	})
	require.Zero(t, rc, stdErr)

	rc, stdOut, stdErr := runCmd(t, []string{"-inspect", inputs.output})
	require.Zero(t, rc, stdErr)

	assert.Contains(t, stdOut, "4 entries")
	assert.Contains(t, stdOut, "early-init")
	assert.Contains(t, stdOut, "part-list")
	assert.Contains(t, stdOut, "fs-server")
	assert.Contains(t, stdOut, "ahci-server")
}

func TestRunInvalidInputs(t *testing.T) {
	inputs := writeTestInputs(t)

	notELF := filepath.Join(t.TempDir(), "not-elf")
	require.NoError(t, os.WriteFile(notELF, []byte("#!/bin/sh\n"), 0o755))

	notExecutable := filepath.Join(t.TempDir(), "no-x-bit")
	require.NoError(t, os.WriteFile(notExecutable, executableELF(), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing required flags",
			args: []string{"-output", inputs.output},
		},
		{
			name: "early-init does not exist",
			args: []string{
				"-init", filepath.Join(t.TempDir(), "missing"),
				"-part-list", inputs.partList,
				"-fs", inputs.fsServer,
				"-ahci", inputs.ahciServer,
				"-output", inputs.output,
			},
		},
		{
			name: "early-init is not an ELF file",
			args: []string{
				"-init", notELF,
				"-part-list", inputs.partList,
				"-fs", inputs.fsServer,
				"-ahci", inputs.ahciServer,
				"-output", inputs.output,
			},
		},
		{
			name: "early-init is not executable",
			args: []string{
				"-init", notExecutable,
				"-part-list", inputs.partList,
				"-fs", inputs.fsServer,
				"-ahci", inputs.ahciServer,
				"-output", inputs.output,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, _, _ := runCmd(t, tt.args)
			assert.Equal(t, -1, rc)
		})
	}
}

func TestRunSkipELFCheck(t *testing.T) {
	inputs := writeTestInputs(t)

	script := filepath.Join(t.TempDir(), "init.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

	rc, _, stdErr := runCmd(t, []string{
		"-skip-elf-check",
		"-init", script,
		"-part-list", inputs.partList,
		"-fs", inputs.fsServer,
		"-ahci", inputs.ahciServer,
		"-output", inputs.output,
	})
	require.Zero(t, rc, stdErr)

	image, err := os.ReadFile(inputs.output)
	require.NoError(t, err)

	entries, err := initrd.Read(image)
	require.NoError(t, err)
	assert.Equal(t, "init.sh", entries[0].Name)
}
