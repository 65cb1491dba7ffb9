package types

import (
	"io/fs"
	"strings"
)

// File Modes
// The values stored in the c_mode field of every cpio header.
// These follow POSIX file type conventions.
// Reference: cpio(5), "Old Binary Format"

// Mode represents the permission and file type bits of an archive entry.
// Every 32-bit value is a valid Mode; bits outside the named constants are
// carried through untouched.
type Mode uint32

const (
	// ModeUserExecutable is the owner execute bit.
	ModeUserExecutable Mode = 0o000100
	// ModeUserWritable is the owner write bit.
	ModeUserWritable Mode = 0o000200
	// ModeUserReadable is the owner read bit.
	ModeUserReadable Mode = 0o000400

	// ModeGroupExecutable is the group execute bit.
	ModeGroupExecutable Mode = 0o000010
	// ModeGroupWritable is the group write bit.
	ModeGroupWritable Mode = 0o000020
	// ModeGroupReadable is the group read bit.
	ModeGroupReadable Mode = 0o000040

	// ModeWorldExecutable is the execute bit for everyone else.
	ModeWorldExecutable Mode = 0o000001
	// ModeWorldWritable is the write bit for everyone else.
	ModeWorldWritable Mode = 0o000002
	// ModeWorldReadable is the read bit for everyone else.
	ModeWorldReadable Mode = 0o000004

	// ModeSticky is the sticky bit.
	ModeSticky Mode = 0o001000
	// ModeSGID is the set-group-ID bit.
	ModeSGID Mode = 0o002000
	// ModeSUID is the set-user-ID bit.
	ModeSUID Mode = 0o004000

	// ModePerm masks the nine permission bits.
	ModePerm Mode = 0o000777
)

const (
	// ModeType is the bit mask for the file type field.
	// AND this with a mode value to extract just the file type bits.
	ModeType Mode = 0o170000

	// ModeFIFO marks a named pipe.
	ModeFIFO Mode = 0o010000

	// ModeCharDevice marks a character special device.
	ModeCharDevice Mode = 0o020000

	// ModeDir marks a directory.
	ModeDir Mode = 0o040000

	// ModeBlockDevice marks a block special device.
	ModeBlockDevice Mode = 0o060000

	// ModeRegular marks a regular file.
	ModeRegular Mode = 0o100000

	// ModeSymlink marks a symbolic link. The entry content holds the link target.
	ModeSymlink Mode = 0o120000

	// ModeSocket marks a socket.
	ModeSocket Mode = 0o140000
)

// ModeFromBits builds a Mode from raw header bits. It never fails.
func ModeFromBits(bits uint32) Mode {
	return Mode(bits)
}

// Bits returns the raw header value.
func (m Mode) Bits() uint32 {
	return uint32(m)
}

// Contains reports whether every bit of flags is set in m.
//
// Type values overlap as bit sets (ModeSymlink contains ModeRegular), so use
// Type or the Is helpers to ask what kind of file an entry is.
func (m Mode) Contains(flags Mode) bool {
	return m&flags == flags
}

// Type returns only the file type field.
func (m Mode) Type() Mode {
	return m & ModeType
}

// Perm returns the permission bits including sticky, SGID and SUID.
func (m Mode) Perm() Mode {
	return m & 0o7777
}

func (m Mode) IsDir() bool         { return m.Type() == ModeDir }
func (m Mode) IsRegular() bool     { return m.Type() == ModeRegular }
func (m Mode) IsSymlink() bool     { return m.Type() == ModeSymlink }
func (m Mode) IsFIFO() bool        { return m.Type() == ModeFIFO }
func (m Mode) IsSocket() bool      { return m.Type() == ModeSocket }
func (m Mode) IsCharDevice() bool  { return m.Type() == ModeCharDevice }
func (m Mode) IsBlockDevice() bool { return m.Type() == ModeBlockDevice }

// TypeName returns a short lowercase name for the file type field.
func (m Mode) TypeName() string {
	switch m.Type() {
	case ModeFIFO:
		return "fifo"
	case ModeCharDevice:
		return "chardev"
	case ModeDir:
		return "dir"
	case ModeBlockDevice:
		return "blockdev"
	case ModeRegular:
		return "file"
	case ModeSymlink:
		return "symlink"
	case ModeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// FileMode converts m to the standard library representation.
func (m Mode) FileMode() fs.FileMode {
	fm := fs.FileMode(m & ModePerm)

	switch m.Type() {
	case ModeFIFO:
		fm |= fs.ModeNamedPipe
	case ModeCharDevice:
		fm |= fs.ModeDevice | fs.ModeCharDevice
	case ModeDir:
		fm |= fs.ModeDir
	case ModeBlockDevice:
		fm |= fs.ModeDevice
	case ModeSymlink:
		fm |= fs.ModeSymlink
	case ModeSocket:
		fm |= fs.ModeSocket
	case ModeRegular:
	default:
		fm |= fs.ModeIrregular
	}

	if m.Contains(ModeSUID) {
		fm |= fs.ModeSetuid
	}
	if m.Contains(ModeSGID) {
		fm |= fs.ModeSetgid
	}
	if m.Contains(ModeSticky) {
		fm |= fs.ModeSticky
	}

	return fm
}

// String renders m the way ls -l does, e.g. "drwxr-xr-x".
func (m Mode) String() string {
	var sb strings.Builder
	sb.Grow(10)

	switch m.Type() {
	case ModeDir:
		sb.WriteByte('d')
	case ModeSymlink:
		sb.WriteByte('l')
	case ModeCharDevice:
		sb.WriteByte('c')
	case ModeBlockDevice:
		sb.WriteByte('b')
	case ModeFIFO:
		sb.WriteByte('p')
	case ModeSocket:
		sb.WriteByte('s')
	case ModeRegular:
		sb.WriteByte('-')
	default:
		sb.WriteByte('?')
	}

	triplets := []struct {
		r, w, x Mode
		special Mode
		set     byte
	}{
		{ModeUserReadable, ModeUserWritable, ModeUserExecutable, ModeSUID, 's'},
		{ModeGroupReadable, ModeGroupWritable, ModeGroupExecutable, ModeSGID, 's'},
		{ModeWorldReadable, ModeWorldWritable, ModeWorldExecutable, ModeSticky, 't'},
	}

	for _, t := range triplets {
		sb.WriteByte(flagChar(m, t.r, 'r'))
		sb.WriteByte(flagChar(m, t.w, 'w'))

		exec := m.Contains(t.x)
		special := m.Contains(t.special)
		switch {
		case exec && special:
			sb.WriteByte(t.set)
		case special:
			sb.WriteByte(t.set - 'a' + 'A')
		case exec:
			sb.WriteByte('x')
		default:
			sb.WriteByte('-')
		}
	}

	return sb.String()
}

func flagChar(m, flag Mode, c byte) byte {
	if m.Contains(flag) {
		return c
	}
	return '-'
}
