package types

import (
	"bytes"
	"time"
)

// Entry is a read-only view of one decoded archive member.
//
// The byte slices returned by NameBytes and File alias the archive buffer
// and must be treated as immutable. An Entry is only valid while that buffer
// is.
type Entry struct {
	format Format

	dev      uint32
	devMajor uint32
	devMinor uint32

	ino   uint32
	mode  Mode
	uid   uint32
	gid   uint32
	nlink uint32

	rdev      uint32
	rdevMajor uint32
	rdevMinor uint32

	mtime uint64
	name  []byte
	file  []byte
}

// EntryHeader carries the numeric header fields a decoder hands to NewEntry.
// Which device fields are meaningful depends on Format.
type EntryHeader struct {
	Format    Format
	Dev       uint32
	DevMajor  uint32
	DevMinor  uint32
	Ino       uint32
	Mode      Mode
	UID       uint32
	GID       uint32
	NLink     uint32
	RDev      uint32
	RDevMajor uint32
	RDevMinor uint32
	MTime     uint64
}

// NewEntry builds an Entry from decoded header fields and borrowed name and
// content slices. Device fields that the format does not carry are dropped.
func NewEntry(hdr EntryHeader, name, file []byte) Entry {
	e := Entry{
		format: hdr.Format,
		ino:    hdr.Ino,
		mode:   hdr.Mode,
		uid:    hdr.UID,
		gid:    hdr.GID,
		nlink:  hdr.NLink,
		mtime:  hdr.MTime,
		name:   name,
		file:   file,
	}

	if hdr.Format.HasSplitDevices() {
		e.devMajor, e.devMinor = hdr.DevMajor, hdr.DevMinor
		e.rdevMajor, e.rdevMinor = hdr.RDevMajor, hdr.RDevMinor
	} else {
		e.dev = hdr.Dev
		e.rdev = hdr.RDev
	}

	return e
}

// Format returns the header encoding the entry was decoded from.
func (e Entry) Format() Format {
	return e.format
}

// Dev returns the number of the device that contained the file.
//
// The second result is false for the newc and crc formats; use DevMajor and
// DevMinor for those.
func (e Entry) Dev() (uint32, bool) {
	return e.dev, !e.format.HasSplitDevices()
}

// DevMajor returns the major number of the device that contained the file.
//
// The second result is false for the binary and odc formats; use Dev for those.
func (e Entry) DevMajor() (uint32, bool) {
	return e.devMajor, e.format.HasSplitDevices()
}

// DevMinor returns the minor number of the device that contained the file.
//
// The second result is false for the binary and odc formats; use Dev for those.
func (e Entry) DevMinor() (uint32, bool) {
	return e.devMinor, e.format.HasSplitDevices()
}

// Ino returns the inode number of the file.
func (e Entry) Ino() uint32 {
	return e.ino
}

// Mode returns the permission and file type bits.
func (e Entry) Mode() Mode {
	return e.mode
}

// UID returns the owner's user ID.
func (e Entry) UID() uint32 {
	return e.uid
}

// GID returns the owner's group ID.
func (e Entry) GID() uint32 {
	return e.gid
}

// NLink returns the number of links to the file.
func (e Entry) NLink() uint32 {
	return e.nlink
}

// RDev returns the device number of a block or character special file.
//
// The second result is false for the newc and crc formats; use RDevMajor and
// RDevMinor for those. For other file types the value carries no meaning.
func (e Entry) RDev() (uint32, bool) {
	return e.rdev, !e.format.HasSplitDevices()
}

// RDevMajor returns the major device number of a special file.
//
// The second result is false for the binary and odc formats; use RDev for those.
func (e Entry) RDevMajor() (uint32, bool) {
	return e.rdevMajor, e.format.HasSplitDevices()
}

// RDevMinor returns the minor device number of a special file.
//
// The second result is false for the binary and odc formats; use RDev for those.
func (e Entry) RDevMinor() (uint32, bool) {
	return e.rdevMinor, e.format.HasSplitDevices()
}

// MTime returns the modification time in seconds since the Unix epoch.
func (e Entry) MTime() uint64 {
	return e.mtime
}

// ModTime returns the modification time.
func (e Entry) ModTime() time.Time {
	return time.Unix(int64(e.mtime), 0)
}

// NameBytes returns the name bytes from the archive buffer, without the
// terminating NUL or any padding.
func (e Entry) NameBytes() []byte {
	return e.name
}

// Name returns the name as a string.
func (e Entry) Name() string {
	return string(e.name)
}

// File returns the content bytes from the archive buffer.
//
// For symbolic links this is the link target. For the newc and crc formats
// it is empty for every copy of a hard-linked file except the last one.
func (e Entry) File() []byte {
	return e.file
}

// Size returns the content length.
func (e Entry) Size() int {
	return len(e.file)
}

// LinkTarget returns the target of a symbolic link.
func (e Entry) LinkTarget() (string, bool) {
	if !e.mode.IsSymlink() {
		return "", false
	}
	return string(e.file), true
}

// IsTrailer reports whether e is the end-of-archive marker.
func (e Entry) IsTrailer() bool {
	return bytes.Equal(e.name, trailerName)
}

var trailerName = []byte(TrailerName)
