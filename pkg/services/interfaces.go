package services

import (
	"context"
	"time"
)

// Archive is an archive file loaded into memory
type Archive struct {
	Path string
	// Data is the decompressed archive
	Data        []byte
	Compression string
	StoredSize  int
}

// EntryInfo is a detached, serialisable description of one archive member
type EntryInfo struct {
	Index      int       `json:"index" yaml:"index"`
	Offset     int       `json:"offset" yaml:"offset"`
	Name       string    `json:"name" yaml:"name"`
	Type       string    `json:"type" yaml:"type"`
	Mode       string    `json:"mode" yaml:"mode"`
	Perm       uint32    `json:"perm" yaml:"perm"`
	Size       int       `json:"size" yaml:"size"`
	UID        uint32    `json:"uid" yaml:"uid"`
	GID        uint32    `json:"gid" yaml:"gid"`
	NLink      uint32    `json:"nlink" yaml:"nlink"`
	Ino        uint32    `json:"ino" yaml:"ino"`
	Device     string    `json:"device" yaml:"device"`
	RDevice    string    `json:"rdevice,omitempty" yaml:"rdevice,omitempty"`
	Modified   time.Time `json:"modified" yaml:"modified"`
	Format     string    `json:"format" yaml:"format"`
	LinkTarget string    `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}

// Filter selects entries for List. Zero values match everything.
type Filter struct {
	// NamePattern is a glob applied to the entry name. "*" stops at "/"
	// while "**" does not.
	NamePattern string
	// Type is an entry type name such as "file", "dir" or "symlink"
	Type        string
	// MinSize and MaxSize bound the content length; MaxSize 0 disables the upper bound
	MinSize     int
	MaxSize     int
	// Limit caps the number of matches; 0 uses the service default
	Limit       int
}

// ListResult holds the matches of a List call
type ListResult struct {
	Entries   []EntryInfo
	Scanned   int
	Limited   bool
	EndOffset int
	// Err is the decode error that stopped the scan, nil on a clean end
	Err       error
}

// HardLinkGroup lists the names that share one (device, inode) pair
type HardLinkGroup struct {
	Device string   `json:"device" yaml:"device"`
	Ino    uint32   `json:"ino" yaml:"ino"`
	Names  []string `json:"names" yaml:"names"`
}

// Summary describes a whole archive
type Summary struct {
	Entries      int             `json:"entries" yaml:"entries"`
	Types        map[string]int  `json:"types" yaml:"types"`
	Formats      map[string]int  `json:"formats" yaml:"formats"`
	ContentBytes int64           `json:"content_bytes" yaml:"content_bytes"`
	LargestEntry string          `json:"largest_entry,omitempty" yaml:"largest_entry,omitempty"`
	LargestSize  int             `json:"largest_size" yaml:"largest_size"`
	HardLinks    []HardLinkGroup `json:"hard_links,omitempty" yaml:"hard_links,omitempty"`
	EndOffset    int             `json:"end_offset" yaml:"end_offset"`
	ArchiveSize  int             `json:"archive_size" yaml:"archive_size"`
	Clean        bool            `json:"clean" yaml:"clean"`
	// Err is the decode error that stopped the scan, nil on a clean end
	Err          error           `json:"-" yaml:"-"`
}

// ArchiveService reads in-memory cpio archives
type ArchiveService interface {
	// Load reads the archive at path into memory, decompressing gzip and
	// zstd files
	Load(ctx context.Context, path string) (Archive, error)

	// Summarize scans every entry of data
	Summarize(ctx context.Context, data []byte) (Summary, error)

	// Find returns the first entry named name
	Find(ctx context.Context, data []byte, name string) (EntryInfo, error)

	// List returns the entries matching filter
	List(ctx context.Context, data []byte, filter Filter) (ListResult, error)
}
