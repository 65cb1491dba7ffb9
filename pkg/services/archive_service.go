package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gobwas/glob"

	"github.com/deploymenttheory/go-cpio/pkg/cpio"
)

var (
	// ErrEntryNotFound is returned by Find when no entry has the requested name
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidFilter is returned by List for a malformed filter
	ErrInvalidFilter = errors.New("invalid filter")
)

// Config tunes an ArchiveService
type Config struct {
	// MaxEntries is the List limit used when a Filter sets none; 0 means no limit
	MaxEntries int
}

// archiveService implements the ArchiveService interface
type archiveService struct {
	maxEntries int
}

// NewArchiveService creates a new archive service instance
func NewArchiveService(cfg Config) ArchiveService {
	return &archiveService{maxEntries: cfg.MaxEntries}
}

// Load reads the archive at path into memory
func (s *archiveService) Load(ctx context.Context, archivePath string) (Archive, error) {
	if err := ctx.Err(); err != nil {
		return Archive{}, err
	}

	stored, err := os.ReadFile(archivePath)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to read archive %s: %w", archivePath, err)
	}

	data, compression, err := decompress(stored)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to read archive %s: %w", archivePath, err)
	}

	return Archive{
		Path:        archivePath,
		Data:        data,
		Compression: compression,
		StoredSize:  len(stored),
	}, nil
}

// Summarize scans every entry of data. Decode failures are reported in
// Summary.Err; the returned error is only set when ctx ends the scan, and
// the summary is then empty.
func (s *archiveService) Summarize(ctx context.Context, data []byte) (Summary, error) {
	summary := Summary{
		Types:       make(map[string]int),
		Formats:     make(map[string]int),
		ArchiveSize: len(data),
	}

	groups := make(map[linkKey]int)

	r := cpio.NewReader(data)
	for entry, ok := r.Next(); ok; entry, ok = r.Next() {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		summary.Entries++
		summary.Types[entry.Mode().TypeName()]++
		summary.Formats[entry.Format().String()]++
		summary.ContentBytes += int64(entry.Size())

		larger := entry.Size() > summary.LargestSize
		linked := entry.NLink() > 1 && !entry.Mode().IsDir()
		if !larger && !linked {
			continue
		}

		// Name copies out of the buffer
		name := entry.Name()

		if larger {
			summary.LargestSize = entry.Size()
			summary.LargestEntry = name
		}

		if linked {
			key := linkKey{device: deviceString(entry), ino: entry.Ino()}
			if i, exists := groups[key]; exists {
				summary.HardLinks[i].Names = append(summary.HardLinks[i].Names, name)
			} else {
				groups[key] = len(summary.HardLinks)
				summary.HardLinks = append(summary.HardLinks, HardLinkGroup{
					Device: key.device,
					Ino:    key.ino,
					Names:  []string{name},
				})
			}
		}
	}

	// A single name with nlink > 1 has its other links outside the archive
	linked := summary.HardLinks[:0]
	for _, g := range summary.HardLinks {
		if len(g.Names) > 1 {
			linked = append(linked, g)
		}
	}
	summary.HardLinks = linked

	summary.EndOffset = r.Offset()
	summary.Err = r.Err()
	summary.Clean = summary.Err == nil
	return summary, nil
}

// Find returns the first entry named name
func (s *archiveService) Find(ctx context.Context, data []byte, name string) (EntryInfo, error) {
	r := cpio.NewReader(data)
	for {
		if err := ctx.Err(); err != nil {
			return EntryInfo{}, err
		}

		offset := r.Offset()
		entry, ok := r.Next()
		if !ok {
			break
		}
		if string(entry.NameBytes()) == name {
			return describe(r.Count()-1, offset, entry), nil
		}
	}

	if err := r.Err(); err != nil {
		return EntryInfo{}, fmt.Errorf("%w: %s: scan stopped early: %w", ErrEntryNotFound, name, err)
	}
	return EntryInfo{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

// List returns the entries matching filter, in archive order
func (s *archiveService) List(ctx context.Context, data []byte, filter Filter) (ListResult, error) {
	var pattern glob.Glob
	if filter.NamePattern != "" {
		var err error
		if pattern, err = glob.Compile(filter.NamePattern, '/'); err != nil {
			return ListResult{}, fmt.Errorf("%w: name pattern %q: %w", ErrInvalidFilter, filter.NamePattern, err)
		}
	}
	if filter.MinSize < 0 || filter.MaxSize < 0 {
		return ListResult{}, fmt.Errorf("%w: negative size bound", ErrInvalidFilter)
	}
	if filter.MaxSize > 0 && filter.MinSize > filter.MaxSize {
		return ListResult{}, fmt.Errorf("%w: min size %d exceeds max size %d", ErrInvalidFilter, filter.MinSize, filter.MaxSize)
	}
	if filter.Limit < 0 {
		return ListResult{}, fmt.Errorf("%w: negative limit %d", ErrInvalidFilter, filter.Limit)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = s.maxEntries
	}

	result := ListResult{Entries: []EntryInfo{}}

	r := cpio.NewReader(data)
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		offset := r.Offset()
		entry, ok := r.Next()
		if !ok {
			break
		}
		result.Scanned++

		if !filter.matches(entry, pattern) {
			continue
		}
		if limit > 0 && len(result.Entries) == limit {
			result.Limited = true
			break
		}
		result.Entries = append(result.Entries, describe(r.Count()-1, offset, entry))
	}

	result.EndOffset = r.Offset()
	result.Err = r.Err()
	return result, nil
}

func (f Filter) matches(entry cpio.Entry, pattern glob.Glob) bool {
	if f.Type != "" && entry.Mode().TypeName() != f.Type {
		return false
	}
	if entry.Size() < f.MinSize || (f.MaxSize > 0 && entry.Size() > f.MaxSize) {
		return false
	}
	return pattern == nil || pattern.Match(entry.Name())
}

type linkKey struct {
	device string
	ino    uint32
}

func describe(index, offset int, entry cpio.Entry) EntryInfo {
	info := EntryInfo{
		Index:    index,
		Offset:   offset,
		Name:     entry.Name(),
		Type:     entry.Mode().TypeName(),
		Mode:     entry.Mode().String(),
		Perm:     uint32(entry.Mode().Perm()),
		Size:     entry.Size(),
		UID:      entry.UID(),
		GID:      entry.GID(),
		NLink:    entry.NLink(),
		Ino:      entry.Ino(),
		Device:   deviceString(entry),
		Modified: entry.ModTime(),
		Format:   entry.Format().String(),
	}

	if entry.Mode().IsCharDevice() || entry.Mode().IsBlockDevice() {
		info.RDevice = rdeviceString(entry)
	}
	if target, ok := entry.LinkTarget(); ok {
		info.LinkTarget = target
	}
	return info
}

func deviceString(entry cpio.Entry) string {
	if major, ok := entry.DevMajor(); ok {
		minor, _ := entry.DevMinor()
		return fmt.Sprintf("%d:%d", major, minor)
	}
	dev, _ := entry.Dev()
	return fmt.Sprintf("%d", dev)
}

func rdeviceString(entry cpio.Entry) string {
	if major, ok := entry.RDevMajor(); ok {
		minor, _ := entry.RDevMinor()
		return fmt.Sprintf("%d:%d", major, minor)
	}
	rdev, _ := entry.RDev()
	return fmt.Sprintf("%d", rdev)
}
