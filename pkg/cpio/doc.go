// Package cpio decodes cpio archives held in memory.
//
// The decoder reads an immutable byte buffer and produces read-only entry
// views whose name and content slices alias that buffer. Nothing is copied
// and nothing is written to disk. Every entry's header encoding is detected
// from its magic:
//   - Old binary format, big- or little-endian (magic 070707 as a 16-bit word)
//   - Portable ASCII format, "odc" (magic "070707")
//   - New ASCII format, "newc" (magic "070701")
//   - New CRC format, "crc" (magic "070702"), with content checksum verification
//
// # Iterating
//
// IterFiles yields entries until the end-of-archive marker, the end of the
// buffer, or the first entry that fails to decode:
//
//	for entry := range cpio.IterFiles(data) {
//	    fmt.Println(entry.Name(), len(entry.File()))
//	}
//
// A failed entry and a clean end look the same to IterFiles. Use Reader when
// the difference matters:
//
//	r := cpio.NewReader(data)
//	for entry, ok := r.Next(); ok; entry, ok = r.Next() {
//	    ...
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// Entries must not be used after the buffer they were decoded from is
// modified or released.
package cpio
