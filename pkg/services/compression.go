package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression names reported in Archive.Compression
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DetectCompression names the compression wrapping data, judged by its
// leading magic bytes
func DetectCompression(data []byte) string {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// decompress unwraps a gzip or zstd stream. Data in any other form is
// returned unchanged.
func decompress(data []byte) ([]byte, string, error) {
	compression := DetectCompression(data)

	switch compression {
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, compression, fmt.Errorf("unable to open gzip stream: %w", err)
		}
		defer r.Close()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			return nil, compression, fmt.Errorf("gzip decompression error: %w", err)
		}
		return buf.Bytes(), compression, nil

	case CompressionZstd:
		r, err := zstd.NewReader(nil)
		if err != nil {
			return nil, compression, fmt.Errorf("unable to create zstd decoder: %w", err)
		}
		defer r.Close()

		out, err := r.DecodeAll(data, nil)
		if err != nil {
			return nil, compression, fmt.Errorf("zstd decompression error: %w", err)
		}
		return out, compression, nil
	}

	return data, compression, nil
}
