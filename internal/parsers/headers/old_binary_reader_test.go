package headers

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cpio/internal/testutil"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// createValidOldBinaryData returns a hand-assembled big-endian entry named
// "a" holding "x", followed by the marker bytes "NEXT".
func createValidOldBinaryData() []byte {
	data := []byte{
		0x71, 0xc7, // magic
		0x00, 0x07, // dev
		0x00, 0x01, // ino
		0x81, 0xa4, // mode 0100644
		0x03, 0xe8, // uid 1000
		0x03, 0xe9, // gid 1001
		0x00, 0x01, // nlink
		0x00, 0x00, // rdev
		0x00, 0x01, 0x00, 0x02, // mtime 0x00010002
		0x00, 0x02, // namesize
		0x00, 0x00, 0x00, 0x01, // filesize
		'a', 0x00, // name, even so no pad
		'x', 0x00, // content plus pad
	}
	return append(data, "NEXT"...)
}

func TestOldBinaryDecoderHandAssembled(t *testing.T) {
	entry, rest, err := NewOldBinaryDecoder().Decode(createValidOldBinaryData())
	require.NoError(t, err)

	assert.Equal(t, types.FormatBinaryBigEndian, entry.Format())
	assert.Equal(t, "a", entry.Name())
	assert.Equal(t, []byte("x"), entry.File())
	assert.Equal(t, uint32(1), entry.Ino())
	assert.Equal(t, types.Mode(0o100644), entry.Mode())
	assert.Equal(t, uint32(1000), entry.UID())
	assert.Equal(t, uint32(1001), entry.GID())
	assert.Equal(t, uint32(1), entry.NLink())
	assert.Equal(t, uint64(0x00010002), entry.MTime())
	assert.Equal(t, "NEXT", string(rest))

	dev, ok := entry.Dev()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), dev)

	_, ok = entry.DevMajor()
	assert.False(t, ok)
	_, ok = entry.RDevMinor()
	assert.False(t, ok)
}

func TestOldBinaryDecoderByteOrder(t *testing.T) {
	file := testutil.File{
		Name:    "skills/derich",
		Mode:    0o100644,
		Ino:     48825,
		UID:     1000,
		GID:     1000,
		NLink:   2,
		Dev:     2050,
		MTime:   1629615520,
		Content: []byte("King\n"),
	}

	tests := []struct {
		name   string
		enc    testutil.Encoder
		format types.Format
	}{
		{name: "big endian", enc: testutil.BinaryBigEndian, format: types.FormatBinaryBigEndian},
		{name: "little endian", enc: testutil.BinaryLittleEndian, format: types.FormatBinaryLittleEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, rest, err := NewOldBinaryDecoder().Decode(tt.enc(nil, file))
			require.NoError(t, err)

			assert.Equal(t, tt.format, entry.Format())
			assert.Equal(t, file.Name, entry.Name())
			assert.Equal(t, file.Content, entry.File())
			assert.Equal(t, file.Ino, entry.Ino())
			assert.Equal(t, file.MTime, entry.MTime())
			assert.True(t, entry.Mode().IsRegular())
			assert.Empty(t, rest)

			dev, ok := entry.Dev()
			assert.True(t, ok)
			assert.Equal(t, uint32(2050), dev)
		})
	}
}

func TestOldBinaryDecoderPadding(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		encoded int
	}{
		{name: "odd namesize even content", file: "ab", content: "xy", encoded: 26 + 4 + 2},
		{name: "even namesize odd content", file: "a", content: "xyz", encoded: 26 + 2 + 4},
		{name: "odd namesize odd content", file: "abc", content: "x", encoded: 26 + 4 + 2},
		{name: "empty content", file: "dir", content: "", encoded: 26 + 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testutil.BinaryLittleEndian(nil, testutil.File{Name: tt.file, Content: []byte(tt.content)})
			require.Len(t, data, tt.encoded)

			data = append(data, 0x01)
			entry, rest, err := NewOldBinaryDecoder().Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.file, entry.Name())
			assert.Equal(t, tt.content, string(entry.File()))
			assert.Equal(t, []byte{0x01}, rest)
		})
	}
}

func TestOldBinaryDecoderSplitFields(t *testing.T) {
	content := make([]byte, 0x10003)
	file := testutil.File{Name: "big", MTime: 0x7fff1234, Content: content}

	entry, rest, err := NewOldBinaryDecoder().Decode(testutil.BinaryBigEndian(nil, file))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7fff1234), entry.MTime())
	assert.Len(t, entry.File(), 0x10003)
	assert.Empty(t, rest)
}

func TestOldBinaryDecoderErrors(t *testing.T) {
	valid := createValidOldBinaryData()

	zeroName := append([]byte(nil), valid...)
	binary.BigEndian.PutUint16(zeroName[20:22], 0)

	badName := append([]byte(nil), valid...)
	binary.BigEndian.PutUint16(badName[20:22], 3)
	badName[26], badName[27] = 0xff, 0xfe

	tests := []struct {
		name        string
		data        []byte
		expectError error
	}{
		{name: "empty", data: nil, expectError: types.ErrTruncated},
		{name: "single magic byte", data: []byte{0x71}, expectError: types.ErrTruncated},
		{name: "single little endian magic byte", data: []byte{0xc7}, expectError: types.ErrTruncated},
		{name: "single foreign byte", data: []byte{'0'}, expectError: types.ErrBadMagic},
		{name: "ascii magic", data: []byte("070707000000"), expectError: types.ErrBadMagic},
		{name: "header truncated", data: valid[:20], expectError: types.ErrTruncated},
		{name: "name truncated", data: valid[:26], expectError: types.ErrTruncated},
		{name: "content truncated", data: valid[:28], expectError: types.ErrTruncated},
		{name: "zero namesize", data: zeroName, expectError: types.ErrEmptyName},
		{name: "invalid utf-8 name", data: badName, expectError: types.ErrInvalidText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rest, err := NewOldBinaryDecoder().Decode(tt.data)
			assert.ErrorIs(t, err, tt.expectError)
			assert.Nil(t, rest)
		})
	}
}

func TestOldBinaryDecoderMissingTrailingPad(t *testing.T) {
	// A final odd-sized entry without its pad byte still decodes.
	data := createValidOldBinaryData()[:29]

	entry, rest, err := NewOldBinaryDecoder().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "x", string(entry.File()))
	assert.Empty(t, rest)
}
