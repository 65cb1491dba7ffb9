package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cpio/internal/testutil"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

func createValidPortableASCIIData() []byte {
	return []byte("070707" +
		"000007" + // dev
		"000001" + // ino
		"100644" + // mode
		"001750" + // uid 1000
		"001751" + // gid 1001
		"000001" + // nlink
		"000000" + // rdev
		"00000000012" + // mtime
		"000002" + // namesize
		"00000000001" + // filesize
		"a\x00" +
		"x" +
		"070707")
}

func TestPortableASCIIDecoderHandAssembled(t *testing.T) {
	entry, rest, err := NewPortableASCIIDecoder().Decode(createValidPortableASCIIData())
	require.NoError(t, err)

	assert.Equal(t, types.FormatPortableASCII, entry.Format())
	assert.Equal(t, "a", entry.Name())
	assert.Equal(t, []byte("x"), entry.File())
	assert.Equal(t, types.Mode(0o100644), entry.Mode())
	assert.Equal(t, uint32(1000), entry.UID())
	assert.Equal(t, uint32(1001), entry.GID())
	assert.Equal(t, uint64(10), entry.MTime())
	assert.Equal(t, "070707", string(rest))

	dev, ok := entry.Dev()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), dev)

	rdev, ok := entry.RDev()
	assert.True(t, ok)
	assert.Zero(t, rdev)

	_, ok = entry.RDevMajor()
	assert.False(t, ok)
}

func TestPortableASCIIDecoderNoPadding(t *testing.T) {
	files := []testutil.File{
		{Name: "a", Content: []byte("x")},
		{Name: "bc", Content: []byte("yz")},
		{Name: "def", Content: []byte("w")},
	}
	data := testutil.BuildWithoutTrailer(testutil.PortableASCII, files...)
	assert.Len(t, data, 3*types.PortableASCIIHeaderSize+2+1+3+2+4+1)

	rest := data
	for _, f := range files {
		var entry types.Entry
		var err error
		entry, rest, err = NewPortableASCIIDecoder().Decode(rest)
		require.NoError(t, err)
		assert.Equal(t, f.Name, entry.Name())
		assert.Equal(t, f.Content, entry.File())
	}
	assert.Empty(t, rest)
}

func TestPortableASCIIDecoderValues(t *testing.T) {
	file := testutil.File{
		Name:  "dev/tty0",
		Mode:  0o020620,
		Ino:   0o777777,
		UID:   0,
		GID:   5,
		NLink: 1,
		Dev:   2050,
		RDev:  0x0400,
		MTime: 0o77777777777,
	}

	entry, _, err := NewPortableASCIIDecoder().Decode(testutil.PortableASCII(nil, file))
	require.NoError(t, err)
	assert.True(t, entry.Mode().IsCharDevice())
	assert.Equal(t, uint32(0o777777), entry.Ino())
	assert.Equal(t, uint64(0o77777777777), entry.MTime())

	rdev, ok := entry.RDev()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0400), rdev)
}

func TestPortableASCIIDecoderErrors(t *testing.T) {
	valid := createValidPortableASCIIData()

	withField := func(offset int, text string) []byte {
		data := append([]byte(nil), valid...)
		copy(data[offset:], text)
		return data
	}

	tests := []struct {
		name        string
		data        []byte
		expectError error
	}{
		{name: "empty", data: nil, expectError: types.ErrTruncated},
		{name: "magic prefix only", data: []byte("0707"), expectError: types.ErrTruncated},
		{name: "newc magic", data: []byte("070701"), expectError: types.ErrBadMagic},
		{name: "binary magic", data: []byte{0xc7, 0x71, 0, 0, 0, 0}, expectError: types.ErrBadMagic},
		{name: "non-octal mode", data: withField(18, "100694"), expectError: types.ErrInvalidNumber},
		{name: "blank uid", data: withField(24, "      "), expectError: types.ErrInvalidNumber},
		{name: "zero namesize", data: withField(59, "000000"), expectError: types.ErrEmptyName},
		{name: "header truncated", data: valid[:40], expectError: types.ErrTruncated},
		{name: "name truncated", data: valid[:76], expectError: types.ErrTruncated},
		{name: "content truncated", data: valid[:78], expectError: types.ErrTruncated},
		{name: "invalid utf-8 name", data: withField(76, "\xff"), expectError: types.ErrInvalidText},
		{name: "oversized content", data: withField(65, "00000001000"), expectError: types.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rest, err := NewPortableASCIIDecoder().Decode(tt.data)
			assert.ErrorIs(t, err, tt.expectError)
			assert.Nil(t, rest)
		})
	}
}
