package list

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cpio/internal/testutil"
	"github.com/deploymenttheory/go-cpio/pkg/app"
	"github.com/deploymenttheory/go-cpio/pkg/cpio"
)

func newTestContext(t *testing.T) (*app.Context, *logtest.Hook) {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	ctx := app.NewContext()
	ctx.Log = logger
	ctx.Out = &bytes.Buffer{}
	ctx.Configure()
	return ctx, hook
}

func writeArchive(t *testing.T, data []byte) string {
	t.Helper()

	archivePath := filepath.Join(t.TempDir(), "test.cpio")
	require.NoError(t, os.WriteFile(archivePath, data, 0o644))
	return archivePath
}

func testFiles() []testutil.File {
	return []testutil.File{
		{Name: "etc", Mode: 0o040755, NLink: 2, MTime: 1700000000},
		{Name: "etc/motd", Mode: 0o100644, NLink: 1, MTime: 1700000000, Content: bytes.Repeat([]byte("m"), 2048)},
		{Name: "etc/issue", Mode: 0o100644, NLink: 1, MTime: 1700000000, Content: []byte("Welcome\n")},
		{Name: "bin/sh", Mode: 0o120777, NLink: 1, MTime: 1700000000, Content: []byte("busybox")},
	}
}

func TestHandle(t *testing.T) {
	archivePath := writeArchive(t, testutil.Build(testutil.NewASCII, testFiles()...))

	tests := []struct {
		name     string
		request  *Request
		wantErr  bool
		errCode  string
		validate func(*testing.T, *Response)
	}{
		{
			name:    "basic request",
			request: &Request{ArchivePath: archivePath},
			validate: func(t *testing.T, resp *Response) {
				assert.Equal(t, archivePath, resp.Archive)
				assert.Len(t, resp.Entries, 4)
				assert.Equal(t, 4, resp.Scanned)
				assert.False(t, resp.Truncated)
				assert.Nil(t, resp.Failure)
			},
		},
		{
			name:    "size filter",
			request: &Request{ArchivePath: archivePath, MinSize: "1KiB"},
			validate: func(t *testing.T, resp *Response) {
				require.Len(t, resp.Entries, 1)
				assert.Equal(t, "etc/motd", resp.Entries[0].Name)
			},
		},
		{
			name:    "type and pattern",
			request: &Request{ArchivePath: archivePath, Type: "file", NamePattern: "etc/i*"},
			validate: func(t *testing.T, resp *Response) {
				require.Len(t, resp.Entries, 1)
				assert.Equal(t, "etc/issue", resp.Entries[0].Name)
			},
		},
		{
			name:    "limit",
			request: &Request{ArchivePath: archivePath, Limit: 1},
			validate: func(t *testing.T, resp *Response) {
				assert.Len(t, resp.Entries, 1)
				assert.True(t, resp.Truncated)
			},
		},
		{
			name:    "invalid request",
			request: &Request{},
			wantErr: true,
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "missing archive",
			request: &Request{ArchivePath: filepath.Join(t.TempDir(), "absent.cpio")},
			wantErr: true,
			errCode: app.ErrCodeArchiveAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)

			resp, err := Handle(ctx, tt.request)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, app.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			if tt.validate != nil {
				tt.validate(t, resp)
			}
		})
	}
}

func TestHandle_DecodeFailure(t *testing.T) {
	data := testutil.Build(testutil.NewCRC, testFiles()...)
	// Corrupt the content of etc/issue so its checksum no longer matches
	idx := bytes.Index(data, []byte("Welcome"))
	require.Positive(t, idx)
	data[idx] = 'w'
	archivePath := writeArchive(t, data)

	t.Run("lenient", func(t *testing.T) {
		ctx, hook := newTestContext(t)

		resp, err := Handle(ctx, &Request{ArchivePath: archivePath})
		require.NoError(t, err)
		assert.Len(t, resp.Entries, 2)
		require.NotNil(t, resp.Failure)
		assert.Equal(t, 2, resp.Failure.Index)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, archivePath, entry.Data["archive"])
	})

	t.Run("strict", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		ctx.Strict = true

		resp, err := Handle(ctx, &Request{ArchivePath: archivePath})
		require.Error(t, err)
		assert.Equal(t, app.ErrCodeCorrupt, app.ErrorCode(err))
		assert.ErrorIs(t, err, cpio.ErrChecksumMismatch)
		require.NotNil(t, resp)
		assert.Len(t, resp.Entries, 2)
	})
}
