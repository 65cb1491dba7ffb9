package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cpio/pkg/services"
)

func TestFormatTree(t *testing.T) {
	response := &Response{
		Archive: "initrd.cpio",
		Entries: []services.EntryInfo{
			{Name: ".", Type: "dir"},
			{Name: "./etc", Type: "dir"},
			{Name: "./etc/hosts", Type: "file"},
			{Name: "usr/lib/libc.so.6", Type: "file"},
			{Name: "usr/lib/libc.so", Type: "symlink", LinkTarget: "libc.so.6"},
			{Name: "usr", Type: "dir"},
			{Name: "init", Type: "file"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatTree(&buf, response))
	output := buf.String()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, "initrd.cpio", lines[0])
	// root, etc, hosts, usr, lib, libc.so.6, libc.so, init
	assert.Len(t, lines, 8)

	assert.Contains(t, output, "── etc")
	assert.Contains(t, output, "── hosts")
	assert.Contains(t, output, "── libc.so -> libc.so.6")
	assert.Contains(t, output, "── init")
	assert.Equal(t, 1, strings.Count(output, "── usr"))
	assert.Equal(t, 1, strings.Count(output, "── lib\n"))
	assert.NotContains(t, output, "./")
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{".", ""},
		{"./", ""},
		{"./etc", "etc"},
		{"/etc/", "etc"},
		{".//etc", "etc"},
		{"etc/hosts", "etc/hosts"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanName(tt.in), tt.in)
	}
}
