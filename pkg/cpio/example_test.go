package cpio_test

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/testutil"
	"github.com/deploymenttheory/go-cpio/pkg/cpio"
)

func exampleArchive() []byte {
	return testutil.Build(testutil.NewASCII,
		testutil.File{Name: "etc", Mode: 0o040755, NLink: 2},
		testutil.File{Name: "etc/hostname", Mode: 0o100644, NLink: 1, Content: []byte("box\n")},
		testutil.File{Name: "etc/localtime", Mode: 0o120777, NLink: 1, Content: []byte("/usr/share/zoneinfo/UTC")},
	)
}

func ExampleIterFiles() {
	for entry := range cpio.IterFiles(exampleArchive()) {
		fmt.Println(entry.Mode(), entry.Name(), entry.Size())
	}
	// Output:
	// drwxr-xr-x etc 0
	// -rw-r--r-- etc/hostname 4
	// lrwxrwxrwx etc/localtime 23
}

func ExampleReader() {
	data := exampleArchive()
	// Drop the end of the archive to simulate a short read.
	data = data[:len(data)-40]

	r := cpio.NewReader(data)
	for entry, ok := r.Next(); ok; entry, ok = r.Next() {
		fmt.Println(entry.Name())
	}
	err := r.Err()
	fmt.Println(errors.Is(err, cpio.ErrTruncated))
	// Output:
	// etc
	// etc/hostname
	// etc/localtime
	// true
}

func ExampleEntry_LinkTarget() {
	for entry := range cpio.IterFiles(exampleArchive()) {
		if target, ok := entry.LinkTarget(); ok {
			fmt.Printf("%s -> %s\n", entry.Name(), target)
		}
	}
	// Output:
	// etc/localtime -> /usr/share/zoneinfo/UTC
}
