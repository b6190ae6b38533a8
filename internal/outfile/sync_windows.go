//go:build windows

package outfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile performs file descriptor sync using FlushFileBuffers.
//
// On Windows, FlushFileBuffers ensures all file data and metadata is written
// to disk.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
