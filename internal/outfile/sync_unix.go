//go:build linux || freebsd

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile performs file descriptor sync.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees for a file
// whose size is already final.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
