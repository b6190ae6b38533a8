//go:build darwin

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile performs file descriptor sync.
//
// macOS has no fdatasync; regular fsync is the portable choice. F_FULLFSYNC
// would also force the drive cache, but audit documents are regenerable and
// do not warrant that cost.
func syncFile(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
