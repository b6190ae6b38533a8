//go:build !linux && !freebsd && !darwin && !windows

package outfile

import "os"

// syncFile falls back to the portable fsync wrapper.
func syncFile(f *os.File) error {
	return f.Sync()
}
