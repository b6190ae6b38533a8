//go:build windows

package mmfile

// Map reads the whole file; exports are small enough that mapping buys
// nothing over a plain read on this platform.
func Map(path string) ([]byte, func() error, error) {
	return readWhole(path)
}
