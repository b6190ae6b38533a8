// Package mmfile loads policy exports and resource documents for read-only
// parsing. On unix platforms the file is memory-mapped so large exports decode
// without a second copy; everywhere else the file is read whole.
package mmfile

import "os"

// noUnmap is the release callback for contents that were never mapped.
func noUnmap() error { return nil }

// readWhole is the portable fallback behind Map.
func readWhole(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noUnmap, err
	}
	return data, noUnmap, nil
}
