// Package outfile writes audit destinations with create-exclusive semantics
// and a durable commit.
//
// The converter never overwrites silently and never retries a failed write:
// the caller decides up front whether an existing destination may be
// replaced, and a failed run discards its partial output instead of leaving
// a half-rendered document behind for a scanner to pick up.
package outfile

import (
	"fmt"
	"os"

	"github.com/joshuapare/auditkit/pkg/types"
)

// DestFileMode is the permission set for created destinations.
const DestFileMode = 0o644

// File is a destination in the process of being written.
type File struct {
	f         *os.File
	path      string
	committed bool
}

// Create opens the destination for writing. When overwrite is false the call
// fails with ErrDestinationExists if the file is already present; deciding
// whether replacement is acceptable (prompting, a --force flag) is the
// caller's job, not this package's.
func Create(path string, overwrite bool) (*File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, DestFileMode)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%s: %w", path, types.ErrDestinationExists)
		}
		return nil, &types.Error{Kind: types.ErrKindWrite, Msg: fmt.Sprintf("create destination %s", path), Err: err}
	}
	return &File{f: f, path: path}, nil
}

// Write implements io.Writer.
func (d *File) Write(p []byte) (int, error) {
	n, err := d.f.Write(p)
	if err != nil {
		return n, &types.Error{Kind: types.ErrKindWrite, Msg: fmt.Sprintf("write destination %s", d.path), Err: err}
	}
	return n, nil
}

// Path returns the destination path.
func (d *File) Path() string { return d.path }

// Commit flushes the destination to stable storage and closes it.
func (d *File) Commit() error {
	if err := syncFile(d.f); err != nil {
		d.f.Close()
		return &types.Error{Kind: types.ErrKindWrite, Msg: fmt.Sprintf("sync destination %s", d.path), Err: err}
	}
	if err := d.f.Close(); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: fmt.Sprintf("close destination %s", d.path), Err: err}
	}
	d.committed = true
	return nil
}

// Discard closes and removes a partially written destination. After a
// successful Commit it is a no-op, so callers can leave it in a defer.
func (d *File) Discard() error {
	if d.committed {
		return nil
	}
	d.f.Close()
	if err := os.Remove(d.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
