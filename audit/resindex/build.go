package resindex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/auditkit/internal/adml"
	"github.com/joshuapare/auditkit/internal/textenc"
	"github.com/joshuapare/auditkit/pkg/types"
)

// DefaultExtension selects the standard localized resource documents.
const DefaultExtension = ".adml"

// Options controls directory scanning.
type Options struct {
	// Extension filters directory entries. Matching is case-insensitive,
	// since Windows tooling ships .ADML and .adml interchangeably.
	Extension string

	// Encoding forces the document encoding. Empty auto-detects (BOM, then
	// UTF-8 validity, then Windows-1252).
	Encoding string
}

// DefaultOptions returns the standard scanning options.
func DefaultOptions() Options {
	return Options{Extension: DefaultExtension}
}

// Build merges every matching resource document under dir into an index.
// A missing or empty directory and any unparsable document are fatal: a
// partial index would silently degrade every downstream description lookup.
func Build(dir string, opts Options) (*Index, error) {
	names, err := listResources(dir, opts)
	if err != nil {
		return nil, err
	}

	ix := newIndex()
	for _, name := range names {
		entries, err := loadDocument(filepath.Join(dir, name), opts.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for _, e := range entries {
			ix.insert(e.ID, e.Text)
		}
		ix.files++
	}
	return ix, nil
}

// FileInfo describes one resource document found by Scan.
type FileInfo struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
}

// Scan parses each matching document under dir individually, without
// merging. It shares Build's failure semantics, so a directory that Scan
// accepts will also index cleanly.
func Scan(dir string, opts Options) ([]FileInfo, error) {
	names, err := listResources(dir, opts)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(names))
	for _, name := range names {
		entries, err := loadDocument(filepath.Join(dir, name), opts.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		infos = append(infos, FileInfo{Name: name, Entries: len(entries)})
	}
	return infos, nil
}

// listResources returns the matching file names under dir in sorted order.
// os.ReadDir sorts by name, which pins the merge order.
func listResources(dir string, opts Options) ([]string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", dir, types.ErrMissingDirectory)
		}
		return nil, &types.Error{Kind: types.ErrKindMissingDir, Msg: fmt.Sprintf("read resource directory %s", dir), Err: err}
	}

	var names []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(de.Name()), ext) {
			names = append(names, de.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, types.ErrNoResourceFiles)
	}
	return names, nil
}

// loadDocument reads, decodes, and parses one resource document.
func loadDocument(path string, encoding string) ([]adml.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindResourceParse, Msg: "read resource document", Err: err}
	}
	decoded, err := textenc.Decode(data, encoding)
	if err != nil {
		return nil, err
	}
	return adml.Parse(decoded)
}
