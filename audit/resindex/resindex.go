package resindex

import (
	"strings"
)

// Entry is one id/text pair held by the index.
type Entry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Stats reports index size.
type Stats struct {
	Files   int `json:"files"`   // resource documents merged
	Entries int `json:"entries"` // distinct string ids
}

// Index is the merged string table of one resource directory. It is built
// once by Build and read-only afterwards; lookups are safe for concurrent
// use.
type Index struct {
	ids   []string          // lookup sequence; first insertion pins position
	byID  map[string]string // id -> display text, later documents overwrite
	files int
}

// newIndex returns an empty index ready for inserts.
func newIndex() *Index {
	return &Index{byID: make(map[string]string)}
}

// insert adds or overwrites one entry. The id keeps its first-insertion
// position in the lookup sequence.
func (ix *Index) insert(id, text string) {
	if _, seen := ix.byID[id]; !seen {
		ix.ids = append(ix.ids, id)
	}
	ix.byID[id] = text
}

// Get returns the text for an exact id.
func (ix *Index) Get(id string) (string, bool) {
	text, ok := ix.byID[id]
	return text, ok
}

// ResolveItem resolves a registry item name to its display text. The first
// id in the lookup sequence that ends with the item name wins; an item
// matching no id resolves to itself, so rendered rules always carry a
// description.
func (ix *Index) ResolveItem(item string) string {
	for _, id := range ix.ids {
		if strings.HasSuffix(id, item) {
			return ix.byID[id]
		}
	}
	return item
}

// Len returns the number of distinct ids.
func (ix *Index) Len() int {
	return len(ix.byID)
}

// Stats returns index statistics.
func (ix *Index) Stats() Stats {
	return Stats{Files: ix.files, Entries: len(ix.byID)}
}

// Entries returns a copy of the table in lookup-sequence order.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, 0, len(ix.ids))
	for _, id := range ix.ids {
		out = append(out, Entry{ID: id, Text: ix.byID[id]})
	}
	return out
}
