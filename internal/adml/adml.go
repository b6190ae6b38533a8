// Package adml extracts string-table entries from localized policy
// definition resource documents.
//
// Only the <stringTable> section matters for description lookups; the rest of
// a resource document (presentation tables, metadata) is walked past without
// interpretation. Namespaces are ignored on purpose: documents in the wild
// carry several schema revisions, and the element local names are stable
// across all of them.
package adml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/joshuapare/auditkit/pkg/types"
)

// Element and attribute local names recognized in resource documents.
const (
	stringTableElement = "stringTable"
	stringElement      = "string"
)

// Entry is one id/text pair from a resource string table.
type Entry struct {
	ID   string
	Text string
}

// stringEntry is the decode target for one <string> element.
type stringEntry struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// Parse extracts every string-table entry from one resource document, in
// document order. Input must already be UTF-8; callers normalize encodings
// first. Any well-formedness failure is a resource parse error, which aborts
// the caller's whole index build.
func Parse(data []byte) ([]Entry, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Encodings were normalized before parsing; accept whatever the prolog
	// declares without reinterpreting the bytes.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var entries []Entry
	inTable := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindResourceParse, Msg: "parse resource document", Err: err}
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case stringTableElement:
				inTable = true
			case stringElement:
				if !inTable {
					continue
				}
				var se stringEntry
				if err := dec.DecodeElement(&se, &el); err != nil {
					return nil, &types.Error{Kind: types.ErrKindResourceParse, Msg: "decode string-table entry", Err: err}
				}
				entries = append(entries, Entry{ID: se.ID, Text: strings.TrimSpace(se.Text)})
			}
		case xml.EndElement:
			if el.Name.Local == stringTableElement {
				inTable = false
			}
		}
	}
	return entries, nil
}
