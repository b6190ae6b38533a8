// Package textenc normalizes the byte encodings seen in policy exports and
// resource documents into UTF-8.
//
// Group Policy tooling on Windows writes UTF-16LE with a BOM; files that pass
// through other tools arrive as UTF-8 (with or without BOM) or in the local
// ANSI code page, typically Windows-1252. Decode sniffs the BOM first and
// falls back to a validity check, so downstream parsers only ever see UTF-8.
package textenc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/auditkit/pkg/types"
)

// Byte order marks recognized on input.
var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// Encoding names accepted by Decode. Matching is case-insensitive.
const (
	// EncodingAuto sniffs the BOM and falls back to UTF-8 validity checking.
	EncodingAuto = ""

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingANSI is the identifier for the Windows-1252 code page
	EncodingANSI = "WINDOWS-1252"
)

// utf16CodeUnitSize is the size of a UTF-16 code unit in bytes
const utf16CodeUnitSize = 2

// Decode converts raw input bytes to UTF-8. A BOM always wins over the
// requested encoding; without one, enc selects the decoder, and the empty
// string auto-detects (valid UTF-8 passes through untouched, anything else is
// treated as Windows-1252).
func Decode(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return utf16LEToBytes(data[len(UTF16LEBOM):]), nil
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}

	switch strings.ToUpper(enc) {
	case EncodingAuto:
		if utf8.Valid(data) {
			return data, nil // No copy!
		}
		return decodeWindows1252(data)
	case EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return utf16LEToBytes(data), nil
	case EncodingANSI, "CP1252":
		return decodeWindows1252(data)
	default:
		return nil, fmt.Errorf("encoding %q: %w", enc, types.ErrUnsupportedEncoding)
	}
}

// DecodeString is Decode with a string result, for callers that feed a
// line scanner.
func DecodeString(data []byte, enc string) (string, error) {
	out, err := Decode(data, enc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// utf16LEToBytes converts UTF-16LE data to UTF-8 bytes. A trailing odd byte
// is dropped rather than rejected; truncated tails show up downstream as a
// truncated-input diagnostic, not a decode failure.
func utf16LEToBytes(data []byte) []byte {
	if len(data)%utf16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}
	words := make([]uint16, len(data)/utf16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = binary.LittleEndian.Uint16(data[i*utf16CodeUnitSize:])
	}
	return []byte(string(utf16.Decode(words)))
}

// decodeWindows1252 converts local ANSI code page bytes to UTF-8. Exports
// produced on non-Unicode toolchains typically arrive this way.
func decodeWindows1252(data []byte) ([]byte, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindEncoding, Msg: "decode windows-1252 input", Err: err}
	}
	return out, nil
}
