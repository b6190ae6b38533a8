package textenc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joshuapare/auditkit/pkg/types"
)

// utf16le encodes s as UTF-16LE, optionally prefixed with the BOM.
func utf16le(s string, withBOM bool) []byte {
	var buf bytes.Buffer
	if withBOM {
		buf.Write(UTF16LEBOM)
	}
	for _, r := range s {
		if r > 0xFFFF {
			r1 := 0xD800 + ((r - 0x10000) >> 10)
			r2 := 0xDC00 + ((r - 0x10000) & 0x3FF)
			buf.WriteByte(byte(r1))
			buf.WriteByte(byte(r1 >> 8))
			buf.WriteByte(byte(r2))
			buf.WriteByte(byte(r2 >> 8))
			continue
		}
		buf.WriteByte(byte(r))
		buf.WriteByte(byte(r >> 8))
	}
	return buf.Bytes()
}

func TestDecode_UTF16LEWithBOM(t *testing.T) {
	input := utf16le("Computer\r\nSoftware\\Policies", true)

	out, err := Decode(input, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "Computer\r\nSoftware\\Policies" {
		t.Errorf("decoded %q", out)
	}
}

func TestDecode_UTF8BOMStripped(t *testing.T) {
	input := append(append([]byte{}, UTF8BOM...), []byte("User")...)

	out, err := Decode(input, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "User" {
		t.Errorf("decoded %q, want %q", out, "User")
	}
}

func TestDecode_PlainUTF8Passthrough(t *testing.T) {
	input := []byte("Computer\nSoftware\\Policies\nSetting\nDWORD:1\n")

	out, err := Decode(input, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// Valid UTF-8 without a BOM must come back aliasing the input, not a copy.
	if &out[0] != &input[0] {
		t.Error("expected zero-copy passthrough for plain UTF-8")
	}
}

func TestDecode_Windows1252Fallback(t *testing.T) {
	// "Activé" in Windows-1252: é is 0xE9, which is invalid as UTF-8 here.
	input := []byte{'A', 'c', 't', 'i', 'v', 0xE9}

	out, err := Decode(input, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "Activé" {
		t.Errorf("decoded %q, want %q", out, "Activé")
	}
}

func TestDecode_ExplicitUTF16LEWithoutBOM(t *testing.T) {
	input := utf16le("Beállítás", false)

	out, err := Decode(input, "utf-16le")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "Beállítás" {
		t.Errorf("decoded %q", out)
	}
}

func TestDecode_OddLengthUTF16Tolerated(t *testing.T) {
	input := append(utf16le("AB", true), 0x41) // dangling single byte

	out, err := Decode(input, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "AB" {
		t.Errorf("decoded %q, want %q", out, "AB")
	}
}

func TestDecode_UnsupportedEncodingName(t *testing.T) {
	_, err := Decode([]byte("data"), "EBCDIC")
	if err == nil {
		t.Fatal("expected error for unsupported encoding name")
	}
	if !errors.Is(err, types.ErrUnsupportedEncoding) {
		t.Errorf("error %v should wrap ErrUnsupportedEncoding", err)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	out, err := Decode(nil, EncodingAuto)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("decoded %d bytes from empty input", len(out))
	}
}
