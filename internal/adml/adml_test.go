package adml

import (
	"errors"
	"testing"

	"github.com/joshuapare/auditkit/pkg/types"
)

const sampleDocument = `<?xml version="1.0" encoding="utf-8"?>
<policyDefinitionResources xmlns="http://schemas.microsoft.com/GroupPolicy/2006/07/PolicyDefinitions" revision="1.0" schemaVersion="1.0">
  <displayName>Internet Explorer</displayName>
  <description>Internet Explorer policy strings</description>
  <resources>
    <stringTable>
      <string id="IE_NoBrowserClose">Prevent closing the browser window</string>
      <string id="IE_Restrictions">Browser restrictions</string>
      <string id="SUPPORTED_IE11">At least Internet Explorer 11</string>
    </stringTable>
    <presentationTable>
      <presentation id="IE_NoBrowserClose"/>
    </presentationTable>
  </resources>
</policyDefinitionResources>
`

func TestParse_ExtractsStringTable(t *testing.T) {
	entries, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Entry{
		{ID: "IE_NoBrowserClose", Text: "Prevent closing the browser window"},
		{ID: "IE_Restrictions", Text: "Browser restrictions"},
		{ID: "SUPPORTED_IE11", Text: "At least Internet Explorer 11"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestParse_TrimsSurroundingWhitespace(t *testing.T) {
	doc := `<resources><stringTable><string id="A">
		padded text
	</string></stringTable></resources>`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "padded text" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParse_DecodesEntities(t *testing.T) {
	doc := `<resources><stringTable><string id="A">Search &amp; destroy &lt;policies&gt;</string></stringTable></resources>`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries[0].Text != "Search & destroy <policies>" {
		t.Errorf("Text = %q", entries[0].Text)
	}
}

func TestParse_IgnoresStringsOutsideTable(t *testing.T) {
	doc := `<resources>
  <string id="stray">not in a table</string>
  <stringTable><string id="A">kept</string></stringTable>
</resources>`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "A" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParse_NoStringTable(t *testing.T) {
	entries, err := Parse([]byte(`<resources><presentationTable/></resources>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestParse_MalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`<resources><stringTable><string id="A">unclosed`))
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	var typed *types.Error
	if !errors.As(err, &typed) || typed.Kind != types.ErrKindResourceParse {
		t.Errorf("error = %v, want ErrKindResourceParse", err)
	}
}

func TestParse_DeclaredUTF16PrologAfterNormalization(t *testing.T) {
	// Documents written by Windows tooling declare utf-16 in the prolog; by
	// the time they reach the parser the bytes are already UTF-8.
	doc := `<?xml version="1.0" encoding="utf-16"?>
<resources><stringTable><string id="A">ok</string></stringTable></resources>`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "ok" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParse_DuplicateIDsKeptInOrder(t *testing.T) {
	doc := `<resources><stringTable>
<string id="A">first</string>
<string id="A">second</string>
</stringTable></resources>`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want both duplicates", len(entries))
	}
	if entries[0].Text != "first" || entries[1].Text != "second" {
		t.Errorf("entries = %+v", entries)
	}
}
