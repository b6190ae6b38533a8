package acceptance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/auditkit/audit"
	"github.com/joshuapare/auditkit/audit/resindex"
)

// Sample resource document used across the acceptance tests.
const baselineResources = `<?xml version="1.0" encoding="utf-8"?>
<policyDefinitionResources>
  <resources>
    <stringTable>
      <string id="L_EnableSmartScreen">Configure Windows SmartScreen</string>
      <string id="L_NoBrowserClose">Prevent closing the browser window</string>
      <string id="L_TimeType">Windows Time service synchronization type</string>
    </stringTable>
  </resources>
</policyDefinitionResources>
`

// writeExportFile materializes an export with the given contents.
func writeExportFile(t *testing.T, contents []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gpo-export.txt")
	require.NoError(t, os.WriteFile(path, contents, 0o644), "Failed to write export fixture")
	return path
}

// buildBaselineIndex builds an index over the shared resource fixture.
func buildBaselineIndex(t *testing.T) *resindex.Index {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.adml")
	require.NoError(t, os.WriteFile(path, []byte(baselineResources), 0o644), "Failed to write resource fixture")

	idx, err := resindex.Build(dir, resindex.DefaultOptions())
	require.NoError(t, err, "Failed to build resource index")
	return idx
}

// convertToFile runs a full file-to-file conversion and returns the rendered
// document along with the conversion result.
func convertToFile(t *testing.T, export []byte, idx *resindex.Index, opts audit.Options) (string, *audit.Result) {
	t.Helper()

	src := writeExportFile(t, export)
	dst := filepath.Join(t.TempDir(), "out.audit")

	res, err := audit.ConvertFile(src, dst, idx, opts)
	require.NoError(t, err, "ConvertFile failed")

	rendered, err := os.ReadFile(dst)
	require.NoError(t, err, "Failed to read rendered document")
	return string(rendered), res
}

// utf16le encodes text as UTF-16LE with a byte order mark, the encoding
// Windows policy tooling writes.
func utf16le(text string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range text {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}
