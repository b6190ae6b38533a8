package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testResourceDoc is a minimal .adml document covering the items the test
// exports reference.
const testResourceDoc = `<?xml version="1.0" encoding="utf-8"?>
<policyDefinitionResources>
  <resources>
    <stringTable>
      <string id="L_EnableSmartScreen">Configure Windows SmartScreen</string>
      <string id="L_NoBrowserClose">Prevent closing the browser</string>
    </stringTable>
  </resources>
</policyDefinitionResources>
`

// writeExport writes a policy export fixture and returns its path
func writeExport(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write export fixture: %v", err)
	}
	return path
}

// writeResourceDir materializes a one-document resource directory
func writeResourceDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inetres.adml"), []byte(testResourceDoc), 0o644); err != nil {
		t.Fatalf("failed to write resource fixture: %v", err)
	}
	return dir
}

// withNonInteractiveStdin replaces stdin with a closed pipe so overwrite
// prompts cannot fire during tests
func withNonInteractiveStdin(t *testing.T) {
	t.Helper()
	origStdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	w.Close()
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = origStdin
		r.Close()
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}

// resetConvertFlags restores convert command flags to their defaults
func resetConvertFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	noColor = false
	convertResources = ""
	convertVersion = ""
	convertDescription = ""
	convertEncoding = ""
	convertFilter = ""
	convertForce = false
	convertStdout = false
	convertSARIF = ""
	convertReport = ""
}

// resetResourcesFlags restores resources command flags to their defaults
func resetResourcesFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	resourcesDump = false
	resourcesResolve = ""
	resourcesOutput = ""
	resourcesEncoding = ""
}
