package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseReport_AddUpdatesSummary(t *testing.T) {
	r := NewParseReport("export.txt")

	r.Add(Diagnostic{Severity: SevInfo, Kind: DiagSkippedAction, Line: 4, Action: "DELETE", Message: "skipped"})
	r.Add(Diagnostic{Severity: SevInfo, Kind: DiagSkippedAction, Line: 8, Action: "CREATEKEYS", Message: "skipped"})
	r.Add(Diagnostic{Severity: SevWarning, Kind: DiagUnrecognizedAction, Line: 12, Message: "dropped"})
	r.Add(Diagnostic{Severity: SevWarning, Kind: DiagUnrecognizedScope, Line: 13, Message: "dropped"})
	r.Add(Diagnostic{Severity: SevWarning, Kind: DiagTruncatedInput, Message: "dangling block"})
	r.Add(Diagnostic{Severity: SevInfo, Kind: DiagFilteredRule, Line: 17, Message: "filtered"})

	if r.Summary.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", r.Summary.Skipped)
	}
	if r.Summary.Unrecognized != 1 {
		t.Errorf("Unrecognized = %d, want 1", r.Summary.Unrecognized)
	}
	if r.Summary.BadScope != 1 {
		t.Errorf("BadScope = %d, want 1", r.Summary.BadScope)
	}
	if r.Summary.Truncated != 1 {
		t.Errorf("Truncated = %d, want 1", r.Summary.Truncated)
	}
	if r.Summary.Filtered != 1 {
		t.Errorf("Filtered = %d, want 1", r.Summary.Filtered)
	}

	if len(r.BySeverity[SevInfo]) != 3 {
		t.Errorf("BySeverity[SevInfo] has %d entries, want 3", len(r.BySeverity[SevInfo]))
	}
	if len(r.BySeverity[SevWarning]) != 3 {
		t.Errorf("BySeverity[SevWarning] has %d entries, want 3", len(r.BySeverity[SevWarning]))
	}
}

func TestParseReport_HasWarnings(t *testing.T) {
	r := NewParseReport("")
	if r.HasWarnings() {
		t.Error("empty report should have no warnings")
	}

	r.Add(Diagnostic{Severity: SevInfo, Kind: DiagSkippedAction, Message: "skipped"})
	if r.HasWarnings() {
		t.Error("info-only report should have no warnings")
	}

	r.Add(Diagnostic{Severity: SevWarning, Kind: DiagUnrecognizedAction, Message: "dropped"})
	if !r.HasWarnings() {
		t.Error("report with a warning should say so")
	}
}

func TestParseReport_FormatText(t *testing.T) {
	r := NewParseReport("gpo/machine.txt")
	r.Summary.Blocks = 3
	r.Summary.Rules = 2
	r.Add(Diagnostic{
		Severity: SevWarning,
		Kind:     DiagUnrecognizedAction,
		Line:     12,
		Item:     "EnableSmartScreen",
		Action:   "FROBNICATE",
		Message:  "action line matched no known shape",
	})

	text := r.FormatText()

	for _, want := range []string{
		"Policy Conversion Report",
		"gpo/machine.txt",
		"Blocks parsed:  3",
		"Rules emitted:  2",
		"WARNING (1)",
		"[UNRECOGNIZED_ACTION] at line 12",
		"Item:   EnableSmartScreen",
		"Action: FROBNICATE",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatText() missing %q:\n%s", want, text)
		}
	}
}

func TestParseReport_FormatTextClean(t *testing.T) {
	r := NewParseReport("clean.txt")
	r.Summary.Blocks = 5
	r.Summary.Rules = 5

	text := r.FormatText()
	if !strings.Contains(text, "No settings dropped.") {
		t.Errorf("clean report should say nothing was dropped:\n%s", text)
	}
}

func TestParseReport_FormatJSONSeverityNames(t *testing.T) {
	r := NewParseReport("export.txt")
	r.Add(Diagnostic{Severity: SevWarning, Kind: DiagUnrecognizedScope, Line: 9, Message: "dropped"})

	out, err := r.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Kind     string `json:"kind"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("report JSON does not parse: %v", err)
	}
	if len(decoded.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(decoded.Diagnostics))
	}
	if decoded.Diagnostics[0].Severity != "WARNING" {
		t.Errorf("severity = %q, want WARNING", decoded.Diagnostics[0].Severity)
	}
	if decoded.Diagnostics[0].Kind != "UNRECOGNIZED_SCOPE" {
		t.Errorf("kind = %q, want UNRECOGNIZED_SCOPE", decoded.Diagnostics[0].Kind)
	}
}

func TestParseReport_FormatTextCompact(t *testing.T) {
	r := NewParseReport("")
	r.Add(Diagnostic{Severity: SevInfo, Kind: DiagSkippedAction, Line: 4, Message: "skip-class action DELETE"})

	out := r.FormatTextCompact()
	if !strings.Contains(out, "[INFO/SKIPPED_ACTION]") {
		t.Errorf("compact format missing severity/kind tag: %q", out)
	}
}
