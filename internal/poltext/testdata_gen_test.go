package poltext

import (
	"bytes"
	"testing"

	"github.com/joshuapare/auditkit/pkg/types"
)

func TestGenerateExport_Deterministic(t *testing.T) {
	a := GenerateExport(ProfileNoisy())
	b := GenerateExport(ProfileNoisy())
	if !bytes.Equal(a, b) {
		t.Error("same profile must generate identical output")
	}
}

func TestGenerateExport_SmallProfileParsesClean(t *testing.T) {
	report := types.NewParseReport("generated")
	settings, err := Parse(string(GenerateExport(ProfileSmall())), report)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.Summary.Blocks != 50 {
		t.Errorf("Blocks = %d, want 50", report.Summary.Blocks)
	}
	if len(settings) != 50 {
		t.Errorf("settings = %d, want every block emitted", len(settings))
	}
	if report.HasAnyIssues() {
		t.Errorf("clean profile produced diagnostics: %+v", report.Diagnostics)
	}
}

func TestGenerateExport_NoisyProfileDropsBlocks(t *testing.T) {
	report := types.NewParseReport("generated")
	settings, err := Parse(string(GenerateExport(ProfileNoisy())), report)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.Summary.Blocks != 1000 {
		t.Errorf("Blocks = %d, want 1000", report.Summary.Blocks)
	}
	if report.Summary.Skipped == 0 {
		t.Error("noisy profile should include skip-class actions")
	}
	if report.Summary.Unrecognized == 0 {
		t.Error("noisy profile should include unrecognized actions")
	}
	if got := len(settings) + report.Summary.Skipped + report.Summary.Unrecognized; got != 1000 {
		t.Errorf("emitted+dropped = %d, every block must be accounted for", got)
	}
}
