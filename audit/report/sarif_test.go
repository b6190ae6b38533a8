package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/auditkit/pkg/types"
)

func sampleReport() *types.ParseReport {
	rep := types.NewParseReport("exports/workstation.txt")
	rep.Add(types.Diagnostic{
		Severity: types.SevInfo,
		Kind:     types.DiagSkippedAction,
		Line:     12,
		Item:     "ShellSmartScreenLevel",
		Action:   "DELETE",
		Message:  "registry mutation DELETE has no audit-check equivalent",
	})
	rep.Add(types.Diagnostic{
		Severity: types.SevWarning,
		Kind:     types.DiagUnrecognizedAction,
		Line:     20,
		Item:     "MeteredUpdates",
		Action:   "SOMETIMES",
		Message:  `action line "SOMETIMES" matched no known shape`,
	})
	rep.Summary.Blocks = 5
	rep.Summary.Rules = 3
	return rep
}

// formatToReport formats rep and parses the output back for inspection.
func formatToReport(t *testing.T, rep *types.ParseReport, version string) *sarif.Report {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf, version).Format(rep))

	parsed, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	return parsed
}

func TestSARIFFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf, "").Format(sampleReport()))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	require.Equal(t, "2.1.0", raw["version"])
	require.Contains(t, raw, "$schema")
	require.Contains(t, raw, "runs")

	runs := raw["runs"].([]interface{})
	require.Len(t, runs, 1)

	run := runs[0].(map[string]interface{})
	require.Contains(t, run, "tool")
	require.Contains(t, run, "results")
	require.Contains(t, run, "invocations")
}

func TestSARIFFormatter_ValidatesAgainstSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf, "").Format(sampleReport()))

	parsed, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, parsed.Validate())
}

func TestSARIFFormatter_ToolMetadata(t *testing.T) {
	parsed := formatToReport(t, sampleReport(), "1.2.3")
	require.Len(t, parsed.Runs, 1)

	tool := parsed.Runs[0].Tool
	require.Equal(t, "auditkit", *tool.Driver.Name)
	require.Equal(t, "1.2.3", *tool.Driver.Version)
	require.Equal(t, toolInformationURI, *tool.Driver.InformationURI)
}

func TestSARIFFormatter_RulesDeduplicatedByKind(t *testing.T) {
	rep := types.NewParseReport("export.txt")
	for i := 0; i < 3; i++ {
		rep.Add(types.Diagnostic{
			Severity: types.SevInfo,
			Kind:     types.DiagSkippedAction,
			Line:     4 * (i + 1),
			Message:  "dropped",
		})
	}

	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf, "").Format(rep))
	require.Contains(t, buf.String(), `"id":"SKIPPED_ACTION"`)

	parsed, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, parsed.Runs[0].Tool.Driver.Rules, 1)
	require.Len(t, parsed.Runs[0].Results, 3)
}

func TestSARIFFormatter_SeverityLevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		severity  types.Severity
		wantLevel string
	}{
		{"info", types.SevInfo, "note"},
		{"warning", types.SevWarning, "warning"},
		{"error", types.SevError, "error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := types.NewParseReport("export.txt")
			rep.Add(types.Diagnostic{
				Severity: tc.severity,
				Kind:     types.DiagUnrecognizedAction,
				Message:  "test diagnostic",
			})

			parsed := formatToReport(t, rep, "")
			require.Len(t, parsed.Runs[0].Results, 1)
			require.Equal(t, tc.wantLevel, parsed.Runs[0].Results[0].Level)
		})
	}
}

func TestSARIFFormatter_LocationsCarrySourceAndLine(t *testing.T) {
	parsed := formatToReport(t, sampleReport(), "")

	res := parsed.Runs[0].Results[0]
	require.Len(t, res.Locations, 1)
	loc := res.Locations[0]
	require.Equal(t, "exports/workstation.txt", *loc.PhysicalLocation.ArtifactLocation.URI)
	require.Equal(t, 12, *loc.PhysicalLocation.Region.StartLine)
}

func TestSARIFFormatter_UnnamedSourceOmitsLocations(t *testing.T) {
	rep := types.NewParseReport("")
	rep.Add(types.Diagnostic{
		Severity: types.SevInfo,
		Kind:     types.DiagSkippedAction,
		Line:     4,
		Message:  "dropped",
	})

	parsed := formatToReport(t, rep, "")
	require.Empty(t, parsed.Runs[0].Results[0].Locations)
}

func TestSARIFFormatter_MessageCarriesItem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf, "").Format(sampleReport()))

	require.Contains(t, buf.String(),
		"ShellSmartScreenLevel: registry mutation DELETE has no audit-check equivalent")
}
