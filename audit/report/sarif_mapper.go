package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/joshuapare/auditkit/pkg/types"
)

type sarifMapper struct {
	rep *types.ParseReport
}

func newSARIFMapper(rep *types.ParseReport) *sarifMapper {
	return &sarifMapper{rep: rep}
}

// mapToRun populates the SARIF run with rules, results, invocation, and
// summary properties.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addInvocation(run)
	m.addProperties(run)
}

// addRules declares one rule per diagnostic kind present, in first-appearance
// order.
func (m *sarifMapper) addRules(run *sarif.Run) {
	seen := make(map[types.DiagKind]bool)
	for _, d := range m.rep.Diagnostics {
		if seen[d.Kind] {
			continue
		}
		seen[d.Kind] = true

		name, short := kindMetadata(d.Kind)
		rule := sarif.NewReportingDescriptor().WithID(d.Kind.String())
		rule.WithName(name)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &short,
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: severityLevel(d.Severity),
		})

		props := sarif.NewPropertyBag()
		props.Add("severity", d.Severity.String())
		rule.WithProperties(props)

		run.Tool.Driver.AddRule(rule)
	}
}

// addResults converts each diagnostic to a SARIF result.
func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, d := range m.rep.Diagnostics {
		result := sarif.NewRuleResult(d.Kind.String())
		result.Level = severityLevel(d.Severity)
		result.Message = sarif.NewTextMessage(resultMessage(d))

		if loc := m.location(d); loc != nil {
			result.Locations = []*sarif.Location{loc}
		}

		props := sarif.NewPropertyBag()
		if d.Item != "" {
			props.Add("item", d.Item)
		}
		if d.Action != "" {
			props.Add("action", d.Action)
		}
		result.WithProperties(props)

		run.AddResult(result)
	}
}

// location points a result at the report's source, with the diagnostic's
// input line when it is tied to one. Reports on unnamed streams carry no
// locations.
func (m *sarifMapper) location(d types.Diagnostic) *sarif.Location {
	if m.rep.Source == "" {
		return nil
	}

	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(filepath.ToSlash(m.rep.Source)))
	if d.Line > 0 {
		pLoc.WithRegion(sarif.NewRegion().WithStartLine(d.Line))
	}
	return sarif.NewLocation().WithPhysicalLocation(pLoc)
}

// addInvocation adds execution metadata to the run.
func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()
	invocation.ExecutionSuccessful = ptrBool(len(m.rep.BySeverity[types.SevError]) == 0)

	if hostname, err := os.Hostname(); err == nil {
		invocation.Machine = &hostname
	}

	run.AddInvocation(invocation)
}

// addProperties adds summary statistics to run properties.
func (m *sarifMapper) addProperties(run *sarif.Run) {
	props := sarif.NewPropertyBag()
	props.Add("summary", m.rep.Summary)
	if m.rep.Source != "" {
		props.Add("source", m.rep.Source)
	}
	run.WithProperties(props)
}

// severityLevel converts a diagnostic severity to a SARIF level.
func severityLevel(sev types.Severity) string {
	switch sev {
	case types.SevError:
		return "error"
	case types.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// kindMetadata returns the rule name and short description for a kind.
func kindMetadata(kind types.DiagKind) (string, string) {
	switch kind {
	case types.DiagSkippedAction:
		return "SkippedAction", "Registry mutation with no audit-check equivalent was dropped"
	case types.DiagUnrecognizedAction:
		return "UnrecognizedAction", "Action line matched no known shape and its block was dropped"
	case types.DiagUnrecognizedScope:
		return "UnrecognizedScope", "Block began with an unknown scope keyword and was dropped"
	case types.DiagTruncatedInput:
		return "TruncatedInput", "Input ended before the final block completed"
	case types.DiagFilteredRule:
		return "FilteredRule", "Parsed setting was excluded by the filter expression"
	default:
		return kind.String(), "Conversion diagnostic"
	}
}

// resultMessage prefixes the diagnostic message with the registry item it
// concerns, when known.
func resultMessage(d types.Diagnostic) string {
	if d.Item != "" {
		return fmt.Sprintf("%s: %s", d.Item, d.Message)
	}
	return d.Message
}

func ptrBool(b bool) *bool {
	return &b
}
