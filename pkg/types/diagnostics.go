package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Parse Diagnostics
// -----------------------------------------------------------------------------
//
// Non-fatal parse conditions never abort a conversion: the offending block is
// dropped, a Diagnostic is recorded, and parsing continues with the next
// block. The report keeps severity-tagged entries so verbose modes can show
// exactly which settings were dropped and why, without treating the run as
// failed.

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SevInfo    Severity = iota // expected drops (skip-class actions, filtered rules)
	SevWarning                 // suspicious input (unknown actions or scopes, truncation)
	SevError                   // reserved for collected-but-fatal conditions
)

// String implements the Stringer interface for Severity.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY_%d", int(s))
	}
}

// MarshalJSON renders the severity as its name so report files stay
// greppable without a decoder ring.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DiagKind identifies the parse condition a diagnostic reports.
type DiagKind int

const (
	DiagSkippedAction      DiagKind = iota // skip-class action, block intentionally dropped
	DiagUnrecognizedAction                 // action line matched no known shape
	DiagUnrecognizedScope                  // scope line was neither Computer nor User
	DiagTruncatedInput                     // input ended mid-block
	DiagFilteredRule                       // rule excluded by the caller's filter expression
)

// String implements the Stringer interface for DiagKind.
func (k DiagKind) String() string {
	switch k {
	case DiagSkippedAction:
		return "SKIPPED_ACTION"
	case DiagUnrecognizedAction:
		return "UNRECOGNIZED_ACTION"
	case DiagUnrecognizedScope:
		return "UNRECOGNIZED_SCOPE"
	case DiagTruncatedInput:
		return "TRUNCATED_INPUT"
	case DiagFilteredRule:
		return "FILTERED_RULE"
	default:
		return fmt.Sprintf("DIAG_%d", int(k))
	}
}

// MarshalJSON renders the kind as its name.
func (k DiagKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Diagnostic records one non-fatal condition found while parsing.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Kind     DiagKind `json:"kind"`
	Line     int      `json:"line,omitempty"`   // 1-based input line, 0 when not tied to one
	Item     string   `json:"item,omitempty"`   // registry value name when known
	Action   string   `json:"action,omitempty"` // raw action token when relevant
	Message  string   `json:"message"`
}

// ParseSummary provides quick statistics over one conversion run.
type ParseSummary struct {
	Blocks       int `json:"blocks"`       // setting blocks consumed
	Rules        int `json:"rules"`        // audit rules emitted
	Skipped      int `json:"skipped"`      // skip-class actions dropped
	Unrecognized int `json:"unrecognized"` // unknown action lines dropped
	BadScope     int `json:"bad_scope"`    // blocks dropped for an unknown scope
	Filtered     int `json:"filtered"`     // rules excluded by the filter expression
	Truncated    int `json:"truncated"`    // partial blocks dangling at end of input
}

// ParseReport collects the diagnostics of one conversion run.
type ParseReport struct {
	// Metadata
	Source string `json:"source,omitempty"` // input path or stream label

	// Issues
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Summary statistics
	Summary ParseSummary `json:"summary"`

	// Pre-computed grouping for severity-ordered output
	BySeverity map[Severity][]Diagnostic `json:"-"`
}

// NewParseReport creates an empty report for the named source.
func NewParseReport(source string) *ParseReport {
	return &ParseReport{
		Source:     source,
		BySeverity: make(map[Severity][]Diagnostic),
	}
}

// Add adds a diagnostic to the report and updates the summary counters.
func (r *ParseReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)

	switch d.Kind {
	case DiagSkippedAction:
		r.Summary.Skipped++
	case DiagUnrecognizedAction:
		r.Summary.Unrecognized++
	case DiagUnrecognizedScope:
		r.Summary.BadScope++
	case DiagTruncatedInput:
		r.Summary.Truncated++
	case DiagFilteredRule:
		r.Summary.Filtered++
	}

	r.BySeverity[d.Severity] = append(r.BySeverity[d.Severity], d)
}

// HasWarnings returns true if any warning-level diagnostics were recorded.
func (r *ParseReport) HasWarnings() bool {
	return len(r.BySeverity[SevWarning]) > 0 || len(r.BySeverity[SevError]) > 0
}

// HasAnyIssues returns true if any diagnostics were recorded at all.
func (r *ParseReport) HasAnyIssues() bool {
	return len(r.Diagnostics) > 0
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation)
func (r *ParseReport) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report
func (r *ParseReport) FormatText() string {
	var b strings.Builder

	// Header
	b.WriteString("=" + strings.Repeat("=", 78) + "\n")
	b.WriteString("Policy Conversion Report\n")
	b.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	// Metadata
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("Source:   %s\n\n", r.Source))
	}

	// Summary
	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(fmt.Sprintf("  Blocks parsed:  %d\n", r.Summary.Blocks))
	b.WriteString(fmt.Sprintf("  Rules emitted:  %d\n", r.Summary.Rules))
	b.WriteString(fmt.Sprintf("  Skipped:        %d\n", r.Summary.Skipped))
	b.WriteString(fmt.Sprintf("  Unrecognized:   %d\n", r.Summary.Unrecognized))
	b.WriteString(fmt.Sprintf("  Bad scope:      %d\n", r.Summary.BadScope))
	b.WriteString(fmt.Sprintf("  Filtered:       %d\n", r.Summary.Filtered))
	b.WriteString(fmt.Sprintf("  Truncated:      %d\n\n", r.Summary.Truncated))

	// If nothing was dropped, report success
	if len(r.Diagnostics) == 0 {
		b.WriteString("No settings dropped.\n")
		return b.String()
	}

	// Diagnostics by severity
	b.WriteString("DIAGNOSTICS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n\n")

	for _, severity := range []Severity{SevError, SevWarning, SevInfo} {
		diags := r.BySeverity[severity]
		if len(diags) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("%s (%d)\n", severity, len(diags)))
		b.WriteString(strings.Repeat("~", 79) + "\n")

		for i, d := range diags {
			if d.Line > 0 {
				b.WriteString(fmt.Sprintf("\n%d. [%s] at line %d\n", i+1, d.Kind, d.Line))
			} else {
				b.WriteString(fmt.Sprintf("\n%d. [%s]\n", i+1, d.Kind))
			}
			b.WriteString(fmt.Sprintf("   %s\n", d.Message))

			if d.Item != "" {
				b.WriteString(fmt.Sprintf("   Item:   %s\n", d.Item))
			}
			if d.Action != "" {
				b.WriteString(fmt.Sprintf("   Action: %s\n", d.Action))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTextCompact returns a compact one-line-per-issue text format
func (r *ParseReport) FormatTextCompact() string {
	var b strings.Builder

	for _, d := range r.Diagnostics {
		b.WriteString(fmt.Sprintf("line %-5d [%s/%s] %s\n", d.Line, d.Severity, d.Kind, d.Message))
	}

	if len(r.Diagnostics) == 0 {
		b.WriteString("No settings dropped.\n")
	}

	return b.String()
}
