// Package report renders conversion reports in interchange formats for CI
// systems and code scanners.
package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/joshuapare/auditkit/pkg/types"
)

const (
	toolName           = "auditkit"
	toolInformationURI = "https://github.com/joshuapare/auditkit"
)

// SARIFFormatter formats a conversion report as SARIF 2.1.0 JSON.
// Each diagnostic kind present becomes a rule and each diagnostic a result,
// so scanners ingest dropped settings the way they ingest linter findings.
//
// Usage:
//
//	formatter := report.NewSARIFFormatter(os.Stdout, buildVersion)
//	if err := formatter.Format(rep); err != nil {
//	    return err
//	}
type SARIFFormatter struct {
	writer  io.Writer
	version string
}

// NewSARIFFormatter creates a formatter writing to w. version stamps the
// tool metadata and may be empty.
func NewSARIFFormatter(w io.Writer, version string) *SARIFFormatter {
	return &SARIFFormatter{
		writer:  w,
		version: version,
	}
}

// Format writes the conversion report as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(rep *types.ParseReport) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	if f.version != "" {
		run.Tool.Driver.Version = &f.version
	}

	mapper := newSARIFMapper(rep)
	mapper.mapToRun(run)

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("write SARIF report: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}
