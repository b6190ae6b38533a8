package audit

import (
	"fmt"
	"io"

	"github.com/joshuapare/auditkit/audit/emitter"
	"github.com/joshuapare/auditkit/audit/resindex"
	"github.com/joshuapare/auditkit/internal/mmfile"
	"github.com/joshuapare/auditkit/internal/nessus"
	"github.com/joshuapare/auditkit/internal/outfile"
	"github.com/joshuapare/auditkit/internal/poltext"
	"github.com/joshuapare/auditkit/internal/textenc"
	"github.com/joshuapare/auditkit/pkg/types"
)

// Options configures one conversion run.
type Options struct {
	// Version is the check_type version attribute.
	// Default: emitter.DefaultVersion
	Version string

	// Description is the group_policy display text.
	// Default: emitter.DefaultDescription
	Description string

	// Encoding forces the export's text encoding; empty auto-detects.
	Encoding string

	// Source labels the input in the conversion report. ConvertFile fills
	// it with the source path when empty.
	Source string

	// Filter optionally restricts which settings become rules; nil keeps
	// every assignment.
	Filter *RuleFilter

	// Overwrite allows ConvertFile to replace an existing destination.
	Overwrite bool
}

// Result summarizes one conversion.
type Result struct {
	Rules  int                // rule blocks written
	Report *types.ParseReport // diagnostics and summary counters
}

// ConvertBytes converts raw export bytes and writes the rendered document to
// w. The index resolves item descriptions; a nil index resolves every item
// to itself.
func ConvertBytes(data []byte, w io.Writer, idx *resindex.Index, opts Options) (*Result, error) {
	text, err := textenc.DecodeString(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	report := types.NewParseReport(opts.Source)
	settings, err := poltext.Parse(text, report)
	if err != nil {
		return nil, err
	}

	em := emitter.New(w, emitter.Options{Version: opts.Version, Description: opts.Description})
	if err := em.Begin(); err != nil {
		return nil, err
	}
	for _, s := range settings {
		ok, err := opts.Filter.Match(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			report.Add(types.Diagnostic{
				Severity: types.SevInfo,
				Kind:     types.DiagFilteredRule,
				Line:     s.Line,
				Item:     s.Item,
				Message:  fmt.Sprintf("setting excluded by filter expression %q", opts.Filter.Source()),
			})
			continue
		}
		if err := em.WriteRule(nessus.BuildRule(s, resolveDescription(idx, s.Item))); err != nil {
			return nil, err
		}
	}
	if err := em.Close(); err != nil {
		return nil, err
	}

	report.Summary.Rules = em.Rules()
	return &Result{Rules: em.Rules(), Report: report}, nil
}

// ConvertFile maps the export at src and writes the audit document to dst.
// The destination is created exclusively unless opts.Overwrite is set, and a
// failed conversion removes its partial output.
func ConvertFile(src, dst string, idx *resindex.Index, opts Options) (*Result, error) {
	data, unmap, err := mmfile.Map(src)
	if err != nil {
		return nil, fmt.Errorf("open policy export: %w", err)
	}
	defer func() {
		if unmap != nil {
			_ = unmap()
		}
	}()

	if opts.Source == "" {
		opts.Source = src
	}

	out, err := outfile.Create(dst, opts.Overwrite)
	if err != nil {
		return nil, err
	}

	res, err := ConvertBytes(data, out, idx, opts)
	if err != nil {
		_ = out.Discard()
		return nil, err
	}
	if err := out.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

// resolveDescription looks the item up in the index, falling back to the
// item name itself.
func resolveDescription(idx *resindex.Index, item string) string {
	if idx == nil {
		return item
	}
	return idx.ResolveItem(item)
}
