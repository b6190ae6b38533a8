// Package emitter writes audit documents incrementally: envelope opening,
// rule blocks in call order, envelope closing.
package emitter

import (
	"fmt"
	"io"

	"github.com/joshuapare/auditkit/internal/nessus"
	"github.com/joshuapare/auditkit/pkg/types"
)

const (
	// DefaultVersion is the check_type version attribute stamped on
	// documents unless overridden.
	DefaultVersion = "2"

	// DefaultDescription labels the group tag when the caller provides none.
	DefaultDescription = "Group Policy registry settings"
)

// Options controls document rendering.
type Options struct {
	// Version is the check_type version attribute.
	// Default: "2"
	Version string

	// Description is the group_policy display text.
	// Default: DefaultDescription
	Description string
}

// DefaultOptions returns sensible defaults for emitting.
func DefaultOptions() Options {
	return Options{
		Version:     DefaultVersion,
		Description: DefaultDescription,
	}
}

// emitState tracks the emitter lifecycle so envelope tags cannot be written
// out of order.
type emitState int

const (
	stateCreated emitState = iota
	stateOpen
	stateClosed
)

// Emitter renders one audit document to a writer. Methods must be called in
// Begin, WriteRule..., Close order; anything else is an emit-state error. A
// write failure permanently invalidates the emitter — failed documents are
// discarded, never resumed.
type Emitter struct {
	opts   Options
	writer io.Writer
	state  emitState
	rules  int
}

// New creates a new Emitter writing to w. Empty option fields take their
// defaults.
func New(w io.Writer, opts Options) *Emitter {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Description == "" {
		opts.Description = DefaultDescription
	}
	return &Emitter{opts: opts, writer: w}
}

// Begin writes the envelope opening tags.
func (e *Emitter) Begin() error {
	if e.state != stateCreated {
		return fmt.Errorf("begin: %w", types.ErrEmitterState)
	}
	info := types.DocumentInfo{Version: e.opts.Version, Description: e.opts.Description}
	if _, err := e.writer.Write(nessus.RenderHeader(info)); err != nil {
		return e.writeFailed("write envelope header", err)
	}
	e.state = stateOpen
	return nil
}

// WriteRule renders one rule block. Rules appear in the document in call
// order.
func (e *Emitter) WriteRule(r types.AuditRule) error {
	if e.state != stateOpen {
		return fmt.Errorf("write rule: %w", types.ErrEmitterState)
	}
	if _, err := e.writer.Write(nessus.RenderRule(r)); err != nil {
		return e.writeFailed("write audit rule", err)
	}
	e.rules++
	return nil
}

// Close writes the envelope closing tags. A document with zero rules is
// valid: it renders as an empty envelope. The emitter cannot be reused after
// Close.
func (e *Emitter) Close() error {
	if e.state != stateOpen {
		return fmt.Errorf("close: %w", types.ErrEmitterState)
	}
	if _, err := e.writer.Write(nessus.RenderFooter()); err != nil {
		return e.writeFailed("write envelope footer", err)
	}
	e.state = stateClosed
	return nil
}

// Rules returns the number of rule blocks written so far.
func (e *Emitter) Rules() int { return e.rules }

func (e *Emitter) writeFailed(op string, err error) error {
	e.state = stateClosed
	return &types.Error{Kind: types.ErrKindWrite, Msg: op, Err: err}
}

// WriteDocument renders a complete document in one call.
func WriteDocument(w io.Writer, opts Options, rules []types.AuditRule) error {
	e := New(w, opts)
	if err := e.Begin(); err != nil {
		return err
	}
	for _, r := range rules {
		if err := e.WriteRule(r); err != nil {
			return err
		}
	}
	return e.Close()
}
