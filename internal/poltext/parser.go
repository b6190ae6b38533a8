// Package poltext parses the four-line block format used by Group Policy
// registry exports.
package poltext

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/joshuapare/auditkit/pkg/types"
)

// parseState identifies which line of a setting block the parser expects
// next. The zero value doubles as "between blocks", and int(state) is the
// number of block lines consumed so far.
type parseState int

const (
	awaitScope  parseState = iota // first line: Computer or User
	awaitKey                      // second line: registry key path
	awaitItem                     // third line: registry value name
	awaitAction                   // fourth line: action token
)

// pending accumulates one setting block while the state machine advances.
type pending struct {
	scope     types.Scope
	scopeLine int    // input line the block started on
	keyPath   string
	item      string
	badScope  bool // scope line unrecognized; block consumed but dropped
}

// Parse converts decoded policy export text into value-assignment settings.
// Blank and comment lines are discarded before grouping, so the four lines of
// a block may be separated by any amount of noise. Dropped blocks are
// recorded in the report rather than failing the run; only scanner-level
// failures return an error.
func Parse(text string, report *types.ParseReport) ([]types.Setting, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	settings := make([]types.Setting, 0, InitialSettingCapacity)
	state := awaitScope
	var blk pending

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		trim := strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}

		switch state {
		case awaitScope:
			blk = pending{scopeLine: lineNo, scope: types.ParseScope(trim)}
			if blk.scope == types.ScopeUnknown {
				blk.badScope = true
				report.Add(types.Diagnostic{
					Severity: types.SevWarning,
					Kind:     types.DiagUnrecognizedScope,
					Line:     lineNo,
					Message:  fmt.Sprintf("scope line %q is neither %q nor %q", trim, types.ScopeComputerKeyword, types.ScopeUserKeyword),
				})
			}
			report.Summary.Blocks++
			state = awaitKey
		case awaitKey:
			blk.keyPath = trim
			state = awaitItem
		case awaitItem:
			blk.item = trim
			state = awaitAction
		case awaitAction:
			if s, ok := finishBlock(blk, trim, lineNo, report); ok {
				settings = append(settings, s)
			}
			state = awaitScope
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan policy export: %w", err)
	}

	if state != awaitScope {
		report.Add(types.Diagnostic{
			Severity: types.SevWarning,
			Kind:     types.DiagTruncatedInput,
			Line:     blk.scopeLine,
			Item:     blk.item,
			Message:  fmt.Sprintf("input ended mid-block: %d of %d lines present", int(state), BlockLineCount),
		})
	}
	return settings, nil
}

// finishBlock classifies the action line and produces the block's setting, if
// any. Precedence is fixed: any line containing a colon is an assignment,
// then the skip-class tokens, then unrecognized. A block whose scope line was
// bad has already been reported; its action line is consumed only to keep the
// stream in sync.
func finishBlock(blk pending, action string, lineNo int, report *types.ParseReport) (types.Setting, bool) {
	if blk.badScope {
		return types.Setting{}, false
	}

	if typ, value, ok := strings.Cut(action, TypeSeparator); ok {
		return types.Setting{
			Scope:   blk.scope,
			KeyPath: blk.keyPath,
			Item:    blk.item,
			Type:    typ,
			Value:   value,
			Line:    blk.scopeLine,
		}, true
	}

	if types.IsSkipAction(action) {
		report.Add(types.Diagnostic{
			Severity: types.SevInfo,
			Kind:     types.DiagSkippedAction,
			Line:     lineNo,
			Item:     blk.item,
			Action:   action,
			Message:  fmt.Sprintf("registry mutation %s has no audit-check equivalent", action),
		})
		return types.Setting{}, false
	}

	report.Add(types.Diagnostic{
		Severity: types.SevWarning,
		Kind:     types.DiagUnrecognizedAction,
		Line:     lineNo,
		Item:     blk.item,
		Action:   action,
		Message:  fmt.Sprintf("action line %q matched no known shape", action),
	})
	return types.Setting{}, false
}
