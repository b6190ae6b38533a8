// Package audit converts exported Group Policy registry settings into Nessus
// audit compliance documents.
//
// # Overview
//
// A policy export is a line-oriented text stream in which every setting
// occupies four consecutive meaningful lines: scope, registry key path, item
// name, and action. The package parses those blocks, resolves each item's
// description through a resource index, and renders one REGISTRY_SETTING
// custom item per surviving setting inside a check_type/group_policy
// envelope.
//
// # Pipeline
//
// ConvertBytes is the core pipeline: decode, parse, filter, resolve, emit.
// ConvertFile wraps it with memory-mapped input and an exclusively created
// destination that is removed again if any stage fails, so a crashed run
// never leaves a half-written audit file behind.
//
// # Diagnostics
//
// Settings are dropped, never repaired: skip actions, unrecognized actions,
// and unknown scopes all remove the offending block from the output and add
// a diagnostic to the conversion report instead. Callers inspect
// Result.Report for counters and per-line detail.
//
// # Usage Example
//
// Converting an export with descriptions resolved from .adml resources:
//
//	idx, err := resindex.Build("policy/adml", resindex.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	res, err := audit.ConvertFile("export.txt", "policy.audit", idx, audit.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Report.FormatTextCompact())
package audit
