// Package types defines the shared data model for converting Windows Group
// Policy registry exports into compliance-audit documents.
//
// This package only exposes plain types and core constants. The parsing,
// resource-resolution, and rendering implementations live in separate
// packages and all speak in terms of these types.
//
// Design goals:
//   - Small, copyable value types (Setting/AuditRule) instead of object graphs.
//   - Drop-and-report: malformed input produces diagnostics, never panics.
//   - Typed errors with stable categories (missing-dir/encoding/emit-state/...).
//
// This package has no dependencies beyond the standard library.
package types
