// Package resindex builds the in-memory lookup table that maps policy string
// identifiers to human-readable descriptions.
//
// # Overview
//
// Localized policy-definition resource documents (.adml) each carry a string
// table of id/text pairs. The index merges every matching document in one
// directory into a single table keyed by id, used to resolve the description
// of each registry item emitted into an audit document.
//
// # Merge Semantics
//
// Documents are merged in sorted file-name order and entries within a
// document in document order. A later occurrence of an id overwrites the
// text of an earlier one, but the id keeps its original position in the
// lookup sequence. Both rules together make every lookup reproducible for a
// given directory, regardless of filesystem enumeration quirks.
//
// # Item Resolution
//
// Registry item names are matched against ids by suffix, not equality:
// localization namespaces prefix their ids (L_, IDS_, product tags), so the
// exported item name is usually the tail of one or more ids. The first id in
// the lookup sequence whose suffix equals the item name wins; an item that
// matches nothing resolves to itself.
//
// # Usage Example
//
// Building and querying an index:
//
//	idx, err := resindex.Build("policy/adml", resindex.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	desc := idx.ResolveItem("EnableSmartScreen")
package resindex
