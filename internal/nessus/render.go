// Package nessus renders audit rules into the text grammar consumed by
// compliance scanners.
package nessus

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/auditkit/pkg/types"
)

// BuildRule finalizes a parsed setting into rendered rule fields. Quoting and
// type prefixing happen here so the emitter writes every field verbatim.
// String assignments (type token SZ, matched exactly) get their value text
// wrapped in literal double quotes; all other types pass through untouched.
func BuildRule(s types.Setting, description string) types.AuditRule {
	value := s.Value
	if s.Type == TypeSZ {
		value = Quote + s.Value + Quote
	}
	return types.AuditRule{
		Type:        types.RuleTypeRegistrySetting,
		Description: description,
		ValueType:   types.PolicyTypePrefix + s.Type,
		ValueData:   value,
		RegKey:      s.RegKey(),
		RegItem:     s.Item,
	}
}

// RenderHeader renders the envelope opening: the check_type tag followed by
// the group tag.
func RenderHeader(info types.DocumentInfo) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, CheckTypeOpenFormat, info.Version)
	fmt.Fprintf(&buf, GroupPolicyOpenFormat, info.Description)
	return buf.Bytes()
}

// RenderRule renders one custom_item block with its six ordered fields.
func RenderRule(r types.AuditRule) []byte {
	var buf bytes.Buffer
	buf.WriteString(CustomItemOpen)
	fmt.Fprintf(&buf, TypeLineFormat, r.Type)
	fmt.Fprintf(&buf, DescriptionLineFormat, r.Description)
	fmt.Fprintf(&buf, ValueTypeLineFormat, r.ValueType)
	fmt.Fprintf(&buf, ValueDataLineFormat, r.ValueData)
	fmt.Fprintf(&buf, RegKeyLineFormat, r.RegKey)
	fmt.Fprintf(&buf, RegItemLineFormat, r.RegItem)
	buf.WriteString(CustomItemClose)
	return buf.Bytes()
}

// RenderFooter renders the envelope closing tags.
func RenderFooter() []byte {
	return []byte(GroupPolicyClose + CheckTypeClose)
}
