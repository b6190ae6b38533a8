package nessus

const (
	// ============================================================================
	// Envelope Tags
	// ============================================================================

	// CheckTypeOpenFormat is the opening document tag; the operand is the
	// document version attribute
	CheckTypeOpenFormat = `<check_type: "Windows" version:"%s">` + LF

	// GroupPolicyOpenFormat is the opening group tag; the operand is the
	// document description
	GroupPolicyOpenFormat = "\t" + `<group_policy: "%s">` + LF

	// GroupPolicyClose closes the group tag
	GroupPolicyClose = "\t</group_policy>" + LF

	// CheckTypeClose closes the document tag
	CheckTypeClose = "</check_type>" + LF

	// ============================================================================
	// Rule Block Layout
	// ============================================================================
	//
	// The tab layout below is part of the compatibility contract with the
	// consuming scanner: the description label is indented one tab (not two)
	// and the value_data label carries no colon. Both quirks are load-bearing.

	// CustomItemOpen opens one rule block
	CustomItemOpen = "\t<custom_item>" + LF

	// CustomItemClose closes one rule block
	CustomItemClose = "\t</custom_item>" + LF

	// TypeLineFormat renders the rule's check type
	TypeLineFormat = "\t\ttype:\t\t\t%s" + LF

	// DescriptionLineFormat renders the resolved description
	DescriptionLineFormat = "\tdescription:\t\t%s" + LF

	// ValueTypeLineFormat renders the prefixed value type
	ValueTypeLineFormat = "\t\tvalue_type:\t\t%s" + LF

	// ValueDataLineFormat renders the value payload
	ValueDataLineFormat = "\t\tvalue_data\t\t%s" + LF

	// RegKeyLineFormat renders the hive-rooted key path
	RegKeyLineFormat = "\t\treg_key:\t\t%s" + LF

	// RegItemLineFormat renders the registry value name
	RegItemLineFormat = "\t\treg_item:\t\t%s" + LF

	// ============================================================================
	// String Value Quoting
	// ============================================================================

	// TypeSZ is the string type token; its value data is double-quoted
	TypeSZ = "SZ"

	// Quote is the double-quote wrapped around string value data
	Quote = "\""

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF is the line feed character
	LF = "\n"
)
