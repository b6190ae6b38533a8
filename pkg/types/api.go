package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMissingDir    ErrKind = iota // resource directory absent or unreadable
	ErrKindNoResources                  // directory holds no matching resource documents
	ErrKindResourceParse                // a resource document failed structured parsing
	ErrKindEncoding                     // input bytes not decodable as a supported encoding
	ErrKindFilter                       // rule filter expression invalid or non-boolean
	ErrKindEmitState                    // emitter lifecycle misuse (rule before Begin, write after Close)
	ErrKindExists                       // destination file already present
	ErrKindWrite                        // destination could not be created or written
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrMissingDirectory indicates the resource directory does not exist.
	ErrMissingDirectory = &Error{Kind: ErrKindMissingDir, Msg: "resource directory does not exist"}
	// ErrNoResourceFiles indicates no file in the directory matched the
	// resource extension filter.
	ErrNoResourceFiles = &Error{Kind: ErrKindNoResources, Msg: "no resource documents in directory"}
	// ErrDestinationExists indicates the audit destination is already present
	// and overwriting was not requested.
	ErrDestinationExists = &Error{Kind: ErrKindExists, Msg: "destination file already exists"}
	// ErrEmitterState indicates emitter methods were called out of order.
	ErrEmitterState = &Error{Kind: ErrKindEmitState, Msg: "emitter used out of order"}
	// ErrUnsupportedEncoding indicates the input bytes could not be decoded
	// into text with any supported encoding.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindEncoding, Msg: "unsupported input encoding"}
)

// -----------------------------------------------------------------------------
// Policy Scopes & Hive Roots
// -----------------------------------------------------------------------------

// Scope selects which registry hive a policy block targets. The scope line of
// a block is matched case-sensitively; anything other than the two literal
// keywords maps to ScopeUnknown and the block is dropped with a diagnostic.
type Scope int

const (
	ScopeUnknown  Scope = iota // scope line matched no known keyword
	ScopeComputer              // machine-wide policy, rooted at HKLM
	ScopeUser                  // per-user policy, rooted at HKCU
)

// Scope keywords as they appear on the first line of a setting block.
const (
	ScopeComputerKeyword = "Computer"
	ScopeUserKeyword     = "User"
)

// Registry hive root abbreviations used in rendered reg_key paths.
const (
	HiveLocalMachine = "HKLM"
	HiveCurrentUser  = "HKCU"
)

// ParseScope maps a scope line to its Scope. The comparison is exact:
// "computer" or "COMPUTER" yield ScopeUnknown.
func ParseScope(keyword string) Scope {
	switch keyword {
	case ScopeComputerKeyword:
		return ScopeComputer
	case ScopeUserKeyword:
		return ScopeUser
	default:
		return ScopeUnknown
	}
}

// String implements the Stringer interface for Scope.
func (s Scope) String() string {
	switch s {
	case ScopeComputer:
		return ScopeComputerKeyword
	case ScopeUser:
		return ScopeUserKeyword
	default:
		return "UNKNOWN"
	}
}

// Hive returns the registry hive root the scope selects. ScopeUnknown yields
// an empty string; blocks with an unknown scope never reach rendering, so the
// empty value does not appear in output.
func (s Scope) Hive() string {
	switch s {
	case ScopeComputer:
		return HiveLocalMachine
	case ScopeUser:
		return HiveCurrentUser
	default:
		return ""
	}
}

// -----------------------------------------------------------------------------
// Action Tokens
// -----------------------------------------------------------------------------

// Skip-class action tokens. A block whose action line equals one of these is
// intentionally not translated: it describes a registry mutation (delete a
// value, clear a key, create key scaffolding) that has no audit-check
// equivalent.
const (
	ActionDelete          = "DELETE"
	ActionDeleteAllValues = "DELETEALLVALUES"
	ActionCreateKeys      = "CREATEKEYS"
)

// IsSkipAction reports whether token names a deletion/creation action.
// Matching is exact; lowercase variants are unrecognized, not skipped.
func IsSkipAction(token string) bool {
	switch token {
	case ActionDelete, ActionDeleteAllValues, ActionCreateKeys:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Parsed Settings
// -----------------------------------------------------------------------------

// Setting is one value-assignment block recovered from a policy export.
// Only assignment actions (TYPE:VALUE) produce a Setting; skip-class and
// unrecognized actions are dropped during parsing and surface in the
// ParseReport instead.
type Setting struct {
	Scope   Scope  // ScopeComputer or ScopeUser, never ScopeUnknown
	KeyPath string // key path below the hive root, backslash separated
	Item    string // registry value name; also the description lookup key
	Type    string // raw type token from the action line ("SZ", "DWORD", ...)
	Value   string // raw value text after the first colon, may be empty
	Line    int    // 1-based input line of the block's scope line
}

// RegKey returns the absolute registry key the setting targets, in the
// HIVE\path form used by rendered rules.
func (s Setting) RegKey() string {
	return s.Scope.Hive() + `\` + s.KeyPath
}

// -----------------------------------------------------------------------------
// Audit Rules & Document Metadata
// -----------------------------------------------------------------------------

// RuleTypeRegistrySetting is the only check type this tool renders. Every
// assignment block becomes a registry-setting compliance check.
const RuleTypeRegistrySetting = "REGISTRY_SETTING"

// PolicyTypePrefix is prepended to the raw type token to form a rule's
// value_type field ("SZ" renders as "POLICY_SZ").
const PolicyTypePrefix = "POLICY_"

// AuditRule is one rendered compliance check. All fields hold final text:
// ValueData is already quoted for string assignments, ValueType carries the
// POLICY_ prefix, and RegKey is the joined hive-rooted path. The emitter
// writes these values verbatim.
type AuditRule struct {
	Type        string // always RuleTypeRegistrySetting
	Description string // resolved display text, or the raw item name
	ValueType   string // PolicyTypePrefix + type token
	ValueData   string // double-quoted for SZ assignments, raw text otherwise
	RegKey      string // hive root + backslash + key path
	RegItem     string // registry value name
}

// DocumentInfo carries the envelope metadata of an audit document: the
// check_type version attribute and the group_policy display text.
type DocumentInfo struct {
	Version     string
	Description string
}
