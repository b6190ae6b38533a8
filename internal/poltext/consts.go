package poltext

const (
	// ============================================================================
	// Policy Export Format Tokens
	// ============================================================================

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// TypeSeparator splits an action line into its type token and value text
	TypeSeparator = ":"

	// CR is the carriage return character
	CR = "\r"

	// ============================================================================
	// Block Layout
	// ============================================================================

	// BlockLineCount is the number of effective lines in one setting block
	BlockLineCount = 4

	// ============================================================================
	// Buffer and Parsing Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the export scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the export scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB

	// InitialSettingCapacity is the estimated number of settings for pre-allocation
	InitialSettingCapacity = 256
)
