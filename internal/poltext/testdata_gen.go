package poltext

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Profile defines characteristics for generated policy export data.
type Profile struct {
	// Blocks is the number of setting blocks to generate
	Blocks int

	// UserScopePct is the fraction of blocks scoped to User (0.0-1.0);
	// the remainder are Computer blocks
	UserScopePct float64

	// SkipActionPct is the fraction of blocks carrying a skip-class action
	// (DELETE, DELETEALLVALUES, CREATEKEYS)
	SkipActionPct float64

	// UnknownActionPct is the fraction of blocks with an action line
	// matching no known shape
	UnknownActionPct float64

	// StringValuePct is the fraction of assignments typed SZ; the rest
	// are DWORD
	StringValuePct float64

	// CommentFreq is how often a comment line is interleaved between
	// block lines (0.0-1.0)
	CommentFreq float64

	// Seed for reproducibility
	Seed uint64
}

// Realistic key paths for generated blocks.
var generatedKeyPaths = []string{
	`Software\Policies\Microsoft\Windows\System`,
	`Software\Policies\Microsoft\Windows\WindowsUpdate\AU`,
	`Software\Policies\Microsoft\Internet Explorer\Restrictions`,
	`Software\Policies\Microsoft\W32Time\Parameters`,
	`Software\Policies\Microsoft\Windows NT\Terminal Services`,
	`Software\Policies\Microsoft\WindowsFirewall\DomainProfile`,
}

var generatedSkipActions = []string{"DELETE", "DELETEALLVALUES", "CREATEKEYS"}

// GenerateExport creates a policy export with the specified profile. Output
// is deterministic for a given profile, so benchmarks and round-trip tests
// can regenerate identical inputs.
func GenerateExport(profile Profile) []byte {
	if profile.Blocks == 0 {
		profile.Blocks = 100
	}
	rng := rand.New(rand.NewPCG(profile.Seed, profile.Seed))

	var b strings.Builder
	b.WriteString("; generated policy export\n\n")

	for i := 0; i < profile.Blocks; i++ {
		scope := "Computer"
		if rng.Float64() < profile.UserScopePct {
			scope = "User"
		}
		writeGeneratedLine(&b, scope, profile, rng)
		writeGeneratedLine(&b, generatedKeyPaths[rng.IntN(len(generatedKeyPaths))], profile, rng)
		writeGeneratedLine(&b, fmt.Sprintf("PolicySetting%04d", i), profile, rng)

		switch r := rng.Float64(); {
		case r < profile.SkipActionPct:
			writeGeneratedLine(&b, generatedSkipActions[rng.IntN(len(generatedSkipActions))], profile, rng)
		case r < profile.SkipActionPct+profile.UnknownActionPct:
			writeGeneratedLine(&b, "UNSUPPORTED", profile, rng)
		case rng.Float64() < profile.StringValuePct:
			writeGeneratedLine(&b, fmt.Sprintf("SZ:generated value %d", i), profile, rng)
		default:
			writeGeneratedLine(&b, fmt.Sprintf("DWORD:%d", rng.IntN(256)), profile, rng)
		}
	}
	return []byte(b.String())
}

// writeGeneratedLine emits one block line, optionally preceded by a comment.
func writeGeneratedLine(b *strings.Builder, line string, profile Profile, rng *rand.Rand) {
	if rng.Float64() < profile.CommentFreq {
		b.WriteString("; interleaved comment\n")
	}
	b.WriteString(line)
	b.WriteString("\n")
}

// ProfileSmall is a short clean export.
func ProfileSmall() Profile {
	return Profile{
		Blocks:         50,
		UserScopePct:   0.3,
		StringValuePct: 0.4,
		Seed:           1,
	}
}

// ProfileLarge approximates a full workstation baseline export.
func ProfileLarge() Profile {
	return Profile{
		Blocks:         20000,
		UserScopePct:   0.3,
		SkipActionPct:  0.05,
		StringValuePct: 0.4,
		Seed:           2,
	}
}

// ProfileNoisy is comment-heavy with a realistic share of dropped blocks.
func ProfileNoisy() Profile {
	return Profile{
		Blocks:           1000,
		UserScopePct:     0.5,
		SkipActionPct:    0.1,
		UnknownActionPct: 0.05,
		StringValuePct:   0.4,
		CommentFreq:      0.3,
		Seed:             3,
	}
}
