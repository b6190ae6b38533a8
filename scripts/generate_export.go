// Command generate_export writes a synthetic Group Policy registry export
// for benchmarking and manual testing of the converter.
//
// Usage:
//
//	go run scripts/generate_export.go -blocks 20000 -output big-export.txt
//	go run scripts/generate_export.go -noisy | ./auditctl convert /dev/stdin --stdout
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joshuapare/auditkit/internal/poltext"
)

var (
	blocks     = flag.Int("blocks", 1000, "Number of setting blocks to generate")
	userPct    = flag.Float64("user-pct", 0.3, "Fraction of blocks scoped to User")
	skipPct    = flag.Float64("skip-pct", 0.05, "Fraction of blocks with skip-class actions")
	unknownPct = flag.Float64("unknown-pct", 0.0, "Fraction of blocks with unrecognized actions")
	stringPct  = flag.Float64("string-pct", 0.4, "Fraction of assignments typed SZ")
	comments   = flag.Float64("comments", 0.0, "Comment interleave frequency")
	seed       = flag.Uint64("seed", 42, "Generator seed")
	noisy      = flag.Bool("noisy", false, "Use the comment-heavy noisy preset")
	output     = flag.String("output", "", "Output file (stdout if not specified)")
)

func main() {
	flag.Parse()

	profile := poltext.Profile{
		Blocks:           *blocks,
		UserScopePct:     *userPct,
		SkipActionPct:    *skipPct,
		UnknownActionPct: *unknownPct,
		StringValuePct:   *stringPct,
		CommentFreq:      *comments,
		Seed:             *seed,
	}
	if *noisy {
		profile = poltext.ProfileNoisy()
	}

	data := poltext.GenerateExport(profile)

	if *output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d blocks (%d bytes) to %s\n", profile.Blocks, len(data), *output)
}
