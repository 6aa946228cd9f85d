// run.go exposes the corpus property checks as plain functions callable
// outside `go test -fuzz`, for cmd/csslsp's `fuzz` subcommand (spec's CLI
// surface wants a way to run N iterations on demand, e.g. in CI or a
// pre-release smoke test, without reaching for the Go toolchain's fuzz
// corpus machinery). Grounded the same way fuzz_test.go is: on
// original_source/csslancer/src/row_parser/fuzz.rs's init(), which is
// itself a plain function the Rust project's test harness calls rather
// than something gated behind a fuzzer-only entry point.
package cssfuzz

import (
	"fmt"
	"math/rand"

	"github.com/csslsp/csslsp/internal/cssincr"
	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// Result summarizes one Run call: how many corpus-derived edits were
// checked and how many of each incremental-reparse tier they exercised.
type Result struct {
	Checked    int
	TierCounts map[cssincr.Tier]int
}

// Run performs iterations random mutation-and-reparse checks drawn from
// Seeds, deterministically from rng, and returns once all of them pass (or
// the first divergence, as an error). Each iteration: pick a seed, pick a
// random delete range and random printable-ASCII insertion, reparse
// incrementally, reparse the edited text from scratch, and compare the two
// trees' Dump output.
func Run(iterations int, rng *rand.Rand) (Result, error) {
	res := Result{TierCounts: map[cssincr.Tier]int{}}

	for i := 0; i < iterations; i++ {
		base := Seeds[rng.Intn(len(Seeds))]
		if len(base) == 0 {
			continue
		}

		deleteStart := rng.Intn(len(base))
		deleteLen := rng.Intn(len(base) - deleteStart + 1)
		insert := randomASCII(rng, rng.Intn(8))

		tier, err := CheckIncremental(base, deleteStart, deleteLen, insert)
		if err != nil {
			return res, fmt.Errorf("iteration %d: %w", i, err)
		}

		res.Checked++
		res.TierCounts[tier]++
	}
	return res, nil
}

// ReparseDumps reparses base+edit through internal/cssincr.Reparse and
// separately through a from-scratch cssparser.ParseWithInterner, returning
// both trees' internal/csstree.Dump text plus the tier the incremental
// reparser picked. Callers compare incrDump/fullDump however suits them —
// Run does a plain string compare, fuzz_test.go's FuzzIncrementalReparse
// diffs them with google/go-cmp for a readable failure message.
func ReparseDumps(base string, deleteStart, deleteLen int, insert string) (incrDump, fullDump string, tier cssincr.Tier) {
	interner := csstree.NewInterner()
	oldParse := cssparser.ParseWithInterner(logger.Source{Contents: base}, interner)

	edit := cssincr.Edit{
		DeleteRange: logger.Range{Loc: logger.Loc{Start: int32(deleteStart)}, Len: int32(deleteLen)},
		InsertText:  insert,
	}
	result := cssincr.Reparse(base, oldParse.Root, oldParse.Errors, edit, interner)

	newText := edit.Apply(base)
	fullParse := cssparser.ParseWithInterner(logger.Source{Contents: newText}, csstree.NewInterner())

	incrDump = csstree.Dump(csstree.NewRoot(result.Root))
	fullDump = csstree.Dump(csstree.NewRoot(fullParse.Root))
	return incrDump, fullDump, result.Tier
}

// CheckIncremental is ReparseDumps plus the comparison, for callers (Run)
// that just want pass/fail rather than both dumps. This is spec §4.15's
// headline property.
func CheckIncremental(base string, deleteStart, deleteLen int, insert string) (cssincr.Tier, error) {
	incrDump, fullDump, tier := ReparseDumps(base, deleteStart, deleteLen, insert)
	if incrDump != fullDump {
		return tier, fmt.Errorf("incremental reparse (tier %s) diverged from full reparse for base %q edit [%d,%d)=%q",
			tier, base, deleteStart, deleteStart+deleteLen, insert)
	}
	return tier, nil
}

const asciiAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .:;{}()[]#.-_\"'@"

func randomASCII(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = asciiAlphabet[rng.Intn(len(asciiAlphabet))]
	}
	return string(b)
}
