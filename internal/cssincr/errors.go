package cssincr

import (
	"fmt"

	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// mergeErrors reconciles an old error list against a reparse that replaced
// replacedRange with new content shifting everything after it by delta
// bytes (spec §4.7, both tiers 1 and 2): errors entirely before
// replacedRange are kept unshifted; errors entirely at or after its end are
// kept shifted by delta; errors overlapping it are dropped; fresh is the
// new tier's own errors, relative to the replaced text starting at offset
// 0, so each is offset by replacedRange's start. The result is deduped by
// (start, length, message) since a token- or block-level reparse can
// rediscover an error the old list already had just outside the boundary.
func mergeErrors(old []csstree.SyntaxError, fresh []csstree.SyntaxError, replacedRange logger.Range, delta int32) []csstree.SyntaxError {
	merged := make([]csstree.SyntaxError, 0, len(old)+len(fresh))

	for _, e := range old {
		switch {
		case e.Range.End() <= replacedRange.Loc.Start:
			merged = append(merged, e)
		case e.Range.Loc.Start >= replacedRange.End():
			shifted := e
			shifted.Range.Loc.Start += delta
			merged = append(merged, shifted)
		default:
			// falls inside the replaced range: discarded, the new tier
			// re-diagnoses that span from scratch.
		}
	}

	for _, e := range fresh {
		shifted := e
		shifted.Range.Loc.Start += replacedRange.Loc.Start
		merged = append(merged, shifted)
	}

	return dedupeErrors(merged)
}

func dedupeErrors(errs []csstree.SyntaxError) []csstree.SyntaxError {
	seen := make(map[string]bool, len(errs))
	out := make([]csstree.SyntaxError, 0, len(errs))
	for _, e := range errs {
		key := fmt.Sprintf("%d|%d|%s", e.Range.Loc.Start, e.Range.Len, e.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
