// Package selection is the LSP selection-range service (spec §4.10, C10):
// given a document and a list of cursor positions, return one nested range
// per position, innermost first, suitable for an editor's "expand
// selection" command.
//
// Grounded on
// original_source/csslancer/src/services/css_selection_range.rs's
// get_selection_range — esbuild has no interactive service layer at all
// (it only ever produces a bundle), so the walking
// shape here follows the Rust original directly, adapted onto this
// module's green/red tree instead of rowan's.
package selection

import (
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// Range is a nested selection range: Parent is nil at the outermost level.
type Range struct {
	Span   logger.Range
	Parent *Range
}

// GetRanges computes one nested Range per position (spec §4.10). Positions
// are given as byte offsets into doc's current text — internal/lspserver
// converts the client's UTF-16 positions via doc.PositionToByte before
// calling this.
func GetRanges(doc *cssdoc.Document, offsets []int32) []Range {
	root := doc.Root()
	out := make([]Range, len(offsets))
	for i, off := range offsets {
		out[i] = GetRange(root, off)
	}
	return out
}

// GetRange computes the nested selection range for a single offset.
func GetRange(root *csstree.RedNode, offset int32) Range {
	target := pickTarget(root, offset)
	if target == nil {
		return Range{Span: logger.Range{Loc: logger.Loc{Start: offset}, Len: 0}}
	}

	spans := collectSpans(target, offset)
	if len(spans) == 0 {
		return Range{Span: logger.Range{Loc: logger.Loc{Start: offset}, Len: 0}}
	}

	// spans is innermost-first; fold from the outermost end inward so the
	// final, returned Range is the innermost one, each carrying a Parent
	// pointer chain out to the root span.
	var current *Range
	for i := len(spans) - 1; i >= 0; i-- {
		current = &Range{Span: spans[i], Parent: current}
	}
	return *current
}

// pickTarget finds the token at offset, resolving a tie between the two
// tokens flanking an exact boundary by preferring whichever one isn't
// trivia (spec §4.10 "choose the non-trivia neighbor on ties at a
// boundary"); if both or neither are trivia, the later token wins.
func pickTarget(root *csstree.RedNode, offset int32) *csstree.RedToken {
	hits := root.TokenAtOffset(offset)
	switch len(hits) {
	case 0:
		return nil
	case 1:
		return hits[0]
	default:
		a, b := hits[0], hits[1]
		if a.Kind().IsTrivia() && !b.Kind().IsTrivia() {
			return b
		}
		if b.Kind().IsTrivia() && !a.Kind().IsTrivia() {
			return a
		}
		return b
	}
}

// isBoundaryPunct is the set of leaf kinds that never deserve their own
// selection stop (spec §4.10 "skip pure punctuation tokens `{ } \s`").
func isBoundaryPunct(k csskind.Kind) bool {
	switch k {
	case csskind.L_CURLY, csskind.R_CURLY, csskind.WHITESPACE:
		return true
	}
	return false
}

// collectSpans walks from target up to the root, building one span per
// non-redundant ancestor, innermost first (spec §4.10). A declarations node
// whose braces flank offset contributes two spans: the inner span (braces
// excluded) before the outer one (braces included).
func collectSpans(target *csstree.RedToken, offset int32) []logger.Range {
	var spans []logger.Range

	cur := csstree.Element{Token: target}
	for {
		parent := elementParent(cur)
		if parent != nil && sameRange(cur, parent) {
			cur = csstree.Element{Node: parent}
			continue
		}

		if isBoundaryPunct(cur.Kind()) {
			if parent == nil {
				break
			}
			cur = csstree.Element{Node: parent}
			continue
		}

		start, end := cur.Offset(), cur.EndOffset()
		if cur.Kind() == csskind.DECLARATIONS && offset > start && offset < end {
			spans = append(spans, logger.Range{Loc: logger.Loc{Start: start + 1}, Len: end - 1 - (start + 1)})
		}
		spans = append(spans, logger.Range{Loc: logger.Loc{Start: start}, Len: end - start})

		if parent == nil {
			break
		}
		cur = csstree.Element{Node: parent}
	}

	return spans
}

func elementParent(e csstree.Element) *csstree.RedNode {
	if e.Node != nil {
		return e.Node.Parent()
	}
	return e.Token.Parent()
}

func sameRange(e csstree.Element, parent *csstree.RedNode) bool {
	return e.Offset() == parent.Offset() && e.EndOffset() == parent.EndOffset()
}
