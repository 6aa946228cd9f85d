package cssincr

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csslexer"
	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// reparsableParents lists every DECLARATIONS-node parent kind spec §4.7
// tier 2 names (ruleset, font-face, viewport, keyframe, keyframe-selector,
// property-at-rule, layer, supports, media, page, page-box-margin-box,
// document, container), mapped onto this grammar's actual kinds. This
// grammar places a keyframe block's declarations directly under
// KEYFRAME_BLOCK rather than under a separate keyframe-selector node (see
// DESIGN.md), so that one entry covers both the "keyframe" and
// "keyframe-selector" parent cases §4.7 names. CUSTOM_PROPERTY_SET is an
// addition beyond that explicit list: it is the same DECLARATIONS grammar
// reused for a custom property's nested `{ ... }` value (§4.4), so it is
// reparsable for the same reason the rest are.
var reparsableParents = map[csskind.Kind]bool{
	csskind.RULESET:              true,
	csskind.AT_RULE_FONT_FACE:    true,
	csskind.AT_RULE_VIEWPORT:     true,
	csskind.KEYFRAME_BLOCK:       true,
	csskind.AT_RULE_PROPERTY:     true,
	csskind.AT_RULE_LAYER:        true,
	csskind.AT_RULE_SUPPORTS:     true,
	csskind.AT_RULE_MEDIA:        true,
	csskind.AT_RULE_PAGE:         true,
	csskind.PAGE_MARGIN_BOX:      true,
	csskind.AT_RULE_MOZ_DOCUMENT: true,
	csskind.AT_RULE_CONTAINER:    true,
	csskind.CUSTOM_PROPERTY_SET:  true,
}

// reparseBlock is spec §4.7 tier 2.
func reparseBlock(root *csstree.RedNode, oldText string, edit Edit, oldErrors []csstree.SyntaxError, interner *csstree.Interner) (*csstree.GreenNode, []csstree.SyntaxError, bool) {
	node := findReparsableNode(root, edit.DeleteRange)
	if node == nil {
		return nil, nil, false
	}

	oldRange := logger.Range{Loc: logger.Loc{Start: node.Offset()}, Len: node.EndOffset() - node.Offset()}
	newBlockText := rebasedEdit(oldText, oldRange, edit)

	lexed := csslexer.Tokenize(logger.Source{Contents: newBlockText})
	if !bracedAndBalanced(lexed) {
		return nil, nil, false
	}

	input := cssinput.Build(lexed)
	events := reparseDispatch(node, input)
	if events == nil {
		return nil, nil, false
	}

	newGreen, blockErrors := csstree.Build(events, input, interner)
	if newGreen.Kind() != csskind.DECLARATIONS {
		return nil, nil, false
	}

	newRoot := csstree.SpliceNode(node, newGreen, interner)
	errs := mergeErrors(oldErrors, blockErrors, oldRange, edit.deltaLen())
	return newRoot, errs, true
}

// reparseDispatch picks the sub-grammar to drive against the extracted
// block text, chosen by the DECLARATIONS node's parent kind (spec §4.7).
// @page's own declarations additionally recognize nested PAGE_MARGIN_BOX
// blocks; every other parent uses the generic declarations grammar. It
// returns nil if the parent kind isn't one tier 2 covers, or if the
// sub-grammar didn't consume the whole input.
func reparseDispatch(node *csstree.RedNode, input cssinput.Input) []cssevent.Event {
	parent := node.Parent()
	if parent == nil || !reparsableParents[parent.Kind()] {
		return nil
	}

	var events []cssevent.Event
	var ok bool
	if parent.Kind() == csskind.AT_RULE_PAGE {
		events, ok = cssparser.ReparsePageDeclarations(input)
	} else {
		events, ok = cssparser.ReparseDeclarations(input)
	}
	if !ok {
		return nil
	}
	return events
}

// findReparsableNode returns the smallest DECLARATIONS-kind ancestor (or
// the covering node itself) containing r, or nil if there is none.
func findReparsableNode(root *csstree.RedNode, r logger.Range) *csstree.RedNode {
	start := root.NodeCovering(r.Loc.Start, r.End())
	for _, anc := range start.Ancestors() {
		if anc.Kind() == csskind.DECLARATIONS {
			return anc
		}
	}
	return nil
}

// rebasedEdit extracts blockRange's old text and applies edit to it, after
// rebasing edit's absolute offsets to be relative to blockRange's start.
// edit must be fully contained within blockRange.
func rebasedEdit(oldText string, blockRange logger.Range, edit Edit) string {
	blockText := oldText[blockRange.Loc.Start:blockRange.End()]
	relStart := edit.DeleteRange.Loc.Start - blockRange.Loc.Start
	relEnd := edit.DeleteRange.End() - blockRange.Loc.Start
	return blockText[:relStart] + edit.InsertText + blockText[relEnd:]
}

// bracedAndBalanced is spec §4.7's "verify braces balance at depth 0 and
// that the first/last tokens are `{`/`}`".
func bracedAndBalanced(lexed csslexer.Lexed) bool {
	var real []csslexer.Token
	for _, t := range lexed.Tokens {
		if t.Kind != csskind.EOF {
			real = append(real, t)
		}
	}
	if len(real) == 0 || real[0].Kind != csskind.L_CURLY || real[len(real)-1].Kind != csskind.R_CURLY {
		return false
	}
	depth := 0
	for _, t := range real {
		switch t.Kind {
		case csskind.L_CURLY:
			depth++
		case csskind.R_CURLY:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
