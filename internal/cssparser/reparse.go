package cssparser

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/cssinput"
)

// ReparseDeclarations drives the generic `{ <declarations> }` sub-grammar
// against an isolated token stream (spec §4.7's block-level reparse),
// exactly as parseDeclarationsBlock does inside a fresh parse. It is the
// entry point the incremental reparser (C8) uses when the target
// DECLARATIONS node's parent is anything other than an @page rule. ok is
// false unless the sub-grammar consumed the entire input (spec's "parser at
// EOF").
func ReparseDeclarations(input cssinput.Input) (events []cssevent.Event, ok bool) {
	g := &Grammar{p: cssevent.New(input)}
	g.parseDeclarationsBlock()
	return g.p.Events(), g.p.AtEOF()
}

// ReparsePageDeclarations is @page's counterpart, allowing nested
// PAGE_MARGIN_BOX blocks (spec §4.7's "page-box-margin-box" parent case).
func ReparsePageDeclarations(input cssinput.Input) (events []cssevent.Event, ok bool) {
	g := &Grammar{p: cssevent.New(input)}
	g.parsePageBody()
	return g.p.Events(), g.p.AtEOF()
}
