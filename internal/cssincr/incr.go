// Package cssincr is the incremental reparser (spec §4.7, C8): given a
// finished Parse and a single text edit, it tries progressively coarser
// strategies — in-place token substitution, then a sub-grammar reparse of
// the smallest enclosing declarations block, then a full reparse — and
// returns as soon as one succeeds. Every strategy shares subtrees with the
// old green tree through the same Interner, so an editor that reparses on
// every keystroke pays for exactly the work the edit actually touched.
//
// This is the Go analogue of rust-analyzer's incremental reparsing, carried
// over from original_source/csslancer's row_parser/reparsing.rs — the
// teacher (evanw-esbuild) reparses a whole file on every call and has no
// equivalent (see DESIGN.md).
package cssincr

import (
	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// Edit is one text replacement against the source oldRoot was parsed from.
type Edit struct {
	DeleteRange logger.Range
	InsertText  string
}

func (e Edit) deltaLen() int32 { return int32(len(e.InsertText)) - e.DeleteRange.Len }

// Apply returns the result of replacing e.DeleteRange in text with
// e.InsertText. Exported for callers (internal/cssdoc, tests) that need the
// post-edit text alongside the reparsed tree Reparse returns.
func (e Edit) Apply(text string) string {
	return e.apply(text)
}

func (e Edit) apply(text string) string {
	start, end := e.DeleteRange.Loc.Start, e.DeleteRange.End()
	return text[:start] + e.InsertText + text[end:]
}

// Tier records which strategy produced a Result, for diagnostics and for
// the fuzz harness (spec §4.15) to report tier coverage.
type Tier int

const (
	TierToken Tier = iota + 1
	TierBlock
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierToken:
		return "token"
	case TierBlock:
		return "block"
	case TierFull:
		return "full"
	default:
		return "unknown"
	}
}

// Result is the outcome of Reparse: a new green root (sharing untouched
// subtrees with the old one under tiers 1–2, built fresh under tier 3), its
// merged errors, and the tier that produced it.
type Result struct {
	Root   *csstree.GreenNode
	Errors []csstree.SyntaxError
	Tier   Tier
}

// Reparse applies edit to oldText (the exact source oldRoot was parsed
// from) and returns the new parse, trying token-level splice, then
// block-level sub-grammar reparse, then full reparse from scratch (spec
// §4.7). interner must be the one oldRoot's nodes were interned with, and
// is mutated (grown) by this call.
func Reparse(oldText string, oldRoot *csstree.GreenNode, oldErrors []csstree.SyntaxError, edit Edit, interner *csstree.Interner) Result {
	root := csstree.NewRoot(oldRoot)

	if newRoot, errs, ok := reparseToken(root, oldText, edit, oldErrors, interner); ok {
		return Result{Root: newRoot, Errors: errs, Tier: TierToken}
	}
	if newRoot, errs, ok := reparseBlock(root, oldText, edit, oldErrors, interner); ok {
		return Result{Root: newRoot, Errors: errs, Tier: TierBlock}
	}

	newText := edit.apply(oldText)
	parsed := cssparser.ParseWithInterner(logger.Source{Contents: newText}, interner)
	return Result{Root: parsed.Root, Errors: parsed.Errors, Tier: TierFull}
}
