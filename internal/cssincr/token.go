package cssincr

import (
	"unicode/utf8"

	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csslexer"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// reparsableTokenKinds lists the kinds spec §4.7 tier 1 applies to: trivia,
// identifier, string/bad-string, url/bad-url. Anything else (punctuation,
// numbers, at-keywords...) always falls through to a coarser tier, since a
// single edited character there usually changes the surrounding grammar
// too (e.g. editing a NUMBER's digits can change whether what follows is a
// DIMENSION or a separate IDENT).
var reparsableTokenKinds = map[csskind.Kind]bool{
	csskind.WHITESPACE: true,
	csskind.COMMENT:    true,
	csskind.IDENT:      true,
	csskind.STRING:     true,
	csskind.BAD_STRING: true,
	csskind.URL:        true,
	csskind.BAD_URL:    true,
}

// reparseToken is spec §4.7 tier 1. It returns ok=false for any reason the
// in-place substitution isn't safe, letting the caller fall through to the
// block tier without having mutated anything.
func reparseToken(root *csstree.RedNode, oldText string, edit Edit, oldErrors []csstree.SyntaxError, interner *csstree.Interner) (*csstree.GreenNode, []csstree.SyntaxError, bool) {
	delRange := edit.DeleteRange
	if delRange.Loc.Start < root.Offset() || delRange.End() > root.EndOffset() {
		return nil, nil, false
	}

	tok := root.TokenCovering(delRange.Loc.Start, delRange.End())
	if tok == nil || !reparsableTokenKinds[tok.Kind()] {
		return nil, nil, false
	}

	if tok.Kind() == csskind.WHITESPACE || tok.Kind() == csskind.COMMENT {
		deleted := oldText[delRange.Loc.Start:delRange.End()]
		if containsNewline(deleted) || containsNewline(edit.InsertText) {
			return nil, nil, false
		}
	}

	newText := spliceTokenText(tok, edit)
	kind, diags, ok := csslexer.LexSingleToken(newText)
	if !ok || kind != tok.Kind() {
		return nil, nil, false
	}
	if kind == csskind.IDENT && cssinput.IsContextualIdent(newText) {
		return nil, nil, false
	}
	if fusesWithSuccessor(newText, oldText, tok.EndOffset()) {
		return nil, nil, false
	}

	newToken := interner.Token(kind, newText)
	newRoot := csstree.SpliceToken(tok, newToken, interner)

	replaced := logger.Range{Loc: logger.Loc{Start: tok.Offset()}, Len: tok.EndOffset() - tok.Offset()}
	fresh := make([]csstree.SyntaxError, len(diags))
	for i, msg := range diags {
		fresh[i] = csstree.SyntaxError{Range: logger.Range{Len: int32(len(newText))}, Message: msg}
	}
	errs := mergeErrors(oldErrors, fresh, replaced, edit.deltaLen())
	return newRoot, errs, true
}

// spliceTokenText rebases edit (absolute offsets into the old source) to be
// relative to tok's own text and applies it.
func spliceTokenText(tok *csstree.RedToken, edit Edit) string {
	text := tok.Text()
	relStart := edit.DeleteRange.Loc.Start - tok.Offset()
	relEnd := edit.DeleteRange.End() - tok.Offset()
	return text[:relStart] + edit.InsertText + text[relEnd:]
}

// fusesWithSuccessor reports whether appending the character that
// immediately follows the (unedited) token's old end would still lex as a
// single token — meaning the edit grew the token into what used to be a
// separate token or the whitespace/punctuation separating them, so an
// in-place substitution would silently swallow part of the next token
// (spec §4.7: "looking at the next source character — not fused with its
// successor").
func fusesWithSuccessor(newText, oldText string, oldTokenEnd int32) bool {
	if int(oldTokenEnd) >= len(oldText) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(oldText[oldTokenEnd:])
	probe := newText + string(r)
	_, _, ok := csslexer.LexSingleToken(probe)
	return ok
}

// containsNewline matches the set of line breaks internal/cssdoc's line
// index splits on: LF, CR, FF, VT, NEL, LS, PS.
func containsNewline(s string) bool {
	for _, r := range s {
		switch r {
		case '\n', '\r', '\f', '\v', '\u0085', '\u2028', '\u2029':
			return true
		}
	}
	return false
}
