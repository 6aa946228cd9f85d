// Package cssinput implements spec §4.2: the view of the lexed token stream
// that the parser actually walks. It drops trivia (whitespace/comment) but
// remembers, per surviving token, whether whitespace preceded it ("joint")
// and which contextual kind (if any) it could also be matched as.
package cssinput

import (
	"strings"

	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csslexer"
)

// Token is one non-trivia token as seen by the parser. LexedIndex points
// back into the originating Lexed.Tokens so the tree builder (C6) can walk
// the two in lockstep and re-insert trivia.
type Token struct {
	LexedIndex     int
	Kind           csskind.Kind
	Contextual     csskind.ContextualKind
	Joint          bool // true if no whitespace/comment trivia precedes this token
	NoWhitespaceN  int  // count of immediately preceding WHITESPACE/COMMENT tokens that are exactly adjacent (for has_n_whitespace)
}

// Input is the parser's view: lexed text plus the filtered, annotated token
// list (always ending in one EOF token).
type Input struct {
	Lexed  csslexer.Lexed
	Tokens []Token
}

// Build drops trivia from lexed and assigns joint bits + contextual kinds.
func Build(lexed csslexer.Lexed) Input {
	var out []Token
	joint := true // nothing precedes the first token
	triviaRun := 0
	prevNonTrivia := csskind.TOMBSTONE
	prevText := ""

	for i, tok := range lexed.Tokens {
		if tok.Kind.IsTrivia() {
			triviaRun++
			joint = false
			continue
		}
		text := lexed.Text(tok)
		in := Token{
			LexedIndex:    i,
			Kind:          tok.Kind,
			Joint:         joint,
			NoWhitespaceN: triviaRun,
		}
		in.Contextual = classify(tok.Kind, text, prevNonTrivia, prevText)
		out = append(out, in)

		joint = true
		triviaRun = 0
		prevNonTrivia = tok.Kind
		prevText = text
	}
	return Input{Lexed: lexed, Tokens: out}
}

var contextualIdents = map[string]csskind.ContextualKind{
	"not":       csskind.CxIdentNot,
	"and":       csskind.CxIdentAnd,
	"or":        csskind.CxIdentOr,
	"only":      csskind.CxIdentOnly,
	"deep":      csskind.CxIdentDeep,
	"of":        csskind.CxIdentOf,
	"important": csskind.CxIdentImportant,
	"progid":    csskind.CxIdentProgid,
}

var hexColorLens = map[int]bool{3: true, 4: true, 6: true, 8: true}

func classify(kind csskind.Kind, text string, _ csskind.Kind, _ string) csskind.ContextualKind {
	switch kind {
	case csskind.FUNCTION:
		switch strings.ToLower(strings.TrimSuffix(text, "(")) {
		case "url":
			return csskind.CxFuncURL
		case "style":
			return csskind.CxFuncStyle
		case "layer":
			return csskind.CxFuncLayer
		case "supports":
			return csskind.CxFuncSupports
		}
	case csskind.IDENT:
		lower := strings.ToLower(text)
		if cx, ok := contextualIdents[lower]; ok {
			return cx
		}
		if text == "i" {
			return csskind.CxIdentI
		}
		if text == "s" {
			return csskind.CxIdentS
		}
		if strings.HasPrefix(text, "--") {
			return csskind.CxIdentCustomProperty
		}
		if isAnPlusB(text) {
			return csskind.CxDimAnPlusB
		}
	case csskind.ID_HASH, csskind.UNRESTRICTED_HASH:
		hex := text[1:]
		if hexColorLens[len(hex)] && isAllHex(hex) {
			return csskind.CxHashValidHex
		}
	case csskind.DIMENSION:
		if isAnPlusB(text) {
			return csskind.CxDimAnPlusB
		}
	}
	return csskind.NoContextualKind
}

// IsContextualIdent reports whether text is one of the reserved words that
// changes a plain IDENT's *classification* (spec §4.2's contextual kinds),
// used by the incremental reparser's token-level fast path (spec §4.7) to
// refuse an in-place token edit that would turn an ordinary identifier into
// e.g. "important" or "progid" without a full reparse ever looking at it.
func IsContextualIdent(text string) bool {
	if _, ok := contextualIdents[strings.ToLower(text)]; ok {
		return true
	}
	return text == "i" || text == "s" || strings.HasPrefix(text, "--") || isAnPlusB(text)
}

func isAllHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// isAnPlusB matches text shaped like `-?[0-9]*n(-[0-9]+)?` case-insensitively
// (e.g. "2n", "-n", "n", "-N", "2n-1"), the prefix of the An+B micro-syntax
// used by :nth-child and friends; the optional "-digits" suffix is there
// because "2n-1" lexes as a single token whose unit is "n-1". Called for
// both DIMENSION tokens (a leading digit run makes "2n" lex as one dimension
// token) and IDENT tokens ("n" and "-n" have no digit for the lexer to key a
// dimension off of, so they lex as plain identifiers).
func isAnPlusB(text string) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i >= len(text) || (text[i] != 'n' && text[i] != 'N') {
		return false
	}
	i++
	if i == len(text) {
		return true
	}
	if text[i] != '-' || i+1 == len(text) {
		return false
	}
	for i++; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
