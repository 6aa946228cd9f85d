// Package semtok is the semantic tokens service (spec §4.11, C11): a
// preorder walk of the red tree that maps each node/token to one of a
// closed set of semantic kinds, encodes the result as LSP's 5-integer
// delta-encoded tuples, and serves incremental `semanticTokens/full/delta`
// requests from a bounded result-id cache. No teacher equivalent exists
// (esbuild never serves interactive requests); grounded on
// original_source/csslancer/src/services/semantic_tokens/mod.rs's
// tokenize_tree / sem_token_kind_from_syntax_node dispatch table, adapted
// onto internal/csstree.RedNode. The original's delta.rs/token_encode.rs
// were pruned from the retrieval pack, so the delta diff and 5-tuple
// encoding below are original to this port (see diff.go's doc comment for
// the one documented simplification).
package semtok

import (
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/csstree"
)

// Kind is the closed semantic-token type set (spec §4.11's table). The
// legend published to the client is this list's String() names, in
// declaration order, so the order here IS the LSP token-type index.
type Kind uint8

const (
	Operator Kind = iota
	Identifier
	Punctuation
	Property
	String
	Number
	Important
	numKinds
)

var kindNames = [...]string{"operator", "identifier", "punctuation", "property", "string", "number", "important"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Legend returns the token-type names in index order, for the LSP
// SemanticTokensLegend the server advertises once at initialize.
func Legend() []string {
	out := make([]string, numKinds)
	copy(out, kindNames[:])
	return out
}

// Token is one semantic span before LSP delta-encoding.
type Token struct {
	Start int32
	Len   int32
	Kind  Kind
}

// semanticKindFor maps a node or token kind to its semantic kind per spec
// §4.11's table. Because this port's csskind.Kind unifies token and node
// kinds in one enum (see internal/csskind's doc comment), one switch
// handles both a node that resolves its whole subtree to one kind
// (PROPERTY, NUMERIC_VALUE, HEX_COLOR, RATIO_VALUE, PRIO, COMBINATOR) and a
// leaf token that resolves directly (IDENT, STRING, punctuation, ...).
func semanticKindFor(k csskind.Kind) (Kind, bool) {
	switch k {
	case csskind.COMBINATOR,
		csskind.DELIM_ASTERISK, csskind.DELIM_PLUS, csskind.DELIM_SLASH,
		csskind.DELIM_MINUS, csskind.DELIM_EQUALS:
		return Operator, true
	case csskind.IDENT:
		return Identifier, true
	case csskind.L_CURLY, csskind.R_CURLY, csskind.L_PAREN, csskind.R_PAREN,
		csskind.L_BRACKET, csskind.R_BRACKET, csskind.DELIM_DOT, csskind.COMMA,
		csskind.SEMICOLON, csskind.COLON:
		return Punctuation, true
	case csskind.PROPERTY:
		return Property, true
	case csskind.STRING, csskind.URL, csskind.BAD_STRING, csskind.BAD_URL:
		return String, true
	case csskind.NUMERIC_VALUE, csskind.HEX_COLOR, csskind.RATIO_VALUE, csskind.DIMENSION:
		return Number, true
	case csskind.PRIO:
		return Important, true
	}
	return 0, false
}

// Tokenize walks root in preorder, emitting one Token per matched
// node/leaf and never descending into a node whose kind already matched
// (spec §4.11's "emit once for the subtree and stop recursion").
func Tokenize(root *csstree.RedNode) []Token {
	var out []Token
	var walk func(e csstree.Element)
	walk = func(e csstree.Element) {
		if k, ok := semanticKindFor(e.Kind()); ok {
			out = append(out, Token{Start: e.Offset(), Len: e.EndOffset() - e.Offset(), Kind: k})
			return
		}
		if e.Node == nil {
			return // unmapped leaf token (trivia, unclassified punctuation): no token
		}
		for _, c := range e.Node.Children() {
			walk(c)
		}
	}
	walk(csstree.Element{Node: root})
	return out
}

// Encode converts Tokens into LSP's flat (Δline, Δchar, length, type,
// modifiers) integer stream (spec §4.11), using doc's line index for the
// client's negotiated position encoding. Modifiers is always 0 — this
// service defines no modifier bitset.
func Encode(doc *cssdoc.Document, tokens []Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevChar := 0, 0
	for _, t := range tokens {
		pos := doc.ByteToPosition(t.Start)
		deltaLine := pos.Line - prevLine
		deltaChar := pos.Character
		if deltaLine == 0 {
			deltaChar = pos.Character - prevChar
		}
		data = append(data, uint32(deltaLine), uint32(deltaChar), uint32(lengthUTF16(doc, t)), uint32(t.Kind), 0)
		prevLine, prevChar = pos.Line, pos.Character
	}
	return data
}

// lengthUTF16 returns a token's length in UTF-16 code units, matching the
// column encoding Encode uses for Δchar.
func lengthUTF16(doc *cssdoc.Document, t Token) int32 {
	startPos := doc.ByteToPosition(t.Start)
	endPos := doc.ByteToPosition(t.Start + t.Len)
	if startPos.Line == endPos.Line {
		return int32(endPos.Character - startPos.Character)
	}
	// a semantic token never spans a line break in this grammar (tokens
	// are lexical units); fall back to the byte length if it somehow does.
	return t.Len
}
