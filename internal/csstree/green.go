// Package csstree implements the red/green syntax tree (spec §3, §4.5,
// §4.6): immutable, hash-consed green nodes shared across edits, plus
// ephemeral red wrappers that add parent and absolute-offset information on
// demand. The shape is rust-analyzer's rowan design, carried over via
// original_source/row_parser rather than from any Go reference in the pack
// (esbuild builds a direct non-lossless AST and has no green/red split) —
// see DESIGN.md.
package csstree

import (
	"fmt"

	"github.com/csslsp/csslsp/internal/csskind"
)

// GreenElement is either a GreenToken (a leaf, carrying its own text) or a
// GreenNode (an interior frame, carrying only its total length).
type GreenElement interface {
	Kind() csskind.Kind
	TextLen() int32
	isGreenElement()
}

// GreenToken is a leaf: a single lexed token (trivia included) with its kind
// and exact text. Tokens are interned by (kind, text) so that e.g. every
// ";" in a file shares one GreenToken.
type GreenToken struct {
	kind csskind.Kind
	text string
}

func (t *GreenToken) Kind() csskind.Kind { return t.kind }
func (t *GreenToken) TextLen() int32     { return int32(len(t.text)) }
func (t *GreenToken) Text() string       { return t.text }
func (*GreenToken) isGreenElement()      {}

// GreenNode is an interior frame: a kind plus an ordered list of children
// (nodes and/or tokens). Nodes are interned by (kind, child identities) so
// that unchanged subtrees are shared bit-for-bit across incremental edits.
type GreenNode struct {
	kind     csskind.Kind
	children []GreenElement
	textLen  int32
}

func (n *GreenNode) Kind() csskind.Kind       { return n.kind }
func (n *GreenNode) TextLen() int32           { return n.textLen }
func (n *GreenNode) Children() []GreenElement { return n.children }
func (*GreenNode) isGreenElement()            {}

// Interner hash-conses GreenTokens and GreenNodes. One Interner is shared by
// every parse that wants subtree sharing with prior parses (the source
// document keeps one across incremental reparses); a throwaway one is fine
// for a single full parse.
type Interner struct {
	tokens map[tokenKey]*GreenToken
	nodes  map[string]*GreenNode
}

func NewInterner() *Interner {
	return &Interner{tokens: make(map[tokenKey]*GreenToken), nodes: make(map[string]*GreenNode)}
}

type tokenKey struct {
	kind csskind.Kind
	text string
}

func (in *Interner) Token(kind csskind.Kind, text string) *GreenToken {
	key := tokenKey{kind, text}
	if t, ok := in.tokens[key]; ok {
		return t
	}
	t := &GreenToken{kind: kind, text: text}
	in.tokens[key] = t
	return t
}

func (in *Interner) Node(kind csskind.Kind, children []GreenElement) *GreenNode {
	key := nodeKey(kind, children)
	if n, ok := in.nodes[key]; ok {
		return n
	}
	var total int32
	for _, c := range children {
		total += c.TextLen()
	}
	n := &GreenNode{kind: kind, children: children, textLen: total}
	in.nodes[key] = n
	return n
}

// nodeKey builds a cheap structural key out of child pointer identities
// (already-interned children compare by address) plus, for tokens that
// haven't gone through the interner, their kind+text.
func nodeKey(kind csskind.Kind, children []GreenElement) string {
	s := fmt.Sprintf("%d#", kind)
	for _, c := range children {
		switch e := c.(type) {
		case *GreenToken:
			s += fmt.Sprintf("t%p|", e)
		case *GreenNode:
			s += fmt.Sprintf("n%p|", e)
		}
	}
	return s
}
