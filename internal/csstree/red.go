package csstree

import "github.com/csslsp/csslsp/internal/csskind"

// RedNode is a cheap, ephemeral view over a GreenNode that adds parent and
// absolute-offset information. Red nodes are created on demand by walking
// down from a root; nothing caches them, so holding one across an edit is a
// bug (the green tree it points into may have been replaced).
type RedNode struct {
	green      *GreenNode
	parent     *RedNode
	indexInRow int   // this node's index among parent's children
	offset     int32 // absolute byte offset of this node's first character
}

func NewRoot(green *GreenNode) *RedNode {
	return &RedNode{green: green, offset: 0}
}

func (r *RedNode) Green() *GreenNode  { return r.green }
func (r *RedNode) Kind() csskind.Kind { return r.green.kind }
func (r *RedNode) Offset() int32      { return r.offset }
func (r *RedNode) EndOffset() int32   { return r.offset + r.green.textLen }
func (r *RedNode) Parent() *RedNode   { return r.parent }
func (r *RedNode) IndexInParent() int { return r.indexInRow }

// Element is either a RedNode (interior) or a RedToken (leaf) — the red
// analogue of GreenElement.
type Element struct {
	Node  *RedNode
	Token *RedToken
}

func (e Element) Kind() csskind.Kind {
	if e.Node != nil {
		return e.Node.Kind()
	}
	return e.Token.Kind()
}

func (e Element) Offset() int32 {
	if e.Node != nil {
		return e.Node.Offset()
	}
	return e.Token.Offset()
}

func (e Element) EndOffset() int32 {
	if e.Node != nil {
		return e.Node.EndOffset()
	}
	return e.Token.EndOffset()
}

// RedToken is the leaf counterpart of RedNode.
type RedToken struct {
	green      *GreenToken
	parent     *RedNode
	indexInRow int
	offset     int32
}

func (t *RedToken) Green() *GreenToken { return t.green }
func (t *RedToken) Kind() csskind.Kind { return t.green.kind }
func (t *RedToken) Text() string       { return t.green.text }
func (t *RedToken) Offset() int32      { return t.offset }
func (t *RedToken) EndOffset() int32   { return t.offset + t.green.TextLen() }
func (t *RedToken) Parent() *RedNode   { return t.parent }
func (t *RedToken) IndexInParent() int { return t.indexInRow }

// Children lazily materializes the direct children of r as red elements.
func (r *RedNode) Children() []Element {
	out := make([]Element, len(r.green.children))
	off := r.offset
	for i, c := range r.green.children {
		switch e := c.(type) {
		case *GreenNode:
			out[i] = Element{Node: &RedNode{green: e, parent: r, indexInRow: i, offset: off}}
		case *GreenToken:
			out[i] = Element{Token: &RedToken{green: e, parent: r, indexInRow: i, offset: off}}
		}
		off += c.TextLen()
	}
	return out
}

// Tokens yields only the leaf descendants of r, in document order.
func (r *RedNode) Tokens() []*RedToken {
	var out []*RedToken
	var walk func(n *RedNode)
	walk = func(n *RedNode) {
		for _, c := range n.Children() {
			if c.Token != nil {
				out = append(out, c.Token)
			} else {
				walk(c.Node)
			}
		}
	}
	walk(r)
	return out
}

// Ancestors yields r, then its parent, then its parent's parent, ... up to
// (and including) the root.
func (r *RedNode) Ancestors() []*RedNode {
	var out []*RedNode
	for n := r; n != nil; n = n.parent {
		out = append(out, n)
	}
	return out
}

// Preorder walks r and every descendant node (not tokens) depth-first,
// calling visit on each; visit returning false skips that subtree's children.
func (r *RedNode) Preorder(visit func(*RedNode) bool) {
	if !visit(r) {
		return
	}
	for _, c := range r.Children() {
		if c.Node != nil {
			c.Node.Preorder(visit)
		}
	}
}

// TokenAtOffset finds the token whose range contains loc. At a boundary
// between two tokens both are returned, non-trivia token (if any) first —
// callers needing a single answer (C10) pick accordingly.
func (r *RedNode) TokenAtOffset(loc int32) []*RedToken {
	var hits []*RedToken
	for _, tok := range r.Tokens() {
		if loc >= tok.Offset() && loc <= tok.EndOffset() {
			hits = append(hits, tok)
		}
	}
	return hits
}

// NodeCovering descends from r to the smallest node whose range fully
// contains [start, end] (spec §4.7's "smallest enclosing node of kind
// declarations" starts from this). Unlike TokenCovering this always
// succeeds (worst case it returns r itself), since an edit range can span
// more than one token.
func (r *RedNode) NodeCovering(start, end int32) *RedNode {
	cur := r
	for {
		advanced := false
		for _, c := range cur.Children() {
			if c.Node != nil && c.Offset() <= start && c.EndOffset() >= end {
				cur = c.Node
				advanced = true
				break
			}
		}
		if !advanced {
			return cur
		}
	}
}

// TokenCovering returns the single token whose range fully contains
// [start, end], or nil if no one token does (spec §4.7's "smallest token
// covering delete_range"). Tokens partition the text and never overlap, so
// at most one non-boundary match exists; at an exact boundary (start==end
// == a shared edge) the earlier token wins, matching a left-biased insert.
func (r *RedNode) TokenCovering(start, end int32) *RedToken {
	for _, tok := range r.Tokens() {
		if tok.Offset() <= start && tok.EndOffset() >= end {
			return tok
		}
	}
	return nil
}
