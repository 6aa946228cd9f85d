// Package cssevent is the event-driven parser core (spec §4.3, C4). It is
// grounded on the rust-analyzer-style marker/event parser described by the
// original `csslancer` crate's row_parser::parser module (the Rust source
// itself was not retrievable in this pack, only its grammar's call sites —
// see parser.go and the grammar files in the cssparser package for how the
// grammar calls through this API). The parser owns the token stream and an append-only
// event vector; rollback is "truncate the vector and rewind the cursor",
// which is what makes backtracking grammar functions cheap.
package cssevent

import (
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/cssinput"
)

// EventKind distinguishes the six event shapes the parser records.
type EventKind uint8

const (
	EvTombstone EventKind = iota // placeholder written by start(), rewritten by complete()
	EvEnter
	EvExit
	EvToken
	EvError
	EvForward // a completed Enter that precede() rewrote to point at its wrapper
)

type Event struct {
	Kind EventKind

	// EvEnter: the node kind.
	// EvForward: the node kind this event itself would have opened, plus
	// FwdDelta pointing forward to the Enter (or further Forward) event for
	// the marker that now wraps it.
	NodeKind csskind.Kind
	FwdDelta int

	// EvToken
	TokenCount int

	// EvError
	Message string
}

// Parser drives the token stream and records events; it never builds a tree
// itself (that is the tree builder's job, C6).
type Parser struct {
	input  cssinput.Input
	pos    int // index into input.Tokens, including the trailing EOF
	events []Event
}

func New(input cssinput.Input) *Parser {
	return &Parser{input: input}
}

func (p *Parser) Events() []Event { return p.events }
func (p *Parser) Input() cssinput.Input { return p.input }

// Marker is a checkpoint returned by Start. Exactly one of Complete,
// Rollback or Abandon must eventually be called on it.
type Marker struct {
	eventIdx int
}

// CompletedMarker is returned by Complete; Precede lets a parent wrap it.
type CompletedMarker struct {
	eventIdx int
}

func (p *Parser) Start() Marker {
	idx := len(p.events)
	p.events = append(p.events, Event{Kind: EvTombstone})
	return Marker{eventIdx: idx}
}

// Complete rewrites the tombstone Enter as Enter(kind) and emits the
// matching Exit, closing the subtree started by m.
func (p *Parser) Complete(m Marker, kind csskind.Kind) CompletedMarker {
	p.events[m.eventIdx] = Event{Kind: EvEnter, NodeKind: kind}
	p.events = append(p.events, Event{Kind: EvExit})
	return CompletedMarker{eventIdx: m.eventIdx}
}

// Rollback truncates the event vector back to m's start and rewinds the
// input cursor, undoing everything recorded since Start — an O(1) abort.
func (p *Parser) Rollback(m Marker) {
	// Figure out how many tokens were consumed since m was opened so the
	// cursor can be rewound; tokens are only consumed via Bump, which always
	// appends an EvToken event, so replaying the suffix tells us exactly how
	// far to step back.
	consumed := 0
	for i := m.eventIdx; i < len(p.events); i++ {
		if p.events[i].Kind == EvToken {
			consumed += p.events[i].TokenCount
		}
	}
	p.pos -= consumed
	p.events = p.events[:m.eventIdx]
}

// Abandon drops m without emitting anything; used when a parent will
// immediately re-wrap the same span via Precede.
func (p *Parser) Abandon(m Marker) {
	if m.eventIdx == len(p.events)-1 {
		p.events = p.events[:m.eventIdx]
	}
}

// Precede allocates a new Marker that, once completed, will wrap cm in its
// subtree — used for left-associative binary expressions built bottom-up.
// cm's own Enter event is rewritten in place to a Forward event carrying its
// original kind plus the delta to the new marker's (not yet completed) Enter;
// the tree builder follows this chain to open both nodes at cm's position.
func (p *Parser) Precede(cm CompletedMarker) Marker {
	m := p.Start()
	old := p.events[cm.eventIdx]
	p.events[cm.eventIdx] = Event{Kind: EvForward, NodeKind: old.NodeKind, FwdDelta: m.eventIdx - cm.eventIdx}
	return m
}

// --- token-stream queries ---

func (p *Parser) nth(n int) cssinput.Token {
	i := p.pos + n
	if i >= len(p.input.Tokens) {
		return p.input.Tokens[len(p.input.Tokens)-1] // EOF sentinel
	}
	return p.input.Tokens[i]
}

func (p *Parser) Current() csskind.Kind { return p.nth(0).Kind }
func (p *Parser) CurrentContextual() csskind.ContextualKind { return p.nth(0).Contextual }

func (p *Parser) Nth(n int) csskind.Kind { return p.nth(n).Kind }
func (p *Parser) NthContextual(n int) csskind.ContextualKind { return p.nth(n).Contextual }

func (p *Parser) At(kind csskind.Kind) bool { return p.Current() == kind }

func (p *Parser) AtContextual(cx csskind.ContextualKind) bool {
	return p.CurrentContextual() == cx
}

func (p *Parser) AtTS(set TokenSet) bool { return set.Contains(p.Current()) }

func (p *Parser) AtEOF() bool { return p.Current() == csskind.EOF }

// TextAt returns the source text of the token n positions ahead of the
// cursor (0 = current). Grammar productions use this for case-insensitive
// name comparisons (at-rule names, function names, keyframe selectors).
func (p *Parser) TextAt(n int) string {
	tok := p.nth(n)
	if tok.LexedIndex < 0 || tok.LexedIndex >= len(p.input.Lexed.Tokens) {
		return ""
	}
	return p.input.Lexed.Text(p.input.Lexed.Tokens[tok.LexedIndex])
}

func (p *Parser) CurrentText() string { return p.TextAt(0) }

// HasWhitespace reports whether trivia precedes the current token — needed
// to distinguish e.g. "url(" (joint) from "url (" (not joint, spec §3).
func (p *Parser) HasWhitespace() bool { return !p.nth(0).Joint }

func (p *Parser) HasNWhitespace(k int) bool { return p.nth(0).NoWhitespaceN >= k }

// --- consuming ---

// Bump consumes exactly one token, asserting it is of the given kind.
func (p *Parser) Bump(kind csskind.Kind) {
	if p.Current() != kind {
		panic("cssevent: Bump kind mismatch (internal grammar bug)")
	}
	p.BumpAny()
}

// BumpAny consumes whatever the current token is (used for error recovery
// and for tokens matched only via a contextual kind).
func (p *Parser) BumpAny() {
	if p.AtEOF() {
		return
	}
	p.pos++
	if n := len(p.events); n > 0 && p.events[n-1].Kind == EvToken {
		p.events[n-1].TokenCount++
		return
	}
	p.events = append(p.events, Event{Kind: EvToken, TokenCount: 1})
}

// Eat consumes the current token and returns true if it matches kind.
func (p *Parser) Eat(kind csskind.Kind) bool {
	if !p.At(kind) {
		return false
	}
	p.BumpAny()
	return true
}

// EatContextual consumes the current token if it matches the contextual kind.
func (p *Parser) EatContextual(cx csskind.ContextualKind) bool {
	if !p.AtContextual(cx) {
		return false
	}
	p.BumpAny()
	return true
}

// Error records a diagnostic at the current position without consuming.
func (p *Parser) Error(msg string) {
	p.events = append(p.events, Event{Kind: EvError, Message: msg})
}

// ErrAndBump records an error and then unconditionally consumes one token,
// guaranteeing forward progress.
func (p *Parser) ErrAndBump(msg string) {
	p.Error(msg)
	p.BumpAny()
}

// ErrResync records an error, then consumes tokens until one of recover is
// seen (and consumed) or one of stop is seen (left in the stream) or EOF is
// reached. Returns whether resync found a recovery point before EOF.
func (p *Parser) ErrResync(msg string, recover TokenSet, stop TokenSet) bool {
	p.Error(msg)
	for {
		if p.AtEOF() {
			return false
		}
		if stop.Contains(p.Current()) {
			return true
		}
		if recover.Contains(p.Current()) {
			p.BumpAny()
			return true
		}
		p.BumpAny()
	}
}

// TokenSet is a small closed-world bitset over csskind.Kind, cheap enough to
// pass by value through every at_ts/resync call.
type TokenSet struct {
	bits [3]uint64 // 192 bits, comfortably covers the kind enum
}

func NewTokenSet(kinds ...csskind.Kind) TokenSet {
	var ts TokenSet
	for _, k := range kinds {
		ts = ts.With(k)
	}
	return ts
}

func (ts TokenSet) With(k csskind.Kind) TokenSet {
	w, b := int(k)/64, uint(k)%64
	ts.bits[w] |= 1 << b
	return ts
}

func (ts TokenSet) Union(other TokenSet) TokenSet {
	for i := range ts.bits {
		ts.bits[i] |= other.bits[i]
	}
	return ts
}

func (ts TokenSet) Contains(k csskind.Kind) bool {
	w, b := int(k)/64, uint(k)%64
	if w >= len(ts.bits) {
		return false
	}
	return ts.bits[w]&(1<<b) != 0
}
