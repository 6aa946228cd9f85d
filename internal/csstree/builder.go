package csstree

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/logger"
)

// SyntaxError is one diagnostic attached to a finished parse (spec §3, §7).
type SyntaxError struct {
	Range   logger.Range
	Message string
}

// Parse is a green root plus its structured errors. The type parameter is a
// marker only (e.g. SourceFile, DeclarationsBlock), letting a caller that
// knows which grammar entry point produced a Parse get a typed root back
// from cssast without a runtime kind check; Parse itself never inspects T.
type Parse[T any] struct {
	Root   *GreenNode
	Errors []SyntaxError
}

func (p Parse[T]) RedRoot() *RedNode { return NewRoot(p.Root) }

// Build replays a recorded event stream against the lexed token stream,
// producing a green tree (spec §4.5). It consumes the lexed stream exactly
// once; the root's total text length always equals the source length.
func Build(events []cssevent.Event, input cssinput.Input, in *Interner) (*GreenNode, []SyntaxError) {
	b := &builder{events: events, input: input, interner: in, skip: make([]bool, len(events))}
	b.run()
	if b.root == nil || len(b.stack) != 0 {
		panic("csstree: unbalanced events (internal grammar bug)")
	}
	return b.root, b.errors
}

type frame struct {
	kind     csskind.Kind
	children []GreenElement
}

type builder struct {
	events   []cssevent.Event
	input    cssinput.Input
	interner *Interner

	skip []bool // events consumed only as part of a forward chain

	lexedPos int // cursor into input.Lexed.Tokens (includes trivia)
	inputPos int // cursor into input.Tokens (non-trivia only)
	offset   int32

	stack  []*frame
	root   *GreenNode
	errors []SyntaxError
}

func (b *builder) push(kind csskind.Kind) {
	b.stack = append(b.stack, &frame{kind: kind})
}

func (b *builder) pop() {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := b.interner.Node(f.kind, f.children)
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.children = append(top.children, node)
	} else {
		b.root = node
	}
}

func (b *builder) attach(el GreenElement) {
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, el)
}

func (b *builder) run() {
	for i := 0; i < len(b.events); i++ {
		if b.skip[i] {
			continue
		}
		ev := b.events[i]
		if (ev.Kind == cssevent.EvEnter || ev.Kind == cssevent.EvForward) && len(b.stack) > 0 && b.inputPos < len(b.input.Tokens) {
			// Trivia before a node's first token belongs to the enclosing
			// frame, so no node starts with whitespace or a comment.
			for target := b.input.Tokens[b.inputPos].LexedIndex; b.lexedPos < target; b.lexedPos++ {
				b.attachLexed(b.lexedPos)
			}
		}
		switch ev.Kind {
		case cssevent.EvEnter:
			b.push(ev.NodeKind)

		case cssevent.EvForward:
			for _, kind := range b.followForward(i) {
				b.push(kind)
			}

		case cssevent.EvExit:
			if len(b.stack) == 1 {
				b.attachTrailingTrivia()
			}
			b.pop()

		case cssevent.EvToken:
			for n := 0; n < ev.TokenCount; n++ {
				b.consumeOneInputToken()
			}

		case cssevent.EvError:
			b.errors = append(b.errors, SyntaxError{
				Range:   logger.Range{Loc: logger.Loc{Start: b.offset}, Len: 0},
				Message: ev.Message,
			})

		case cssevent.EvTombstone:
			// A marker started but never completed/abandoned. Shouldn't
			// happen in a grammar that always balances its markers.
		}
	}
}

// followForward walks the Forward chain starting at i and returns the kinds
// it passes through, outermost (the final real Enter) last... actually in
// the order they must be *opened*: outermost first. Every event visited
// after i in the chain is marked skip so the main loop treats it as a
// no-op when physically reached.
func (b *builder) followForward(i int) []csskind.Kind {
	var innerFirst []csskind.Kind
	idx := i
	for {
		ev := b.events[idx]
		innerFirst = append(innerFirst, ev.NodeKind)
		if ev.Kind != cssevent.EvForward {
			break
		}
		next := idx + ev.FwdDelta
		b.skip[next] = true
		idx = next
	}
	// innerFirst is [original, ..., outermost]; open outermost first.
	out := make([]csskind.Kind, len(innerFirst))
	for i, k := range innerFirst {
		out[len(out)-1-i] = k
	}
	return out
}

// consumeOneInputToken copies any trivia immediately preceding the next
// non-trivia input token, then the token itself, into the current frame.
// Together with the flush run() does before opening a node, trivia always
// goes to the innermost frame open when it is reached: a node never starts
// with trivia, and trivia after a closed frame's last token lands in its
// parent. There is no doc-comment heuristic: a comment before a declaration
// belongs to the enclosing block, not to that declaration — see DESIGN.md.
// Lossless reconstruction of the source text holds regardless, since every
// trivia token is attached somewhere in document order.
func (b *builder) consumeOneInputToken() {
	target := b.input.Tokens[b.inputPos].LexedIndex
	for b.lexedPos < target {
		b.attachLexed(b.lexedPos)
		b.lexedPos++
	}
	b.attachLexed(b.lexedPos)
	b.lexedPos++
	b.inputPos++
}

func (b *builder) attachLexed(idx int) {
	tok := b.input.Lexed.Tokens[idx]
	text := b.input.Lexed.Text(tok)
	b.attach(b.interner.Token(tok.Kind, text))
	b.offset += int32(len(text))
}

// attachTrailingTrivia flushes any trivia left after the last non-trivia
// token (e.g. a trailing comment at EOF) into the root frame; run() calls it
// just before the root frame closes.
func (b *builder) attachTrailingTrivia() {
	for b.lexedPos < len(b.input.Lexed.Tokens) {
		tok := b.input.Lexed.Tokens[b.lexedPos]
		if tok.Kind == csskind.EOF {
			b.lexedPos++
			continue
		}
		b.attachLexed(b.lexedPos)
		b.lexedPos++
	}
}
