package cssevent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csslexer"
	"github.com/csslsp/csslsp/internal/logger"
)

func inputFor(t *testing.T, src string) cssinput.Input {
	t.Helper()
	lexed := csslexer.Tokenize(logger.Source{Contents: src})
	return cssinput.Build(lexed)
}

func TestMarkerCompleteBalances(t *testing.T) {
	in := inputFor(t, "a b")
	p := New(in)
	m := p.Start()
	p.Bump(csskind.IDENT)
	p.Bump(csskind.IDENT)
	p.Complete(m, csskind.SELECTOR)

	events := p.Events()
	require.Equal(t, EvEnter, events[0].Kind)
	require.Equal(t, csskind.SELECTOR, events[0].NodeKind)
	require.Equal(t, EvToken, events[1].Kind)
	require.Equal(t, 2, events[1].TokenCount)
	require.Equal(t, EvExit, events[len(events)-1].Kind)
}

func TestRollbackUndoesConsumedTokens(t *testing.T) {
	in := inputFor(t, "a b")
	p := New(in)
	m := p.Start()
	p.BumpAny()
	p.Rollback(m)

	require.Equal(t, csskind.IDENT, p.Current())
	require.Empty(t, p.Events())
}

func TestPrecedeWrapsPriorNode(t *testing.T) {
	in := inputFor(t, "a b c")
	p := New(in)

	m1 := p.Start()
	p.BumpAny()
	lhs := p.Complete(m1, csskind.TERM)

	wrap := p.Precede(lhs)
	p.BumpAny()
	p.Complete(wrap, csskind.BINARY_EXPRESSION)

	events := p.Events()
	require.Equal(t, EvForward, events[0].Kind)
	require.Equal(t, csskind.TERM, events[0].NodeKind)
}

func TestErrResyncStopsAtStopToken(t *testing.T) {
	in := inputFor(t, "a ; b")
	p := New(in)
	stop := NewTokenSet(csskind.SEMICOLON)
	ok := p.ErrResync("bad token", TokenSet{}, stop)
	require.True(t, ok)
	require.True(t, p.At(csskind.SEMICOLON))
}
