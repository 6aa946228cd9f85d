package csstree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csslexer"
	"github.com/csslsp/csslsp/internal/logger"
)

func parseSimpleSelectorPair(t *testing.T, src string) (*GreenNode, []SyntaxError) {
	t.Helper()
	lexed := csslexer.Tokenize(logger.Source{Contents: src})
	input := cssinput.Build(lexed)
	p := cssevent.New(input)

	root := p.Start()
	m := p.Start()
	for !p.AtEOF() {
		p.BumpAny()
	}
	p.Complete(m, csskind.SELECTOR)
	p.Complete(root, csskind.SOURCE_FILE)

	return Build(p.Events(), input, NewInterner())
}

func TestBuildRoundTripsSourceText(t *testing.T) {
	src := "a  b /*c*/ d"
	green, errs := parseSimpleSelectorPair(t, src)
	require.Empty(t, errs)
	require.Equal(t, int32(len(src)), green.TextLen())
	require.Equal(t, csskind.SOURCE_FILE, green.Kind())

	red := NewRoot(green)
	var text string
	for _, tok := range red.Tokens() {
		text += tok.Text()
	}
	require.Equal(t, src, text)
}

func TestDumpFormat(t *testing.T) {
	green, _ := parseSimpleSelectorPair(t, "a")
	out := Dump(NewRoot(green))
	require.Contains(t, out, "SOURCE_FILE[0]")
	require.Contains(t, out, "IDENT[0]")
}
