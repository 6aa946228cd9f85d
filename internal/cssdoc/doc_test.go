package cssdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csslsp/csslsp/internal/cssincr"
)

func TestNewBuildsLineIndex(t *testing.T) {
	doc := New("file:///a.css", "a {\r\n  color: red;\r\n}\r\n", 1)

	require.Equal(t, []lineStart{{0, 0}, {5, 5}, {20, 20}, {23, 23}}, doc.lines)
	require.Equal(t, 0, doc.ByteToLine(0))
	require.Equal(t, 1, doc.ByteToLine(5))
	require.Equal(t, 1, doc.ByteToLine(19))
	require.Equal(t, 2, doc.ByteToLine(20))
}

func TestCRLFCollapsesToSingleLineBreak(t *testing.T) {
	// A lone "\r\n" must produce exactly one line break, not two, so line 1
	// starts right after both bytes.
	doc := NewDetached("x\r\ny")
	require.Equal(t, []lineStart{{0, 0}, {3, 3}}, doc.lines)
}

func TestPositionRoundTripAcrossMultibyteRune(t *testing.T) {
	// "é" is 2 UTF-8 bytes but 1 UTF-16 code unit; everything after it must
	// be off by one byte relative to its UTF-16 character count.
	doc := NewDetached("a { /* héllo */ }")

	before := doc.ByteToPosition(8)
	require.Equal(t, Position{Line: 0, Character: 8}, before)

	after := doc.ByteToPosition(10)
	require.Equal(t, Position{Line: 0, Character: 9}, after)

	require.Equal(t, int32(8), doc.PositionToByte(Position{Line: 0, Character: 8}))
	require.Equal(t, int32(10), doc.PositionToByte(Position{Line: 0, Character: 9}))
}

func TestNewDetachedStringElidesContents(t *testing.T) {
	doc := NewDetached("a { color: red; }")
	require.NotContains(t, doc.String(), "color: red")
	require.Contains(t, doc.String(), "detached:///source")
}

func TestApplyChangeTokenLevel(t *testing.T) {
	doc := New("file:///a.css", "a { colo: red; }", 1)

	// "colo" -> "color": insert "r" right after "colo", before ':'.
	tier := doc.ApplyChange(Change{
		HasRange: true,
		Start:    Position{Line: 0, Character: 8},
		End:      Position{Line: 0, Character: 8},
		Text:     "r",
	})

	require.Equal(t, cssincr.TierToken, tier)
	require.Equal(t, "a { color: red; }", doc.Text())
	require.Equal(t, []lineStart{{0, 0}}, doc.lines)
}

func TestApplyChangeRebuildsLineIndexAfterNewline(t *testing.T) {
	doc := New("file:///a.css", "a { color: red; }", 1)
	require.Equal(t, []lineStart{{0, 0}}, doc.lines)

	tier := doc.ApplyChange(Change{
		HasRange: true,
		Start:    Position{Line: 0, Character: 17},
		End:      Position{Line: 0, Character: 17},
		Text:     "\ndiv { color: blue; }",
	})

	require.Equal(t, cssincr.TierFull, tier)
	require.Equal(t, "a { color: red; }\ndiv { color: blue; }", doc.Text())
	require.Len(t, doc.lines, 2)
	require.Equal(t, int32(18), doc.lines[1].utf8Offset)
	require.Equal(t, 1, doc.ByteToLine(18))
}

func TestReplaceFullDocument(t *testing.T) {
	doc := New("file:///a.css", "a { color: red; }", 1)
	doc.Replace("b { color: blue; }\nc { color: green; }")

	require.True(t, strings.HasPrefix(doc.Text(), "b { color: blue; }"))
	require.Len(t, doc.lines, 2)

	tier := doc.ApplyChange(Change{HasRange: false, Text: "d {}"})
	require.Equal(t, cssincr.TierFull, tier)
	require.Equal(t, "d {}", doc.Text())
	require.Len(t, doc.lines, 1)
}
