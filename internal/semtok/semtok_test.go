package semtok

import (
	"testing"

	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasicRuleset(t *testing.T) {
	doc := cssdoc.NewDetached("a { color: red; }")
	tokens := Tokenize(doc.Root())

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Contains(t, kinds, Identifier)
	require.Contains(t, kinds, Property)
	require.Contains(t, kinds, Punctuation)
}

func TestEncodeProducesQuintuples(t *testing.T) {
	doc := cssdoc.NewDetached("a { color: red; }\nb { color: blue; }")
	data := Encode(doc, Tokenize(doc.Root()))
	require.Zero(t, len(data)%5)
}

func TestFullThenDeltaNoChangeIsEmpty(t *testing.T) {
	doc := cssdoc.NewDetached("a { color: red; }")
	cache := NewCache()

	_, id := Full(doc, cache)
	edits, _, _, ok := Delta(doc, cache, id)
	require.True(t, ok)
	require.Empty(t, edits)
}

func TestDeltaUnknownResultIDFallsBackToFull(t *testing.T) {
	doc := cssdoc.NewDetached("a { color: red; }")
	cache := NewCache()

	edits, full, newID, ok := Delta(doc, cache, "not-a-real-id")
	require.False(t, ok)
	require.Nil(t, edits)
	require.NotEmpty(t, full)
	require.NotEmpty(t, newID)
}

func TestDiffFindsSingleChangedToken(t *testing.T) {
	docA := cssdoc.NewDetached("a { color: red; }")
	docB := cssdoc.NewDetached("a { color: blue; }")

	dataA := Encode(docA, Tokenize(docA.Root()))
	dataB := Encode(docB, Tokenize(docB.Root()))

	// "red" -> "blue" changes two 5-int tuples: the value's own length, and
	// the following ";" tuple's delta-start (it moves one column right).
	// Both sit next to each other, so the diff is a single 10-int edit.
	edits := Diff(dataA, dataB)
	require.Len(t, edits, 1)
	require.Equal(t, uint32(10), edits[0].DeleteCount)
}
