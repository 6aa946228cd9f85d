package cssincr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

func textOf(root *csstree.RedNode) string {
	var out string
	for _, tok := range root.Tokens() {
		out += tok.Text()
	}
	return out
}

func parse(src string) (csstree.Parse[cssparser.SourceFile], *csstree.Interner) {
	in := csstree.NewInterner()
	return cssparser.ParseWithInterner(logger.Source{Contents: src}, in), in
}

func TestReparseTokenLevelIdentEdit(t *testing.T) {
	src := "a { colo: red; }"
	parsed, interner := parse(src)

	// "colo" -> "color": insert "r" at offset 8 (end of "colo", before ':').
	edit := Edit{DeleteRange: logger.Range{Loc: logger.Loc{Start: 8}, Len: 0}, InsertText: "r"}
	result := Reparse(src, parsed.Root, parsed.Errors, edit, interner)

	require.Equal(t, TierToken, result.Tier)
	newSrc := edit.apply(src)
	require.Equal(t, newSrc, textOf(csstree.NewRoot(result.Root)))

	full := cssparser.Parse(logger.Source{Contents: newSrc})
	require.Equal(t, csstree.Dump(csstree.NewRoot(full.Root)), csstree.Dump(csstree.NewRoot(result.Root)))
}

func TestReparseTokenLevelRejectsContextualIdent(t *testing.T) {
	src := "a { color: re; }"
	parsed, interner := parse(src)

	// "re" -> "not" would still be a plain IDENT kind-wise, but "not" is a
	// contextual keyword (spec §4.2), so tier 1 must refuse and fall back
	// to the block tier instead of silently reclassifying it in place.
	edit := Edit{DeleteRange: logger.Range{Loc: logger.Loc{Start: 11}, Len: 2}, InsertText: "not"}
	result := Reparse(src, parsed.Root, parsed.Errors, edit, interner)
	require.Equal(t, TierBlock, result.Tier)

	newSrc := edit.apply(src)
	require.Equal(t, newSrc, textOf(csstree.NewRoot(result.Root)))
}

func TestReparseBlockLevelAddsDeclaration(t *testing.T) {
	src := "a { color: red; }"
	parsed, interner := parse(src)

	// Insert a whole new declaration before the closing brace.
	insertAt := int32(len("a { color: red; "))
	edit := Edit{DeleteRange: logger.Range{Loc: logger.Loc{Start: insertAt}, Len: 0}, InsertText: "display: none; "}
	result := Reparse(src, parsed.Root, parsed.Errors, edit, interner)

	require.Equal(t, TierBlock, result.Tier)
	newSrc := edit.apply(src)
	require.Equal(t, newSrc, textOf(csstree.NewRoot(result.Root)))

	full := cssparser.Parse(logger.Source{Contents: newSrc})
	require.Equal(t, csstree.Dump(csstree.NewRoot(full.Root)), csstree.Dump(csstree.NewRoot(result.Root)))
}

func TestReparseFullFallbackOnBraceDeletion(t *testing.T) {
	src := "a { color: red; }"
	parsed, interner := parse(src)

	// Deleting the opening brace isn't a reparsable token (punctuation) and
	// leaves the enclosing DECLARATIONS node's own text no longer starting
	// with '{', so both tiers 1 and 2 must refuse.
	edit := Edit{DeleteRange: logger.Range{Loc: logger.Loc{Start: 2}, Len: 1}, InsertText: ""}
	result := Reparse(src, parsed.Root, parsed.Errors, edit, interner)

	require.Equal(t, TierFull, result.Tier)
	newSrc := edit.apply(src)
	require.Equal(t, newSrc, textOf(csstree.NewRoot(result.Root)))
}

func TestReparseBlockLevelPageMarginBox(t *testing.T) {
	src := "@page { @top-left { content: 'x'; } }"
	parsed, interner := parse(src)

	insertAt := int32(len("@page { @top-left { content: 'x'; "))
	edit := Edit{DeleteRange: logger.Range{Loc: logger.Loc{Start: insertAt}, Len: 0}, InsertText: "color: red; "}
	result := Reparse(src, parsed.Root, parsed.Errors, edit, interner)

	newSrc := edit.apply(src)
	require.Equal(t, newSrc, textOf(csstree.NewRoot(result.Root)))
	full := cssparser.Parse(logger.Source{Contents: newSrc})
	require.Equal(t, csstree.Dump(csstree.NewRoot(full.Root)), csstree.Dump(csstree.NewRoot(result.Root)))
}

func TestMergeErrorsDropsInsideShiftsAfter(t *testing.T) {
	old := []csstree.SyntaxError{
		{Range: logger.Range{Loc: logger.Loc{Start: 0}, Len: 1}, Message: "before"},
		{Range: logger.Range{Loc: logger.Loc{Start: 5}, Len: 1}, Message: "inside"},
		{Range: logger.Range{Loc: logger.Loc{Start: 20}, Len: 1}, Message: "after"},
	}
	replaced := logger.Range{Loc: logger.Loc{Start: 4}, Len: 10}
	merged := mergeErrors(old, nil, replaced, 3)

	require.Len(t, merged, 2)
	require.Equal(t, "before", merged[0].Message)
	require.Equal(t, int32(0), merged[0].Range.Loc.Start)
	require.Equal(t, "after", merged[1].Message)
	require.Equal(t, int32(23), merged[1].Range.Loc.Start)
}

func TestMergeErrorsDedupes(t *testing.T) {
	// Two fresh errors that land on the same absolute (start, len, message)
	// once offset by the replaced range's start collapse to one.
	fresh := []csstree.SyntaxError{
		{Range: logger.Range{Loc: logger.Loc{Start: 2}, Len: 1}, Message: "dup"},
		{Range: logger.Range{Loc: logger.Loc{Start: 2}, Len: 1}, Message: "dup"},
	}
	merged := mergeErrors(nil, fresh, logger.Range{Loc: logger.Loc{Start: 10}}, 0)
	require.Len(t, merged, 1)
	require.Equal(t, int32(12), merged[0].Range.Loc.Start)
}
