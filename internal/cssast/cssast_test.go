package cssast

import (
	"testing"

	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
	"github.com/stretchr/testify/require"
)

func parseRoot(t *testing.T, src string) *csstree.RedNode {
	t.Helper()
	parse := cssparser.Parse(logger.Source{Contents: src, KeyPath: "<test>", PrettyPath: "<test>"})
	require.Empty(t, parse.Errors, "source must parse cleanly: %q", src)
	return parse.RedRoot()
}

func firstRuleset(t *testing.T, root *csstree.RedNode) Ruleset {
	t.Helper()
	for _, c := range root.Children() {
		if c.Node == nil {
			continue
		}
		if rs, ok := CastRuleset(c.Node); ok {
			return rs
		}
	}
	t.Fatalf("no ruleset found")
	return Ruleset{}
}

func TestRulesetSelectorList(t *testing.T) {
	root := parseRoot(t, `a.foo#bar:hover[type="text"] { color: red !important; }`)
	rs := firstRuleset(t, root)

	selectors, ok := rs.SelectorList()
	require.True(t, ok)
	require.Len(t, selectors, 1)

	simples := selectors[0].SimpleSelectors()
	require.Len(t, simples, 1)

	ss := simples[0]
	require.Equal(t, "a", ss.TypeName())
	require.Equal(t, []string{"foo"}, ss.ClassSelectors())
	require.Equal(t, []string{"bar"}, ss.IDSelectors())

	pseudos := ss.PseudoClassSelectors()
	require.Len(t, pseudos, 1)
	require.Equal(t, "hover", pseudos[0].Name())
	require.False(t, pseudos[0].IsElement())

	attrs := ss.AttributeSelectors()
	require.Len(t, attrs, 1)
	require.Equal(t, `[type="text"]`, attrs[0].Text())
}

func TestDeclarationPropertyAndImportant(t *testing.T) {
	root := parseRoot(t, `a { color: red !important; margin: 0; }`)
	rs := firstRuleset(t, root)

	// Declarations sit under the ruleset's DECLARATIONS block node.
	var decls []Declaration
	for _, c := range rs.Red.Children() {
		if c.Node == nil || c.Node.Kind() != csskind.DECLARATIONS {
			continue
		}
		for _, dc := range c.Node.Children() {
			if dc.Node == nil {
				continue
			}
			if d, ok := CastDeclaration(dc.Node); ok {
				decls = append(decls, d)
			}
		}
	}
	require.Len(t, decls, 2)
	require.Equal(t, "color", decls[0].PropertyName())
	require.True(t, decls[0].Important())
	require.Equal(t, "margin", decls[1].PropertyName())
	require.False(t, decls[1].Important())
}

func TestPseudoElementSelector(t *testing.T) {
	root := parseRoot(t, `a::before { content: ""; }`)
	rs := firstRuleset(t, root)
	selectors, ok := rs.SelectorList()
	require.True(t, ok)
	ss := selectors[0].SimpleSelectors()[0]

	elems := ss.PseudoElementSelectors()
	require.Len(t, elems, 1)
	require.Equal(t, "before", elems[0].Name())
	require.True(t, elems[0].IsElement())
}

func TestCombinatorText(t *testing.T) {
	root := parseRoot(t, `a > b { color: red; }`)
	rs := firstRuleset(t, root)
	selectors, ok := rs.SelectorList()
	require.True(t, ok)

	combinators := selectors[0].Combinators()
	require.Len(t, combinators, 1)
	require.Equal(t, ">", combinators[0].Text())
}

func TestUnknownAtRuleName(t *testing.T) {
	root := parseRoot(t, `@weird-vendor-rule foo bar;`)
	var found UnknownAtRule
	var ok bool
	for _, c := range root.Children() {
		if c.Node == nil {
			continue
		}
		if found, ok = CastUnknownAtRule(c.Node); ok {
			break
		}
	}
	require.True(t, ok)
	require.Equal(t, "weird-vendor-rule", found.Name())
}

func TestMediaAtRuleQueryText(t *testing.T) {
	root := parseRoot(t, `@media (min-width: 100px) { a { color: red; } }`)
	var found MediaAtRule
	var ok bool
	for _, c := range root.Children() {
		if c.Node == nil {
			continue
		}
		if found, ok = CastMediaAtRule(c.Node); ok {
			break
		}
	}
	require.True(t, ok)
	require.Contains(t, found.QueryText(), "min-width")
}

func TestArgumentSelectorLists(t *testing.T) {
	root := parseRoot(t, `:is(a, b.foo) { color: red; }`)
	rs := firstRuleset(t, root)
	selectors, ok := rs.SelectorList()
	require.True(t, ok)
	ss := selectors[0].SimpleSelectors()[0]

	pseudos := ss.PseudoClassSelectors()
	require.Len(t, pseudos, 1)
	require.Equal(t, "is", pseudos[0].Name())

	lists := pseudos[0].ArgumentSelectorLists()
	require.Len(t, lists, 1)
	require.Len(t, lists[0], 2)
}

func TestCastReturnsFalseForWrongKind(t *testing.T) {
	root := parseRoot(t, `a { color: red; }`)
	_, ok := CastMediaAtRule(root)
	require.False(t, ok)

	_, ok = CastSelector(nil)
	require.False(t, ok)
}
