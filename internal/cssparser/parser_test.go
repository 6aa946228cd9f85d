package cssparser

import (
	"strings"
	"testing"

	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) csstree.Parse[SourceFile] {
	t.Helper()
	return Parse(logger.Source{Contents: src, KeyPath: "<test>", PrettyPath: "<test>"})
}

func TestParseRulesetNoErrors(t *testing.T) {
	p := parse(t, `a.foo > b#bar[type="text"]:hover::before { color: red !important; margin: 0; }`)
	require.Empty(t, p.Errors)
	require.Equal(t, csskind.SOURCE_FILE, p.RedRoot().Kind())

	dump := csstree.Dump(p.RedRoot())
	require.Contains(t, dump, csskind.RULESET.String())
	require.Contains(t, dump, csskind.SELECTOR_LIST.String())
	require.Contains(t, dump, csskind.DECLARATION.String())
	require.Contains(t, dump, csskind.PRIO.String())
}

func TestParseAtRules(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want csskind.Kind
	}{
		{"charset", `@charset "utf-8";`, csskind.AT_RULE_CHARSET},
		{"media", `@media (min-width: 100px) { a { color: red; } }`, csskind.AT_RULE_MEDIA},
		{"unknown at-rule falls back", `@weird-vendor-rule foo bar;`, csskind.AT_RULE_UNKNOWN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parse(t, c.src)
			dump := csstree.Dump(p.RedRoot())
			require.Contains(t, dump, c.want.String())
		})
	}
}

func TestParseNestedSelectors(t *testing.T) {
	p := parse(t, `.card { &:hover { color: blue; } }`)
	require.Empty(t, p.Errors)
	dump := csstree.Dump(p.RedRoot())
	require.Contains(t, dump, "DELIM_AMPERSAND")
}

func TestParsePseudoFunctionalArguments(t *testing.T) {
	p := parse(t, `:is(a, .foo, #bar) { color: red; }`)
	require.Empty(t, p.Errors)
	dump := csstree.Dump(p.RedRoot())
	require.Contains(t, dump, csskind.PSEUDO_ARGS_SELECTOR_LIST.String())
}

func TestParseMalformedRulesetRecordsErrorAndRecovers(t *testing.T) {
	p := parse(t, `.broken { color: ; } a { color: red; }`)
	require.NotEmpty(t, p.Errors, "a missing declaration value should be recorded as an error")

	dump := csstree.Dump(p.RedRoot())
	occurrences := strings.Count(dump, csskind.RULESET.String()+"[")
	require.GreaterOrEqual(t, occurrences, 2, "parser must resync and still parse the trailing ruleset")
}

func TestParseUnterminatedBlockStillProducesATree(t *testing.T) {
	p := parse(t, `@media { .x { `)
	require.NotEmpty(t, p.Errors)
	require.Equal(t, csskind.SOURCE_FILE, p.RedRoot().Kind())
}

func TestParseWithInternerSharesInternedText(t *testing.T) {
	in := csstree.NewInterner()
	first := ParseWithInterner(logger.Source{Contents: `a { color: red; }`, KeyPath: "<a>", PrettyPath: "<a>"}, in)
	second := ParseWithInterner(logger.Source{Contents: `b { color: red; }`, KeyPath: "<b>", PrettyPath: "<b>"}, in)

	require.Empty(t, first.Errors)
	require.Empty(t, second.Errors)
}

func TestParseEmptyStylesheet(t *testing.T) {
	p := parse(t, ``)
	require.Empty(t, p.Errors)
	require.Empty(t, p.RedRoot().Children())
}

func TestParseCDOCDCTokensAreSkippedAtTopLevel(t *testing.T) {
	p := parse(t, "<!-- a { color: red; } -->")
	require.Empty(t, p.Errors)
	dump := csstree.Dump(p.RedRoot())
	require.Contains(t, dump, csskind.RULESET.String())
}
