// Package cssparser is the CSS grammar (spec §4.4, C5): rule, declaration,
// selector and expression productions built on internal/cssevent's
// marker/event core. It plays the role of esbuild's internal/css_parser,
// but that package is wired end to end into esbuild's bundler (minifier
// passes, CSS-modules local/global scoping, import records, symbol
// tables) that has no home in this spec; rather than drag that apparatus
// along, this package is a fresh grammar in esbuild's idiom — one
// function per production, a big switch on the current token/contextual
// kind to pick a production, fixed per-diagnostic error strings — grounded
// on the shape of css_parser_selector.go and css_parser_media.go (see
// DESIGN.md for the per-production mapping).
package cssparser

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/cssinput"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csslexer"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// SourceFile is the Parse[T] marker type for a whole stylesheet.
type SourceFile struct{}

// Grammar wraps the event parser with the recovery token sets every
// production needs; it carries no other state; like esbuild's parser
// struct it is built fresh per parse (or per sub-grammar reparse, C8).
type Grammar struct {
	p *cssevent.Parser
}

// Parse tokenizes source and runs the top-level stylesheet grammar,
// returning a finished green tree plus structured errors (spec §4.5).
func Parse(source logger.Source) csstree.Parse[SourceFile] {
	return ParseWithInterner(source, csstree.NewInterner())
}

// ParseWithInterner is Parse against a caller-supplied Interner, used by the
// incremental reparser's full-reparse fallback (spec §4.7 tier 3) so that a
// from-scratch reparse still shares subtrees — and future splices still
// hash-cons against — whatever the document's prior parses already interned.
func ParseWithInterner(source logger.Source, in *csstree.Interner) csstree.Parse[SourceFile] {
	lexed := csslexer.Tokenize(source)
	input := cssinput.Build(lexed)
	events := ParseEvents(input)
	root, errs := csstree.Build(events, input, in)
	return csstree.Parse[SourceFile]{Root: root, Errors: errs}
}

// ParseEvents runs the stylesheet grammar and returns the raw event stream,
// the level at which the incremental reparser (C8) drives sub-grammars.
func ParseEvents(input cssinput.Input) []cssevent.Event {
	g := &Grammar{p: cssevent.New(input)}
	g.parseStylesheet()
	return g.p.Events()
}

// recover sets used across productions, named after the construct they
// resync to (spec §4.4's "err_resync" calls).
var (
	stopAtRuleBody   = cssevent.NewTokenSet(csskind.L_CURLY, csskind.SEMICOLON)
	stopDeclarations = cssevent.NewTokenSet(csskind.R_CURLY)
	stopDeclEnd      = cssevent.NewTokenSet(csskind.SEMICOLON, csskind.R_CURLY)
	stopSelectorList = cssevent.NewTokenSet(csskind.L_CURLY)
)

func mkStopSet(kinds ...csskind.Kind) cssevent.TokenSet { return cssevent.NewTokenSet(kinds...) }

func (g *Grammar) parseStylesheet() {
	m := g.p.Start()
	for !g.p.AtEOF() {
		if !g.parseTopLevelItem() {
			g.p.ErrAndBump("RuleOrSelectorExpected")
		}
	}
	g.p.Complete(m, csskind.SOURCE_FILE)
}

// parseTopLevelItem parses one at-rule or ruleset; returns false if the
// current token starts neither (caller resyncs).
func (g *Grammar) parseTopLevelItem() bool {
	switch {
	case g.p.At(csskind.AT_KEYWORD):
		g.parseAtRule(atRuleContextTopLevel)
		return true
	case g.p.At(csskind.CHARSET_TOKEN):
		g.parseCharset()
		return true
	case g.p.At(csskind.CDO), g.p.At(csskind.CDC):
		g.p.BumpAny()
		return true
	case g.atSelectorStart():
		g.parseRuleset()
		return true
	default:
		return false
	}
}

func (g *Grammar) parseCharset() {
	m := g.p.Start()
	g.p.Bump(csskind.CHARSET_TOKEN)
	g.p.Complete(m, csskind.AT_RULE_CHARSET)
}

// atSelectorStart reports whether the current token could begin a
// simple selector (element name, `*`, `&`, `.`, `#`, `[`, `:`, `::`, or a
// combinator in a nested context).
func (g *Grammar) atSelectorStart() bool {
	switch g.p.Current() {
	case csskind.IDENT, csskind.DELIM_ASTERISK, csskind.DELIM_AMPERSAND,
		csskind.DELIM_DOT, csskind.ID_HASH, csskind.UNRESTRICTED_HASH,
		csskind.L_BRACKET, csskind.COLON,
		csskind.DELIM_GREATER_THAN, csskind.DELIM_PLUS, csskind.DELIM_TILDE:
		return true
	}
	return false
}
