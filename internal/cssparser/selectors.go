package cssparser

import (
	"strings"

	"github.com/csslsp/csslsp/internal/csskind"
)

// legacyPseudoElements are names matched as `::name`, or historically `:name`
// for the legacy single-colon forms CSS2.1 grandfathered in.
var legacyPseudoElements = map[string]bool{
	"before": true, "after": true, "first-line": true, "first-letter": true,
}

// nthChildPseudos take the full An+B [of S] argument grammar instead of a
// selector list or binary expression.
var nthChildPseudos = map[string]bool{
	"nth-child": true, "nth-last-child": true,
	"nth-of-type": true, "nth-last-of-type": true,
}

// selectorListPseudos take a comma-separated selector list as their
// argument (:is, :not, :has, :where, and friends).
var selectorListPseudos = map[string]bool{
	"is": true, "not": true, "has": true, "where": true,
	"host": true, "host-context": true, "slotted": true,
}

// parseSelectorList parses a comma-separated ComplexSelector list; returns
// false (without consuming) if the current token can't start a selector.
func (g *Grammar) parseSelectorList() bool {
	if !g.atSelectorStart() {
		return false
	}
	m := g.p.Start()
	for {
		g.parseComplexSelector()
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	g.p.Complete(m, csskind.SELECTOR_LIST)
	return true
}

// parseComplexSelector: optional leading combinator, then simple selectors
// separated by combinators.
func (g *Grammar) parseComplexSelector() {
	m := g.p.Start()
	if g.atCombinatorStart() {
		g.parseCombinator()
	}
	g.parseCompoundSelector()
	for g.atCombinatorStart() || g.atSelectorStart() {
		if g.atCombinatorStart() {
			g.parseCombinator()
		}
		if !g.atSelectorStart() {
			break
		}
		g.parseCompoundSelector()
	}
	g.p.Complete(m, csskind.SELECTOR)
}

func (g *Grammar) atCombinatorStart() bool {
	switch g.p.Current() {
	case csskind.DELIM_GREATER_THAN, csskind.DELIM_PLUS, csskind.DELIM_TILDE:
		return true
	}
	return g.p.AtContextual(csskind.CxIdentDeep)
}

func (g *Grammar) parseCombinator() {
	m := g.p.Start()
	switch g.p.Current() {
	case csskind.DELIM_GREATER_THAN:
		g.p.BumpAny()
		if g.p.At(csskind.DELIM_GREATER_THAN) && g.p.HasNWhitespace(0) {
			g.p.BumpAny()
			if g.p.At(csskind.DELIM_GREATER_THAN) {
				g.p.BumpAny() // ">>>"
			}
		}
	default:
		g.p.BumpAny()
	}
	g.p.Complete(m, csskind.COMBINATOR)
}

// parseCompoundSelector: element-name/&/`*`/namespace-prefix, then any
// number of adjacent (no-whitespace) sub-selectors.
func (g *Grammar) parseCompoundSelector() {
	m := g.p.Start()
	hasHead := true
	switch {
	case g.p.At(csskind.DELIM_AMPERSAND):
		g.p.BumpAny()
	case g.p.At(csskind.DELIM_ASTERISK):
		g.p.BumpAny()
		g.eatNamespacedNameTail()
	case g.p.At(csskind.IDENT):
		g.p.BumpAny()
		g.eatNamespacedNameTail()
	default:
		hasHead = false
	}
	for g.atSubSelectorStart() && (!hasHead || !g.p.HasWhitespace()) {
		g.parseSubSelector()
		hasHead = true
	}
	g.p.Complete(m, csskind.SIMPLE_SELECTOR)
}

// eatNamespacedNameTail consumes an optional `|name` namespace suffix
// directly (no whitespace) after an element name or `*`.
func (g *Grammar) eatNamespacedNameTail() {
	if g.p.At(csskind.DELIM_BAR) && !g.p.HasWhitespace() {
		g.p.BumpAny()
		if g.p.At(csskind.IDENT) || g.p.At(csskind.DELIM_ASTERISK) {
			g.p.BumpAny()
		} else {
			g.p.Error("IdentifierExpected")
		}
	}
}

func (g *Grammar) atSubSelectorStart() bool {
	switch g.p.Current() {
	case csskind.ID_HASH, csskind.UNRESTRICTED_HASH, csskind.DELIM_DOT,
		csskind.L_BRACKET, csskind.COLON:
		return true
	}
	return false
}

func (g *Grammar) parseSubSelector() {
	switch g.p.Current() {
	case csskind.ID_HASH, csskind.UNRESTRICTED_HASH:
		m := g.p.Start()
		g.p.BumpAny()
		g.p.Complete(m, csskind.ID_SELECTOR)
	case csskind.DELIM_DOT:
		m := g.p.Start()
		g.p.BumpAny()
		if g.p.At(csskind.IDENT) {
			g.p.BumpAny()
		} else {
			g.p.Error("IdentifierExpected")
		}
		g.p.Complete(m, csskind.CLASS_SELECTOR)
	case csskind.L_BRACKET:
		g.parseAttributeSelector()
	case csskind.COLON:
		g.parsePseudoSelector()
	}
}

func (g *Grammar) parseAttributeSelector() {
	m := g.p.Start()
	g.p.Bump(csskind.L_BRACKET)
	if g.p.At(csskind.IDENT) {
		g.p.BumpAny()
		g.eatNamespacedNameTail()
	} else {
		g.p.Error("IdentifierExpected")
	}
	switch g.p.Current() {
	case csskind.DELIM_EQUALS:
		g.p.BumpAny()
		g.parseAttrValue()
	case csskind.DELIM_TILDE, csskind.DELIM_BAR, csskind.DELIM_CARET,
		csskind.DELIM_DOLLAR, csskind.DELIM_ASTERISK:
		g.p.BumpAny()
		if !g.p.Eat(csskind.DELIM_EQUALS) {
			g.p.Error("OperatorExpected")
		}
		g.parseAttrValue()
	}
	if g.p.AtContextual(csskind.CxIdentI) || g.p.AtContextual(csskind.CxIdentS) {
		g.p.BumpAny()
	}
	if !g.p.Eat(csskind.R_BRACKET) {
		g.p.Error("RightSquareBracketExpected")
	}
	g.p.Complete(m, csskind.ATTRIBUTE_SELECTOR)
}

func (g *Grammar) parseAttrValue() {
	if g.p.At(csskind.STRING) || g.p.At(csskind.IDENT) {
		g.p.BumpAny()
		return
	}
	g.p.Error("TermExpected")
}

// parsePseudoSelector handles both `:name` and `::name`, with or without a
// parenthesized argument list, dispatching the argument grammar by name
// (spec §4.4: nested selector list, An+B [of S], or a binary expression
// optionally followed by `of <selector-list>`).
func (g *Grammar) parsePseudoSelector() {
	m := g.p.Start()
	isElement := false
	g.p.Bump(csskind.COLON)
	if g.p.Eat(csskind.COLON) {
		isElement = true
	}
	name := ""
	isFunction := g.p.At(csskind.FUNCTION)
	if g.p.At(csskind.IDENT) || isFunction {
		name = normalizePseudoName(g.p.CurrentText())
		g.p.BumpAny()
	} else {
		g.p.Error("IdentifierExpected")
	}
	if isFunction {
		g.parsePseudoArgs(name)
		if !g.p.Eat(csskind.R_PAREN) {
			g.p.Error("RightParenthesisExpected")
		}
	}
	if isElement || legacyPseudoElements[name] {
		g.p.Complete(m, csskind.PSEUDO_ELEMENT_SELECTOR)
	} else {
		g.p.Complete(m, csskind.PSEUDO_CLASS_SELECTOR)
	}
}

func normalizePseudoName(text string) string {
	name := text
	if len(name) > 0 && name[len(name)-1] == '(' {
		name = name[:len(name)-1]
	}
	return toLowerASCII(name)
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func (g *Grammar) parsePseudoArgs(name string) {
	switch {
	case nthChildPseudos[name]:
		g.parseAnPlusB()
		if g.p.EatContextual(csskind.CxIdentOf) {
			g.parseSelectorListInner()
		}
	case selectorListPseudos[name]:
		g.parseSelectorListInner()
	case name == "lang":
		em := g.p.Start()
		if g.p.At(csskind.IDENT) || g.p.At(csskind.STRING) {
			g.p.BumpAny()
		} else {
			g.p.Error("IdentifierExpected")
		}
		g.p.Complete(em, csskind.PSEUDO_ARGS_EXPR)
	default:
		em := g.p.Start()
		g.parseExpr(stopParenEnd)
		g.p.Complete(em, csskind.PSEUDO_ARGS_EXPR)
	}
}

func (g *Grammar) parseSelectorListInner() {
	lm := g.p.Start()
	for {
		g.parseComplexSelector()
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	g.p.Complete(lm, csskind.PSEUDO_ARGS_SELECTOR_LIST)
}

// parseAnPlusB handles the full An+B micro-syntax: `odd`, `even`, `<n>`,
// `<n>n`, `<n>n+<n>`, `-n+<n>`, etc., using the cx-dim-an-plus-b contextual
// kind (assigned in cssinput.classify to both DIMENSION tokens like "2n"
// and bare IDENT tokens like "n"/"-n", since a lone "-n" lexes as an
// identifier rather than a dimension) plus explicit sign/number lookahead
// for the split forms. "odd"/"even"/"n" are matched case-insensitively,
// like every keyword here except the explicitly case-sensitive "i"/"s".
func (g *Grammar) parseAnPlusB() {
	m := g.p.Start()
	switch {
	case g.p.At(csskind.IDENT) && isOddOrEven(g.p.CurrentText()):
		g.p.BumpAny()
	case g.p.AtContextual(csskind.CxDimAnPlusB):
		g.p.BumpAny()
		g.eatAnPlusBTail()
	case g.p.At(csskind.NUMBER):
		g.p.BumpAny()
	default:
		g.p.Error("NumberExpected")
	}
	g.p.Complete(m, csskind.PSEUDO_ARGS_AN_PLUS_B)
}

func isOddOrEven(text string) bool {
	return strings.EqualFold(text, "odd") || strings.EqualFold(text, "even")
}

func (g *Grammar) eatAnPlusBTail() {
	if g.p.At(csskind.NUMBER) && strings.ContainsAny(g.p.CurrentText()[:1], "+-") {
		g.p.BumpAny() // `+1` / `-1` lex as one signed number
		return
	}
	if g.p.At(csskind.DELIM_PLUS) || g.p.At(csskind.DELIM_MINUS) {
		g.p.BumpAny()
		if g.p.At(csskind.NUMBER) {
			g.p.BumpAny()
		} else {
			g.p.Error("NumberExpected")
		}
	}
}
