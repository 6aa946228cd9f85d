package cssparser

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/csskind"
)

// parseExpr parses a comma- or space-separated list of binary expressions,
// stopping at stop, ';', '}', or EOF (spec §4.4's "expr").
func (g *Grammar) parseExpr(stop cssevent.TokenSet) {
	m := g.p.Start()
	for !g.atExprStop(stop) {
		if !g.parseBinaryExpr(stop) {
			break
		}
		g.p.Eat(csskind.COMMA) // optional separator; space-separated terms just loop again
	}
	g.p.Complete(m, csskind.EXPRESSION)
}

// parseExprRollbackOnFailure is parseExpr's speculative twin for the
// custom-property three-way disambiguation (spec §4.4): it reports whether
// at least one term was parsed without hard errors.
func (g *Grammar) parseExprRollbackOnFailure() bool {
	start := g.p.Start()
	ok := g.parseBinaryExpr(stopDeclEnd)
	if !ok {
		g.p.Rollback(start)
		return false
	}
	for g.p.Eat(csskind.COMMA) {
		if !g.parseBinaryExpr(stopDeclEnd) {
			g.p.Rollback(start)
			return false
		}
	}
	g.p.Abandon(start)
	return true
}

func (g *Grammar) atExprStop(stop cssevent.TokenSet) bool {
	if g.p.AtEOF() || stop.Contains(g.p.Current()) {
		return true
	}
	return false
}

// parseBinaryExpr: term (op term)*, left-associative, each repetition
// wrapping the accumulated left side via precede (spec §4.3/§4.4).
func (g *Grammar) parseBinaryExpr(stop cssevent.TokenSet) bool {
	m := g.p.Start()
	if !g.parseTerm() {
		g.p.Rollback(m)
		return false
	}
	lhs := g.p.Complete(m, csskind.TERM)

	for g.atBinaryOperator() {
		wrap := g.p.Precede(lhs)
		g.p.BumpAny() // operator
		if !g.parseTerm() {
			g.p.Error("TermExpected")
		}
		lhs = g.p.Complete(wrap, csskind.BINARY_EXPRESSION)
	}
	return true
}

func (g *Grammar) atBinaryOperator() bool {
	switch g.p.Current() {
	case csskind.DELIM_SLASH, csskind.DELIM_ASTERISK, csskind.DELIM_PLUS, csskind.DELIM_MINUS:
		return true
	}
	return false
}

// parseTerm: optional unary sign, then a term-expression dispatched in a
// fixed order (spec §4.4): URI literal, unicode range, function call,
// identifier, string, numeric, hex color, parenthesized operation, named
// grid line.
func (g *Grammar) parseTerm() bool {
	m := g.p.Start()
	if g.p.At(csskind.DELIM_PLUS) || g.p.At(csskind.DELIM_MINUS) {
		um := g.p.Start()
		g.p.BumpAny()
		if !g.parseTermExpression() {
			g.p.Error("TermExpected")
		}
		g.p.Complete(um, csskind.UNARY_EXPRESSION)
		g.p.Abandon(m)
		return true
	}
	if !g.parseTermExpression() {
		g.p.Rollback(m)
		return false
	}
	g.p.Abandon(m)
	return true
}

func (g *Grammar) parseTermExpression() bool {
	switch {
	case g.p.At(csskind.URL), g.p.AtContextual(csskind.CxFuncURL):
		g.parseURILiteral()
	case g.p.At(csskind.UNICODE_RANGE):
		m := g.p.Start()
		g.p.BumpAny()
		g.p.Complete(m, csskind.UNICODE_RANGE_LITERAL)
	case g.p.At(csskind.FUNCTION):
		g.parseFunctionCall()
	case g.p.At(csskind.IDENT):
		m := g.p.Start()
		g.p.BumpAny()
		g.p.Complete(m, csskind.IDENT_VALUE)
	case g.p.At(csskind.STRING):
		m := g.p.Start()
		g.p.BumpAny()
		g.p.Complete(m, csskind.STRING_VALUE)
	case g.p.At(csskind.NUMBER), g.p.At(csskind.PERCENTAGE), g.p.At(csskind.DIMENSION):
		g.parseNumericOrRatio()
	case g.p.AtContextual(csskind.CxHashValidHex), g.p.At(csskind.ID_HASH), g.p.At(csskind.UNRESTRICTED_HASH):
		m := g.p.Start()
		g.p.BumpAny()
		g.p.Complete(m, csskind.HEX_COLOR)
	case g.p.At(csskind.L_PAREN):
		m := g.p.Start()
		g.p.BumpAny()
		g.parseExpr(stopParenEnd)
		if !g.p.Eat(csskind.R_PAREN) {
			g.p.Error("RightParenthesisExpected")
		}
		g.p.Complete(m, csskind.PAREN_EXPRESSION)
	case g.p.At(csskind.L_BRACKET):
		m := g.p.Start()
		g.p.BumpAny()
		if g.p.At(csskind.IDENT) {
			g.p.BumpAny()
			if g.p.At(csskind.IDENT) {
				g.p.BumpAny()
			}
		}
		if !g.p.Eat(csskind.R_BRACKET) {
			g.p.Error("RightSquareBracketExpected")
		}
		g.p.Complete(m, csskind.NAMED_GRID_LINE)
	default:
		return false
	}
	return true
}

func (g *Grammar) parseURILiteral() {
	m := g.p.Start()
	if g.p.At(csskind.URL) {
		g.p.BumpAny()
	} else {
		g.p.BumpAny() // CxFuncURL function token
		if g.p.At(csskind.STRING) {
			g.p.BumpAny()
		} else {
			g.p.Error("URIExpected")
		}
		if !g.p.Eat(csskind.R_PAREN) {
			g.p.Error("RightParenthesisExpected")
		}
	}
	g.p.Complete(m, csskind.URI_LITERAL)
}

// parseNumericOrRatio handles a bare number/percentage/dimension, and the
// `<number> / <number>` ratio shape used by e.g. `aspect-ratio`.
func (g *Grammar) parseNumericOrRatio() {
	m := g.p.Start()
	g.p.BumpAny()
	if g.p.At(csskind.DELIM_SLASH) {
		g.p.BumpAny()
		if g.p.At(csskind.NUMBER) {
			g.p.BumpAny()
		} else {
			g.p.Error("NumberExpected")
		}
		g.p.Complete(m, csskind.RATIO_VALUE)
		return
	}
	g.p.Complete(m, csskind.NUMERIC_VALUE)
}

// parseFunctionCall: ident+'(' then comma-separated arguments, then ')'.
// The contextual "progid" identifier enables the legacy IE filter chain
// syntax (spec §4.4).
func (g *Grammar) parseFunctionCall() {
	if g.p.AtContextual(csskind.CxIdentProgid) {
		g.parseProgidFilter()
		return
	}
	m := g.p.Start()
	g.p.Bump(csskind.FUNCTION)
	am := g.p.Start()
	for !g.p.At(csskind.R_PAREN) && !g.p.AtEOF() {
		if !g.parseBinaryExpr(stopArgEnd) {
			g.p.ErrAndBump("TermExpected")
		}
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	g.p.Complete(am, csskind.ARGUMENT_LIST)
	if !g.p.Eat(csskind.R_PAREN) {
		g.p.Error("RightParenthesisExpected")
	}
	g.p.Complete(m, csskind.FUNCTION_CALL)
}

// parseProgidFilter: `progid:DXImageTransform.Microsoft.Blur(...)`, a
// dot-separated identifier chain following the `progid:` marker.
func (g *Grammar) parseProgidFilter() {
	m := g.p.Start()
	g.p.BumpAny() // "progid" identifier
	if !g.p.Eat(csskind.COLON) {
		g.p.Error("ColonExpected")
	}
	for g.p.At(csskind.IDENT) || g.p.At(csskind.FUNCTION) {
		isFn := g.p.At(csskind.FUNCTION)
		g.p.BumpAny()
		if isFn {
			for !g.p.At(csskind.R_PAREN) && !g.p.AtEOF() {
				if !g.parseBinaryExpr(stopArgEnd) {
					g.p.ErrAndBump("TermExpected")
				}
				if !g.p.Eat(csskind.COMMA) {
					break
				}
			}
			g.p.Eat(csskind.R_PAREN)
			break
		}
		if !g.p.Eat(csskind.DELIM_DOT) {
			break
		}
	}
	g.p.Complete(m, csskind.PROGID_FILTER)
}

var stopArgEnd = mkStopSet(csskind.R_PAREN, csskind.COMMA)
