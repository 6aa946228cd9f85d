package cssparser

import "github.com/csslsp/csslsp/internal/csskind"

// parseMediaQueryListTail parses zero or more comma-separated media
// queries, stopping at '{' or ';' (spec §4.4's @media/@import prelude).
// A missing list (prelude directly at '{') is valid — @media with no query
// still matches everything, mirrored by an empty MEDIA_QUERY_LIST.
func (g *Grammar) parseMediaQueryListTail() {
	if g.p.At(csskind.L_CURLY) || g.p.At(csskind.SEMICOLON) || g.p.AtEOF() {
		return
	}
	m := g.p.Start()
	for {
		g.parseMediaQuery()
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	g.p.Complete(m, csskind.MEDIA_QUERY_LIST)
}

// parseMediaQuery: optional not/only, then a type ident and optional
// `and <condition>`; or a bare condition.
func (g *Grammar) parseMediaQuery() {
	m := g.p.Start()
	if g.p.AtContextual(csskind.CxIdentNot) || g.p.AtContextual(csskind.CxIdentOnly) {
		g.p.BumpAny()
	}
	if g.p.At(csskind.IDENT) {
		g.p.BumpAny()
		if g.p.AtContextual(csskind.CxIdentAnd) {
			g.p.BumpAny()
			g.parseConditionWithoutOr()
		}
	} else if g.p.At(csskind.L_PAREN) {
		g.parseConditionWithoutOr()
	} else {
		g.p.Error("MediaQueryExpected")
	}
	g.p.Complete(m, csskind.MEDIA_QUERY)
}

// parseCondition: `not <in-parens>` | `<in-parens> (and <in-parens>)+` |
// `<in-parens> (or <in-parens>)+` | a single `<in-parens>` (spec §4.4).
func (g *Grammar) parseCondition() {
	m := g.p.Start()
	if g.p.AtContextual(csskind.CxIdentNot) {
		g.p.BumpAny()
		g.parseInParens()
		g.p.Complete(m, csskind.CONDITION)
		return
	}
	g.parseInParens()
	if g.p.AtContextual(csskind.CxIdentAnd) {
		for g.p.EatContextual(csskind.CxIdentAnd) {
			g.parseInParens()
		}
	} else if g.p.AtContextual(csskind.CxIdentOr) {
		for g.p.EatContextual(csskind.CxIdentOr) {
			g.parseInParens()
		}
	}
	g.p.Complete(m, csskind.CONDITION)
}

// parseConditionWithoutOr implements the `and <condition>` tail inside a
// media query's type clause, which per the grammar may not mix `or`.
func (g *Grammar) parseConditionWithoutOr() {
	m := g.p.Start()
	g.parseInParens()
	for g.p.EatContextual(csskind.CxIdentAnd) {
		g.parseInParens()
	}
	g.p.Complete(m, csskind.CONDITION)
}

func (g *Grammar) parseInParens() {
	m := g.p.Start()
	if !g.p.Eat(csskind.L_PAREN) {
		if g.p.At(csskind.FUNCTION) {
			g.parseGeneralEnclosed()
			g.p.Complete(m, csskind.IN_PARENS)
			return
		}
		g.p.Error("ConditionExpected")
		g.p.Complete(m, csskind.IN_PARENS)
		return
	}
	switch {
	case g.p.At(csskind.L_PAREN), g.p.AtContextual(csskind.CxIdentNot):
		g.parseCondition()
	default:
		g.parseFeatureOrDeclaration()
	}
	if !g.p.Eat(csskind.R_PAREN) {
		g.p.Error("RightParenthesisExpected")
	}
	g.p.Complete(m, csskind.IN_PARENS)
}

// parseFeatureOrDeclaration handles the content of `( ... )` once we know
// it isn't a nested condition: either `name`, `name: value` (a supports
// declaration or a boolean/plain media feature), or a range comparison
// `name <op> value` / `value <op> name <op> value`.
func (g *Grammar) parseFeatureOrDeclaration() {
	m := g.p.Start()
	if !g.p.At(csskind.IDENT) && !g.p.At(csskind.NUMBER) && !g.p.At(csskind.DIMENSION) {
		g.p.Error("IdentifierExpected")
		g.p.Complete(m, csskind.FEATURE)
		return
	}
	g.p.BumpAny()
	if g.p.Eat(csskind.COLON) {
		g.parseExpr(stopParenEnd)
	} else {
		for g.atRangeOperator() {
			g.p.BumpAny()
			if g.p.At(csskind.IDENT) || g.p.At(csskind.NUMBER) || g.p.At(csskind.DIMENSION) {
				g.p.BumpAny()
			} else {
				g.p.Error("NumberExpected")
				break
			}
		}
	}
	g.p.Complete(m, csskind.FEATURE)
}

func (g *Grammar) atRangeOperator() bool {
	switch g.p.Current() {
	case csskind.DELIM_LESS_THAN, csskind.DELIM_GREATER_THAN, csskind.DELIM_EQUALS:
		return true
	}
	return false
}

// parseGeneralEnclosed consumes a balanced `function( ... )` whose contents
// this grammar doesn't otherwise understand (spec §4.4's general-enclosed).
func (g *Grammar) parseGeneralEnclosed() {
	m := g.p.Start()
	g.p.BumpAny() // function token, includes the '('
	g.consumeBalancedUntilRParen()
	if !g.p.Eat(csskind.R_PAREN) {
		g.p.Error("RightParenthesisExpected")
	}
	g.p.Complete(m, csskind.GENERAL_ENCLOSED)
}

var stopParenEnd = mkStopSet(csskind.R_PAREN)
