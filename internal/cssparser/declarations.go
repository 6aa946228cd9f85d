package cssparser

import (
	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/csskind"
)

// parseDeclarationsBlock parses `{ <declarations> }` as a single DECLARATIONS
// node spanning both braces, used by every at-rule and ruleset body (spec
// §4.4). The braces live inside the node (not the caller's frame) because
// spec §4.7's block-level incremental reparse re-lexes exactly this node's
// text and requires its first/last tokens to be `{`/`}`.
func (g *Grammar) parseDeclarationsBlock() {
	dm := g.p.Start()
	if !g.p.Eat(csskind.L_CURLY) {
		g.p.Rollback(dm)
		g.p.ErrAndBump("LeftCurlyExpected")
		return
	}
	for !g.p.At(csskind.R_CURLY) && !g.p.AtEOF() {
		if g.p.Eat(csskind.SEMICOLON) {
			continue
		}
		if !g.parseDeclarationOrRecover() {
			break
		}
	}
	if !g.p.Eat(csskind.R_CURLY) {
		g.p.Error("RightCurlyExpected")
	}
	g.p.Complete(dm, csskind.DECLARATIONS)
}

// parseDeclarationOrRecover tries, in order: a nested at-statement
// restricted to media/supports/layer/unknown, a tentative ruleset (rolled
// back on mismatch — this is what lets CSS nesting's `& .child {}` and
// plain declarations share one dispatch point), or a declaration. Returns
// false if nothing could be matched and no forward progress is possible.
func (g *Grammar) parseDeclarationOrRecover() bool {
	switch {
	case g.p.At(csskind.AT_KEYWORD):
		g.parseAtRule(atRuleContextNested)
		return true

	case g.atSelectorStart():
		if g.tryParseNestedRuleset() {
			return true
		}
		return g.parseDeclaration()

	case g.p.At(csskind.IDENT), g.p.At(csskind.DELIM_ASTERISK), g.p.At(csskind.DELIM_UNKNOWN):
		return g.parseDeclaration()

	default:
		g.p.ErrAndBump("PropertyValueExpected")
		return true
	}
}

// tryParseNestedRuleset speculatively parses a selector list + body; on any
// mismatch it rolls back so the caller can retry as a declaration instead
// (spec §4.4: "a tentative ruleset that rolls back on mismatch").
func (g *Grammar) tryParseNestedRuleset() bool {
	m := g.p.Start()
	if !g.parseSelectorList() {
		g.p.Rollback(m)
		return false
	}
	if !g.p.At(csskind.L_CURLY) {
		g.p.Rollback(m)
		return false
	}
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.RULESET)
	return true
}

// parseRuleset is the top-level (non-speculative) entry point: selector
// list + body, always consuming what it can.
func (g *Grammar) parseRuleset() {
	m := g.p.Start()
	if !g.parseSelectorList() {
		g.p.ErrAndBump("SelectorExpected")
	}
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.RULESET)
}

// parseDeclaration parses `<property> : <expr> <prio>? ;?`, branching into
// the three-way custom-property disambiguation when the property name
// starts with "--" (spec §4.4).
func (g *Grammar) parseDeclaration() bool {
	m := g.p.Start()
	isCustom := g.p.AtContextual(csskind.CxIdentCustomProperty)

	pm := g.p.Start()
	if g.p.At(csskind.DELIM_ASTERISK) || g.p.At(csskind.DELIM_UNKNOWN) {
		g.p.BumpAny() // IE hack prefix
	}
	if g.p.At(csskind.IDENT) {
		g.p.BumpAny()
	} else {
		g.p.Error("IdentifierExpected")
		g.p.Complete(pm, csskind.PROPERTY)
		g.p.Complete(m, csskind.BAD_DECLARATION)
		return g.p.ErrResync("PropertyValueExpected", cssevent.TokenSet{}, stopDeclEnd)
	}
	g.p.Complete(pm, csskind.PROPERTY)

	if !g.p.Eat(csskind.COLON) {
		g.p.Error("ColonExpected")
		g.p.Complete(m, csskind.BAD_DECLARATION)
		return g.p.ErrResync("ColonExpected", cssevent.TokenSet{}, stopDeclEnd)
	}

	if isCustom {
		g.parseCustomPropertyValue()
		g.p.Complete(m, csskind.CUSTOM_PROPERTY_DECLARATION)
	} else {
		if g.atExprStop(stopDeclEnd) {
			g.p.Error("PropertyValueExpected")
		}
		g.parseExpr(stopDeclEnd)
		g.parsePrioOpt()
		g.p.Complete(m, csskind.DECLARATION)
	}

	g.p.Eat(csskind.SEMICOLON)
	return true
}

// parseCustomPropertyValue implements spec §4.4's three-way custom-property
// interpretation: a `{ ... }` nested block, a normal expression, or (the
// fallback) a raw balanced-token value.
func (g *Grammar) parseCustomPropertyValue() {
	if g.p.At(csskind.L_CURLY) {
		m := g.p.Start()
		g.parseDeclarationsBlock()
		g.p.Complete(m, csskind.CUSTOM_PROPERTY_SET)
		return
	}

	m := g.p.Start()
	tryExpr := g.p.Start()
	if g.parseExprRollbackOnFailure() && (g.p.At(csskind.SEMICOLON) || g.p.At(csskind.R_CURLY) || g.p.AtEOF()) {
		g.p.Abandon(tryExpr)
		g.p.Complete(m, csskind.EXPRESSION)
		return
	}
	g.p.Rollback(tryExpr)

	depth := 0
	for !g.p.AtEOF() {
		switch g.p.Current() {
		case csskind.SEMICOLON, csskind.DELIM_BANG:
			if depth == 0 {
				g.p.Complete(m, csskind.TERM)
				return
			}
		case csskind.R_CURLY:
			if depth == 0 {
				g.p.Error("RightCurlyExpected")
				g.p.Complete(m, csskind.TERM)
				return
			}
			depth--
		case csskind.L_CURLY, csskind.L_PAREN, csskind.L_BRACKET:
			depth++
		case csskind.R_PAREN, csskind.R_BRACKET:
			depth--
		}
		g.p.BumpAny()
	}
	g.p.Complete(m, csskind.TERM)
}

func (g *Grammar) parsePrioOpt() {
	if !g.p.At(csskind.DELIM_BANG) {
		return
	}
	m := g.p.Start()
	g.p.BumpAny()
	if g.p.AtContextual(csskind.CxIdentImportant) {
		g.p.BumpAny()
	} else {
		g.p.Error("IdentifierExpected")
	}
	g.p.Complete(m, csskind.PRIO)
}
