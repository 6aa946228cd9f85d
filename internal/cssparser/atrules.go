package cssparser

import (
	"strings"

	"github.com/csslsp/csslsp/internal/cssevent"
	"github.com/csslsp/csslsp/internal/csskind"
)

type atRuleContext int

const (
	atRuleContextTopLevel atRuleContext = iota
	atRuleContextNested                 // inside a ruleset's declarations (media/supports/layer/unknown only)
)

// parseAtRule dispatches on the at-keyword's lowercased name (spec §4.4).
// Anything not in the recognized list routes to parseUnknownAtRule.
func (g *Grammar) parseAtRule(ctx atRuleContext) {
	name := strings.ToLower(strings.TrimPrefix(g.currentText(), "@"))
	if ctx == atRuleContextNested {
		switch trimVendorPrefix(name) {
		case "media", "supports", "layer":
		default:
			g.parseUnknownAtRule(ctx)
			return
		}
	}
	switch trimVendorPrefix(name) {
	case "import":
		g.parseAtImport()
	case "namespace":
		g.parseAtNamespace()
	case "font-face":
		g.parseAtSimpleDeclBody(csskind.AT_RULE_FONT_FACE)
	case "viewport":
		g.parseAtSimpleDeclBody(csskind.AT_RULE_VIEWPORT)
	case "keyframes":
		g.parseAtKeyframes()
	case "property":
		g.parseAtProperty()
	case "layer":
		g.parseAtLayer()
	case "supports":
		g.parseAtSupports()
	case "media":
		g.parseAtMedia()
	case "page":
		g.parseAtPage()
	case "document":
		g.parseAtMozDocument()
	case "container":
		g.parseAtContainer()
	default:
		g.parseUnknownAtRule(ctx)
	}
}

func trimVendorPrefix(name string) string {
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

func (g *Grammar) currentText() string { return g.p.CurrentText() }

// parseAtImport: URI-or-string, optional layer/layer(name), optional
// supports(...), optional media query list, terminating ';'.
func (g *Grammar) parseAtImport() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if !g.eatURIOrString() {
		g.p.ErrResync("URIOrStringExpected", cssevent.TokenSet{}, stopDeclEnd)
	}
	if g.p.EatContextual(csskind.CxFuncLayer) {
		g.consumeBalancedUntilRParen()
		g.p.Eat(csskind.R_PAREN)
	} else if g.p.At(csskind.IDENT) && strings.EqualFold(g.currentText(), "layer") {
		g.p.BumpAny()
	}
	if g.p.EatContextual(csskind.CxFuncSupports) {
		g.consumeBalancedUntilRParen()
		g.p.Eat(csskind.R_PAREN)
	}
	g.parseMediaQueryListTail()
	if !g.p.Eat(csskind.SEMICOLON) {
		g.p.ErrAndBump("SemiColonExpected")
	}
	g.p.Complete(m, csskind.AT_RULE_IMPORT)
}

func (g *Grammar) parseAtNamespace() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if g.p.At(csskind.IDENT) {
		g.p.BumpAny() // optional prefix
	}
	if !g.eatURIOrString() {
		g.p.ErrAndBump("URIOrStringExpected")
	}
	if !g.p.Eat(csskind.SEMICOLON) {
		g.p.ErrAndBump("SemiColonExpected")
	}
	g.p.Complete(m, csskind.AT_RULE_NAMESPACE)
}

// parseAtSimpleDeclBody covers @font-face and @viewport: no prelude, just a
// declarations block.
func (g *Grammar) parseAtSimpleDeclBody(kind csskind.Kind) {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	g.parseDeclarationsBlock()
	g.p.Complete(m, kind)
}

func (g *Grammar) parseAtKeyframes() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if g.p.At(csskind.IDENT) || g.p.At(csskind.STRING) {
		g.p.BumpAny()
	} else {
		g.p.Error("IdentifierExpected")
	}
	if !g.p.Eat(csskind.L_CURLY) {
		g.p.ErrResync("LeftCurlyExpected", cssevent.TokenSet{}, cssevent.TokenSet{})
		g.p.Complete(m, csskind.AT_RULE_KEYFRAMES)
		return
	}
	for !g.p.At(csskind.R_CURLY) && !g.p.AtEOF() {
		g.parseKeyframeBlock()
	}
	if !g.p.Eat(csskind.R_CURLY) {
		g.p.Error("RightCurlyExpected")
	}
	g.p.Complete(m, csskind.AT_RULE_KEYFRAMES)
}

func (g *Grammar) parseKeyframeBlock() {
	m := g.p.Start()
	sm := g.p.Start()
	for {
		switch {
		case g.p.At(csskind.IDENT), g.p.At(csskind.PERCENTAGE):
			g.p.BumpAny()
		default:
			g.p.Error("SelectorExpected")
		}
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	g.p.Complete(sm, csskind.KEYFRAME_SELECTOR)
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.KEYFRAME_BLOCK)
}

func (g *Grammar) parseAtProperty() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if g.p.AtContextual(csskind.CxIdentCustomProperty) {
		g.p.BumpAny()
	} else {
		g.p.Error("IdentifierExpected")
	}
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.AT_RULE_PROPERTY)
}

func (g *Grammar) parseAtLayer() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	nameCount := 0
	for g.p.At(csskind.IDENT) {
		g.p.BumpAny()
		nameCount++
		for g.p.Eat(csskind.DELIM_DOT) {
			if g.p.At(csskind.IDENT) {
				g.p.BumpAny()
			}
		}
		if !g.p.Eat(csskind.COMMA) {
			break
		}
	}
	if g.p.At(csskind.L_CURLY) {
		g.parseDeclarationsBlock()
	} else if !g.p.Eat(csskind.SEMICOLON) {
		g.p.ErrAndBump("SemiColonExpected")
	}
	g.p.Complete(m, csskind.AT_RULE_LAYER)
}

func (g *Grammar) parseAtSupports() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	g.parseCondition()
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.AT_RULE_SUPPORTS)
}

func (g *Grammar) parseAtMedia() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	g.parseMediaQueryListTail()
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.AT_RULE_MEDIA)
}

func (g *Grammar) parseAtPage() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if g.p.At(csskind.IDENT) || g.p.At(csskind.COLON) {
		sm := g.p.Start()
		if g.p.At(csskind.IDENT) {
			g.p.BumpAny()
		}
		for g.p.Eat(csskind.COLON) {
			if g.p.At(csskind.IDENT) {
				g.p.BumpAny()
			} else {
				g.p.Error("IdentifierExpected")
			}
		}
		g.p.Complete(sm, csskind.PAGE_SELECTOR)
	}
	g.parsePageBody()
	g.p.Complete(m, csskind.AT_RULE_PAGE)
}

// parsePageBody is @page's own DECLARATIONS grammar: like
// parseDeclarationsBlock, the node spans both braces, but it additionally
// recognizes nested `@top-left { ... }`-style PAGE_MARGIN_BOX blocks by
// AT_KEYWORD lookahead — the incremental reparser (spec §4.7) dispatches to
// this grammar instead of the generic one when the target node's parent is
// AT_RULE_PAGE.
func (g *Grammar) parsePageBody() {
	dm := g.p.Start()
	if !g.p.Eat(csskind.L_CURLY) {
		g.p.Rollback(dm)
		g.p.ErrAndBump("LeftCurlyExpected")
		return
	}
	for !g.p.At(csskind.R_CURLY) && !g.p.AtEOF() {
		if g.p.At(csskind.AT_KEYWORD) {
			mbm := g.p.Start()
			g.p.BumpAny()
			g.parseDeclarationsBlock()
			g.p.Complete(mbm, csskind.PAGE_MARGIN_BOX)
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

func (g *Grammar) parseAtMozDocument() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	for !g.p.At(csskind.L_CURLY) && !g.p.AtEOF() {
		g.p.BumpAny()
	}
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.AT_RULE_MOZ_DOCUMENT)
}

func (g *Grammar) parseAtContainer() {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	if g.p.At(csskind.IDENT) {
		g.p.BumpAny()
	}
	if g.p.EatContextual(csskind.CxFuncStyle) {
		g.parseStyleQuery()
		if !g.p.Eat(csskind.R_PAREN) {
			g.p.Error("RightParenthesisExpected")
		}
	} else {
		g.parseCondition()
	}
	g.parseDeclarationsBlock()
	g.p.Complete(m, csskind.AT_RULE_CONTAINER)
}

func (g *Grammar) parseStyleQuery() {
	m := g.p.Start()
	g.parseCondition()
	g.p.Complete(m, csskind.STYLE_QUERY)
}

func (g *Grammar) parseUnknownAtRule(ctx atRuleContext) {
	m := g.p.Start()
	g.p.Bump(csskind.AT_KEYWORD)
	for !g.p.At(csskind.L_CURLY) && !g.p.At(csskind.SEMICOLON) && !g.p.AtEOF() {
		g.p.BumpAny()
	}
	if g.p.At(csskind.L_CURLY) {
		g.parseDeclarationsBlock()
	} else if !g.p.Eat(csskind.SEMICOLON) {
		g.p.Error("SemiColonExpected")
	}
	_ = ctx
	g.p.Complete(m, csskind.AT_RULE_UNKNOWN)
}

func (g *Grammar) eatURIOrString() bool {
	if g.p.At(csskind.URL) || g.p.At(csskind.STRING) {
		g.p.BumpAny()
		return true
	}
	if g.p.AtContextual(csskind.CxFuncURL) {
		g.p.BumpAny()
		if g.p.At(csskind.STRING) {
			g.p.BumpAny()
		}
		if !g.p.Eat(csskind.R_PAREN) {
			g.p.Error("RightParenthesisExpected")
		}
		return true
	}
	return false
}

// consumeBalancedUntilRParen discards tokens until a top-level ')' (left
// unconsumed), tracking nested parens so an inner ')' doesn't stop early.
func (g *Grammar) consumeBalancedUntilRParen() {
	depth := 0
	for !g.p.AtEOF() {
		switch g.p.Current() {
		case csskind.R_PAREN:
			if depth == 0 {
				return
			}
			depth--
		case csskind.L_PAREN:
			depth++
		}
		g.p.BumpAny()
	}
}
