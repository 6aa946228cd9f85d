// Package cssast is the typed accessor layer over the red tree (spec §4.6,
// C7): thin `cast(node) -> (T, bool)` wrappers that check a red node's kind
// and expose typed child accessors, grounded on the
// `_examples/evanw-esbuild/internal/css_ast/css_ast.go` pattern of a closed
// `R`/`SS` interface set of node shapes — but built directly over
// internal/csstree.RedNode rather than a bespoke allocated AST, since this
// spec's tree is the red/green tree itself (§3), not a separate node graph
// esbuild builds alongside its tokens.
package cssast

import (
	"strings"

	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csstree"
)

// Node is embedded by every typed wrapper so callers can always drop back
// to the underlying red node (e.g. to recurse with a different wrapper).
type Node struct{ Red *csstree.RedNode }

func (n Node) Kind() csskind.Kind { return n.Red.Kind() }

func cast(red *csstree.RedNode, kind csskind.Kind) (Node, bool) {
	if red == nil || red.Kind() != kind {
		return Node{}, false
	}
	return Node{Red: red}, true
}

// --- selectors ---

type Selector struct{ Node }

func CastSelector(red *csstree.RedNode) (Selector, bool) {
	n, ok := cast(red, csskind.SELECTOR)
	return Selector{n}, ok
}

func (s Selector) SimpleSelectors() []SimpleSelector {
	if s.Red == nil {
		return nil
	}
	var out []SimpleSelector
	for _, c := range s.Red.Children() {
		if c.Node == nil {
			continue
		}
		if ss, ok := CastSimpleSelector(c.Node); ok {
			out = append(out, ss)
		}
	}
	return out
}

func (s Selector) Combinators() []Combinator {
	if s.Red == nil {
		return nil
	}
	var out []Combinator
	for _, c := range s.Red.Children() {
		if c.Node == nil {
			continue
		}
		if cb, ok := CastCombinator(c.Node); ok {
			out = append(out, cb)
		}
	}
	return out
}

type SimpleSelector struct{ Node }

func CastSimpleSelector(red *csstree.RedNode) (SimpleSelector, bool) {
	n, ok := cast(red, csskind.SIMPLE_SELECTOR)
	return SimpleSelector{n}, ok
}

// TypeName returns the element-name/`*`/`&` token text, or "" if this
// compound selector starts directly with a sub-selector (implied universal).
func (s SimpleSelector) TypeName() string {
	toks := s.Red.Tokens()
	if len(toks) == 0 {
		return ""
	}
	switch toks[0].Kind() {
	case csskind.IDENT, csskind.DELIM_ASTERISK, csskind.DELIM_AMPERSAND:
		return toks[0].Text()
	}
	return ""
}

func (s SimpleSelector) ClassSelectors() []string {
	return s.textsOfChildKind(csskind.CLASS_SELECTOR)
}

func (s SimpleSelector) IDSelectors() []string {
	return s.textsOfChildKind(csskind.ID_SELECTOR)
}

func (s SimpleSelector) PseudoClassSelectors() []PseudoSelector {
	return s.pseudosOfKind(csskind.PSEUDO_CLASS_SELECTOR)
}

func (s SimpleSelector) PseudoElementSelectors() []PseudoSelector {
	return s.pseudosOfKind(csskind.PSEUDO_ELEMENT_SELECTOR)
}

func (s SimpleSelector) AttributeSelectors() []AttributeSelector {
	var out []AttributeSelector
	for _, c := range s.Red.Children() {
		if c.Node == nil {
			continue
		}
		if a, ok := CastAttributeSelector(c.Node); ok {
			out = append(out, a)
		}
	}
	return out
}

func (s SimpleSelector) textsOfChildKind(kind csskind.Kind) []string {
	var out []string
	for _, c := range s.Red.Children() {
		if c.Node == nil || c.Node.Kind() != kind {
			continue
		}
		out = append(out, strings.TrimPrefix(strings.TrimPrefix(nodeText(c.Node), "."), "#"))
	}
	return out
}

func (s SimpleSelector) pseudosOfKind(kind csskind.Kind) []PseudoSelector {
	var out []PseudoSelector
	for _, c := range s.Red.Children() {
		if c.Node == nil || c.Node.Kind() != kind {
			continue
		}
		out = append(out, PseudoSelector{Node{Red: c.Node}})
	}
	return out
}

type PseudoSelector struct{ Node }

// Name returns the lowercased identifier following the colon(s), stripping
// the trailing '(' of a functional pseudo-class/element.
func (p PseudoSelector) Name() string {
	for _, tok := range p.Red.Tokens() {
		switch tok.Kind() {
		case csskind.IDENT, csskind.FUNCTION:
			return strings.ToLower(strings.TrimSuffix(tok.Text(), "("))
		}
	}
	return ""
}

func (p PseudoSelector) IsElement() bool {
	return p.Kind() == csskind.PSEUDO_ELEMENT_SELECTOR
}

// ArgumentSelectorLists returns nested selector lists inside pseudo-class
// arguments (:is/:not/:has/:where and the `of <selector-list>` tail of
// :nth-child), used by the specificity/printing service (C12).
func (p PseudoSelector) ArgumentSelectorLists() [][]Selector {
	var out [][]Selector
	for _, c := range p.Red.Children() {
		if c.Node == nil || c.Node.Kind() != csskind.PSEUDO_ARGS_SELECTOR_LIST {
			continue
		}
		var list []Selector
		for _, sc := range c.Node.Children() {
			if sc.Node == nil {
				continue
			}
			if sel, ok := CastSelector(sc.Node); ok {
				list = append(list, sel)
			}
		}
		out = append(out, list)
	}
	return out
}

type AttributeSelector struct{ Node }

func CastAttributeSelector(red *csstree.RedNode) (AttributeSelector, bool) {
	n, ok := cast(red, csskind.ATTRIBUTE_SELECTOR)
	return AttributeSelector{n}, ok
}

// Text returns the attribute selector's full source text, e.g.
// `[type="number" i]`. Used by the specificity/printing service (C12),
// which needs the raw operator and value rather than a further-typed
// breakdown this accessor layer doesn't otherwise expose.
func (a AttributeSelector) Text() string { return nodeText(a.Red) }

type Combinator struct{ Node }

func CastCombinator(red *csstree.RedNode) (Combinator, bool) {
	n, ok := cast(red, csskind.COMBINATOR)
	return Combinator{n}, ok
}

func (c Combinator) Text() string { return nodeText(c.Red) }

// --- declarations ---

type Declaration struct{ Node }

func CastDeclaration(red *csstree.RedNode) (Declaration, bool) {
	n, ok := cast(red, csskind.DECLARATION)
	return Declaration{n}, ok
}

func (d Declaration) PropertyName() string {
	for _, c := range d.Red.Children() {
		if c.Node != nil && c.Node.Kind() == csskind.PROPERTY {
			return nodeText(c.Node)
		}
	}
	return ""
}

func (d Declaration) Important() bool {
	for _, c := range d.Red.Children() {
		if c.Node != nil && c.Node.Kind() == csskind.PRIO {
			return true
		}
	}
	return false
}

// --- at-rules ---

type UnknownAtRule struct{ Node }

func CastUnknownAtRule(red *csstree.RedNode) (UnknownAtRule, bool) {
	n, ok := cast(red, csskind.AT_RULE_UNKNOWN)
	return UnknownAtRule{n}, ok
}

func (a UnknownAtRule) Name() string {
	for _, tok := range a.Red.Tokens() {
		if tok.Kind() == csskind.AT_KEYWORD {
			return strings.ToLower(strings.TrimPrefix(tok.Text(), "@"))
		}
	}
	return ""
}

type MediaAtRule struct{ Node }

func CastMediaAtRule(red *csstree.RedNode) (MediaAtRule, bool) {
	n, ok := cast(red, csskind.AT_RULE_MEDIA)
	return MediaAtRule{n}, ok
}

// QueryText returns the raw `@media ...` prelude text (everything before
// the body's opening brace), used by the hover service (C13) to prefix a
// flag string onto the enclosing declaration's preview.
func (m MediaAtRule) QueryText() string {
	var b strings.Builder
	for _, tok := range m.Red.Tokens() {
		if tok.Kind() == csskind.L_CURLY {
			break
		}
		b.WriteString(tok.Text())
	}
	return b.String()
}

type Ruleset struct{ Node }

func CastRuleset(red *csstree.RedNode) (Ruleset, bool) {
	n, ok := cast(red, csskind.RULESET)
	return Ruleset{n}, ok
}

func (r Ruleset) SelectorList() ([]Selector, bool) {
	for _, c := range r.Red.Children() {
		if c.Node == nil || c.Node.Kind() != csskind.SELECTOR_LIST {
			continue
		}
		var out []Selector
		for _, sc := range c.Node.Children() {
			if sc.Node == nil {
				continue
			}
			if sel, ok := CastSelector(sc.Node); ok {
				out = append(out, sel)
			}
		}
		return out, true
	}
	return nil, false
}

func nodeText(n *csstree.RedNode) string {
	var b strings.Builder
	for _, tok := range n.Tokens() {
		b.WriteString(tok.Text())
	}
	return b.String()
}
