// Package specificity is the selector printing & specificity service (spec
// §4.12, C12): converting a selector into an HTML-like preview tree and a
// specificity triple. esbuild has no such service at all — it only ever
// minifies selectors, never explains them — so this package is grounded on
// original_source/csslancer/src/services/selector_printing.rs's
// `Element`/`Specificity`/`calculate_score` directly, adapted onto
// internal/cssast's typed accessors instead of rowan's SyntaxNode children
// and ego_tree's arena tree. The Rust original's `&`-nesting clone-to-root
// machinery (for rule-nesting contexts this grammar doesn't track ancestor
// selector chains for) is simplified to rendering `&` as an ordinary nested
// element, noted in DESIGN.md.
package specificity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csslsp/csslsp/internal/cssast"
)

// Specificity is the lexicographic (id, attr, tag) triple (spec §4.12).
type Specificity struct {
	ID, Attr, Tag int
}

func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{s.ID + o.ID, s.Attr + o.Attr, s.Tag + o.Tag}
}

// Less orders two Specificities lexicographically on (id, attr, tag).
func (s Specificity) Less(o Specificity) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	if s.Attr != o.Attr {
		return s.Attr < o.Attr
	}
	return s.Tag < o.Tag
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.ID, s.Attr, s.Tag)
}

// Max returns the lexicographically greatest of list, or the zero
// Specificity for an empty list (spec §4.12 "maximum of a selector list").
func Max(list []Specificity) Specificity {
	var best Specificity
	for i, s := range list {
		if i == 0 || best.Less(s) {
			best = s
		}
	}
	return best
}

var (
	reIsNotHasIs = regexp.MustCompile(`(?i)^:(?:not|has|is)`)
	reHost       = regexp.MustCompile(`(?i)^:(?:host|host-context)`)
	reNthChild   = regexp.MustCompile(`(?i)^:(?:nth-child|nth-last-child)`)
	reWhere      = regexp.MustCompile(`(?i)^:where`)
)

// OfSelector computes the specificity of a full selector (combinators and
// all its simple selectors).
func OfSelector(sel cssast.Selector) Specificity {
	var total Specificity
	for _, ss := range sel.SimpleSelectors() {
		total = total.Add(OfSimpleSelector(ss))
	}
	return total
}

// OfSimpleSelector computes the specificity of one compound selector: its
// id/class/attribute/pseudo sub-selectors plus its own element name (spec
// §4.12's "Specificity" rules).
func OfSimpleSelector(ss cssast.SimpleSelector) Specificity {
	var total Specificity

	if name := ss.TypeName(); name != "" && name != "*" && name != "&" {
		total.Tag++
	}
	total.Attr += len(ss.ClassSelectors())
	total.Attr += len(ss.AttributeSelectors())
	total.ID += len(ss.IDSelectors())

	for _, p := range ss.PseudoClassSelectors() {
		total = total.Add(ofPseudo(p))
	}
	for _, p := range ss.PseudoElementSelectors() {
		total = total.Add(ofPseudoElement(p))
	}
	return total
}

// ofPseudo scores a `:name(...)` pseudo-class, including the Selectors
// Level 4 special cases for :is/:not/:has/:where/:host/:host-context/
// :nth-child/:nth-last-child (spec §4.12).
func ofPseudo(p cssast.PseudoSelector) Specificity {
	name := ":" + p.Name()
	lists := p.ArgumentSelectorLists()

	if reWhere.MatchString(name) {
		return Specificity{}
	}

	if reIsNotHasIs.MatchString(name) {
		if max, ok := maxOfLists(lists); ok {
			return max
		}
		return Specificity{Attr: 1}
	}

	if reHost.MatchString(name) {
		s := Specificity{Attr: 1}
		if max, ok := maxOfLists(lists); ok {
			s = s.Add(max)
		}
		return s
	}

	if reNthChild.MatchString(name) {
		s := Specificity{Attr: 1}
		if max, ok := maxOfLists(lists); ok {
			s = s.Add(max)
		}
		return s
	}

	return Specificity{Attr: 1}
}

// ofPseudoElement scores a `::name(...)` pseudo-element: +(0,0,1), plus
// ::slotted's argument maximum (spec §4.12).
func ofPseudoElement(p cssast.PseudoSelector) Specificity {
	s := Specificity{Tag: 1}
	if strings.EqualFold(p.Name(), "slotted") {
		if max, ok := maxOfLists(p.ArgumentSelectorLists()); ok {
			s = s.Add(max)
		}
	}
	return s
}

func maxOfLists(lists [][]cssast.Selector) (Specificity, bool) {
	var flat []Specificity
	for _, l := range lists {
		for _, sel := range l {
			flat = append(flat, OfSelector(sel))
		}
	}
	if len(flat) == 0 {
		return Specificity{}, false
	}
	return Max(flat), true
}

// --- element preview tree ---

// Attribute is one name/value pair rendered on a preview element, e.g.
// {"class", "foo bar"} or {":hover", ""}.
type Attribute struct {
	Name, Value string
}

// Element is one node of the HTML-like preview tree (spec §4.12's
// "Element tree"). Label is set instead of Attributes for the synthetic
// combinator placeholders ("…" and "⋮").
type Element struct {
	Label      string
	Attributes []Attribute
	Children   []*Element
}

func (e *Element) addAttr(name, value string) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			e.Attributes[i].Value = strings.TrimSpace(e.Attributes[i].Value + " " + value)
			return
		}
	}
	e.Attributes = append(e.Attributes, Attribute{Name: name, Value: value})
}

// ElementTree converts a selector into its preview forest (spec §4.12).
// The returned Element is a transparent container whose Children are the
// top-level preview elements — exactly one for a plain selector, more than
// one when a `+`/`~` sibling combinator appears at the outermost level.
// Each combinator nests the next simple selector per the table: descendant
// nests through an ellipsis placeholder, `>` nests directly, `+` is a
// same-depth sibling, `~` is a same-depth sibling prefixed with `⋮`.
func ElementTree(sel cssast.Selector) *Element {
	container := &Element{}
	simples := sel.SimpleSelectors()
	combinators := sel.Combinators()
	if len(simples) == 0 {
		return container
	}

	cur := simpleToElement(simples[0])
	container.Children = append(container.Children, cur)
	parent := container

	for i := 1; i < len(simples); i++ {
		leaf := simpleToElement(simples[i])
		combText := ""
		if i-1 < len(combinators) {
			combText = strings.TrimSpace(combinators[i-1].Text())
		}
		switch combText {
		case ">":
			cur.Children = append(cur.Children, leaf)
			parent = cur
		case "+":
			parent.Children = append(parent.Children, leaf)
		case "~":
			sib := &Element{Label: "⋮"}
			parent.Children = append(parent.Children, sib)
			sib.Children = append(sib.Children, leaf)
		default:
			// descendant (implicit), '>>>' and '/deep/' all nest through an
			// ellipsis placeholder per spec §4.12.
			ellipsis := &Element{Label: "…"}
			cur.Children = append(cur.Children, ellipsis)
			ellipsis.Children = append(ellipsis.Children, leaf)
			parent = cur
		}
		cur = leaf
	}
	return container
}

func simpleToElement(ss cssast.SimpleSelector) *Element {
	e := &Element{}
	if name := ss.TypeName(); name != "" {
		if name == "*" {
			e.addAttr("name", "element")
		} else {
			e.addAttr("name", name)
		}
	}
	for _, c := range ss.ClassSelectors() {
		e.addAttr("class", strings.TrimPrefix(c, "."))
	}
	for _, id := range ss.IDSelectors() {
		e.addAttr("id", strings.TrimPrefix(id, "#"))
	}
	for _, a := range ss.AttributeSelectors() {
		name, value := attributeNameValue(a)
		e.addAttr(name, value)
	}
	for _, p := range ss.PseudoClassSelectors() {
		e.addAttr(":"+p.Name(), "")
	}
	for _, p := range ss.PseudoElementSelectors() {
		e.addAttr("::"+p.Name(), "")
	}
	return e
}

// attributeNameValue renders `[ns|name op value i?]` per spec §4.12's
// operator table. The attribute selector's own sub-tokens aren't broken
// out into a typed accessor (cssast.AttributeSelector exposes only the
// whole node), so this reads its raw text directly.
func attributeNameValue(a cssast.AttributeSelector) (string, string) {
	text := strings.TrimSuffix(strings.TrimPrefix(a.Text(), "["), "]")
	name := text
	op := ""
	opIdx := -1
	for _, candidate := range []string{"~=", "|=", "^=", "$=", "*=", "="} {
		if idx := strings.Index(text, candidate); idx >= 0 && (opIdx == -1 || idx < opIdx) {
			opIdx = idx
			op = candidate
		}
	}
	if opIdx < 0 {
		return strings.TrimSpace(name), "undefined"
	}
	name = strings.TrimSpace(text[:opIdx])
	value := strings.TrimSpace(text[opIdx+len(op):])
	value = strings.TrimSuffix(value, " i")
	value = strings.TrimSuffix(value, " I")
	value = unquote(value)

	switch op {
	case "|=":
		return name, value + "-…"
	case "~=":
		return name, "… " + value + " …"
	case "^=":
		return name, value + "…"
	case "$=":
		return name, "…" + value
	case "*=":
		return name, "…" + value + "…"
	default:
		return name, value
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// Preview renders an element tree as indented `<tag attr="value">` lines
// (spec §4.12's MarkedStringPrinter), one per element, children indented
// one level deeper than their parent. A Label element ("…", "⋮") prints as
// its bare label instead of a tag.
func Preview(tree *Element) string {
	var lines []string
	for _, child := range tree.Children {
		printElement(&lines, child, 0)
	}
	return strings.Join(lines, "\n")
}

func printElement(lines *[]string, e *Element, depth int) {
	indent := strings.Repeat("  ", depth)
	if e.Label != "" {
		*lines = append(*lines, indent+e.Label)
	} else {
		*lines = append(*lines, indent+renderTag(e))
	}
	for _, c := range e.Children {
		printElement(lines, c, depth+1)
	}
}

func renderTag(e *Element) string {
	var b strings.Builder
	b.WriteByte('<')
	name := "element"
	for _, a := range e.Attributes {
		if a.Name == "name" {
			name = a.Value
			break
		}
	}
	b.WriteString(name)
	for _, a := range e.Attributes {
		if a.Name == "name" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a.Name)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	return b.String()
}

// SpecificityMarkdown renders the MDN-linked specificity marked string
// appended after the preview (spec §4.12, §4.13).
func SpecificityMarkdown(s Specificity) string {
	return fmt.Sprintf("[Selector Specificity](https://developer.mozilla.org/docs/Web/CSS/Specificity): %s", s)
}
