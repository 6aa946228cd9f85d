// Package hover is the hover service (spec §4.13, C13): given a document
// and a position, find the innermost enclosing node of interest and render
// LSP hover contents from the CSS metadata dataset (C14) or the selector
// printing/specificity service (C12). esbuild has no interactive
// services at all, so this is grounded directly on
// original_source/csslancer/src/services/hover.rs's get_hover dispatch —
// adapted from its rowan node-path walk onto internal/csstree.RedNode
// ancestors, and from its CssDataManager lookups onto internal/cssdata.
package hover

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csslsp/csslsp/internal/cssast"
	"github.com/csslsp/csslsp/internal/cssdata"
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
	"github.com/csslsp/csslsp/internal/specificity"
	"github.com/mazznoer/csscolorparser"
)

// Settings mirrors spec §6's recognized hover configuration options.
type Settings struct {
	Documentation bool
	References    bool
}

// Hover is the computed result: Markdown is true when contents should be
// rendered as LSP MarkupKind Markdown, false for PlainText (spec §4.13's
// "conversion to plain text strips Markdown syntax markers").
type Hover struct {
	Contents string
	Markdown bool
	Range    logger.Range
}

var reMediaPrelude = regexp.MustCompile(`(?s)^@media[^{]*`)

// Get computes the hover result at offset, or false if nothing at that
// position is hoverable. supportsMarkdown mirrors the client's advertised
// hover.contentFormat capability (spec §4.13's "if the client advertises
// support").
func Get(doc *cssdoc.Document, offset int32, settings Settings, supportsMarkdown bool) (Hover, bool) {
	root := doc.Root()
	start := root.NodeCovering(offset, offset)

	var mediaFlag string
	for _, n := range start.Ancestors() {
		if n.Kind() == csskind.AT_RULE_MEDIA && mediaFlag == "" {
			text := textOf(n)
			if m := reMediaPrelude.FindString(text); m != "" {
				mediaFlag = strings.TrimSpace(m)
			}
		}

		if hv, ok := dispatch(doc, n, mediaFlag, settings); ok {
			if !supportsMarkdown {
				hv.Contents = stripMarkdown(hv.Contents)
				hv.Markdown = false
			}
			return hv, true
		}
	}
	return Hover{}, false
}

func dispatch(doc *cssdoc.Document, n *csstree.RedNode, mediaFlag string, settings Settings) (Hover, bool) {
	switch n.Kind() {
	case csskind.SELECTOR:
		sel, ok := cssast.CastSelector(n)
		if !ok {
			return Hover{}, false
		}
		return Hover{
			Contents: selectorPreview(sel.Red, mediaFlag),
			Markdown: true,
			Range:    nodeRange(n),
		}, true

	case csskind.SIMPLE_SELECTOR:
		if strings.HasPrefix(textOf(n), "@") {
			return Hover{}, false // sass-style at-rule parsed as a simple selector; not hoverable here
		}
		return Hover{
			Contents: simpleSelectorPreview(n, mediaFlag),
			Markdown: true,
			Range:    nodeRange(n),
		}, true

	case csskind.DECLARATION:
		decl, ok := cssast.CastDeclaration(n)
		if !ok {
			return Hover{}, false
		}
		prop, ok := cssdata.LookupProperty(decl.PropertyName())
		if !ok {
			return Hover{}, false
		}
		return Hover{
			Contents: describeProperty(prop, settings),
			Markdown: true,
			Range:    nodeRange(n),
		}, true

	case csskind.AT_RULE_UNKNOWN:
		a, ok := cssast.CastUnknownAtRule(n)
		if !ok {
			return Hover{}, false
		}
		dir, ok := cssdata.LookupAtDirective(a.Name())
		if !ok {
			return Hover{}, false
		}
		return Hover{Contents: describeEntry(dir.Description, dir.References, settings), Markdown: true, Range: nodeRange(n)}, true

	case csskind.PSEUDO_CLASS_SELECTOR, csskind.PSEUDO_ELEMENT_SELECTOR:
		name := textOf(n)
		if strings.HasPrefix(name, "::") {
			pe, ok := cssdata.LookupPseudoElement(strings.TrimPrefix(pseudoIdent(name), "::"))
			if !ok {
				return Hover{}, false
			}
			return Hover{Contents: describeEntry(pe.Description, pe.References, settings), Markdown: true, Range: nodeRange(n)}, true
		}
		pc, ok := cssdata.LookupPseudoClass(strings.TrimPrefix(pseudoIdent(name), ":"))
		if !ok {
			return Hover{}, false
		}
		return Hover{Contents: describeEntry(pc.Description, pc.References, settings), Markdown: true, Range: nodeRange(n)}, true
	}
	return Hover{}, false
}

var rePseudoIdent = regexp.MustCompile(`^::?[\w-]+`)

func pseudoIdent(text string) string {
	return rePseudoIdent.FindString(text)
}

func selectorPreview(sel cssast.Selector, mediaFlag string) string {
	tree := specificity.ElementTree(sel)
	spec := specificity.OfSelector(sel)
	return withFlag(mediaFlag, previewCode(tree))+"\n\n"+specificity.SpecificityMarkdown(spec)
}

func simpleSelectorPreview(n *csstree.RedNode, mediaFlag string) string {
	ss, ok := cssast.CastSimpleSelector(n)
	if !ok {
		return ""
	}
	el := simpleElement(ss)
	spec := specificity.OfSimpleSelector(ss)
	return withFlag(mediaFlag, previewCodeElement(el))+"\n\n"+specificity.SpecificityMarkdown(spec)
}

// simpleElement and previewCodeElement exist because a hovered simple
// selector still needs a preview; specificity.ElementTree operates on a full
// Selector, so this renders the element tree of the simple selector's
// enclosing Selector (every simple selector in it, not only the hovered one).
func simpleElement(ss cssast.SimpleSelector) *specificity.Element {
	return specificity.ElementTree(wrapAsSelector(ss))
}

// wrapAsSelector is a thin shim: a bare SimpleSelector has no Selector
// parent in isolation, but specificity.ElementTree only reads
// SimpleSelectors()/Combinators() off whatever Selector it's handed, and a
// SimpleSelector's own red node always has a real SELECTOR parent in a
// parsed tree (selectors are never top-level nodes) — so recovering that
// parent and recasting gives ElementTree the exact same input it would get
// from a full-selector hover, without duplicating its combinator logic.
func wrapAsSelector(ss cssast.SimpleSelector) cssast.Selector {
	if parent := ss.Red.Parent(); parent != nil {
		if sel, ok := cssast.CastSelector(parent); ok {
			return sel
		}
	}
	return cssast.Selector{}
}

func previewCode(tree *specificity.Element) string {
	return "```html\n" + specificity.Preview(tree) + "\n```"
}

func previewCodeElement(tree *specificity.Element) string { return previewCode(tree) }

func withFlag(flag, body string) string {
	if flag == "" {
		return body
	}
	return flag + "\n\n" + body
}

func describeProperty(p cssdata.Property, settings Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", p.Name)
	if p.Status != cssdata.StatusStandard {
		fmt.Fprintf(&b, " _(%s)_", p.Status)
	}
	b.WriteString("\n\n")
	if settings.Documentation || settings.References {
		if settings.Documentation {
			b.WriteString(p.Description)
			b.WriteString("\n\n")
		}
		if p.Syntax != "" {
			fmt.Fprintf(&b, "Syntax: `%s`\n\n", p.Syntax)
		}
		if len(p.Browsers) > 0 {
			fmt.Fprintf(&b, "%s\n\n", formatBrowsers(p.Browsers))
		}
		if c, err := csscolorparser.Parse(exampleColorFor(p)); err == nil && p.Syntax == "<color>" {
			fmt.Fprintf(&b, "Example: `%s`\n\n", c.HexString())
		}
	}
	if settings.References {
		for _, r := range p.References {
			fmt.Fprintf(&b, "[Reference](%s)\n", r)
		}
	}
	return strings.TrimSpace(b.String())
}

// formatBrowsers renders a Property's browser support list as one
// "Engine since X" label per entry, joined by ", "; an empty Since means
// the engine never shipped the feature.
func formatBrowsers(browsers []cssdata.BrowserSupport) string {
	labels := make([]string, len(browsers))
	for i, bs := range browsers {
		if bs.Since == "" {
			labels[i] = fmt.Sprintf("%s: not supported", bs.Engine)
		} else {
			labels[i] = fmt.Sprintf("%s %s+", bs.Engine, bs.Since)
		}
	}
	return "Browser support: " + strings.Join(labels, ", ")
}

// exampleColorFor picks a representative value for any `<color>`-syntax
// property so hover can validate it through csscolorparser — purely a
// syntactic sanity check per spec §1's Non-goals (never validates the
// document's own value, only normalizes the form shown in hover text).
func exampleColorFor(p cssdata.Property) string {
	if p.Name == "background-color" {
		return "rebeccapurple"
	}
	return "currentcolor"
}

func describeEntry(description string, references []string, settings Settings) string {
	var b strings.Builder
	if settings.Documentation {
		b.WriteString(description)
		b.WriteString("\n\n")
	}
	if settings.References {
		for _, r := range references {
			fmt.Fprintf(&b, "[Reference](%s)\n", r)
		}
	}
	return strings.TrimSpace(b.String())
}

var mdMarkers = regexp.MustCompile("(\\*\\*|`{1,3}|\\[|\\]\\([^)]*\\)|_)")

// stripMarkdown renders Markdown as plain text for clients that don't
// advertise MarkupKind.Markdown support (spec §4.13).
func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "```html\n", "")
	s = strings.ReplaceAll(s, "```", "")
	return mdMarkers.ReplaceAllString(s, "")
}

func nodeRange(n *csstree.RedNode) logger.Range {
	return logger.Range{Loc: logger.Loc{Start: n.Offset()}, Len: n.EndOffset() - n.Offset()}
}

func textOf(n *csstree.RedNode) string {
	var b strings.Builder
	for _, t := range n.Tokens() {
		b.WriteString(t.Text())
	}
	return b.String()
}
