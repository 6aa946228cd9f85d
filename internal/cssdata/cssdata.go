// Package cssdata is the static CSS metadata dataset (spec §4.14, C14):
// properties, at-directives, pseudo-classes and pseudo-elements, each with
// a description, standardization status, browser support list, syntax, and
// reference links, loaded once at process start and never mutated. The
// per-engine version-range shape is adapted from
// `_examples/evanw-esbuild/internal/compat/css_table.go`'s `Engine`/`v`
// types — that file tracks which bundler-target browser versions support a
// *lowering feature* (e.g. "rebecca-purple", "nesting"); here the same
// shape tracks which browser versions support a *documented property*,
// which is what this spec's hover service actually needs (spec §4.13).
package cssdata

import "strings"

type Engine uint8

const (
	Chrome Engine = iota
	Edge
	Firefox
	Safari
	IOS
	Opera
)

func (e Engine) String() string {
	switch e {
	case Chrome:
		return "Chrome"
	case Edge:
		return "Edge"
	case Firefox:
		return "Firefox"
	case Safari:
		return "Safari"
	case IOS:
		return "iOS Safari"
	case Opera:
		return "Opera"
	}
	return "Unknown"
}

// BrowserSupport names the first version of Engine that supports the
// entry, or "" if it never has (the hover service renders that as "Not
// supported").
type BrowserSupport struct {
	Engine  Engine
	Since   string
}

type Status string

const (
	StatusStandard     Status = "standard"
	StatusExperimental Status = "experimental"
	StatusNonStandard  Status = "non-standard"
	StatusObsolete     Status = "obsolete"
)

type Property struct {
	Name        string
	Description string
	Status      Status
	Browsers    []BrowserSupport
	Syntax      string
	References  []string
}

type AtDirective struct {
	Name        string
	Description string
	References  []string
}

type PseudoClass struct {
	Name        string
	Description string
	References  []string
}

type PseudoElement struct {
	Name        string
	Description string
	References  []string
}

var mdnCSSRef = "https://developer.mozilla.org/en-US/docs/Web/CSS/"

func ref(path string) []string { return []string{mdnCSSRef + path} }

// baseline is the browser support list for features that have been part of
// CSS1/CSS2 since every evergreen engine's first tracked release.
var baseline = []BrowserSupport{
	{Engine: Chrome, Since: "1"}, {Engine: Edge, Since: "12"}, {Engine: Firefox, Since: "1"},
	{Engine: Safari, Since: "1"}, {Engine: IOS, Since: "1"}, {Engine: Opera, Since: "3.5"},
}

var Properties = buildPropertyIndex([]Property{
	{Name: "color", Description: "Sets the foreground color value of an element's text and text decorations.",
		Status: StatusStandard, Syntax: "<color>", References: ref("color"), Browsers: baseline},
	{Name: "background-color", Description: "Sets the background color of an element.",
		Status: StatusStandard, Syntax: "<color>", References: ref("background-color"), Browsers: baseline},
	{Name: "display", Description: "Sets whether an element is treated as a block or inline box and the layout used for its children.",
		Status: StatusStandard, Syntax: "none | inline | block | flex | grid | ...", References: ref("display"), Browsers: baseline},
	{Name: "position", Description: "Sets how an element is positioned in a document.",
		Status: StatusStandard, Syntax: "static | relative | absolute | sticky | fixed", References: ref("position"), Browsers: baseline},
	{Name: "width", Description: "Sets an element's width.",
		Status: StatusStandard, Syntax: "<length> | <percentage> | auto | ...", References: ref("width"), Browsers: baseline},
	{Name: "height", Description: "Sets an element's height.",
		Status: StatusStandard, Syntax: "<length> | <percentage> | auto | ...", References: ref("height"), Browsers: baseline},
	{Name: "margin", Description: "Sets the margin area on all four sides of an element.",
		Status: StatusStandard, Syntax: "<length> | <percentage> | auto", References: ref("margin"), Browsers: baseline},
	{Name: "padding", Description: "Sets the padding area on all four sides of an element.",
		Status: StatusStandard, Syntax: "<length> | <percentage>", References: ref("padding"), Browsers: baseline},
	{Name: "font-family", Description: "Specifies a prioritized list of font family names or generic family names.",
		Status: StatusStandard, Syntax: "[ <family-name> | <generic-family> ]#", References: ref("font-family"), Browsers: baseline},
	{Name: "flex", Description: "Shorthand that sets how a flex item will grow or shrink to fit the space available.",
		Status: StatusStandard, Syntax: "none | [ <flex-grow> <flex-shrink>? || <flex-basis> ]", References: ref("flex"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "29"}, {Engine: Edge, Since: "12"}, {Engine: Firefox, Since: "20"},
			{Engine: Safari, Since: "9"}, {Engine: IOS, Since: "9"}, {Engine: Opera, Since: "12.1"},
		}},
	{Name: "grid-template-columns", Description: "Defines the line names and track sizing functions of the grid columns.",
		Status: StatusStandard, Syntax: "none | <track-list> | <auto-track-list>", References: ref("grid-template-columns"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "57"}, {Engine: Edge, Since: "16"}, {Engine: Firefox, Since: "52"},
			{Engine: Safari, Since: "10.1"}, {Engine: IOS, Since: "10.3"}, {Engine: Opera, Since: "44"},
		}},
	{Name: "gap", Description: "Sets the gaps (gutters) between rows and columns in a grid or flex container.",
		Status: StatusStandard, Syntax: "<'row-gap'> <'column-gap'>?", References: ref("gap"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "84"}, {Engine: Edge, Since: "84"}, {Engine: Firefox, Since: "63"},
			{Engine: Safari, Since: "14.1"}, {Engine: IOS, Since: "14.5"}, {Engine: Opera, Since: "70"},
		}},
	{Name: "transform", Description: "Lets you rotate, scale, skew, or translate an element.",
		Status: StatusStandard, Syntax: "none | <transform-list>", References: ref("transform"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "36"}, {Engine: Edge, Since: "12"}, {Engine: Firefox, Since: "16"},
			{Engine: Safari, Since: "9"}, {Engine: IOS, Since: "9"}, {Engine: Opera, Since: "23"},
		}},
	{Name: "transition", Description: "Shorthand for the four transition properties.",
		Status: StatusStandard, Syntax: "<single-transition>#", References: ref("transition"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "26"}, {Engine: Edge, Since: "12"}, {Engine: Firefox, Since: "16"},
			{Engine: Safari, Since: "9"}, {Engine: IOS, Since: "9"}, {Engine: Opera, Since: "12.1"},
		}},
	{Name: "container-type", Description: "Establishes the element as a query container for container size queries.",
		Status: StatusStandard, Syntax: "normal | size | inline-size", References: ref("container-type"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "105"}, {Engine: Edge, Since: "105"}, {Engine: Firefox, Since: "110"},
			{Engine: Safari, Since: "16"}, {Engine: IOS, Since: "16"}, {Engine: Opera, Since: "91"},
		}},
	{Name: "aspect-ratio", Description: "Sets a preferred aspect ratio for a box, used in the calculation of auto sizes.",
		Status: StatusStandard, Syntax: "auto || <ratio>", References: ref("aspect-ratio"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "88"}, {Engine: Edge, Since: "88"}, {Engine: Firefox, Since: "89"},
			{Engine: Safari, Since: "15"}, {Engine: IOS, Since: "15"}, {Engine: Opera, Since: "74"},
		}},
	{Name: "zoom", Description: "Scales the rendered size of an element's box, non-standard but widely implemented.",
		Status: StatusNonStandard, Syntax: "normal | reset | <number> | <percentage>", References: ref("zoom"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "1"}, {Engine: Edge, Since: "12"}, {Engine: Firefox, Since: ""},
			{Engine: Safari, Since: "5.1"}, {Engine: IOS, Since: ""}, {Engine: Opera, Since: "15"},
		}},
	{Name: "-webkit-box-orient", Description: "Sets whether a WebKit flex/box layout is laid out horizontally or vertically.",
		Status: StatusObsolete, Syntax: "horizontal | vertical", References: ref("box-orient"), Browsers: []BrowserSupport{
			{Engine: Chrome, Since: "1"}, {Engine: Edge, Since: "79"}, {Engine: Firefox, Since: ""},
			{Engine: Safari, Since: "1"}, {Engine: IOS, Since: "1"}, {Engine: Opera, Since: "15"},
		}},
})

var AtDirectives = buildAtDirectiveIndex([]AtDirective{
	{Name: "media", Description: "Applies styles based on the result of one or more media queries.", References: ref("@media")},
	{Name: "supports", Description: "Applies styles if the user agent supports the given conditional rule.", References: ref("@supports")},
	{Name: "import", Description: "Includes style rules from another style sheet.", References: ref("@import")},
	{Name: "namespace", Description: "Declares an XML namespace for use in attribute and type selectors.", References: ref("@namespace")},
	{Name: "font-face", Description: "Describes the aspects of a downloadable font to be used on the web page.", References: ref("@font-face")},
	{Name: "keyframes", Description: "Controls intermediate steps in a CSS animation sequence.", References: ref("@keyframes")},
	{Name: "property", Description: "Defines a custom property's name, syntax, inheritance, and initial value.", References: ref("@property")},
	{Name: "layer", Description: "Declares a cascade layer and its precedence relative to other layers.", References: ref("@layer")},
	{Name: "page", Description: "Modifies some CSS properties when printing a document.", References: ref("@page")},
	{Name: "container", Description: "Applies styles based on the size or style of a nearest query container.", References: ref("@container")},
	{Name: "viewport", Description: "Controls zoom and scale for a document's viewport, primarily for mobile.", References: ref("@viewport")},
	{Name: "document", Description: "A non-standard Mozilla at-rule that applies styles based on the document's URL.", References: ref("@document")},
})

var PseudoClasses = buildPseudoClassIndex([]PseudoClass{
	{Name: "hover", Description: "Matches an element being hovered.", References: ref(":hover")},
	{Name: "focus", Description: "Matches an element that has received focus.", References: ref(":focus")},
	{Name: "active", Description: "Matches an element being activated by the user.", References: ref(":active")},
	{Name: "is", Description: "Matches any element that any of the selectors in its argument list matches.", References: ref(":is")},
	{Name: "not", Description: "Matches elements that do not match the selector list in its argument.", References: ref(":not")},
	{Name: "has", Description: "Matches an element if any of the relative selectors in its argument match at least one element when anchored to it.", References: ref(":has")},
	{Name: "where", Description: "Like :is(), but its argument always has zero specificity.", References: ref(":where")},
	{Name: "nth-child", Description: "Matches elements based on their position among siblings, per an An+B expression.", References: ref(":nth-child")},
	{Name: "nth-last-child", Description: "Like :nth-child but counts from the end.", References: ref(":nth-last-child")},
	{Name: "lang", Description: "Matches an element based on its declared human language.", References: ref(":lang")},
	{Name: "host", Description: "Selects the shadow host of the shadow DOM a rule is placed inside.", References: ref(":host")},
	{Name: "host-context", Description: "Selects the shadow host if it or any of its ancestors matches the selector.", References: ref(":host-context")},
})

var PseudoElements = buildPseudoElementIndex([]PseudoElement{
	{Name: "before", Description: "Creates a pseudo-element as the first child of the selected element.", References: ref("::before")},
	{Name: "after", Description: "Creates a pseudo-element as the last child of the selected element.", References: ref("::after")},
	{Name: "first-line", Description: "Applies styles to the first line of a block-level element.", References: ref("::first-line")},
	{Name: "first-letter", Description: "Applies styles to the first letter of the first line of a block.", References: ref("::first-letter")},
	{Name: "slotted", Description: "Matches content assigned to a <slot> inside a shadow tree.", References: ref("::slotted")},
	{Name: "placeholder", Description: "Matches placeholder text in a form element.", References: ref("::placeholder")},
})

func buildPropertyIndex(list []Property) map[string]Property {
	m := make(map[string]Property, len(list))
	for _, p := range list {
		m[strings.ToLower(p.Name)] = p
	}
	return m
}

func buildAtDirectiveIndex(list []AtDirective) map[string]AtDirective {
	m := make(map[string]AtDirective, len(list))
	for _, a := range list {
		m[strings.ToLower(a.Name)] = a
	}
	return m
}

func buildPseudoClassIndex(list []PseudoClass) map[string]PseudoClass {
	m := make(map[string]PseudoClass, len(list))
	for _, p := range list {
		m[strings.ToLower(p.Name)] = p
	}
	return m
}

func buildPseudoElementIndex(list []PseudoElement) map[string]PseudoElement {
	m := make(map[string]PseudoElement, len(list))
	for _, p := range list {
		m[strings.ToLower(p.Name)] = p
	}
	return m
}

func LookupProperty(name string) (Property, bool) {
	p, ok := Properties[strings.ToLower(name)]
	return p, ok
}

func LookupAtDirective(name string) (AtDirective, bool) {
	a, ok := AtDirectives[strings.ToLower(strings.TrimPrefix(name, "@"))]
	return a, ok
}

func LookupPseudoClass(name string) (PseudoClass, bool) {
	p, ok := PseudoClasses[strings.ToLower(name)]
	return p, ok
}

func LookupPseudoElement(name string) (PseudoElement, bool) {
	p, ok := PseudoElements[strings.ToLower(name)]
	return p, ok
}

// IsPseudoElementName reports whether name (without leading colons) is any
// entry of PseudoElements, not only the ones legacy single-colon syntax
// grandfathers in; used by C12's specificity rules to distinguish `:before`
// from an ordinary pseudo-class.
func IsPseudoElementName(name string) bool {
	_, ok := PseudoElements[strings.ToLower(name)]
	return ok
}
