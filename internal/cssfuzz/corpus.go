// Package cssfuzz bundles a CSS corpus and the fuzz/property tests that run
// the parser and the incremental reparser over it (spec §4.15, C15): the
// teacher's own css_lexer_fuzz_test.go and css_parser_fuzz_test.go seed a
// []string of hand-picked snippets and hand them to testing.F, so this
// package does the same rather than inventing a different harness shape.
//
// The corpus itself is grounded on original_source/csslancer's
// row_parser/fuzz.rs all_css(), which concatenates one constant per selector
// family (at-rules, attribute/class/id selectors, nested selectors,
// type/universal selectors) into the seed text its own fuzzer mutates; the
// snippets below cover the same families without copying the Rust source's
// literal text.
package cssfuzz

// Seeds is the corpus every test and fuzz target in this package starts
// from: one representative snippet per grammar family the parser supports.
var Seeds = []string{
	// at-rules
	`@charset "UTF-8";`,
	`@import url("base.css") screen;`,
	`@media (min-width: 768px) and (max-width: 1024px) { .col { flex: 1; } }`,
	`@supports (display: grid) and (gap: 1rem) { .grid { display: grid; } }`,
	`@font-face { font-family: "Body"; src: url("body.woff2") format("woff2"); }`,
	`@keyframes spin { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }`,
	`@page :first { margin: 1in; }`,
	`:root { --accent: #ff8800; --gap: calc(1rem + 2px); }`,

	// attribute selectors
	`a[href] { color: blue; }`,
	`input[type="checkbox"]:checked { outline: none; }`,
	`[data-state~="open"][aria-hidden="false"] { display: block; }`,
	`li[class^="icon-"][class$="-lg"] { font-size: 1.5em; }`,

	// class selectors
	`.btn.btn-primary:hover { background: darkblue; }`,
	`.card > .card-body .card-title { font-weight: 600; }`,

	// id selectors
	`#header { position: sticky; top: 0; }`,
	`#nav #search:focus-within { box-shadow: 0 0 0 2px; }`,

	// nested selectors
	`.toolbar { & > button { margin-right: 4px; } &:hover .icon { opacity: 1; } }`,
	`.list { .item { .label { color: gray; } } }`,

	// type and universal selectors
	`* { box-sizing: border-box; }`,
	`div > p + span ~ a { text-decoration: underline; }`,
	`table tr:nth-child(2n+1) td { background: #f7f7f7; }`,

	// pseudo-classes and pseudo-elements exercising specificity logic
	`:is(.a, .b) :where(#c, .d)::before { content: ""; }`,
	`:not([disabled]):has(> .child) { cursor: pointer; }`,
	`::slotted(span) { color: inherit; }`,
	`:host(.themed), :host-context(.dark) { color: white; }`,

	// deliberately malformed input: the parser must recover, not panic
	`.broken {`,
	`a { color: ; }`,
	`@media { .x { } `,
	`"unterminated string`,
}
