// Package cssdoc is the source document (spec §4.8, C9): a URL, a version
// number, the current text, the current Parse, and a line index mapping
// byte offsets to UTF-16 positions and back. It is the thing every other
// service (selection ranges, semantic tokens, hover) is handed to work
// against, and the thing the LSP layer edits on every didChange.
//
// Grounded on original_source/csslancer/src/workspace/source.rs's Source
// (url, version, parse, lines) — esbuild has no long-lived mutable
// document; it parses a file once per build. Like the
// Rust original, a Document owns the Interner its Parse was built with, so
// every subsequent edit keeps hash-consing against the same table.
package cssdoc

import (
	"fmt"

	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// Document is a single open CSS source file plus everything needed to
// translate LSP positions against it.
type Document struct {
	URL     string
	Version int32

	text     string
	parse    csstree.Parse[cssparser.SourceFile]
	interner *csstree.Interner
	lines    []lineStart
}

// New builds a document from scratch: lexes and parses text once and
// computes the line index in a single pass (spec §4.8 "on open").
func New(url string, text string, version int32) *Document {
	interner := csstree.NewInterner()
	parse := cssparser.ParseWithInterner(logger.Source{Contents: text, KeyPath: url}, interner)
	return &Document{
		URL:      url,
		Version:  version,
		text:     text,
		parse:    parse,
		interner: interner,
		lines:    computeLines(text),
	}
}

// NewDetached builds a document with a synthetic URL and version 0, for
// tests that don't care about document identity (Rust original's
// Source::detached).
func NewDetached(text string) *Document {
	return New("detached:///source", text, 0)
}

// String never prints the document's contents — only its identity — so that
// logging a Document can't flood a log with arbitrarily large source text
// (Rust original's Debug impl for Source).
func (d *Document) String() string {
	return fmt.Sprintf("Document{URL: %s, Version: %d, len(Text): %d}", d.URL, d.Version, len(d.text))
}

// Text returns the document's current full contents.
func (d *Document) Text() string { return d.text }

// Parse returns the document's current green tree and diagnostics.
func (d *Document) Parse() csstree.Parse[cssparser.SourceFile] { return d.parse }

// Root returns the current red root, the entry point every read-only
// service (selection ranges, semantic tokens, hover) walks.
func (d *Document) Root() *csstree.RedNode { return d.parse.RedRoot() }

// TextAt returns the substring of the document's current text covered by r,
// clamped to the document's bounds.
func (d *Document) TextAt(r logger.Range) string {
	start, end := r.Loc.Start, r.End()
	if start < 0 {
		start = 0
	}
	if end > int32(len(d.text)) {
		end = int32(len(d.text))
	}
	if start > end {
		return ""
	}
	return d.text[start:end]
}
