package cssdoc

import (
	"github.com/csslsp/csslsp/internal/cssincr"
	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
)

// Change is one LSP content change. HasRange false means a full-document
// replace (the client sent no range, i.e. `textDocument/didChange` with
// `TextDocumentContentChangeEventWhole`); otherwise Start/End are UTF-16
// positions bounding the replaced span, per spec §4.8.
type Change struct {
	HasRange bool
	Start    Position
	End      Position
	Text     string
}

// ApplyChange incorporates one content change into the document: converts
// the change's UTF-16 range to a UTF-8 byte range via the current line
// index, reparses incrementally through internal/cssincr, and then rebuilds
// the line index from the first edited line downward (spec §4.8). Call it
// once per change in the order the client sent them, then bump Version
// yourself once per didChange notification (mirroring the Rust original,
// where Source::edit and the version bump are separate steps).
func (d *Document) ApplyChange(c Change) cssincr.Tier {
	if !c.HasRange {
		d.Replace(c.Text)
		return cssincr.TierFull
	}

	startByte := d.PositionToByte(c.Start)
	endByte := d.PositionToByte(c.End)
	firstLine := d.lineIndex(startByte)

	edit := cssincr.Edit{
		DeleteRange: logger.Range{Loc: logger.Loc{Start: startByte}, Len: endByte - startByte},
		InsertText:  c.Text,
	}
	result := cssincr.Reparse(d.text, d.parse.Root, d.parse.Errors, edit, d.interner)

	d.text = edit.Apply(d.text)
	d.parse = csstree.Parse[cssparser.SourceFile]{Root: result.Root, Errors: result.Errors}
	d.rebuildLinesFrom(firstLine)

	return result.Tier
}

// Replace fully replaces the document's text: a fresh parse and a fresh
// line index, the same work New does (Rust original's Source::replace
// before it specialized into a diff-then-edit; this module always treats a
// whole-document change as "parse it again" rather than diffing, since the
// LSP client already tells us when a change is incremental).
func (d *Document) Replace(text string) {
	d.text = text
	d.parse = cssparser.ParseWithInterner(logger.Source{Contents: text, KeyPath: d.URL}, d.interner)
	d.lines = computeLines(text)
}

// rebuildLinesFrom recomputes the line index from the start of line
// firstEditedLine onward: entries before it are still byte-accurate (spec
// §4.8), only the suffix needs recomputing against the new text.
func (d *Document) rebuildLinesFrom(firstEditedLine int) {
	if firstEditedLine < 0 {
		firstEditedLine = 0
	}
	if firstEditedLine >= len(d.lines) {
		firstEditedLine = len(d.lines) - 1
	}

	kept := d.lines[:firstEditedLine+1]
	from := kept[len(kept)-1]
	tail := linesFrom(from.utf8Offset, from.utf16Offset, d.text[from.utf8Offset:])

	d.lines = append(append([]lineStart{}, kept...), tail...)
}
