package lspserver

import (
	"encoding/json"

	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/logger"
	"github.com/csslsp/csslsp/internal/selection"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func toDocPosition(p protocol.Position) cssdoc.Position {
	return cssdoc.Position{Line: int(p.Line), Character: int(p.Character)}
}

func toProtocolPosition(p cssdoc.Position) protocol.Position {
	return protocol.Position{Line: uint32(p.Line), Character: uint32(p.Character)}
}

func toProtocolRange(doc *cssdoc.Document, r logger.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(doc.ByteToPosition(r.Loc.Start)),
		End:   toProtocolPosition(doc.ByteToPosition(r.End())),
	}
}

// toDocChange adapts one glsp incremental content-change event to
// internal/cssdoc's Change. A nil Range means a whole-document replace
// (spec §4.8's "no range -> full text sync").
func toDocChange(c protocol.TextDocumentContentChangeEvent) cssdoc.Change {
	if c.Range == nil {
		return cssdoc.Change{HasRange: false, Text: c.Text}
	}
	return cssdoc.Change{
		HasRange: true,
		Start:    toDocPosition(c.Range.Start),
		End:      toDocPosition(c.Range.End),
		Text:     c.Text,
	}
}

// toSelectionRange converts a selection.Range chain (innermost first) to
// glsp's protocol.SelectionRange chain, which nests the same way.
func toSelectionRange(doc *cssdoc.Document, r selection.Range) protocol.SelectionRange {
	out := protocol.SelectionRange{Range: toProtocolRange(doc, r.Span)}
	if r.Parent != nil {
		parent := toSelectionRange(doc, *r.Parent)
		out.Parent = &parent
	}
	return out
}

// marshalSettings re-encodes the dynamically-typed settings payload glsp
// hands workspace/didChangeConfiguration handlers (an any decoded from raw
// JSON) back to bytes so internal/cssconfig.Parse can decode it into a
// typed Config without this package needing to know the payload's shape
// up front.
func marshalSettings(settings any) ([]byte, error) {
	return json.Marshal(settings)
}
