package lspserver

import (
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// publishDiagnostics sends every syntax error recorded against doc's
// current parse as a textDocument/publishDiagnostics notification (spec
// §4.6 "the caller collects diagnostics from the tree and publishes them
// after every parse"; spec §5's ordering guarantee requires this to run
// inside the same write-lock critical section that produced the parse,
// which handleDidOpen/handleDidChange already hold when they call this).
func (s *Server) publishDiagnostics(context *glsp.Context, uri protocol.DocumentUri, doc *cssdoc.Document) {
	errs := doc.Parse().Errors
	diagnostics := make([]protocol.Diagnostic, len(errs))
	severity := protocol.DiagnosticSeverityError
	for i, e := range errs {
		diagnostics[i] = protocol.Diagnostic{
			Range:    toProtocolRange(doc, e.Range),
			Severity: &severity,
			Source:   strPtr(serverName),
			Message:  e.Message,
		}
	}

	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(doc.URL),
		Diagnostics: diagnostics,
	})
}

func strPtr(s string) *string { return &s }
