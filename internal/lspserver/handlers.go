package lspserver

import (
	"strconv"

	"github.com/csslsp/csslsp/internal/cssconfig"
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/hover"
	"github.com/csslsp/csslsp/internal/selection"
	"github.com/csslsp/csslsp/internal/semtok"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// handleInitialize advertises the capability set spec §6 names: incremental
// text sync, hover, selection ranges, and full+delta semantic tokens.
// completionProvider is deliberately omitted — completion is an explicit
// Non-goal.
func (s *Server) handleInitialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := map[string]any{
		"textDocumentSync": protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
			Save:      boolPtr(true),
		},
		"hoverProvider":          true,
		"selectionRangeProvider": true,
		"semanticTokensProvider": protocol.SemanticTokensOptions{
			Legend: protocol.SemanticTokensLegend{
				TokenTypes:     semtok.Legend(),
				TokenModifiers: []string{},
			},
			Full: map[string]any{"delta": true},
		},
	}

	return struct {
		Capabilities any                                  `json:"capabilities"`
		ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
	}{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: serverName,
		},
	}, nil
}

func (s *Server) handleInitialized(context *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (s *Server) handleShutdown(context *glsp.Context) error {
	log.Info("shutting down")
	return nil
}

// handleDidChangeConfiguration applies a workspace/didChangeConfiguration
// notification's settings payload (spec §6's two recognized option groups)
// by re-decoding it through internal/cssconfig.
func (s *Server) handleDidChangeConfiguration(context *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	raw, err := marshalSettings(params.Settings)
	if err != nil {
		log.Warningf("could not marshal configuration payload: %v", err)
		return nil
	}
	cfg, err := cssconfig.Parse(raw)
	if err != nil {
		log.Warningf("could not parse configuration payload: %v", err)
		return nil
	}
	s.setConfig(cfg)
	return nil
}

func (s *Server) handleDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	doc := cssdoc.New(string(uri), params.TextDocument.Text, int32(params.TextDocument.Version))
	state := &docState{doc: doc, tokens: semtok.NewCache()}
	state.mu.Lock()
	s.putDoc(uri, state)

	s.publishDiagnostics(context, uri, doc)
	state.mu.Unlock()
	return nil
}

func (s *Server) handleDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	state, ok := s.getDoc(uri)
	if !ok {
		return nil
	}

	state.mu.Lock()
	for _, raw := range params.ContentChanges {
		change, ok := raw.(protocol.TextDocumentContentChangeEvent)
		if !ok {
			continue
		}
		state.doc.ApplyChange(toDocChange(change))
	}
	state.doc.Version = int32(params.TextDocument.Version)
	s.publishDiagnostics(context, uri, state.doc)
	state.mu.Unlock()
	return nil
}

func (s *Server) handleDidSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

func (s *Server) handleDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.dropDoc(params.TextDocument.URI)
	return nil
}

func (s *Server) handleHover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	state, ok := s.getDoc(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	state.mu.RLock()
	doc := state.doc
	state.mu.RUnlock()

	offset := doc.PositionToByte(toDocPosition(params.Position))
	settings := s.config().HoverSettingsFor()
	hv, ok := hover.Get(doc, offset, settings, true)
	if !ok {
		return nil, nil
	}

	kind := protocol.MarkupKindPlainText
	if hv.Markdown {
		kind = protocol.MarkupKindMarkdown
	}
	rng := toProtocolRange(doc, hv.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: kind, Value: hv.Contents},
		Range:    &rng,
	}, nil
}

func (s *Server) handleSelectionRange(context *glsp.Context, params *protocol.SelectionRangeParams) ([]protocol.SelectionRange, error) {
	state, ok := s.getDoc(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	state.mu.RLock()
	doc := state.doc
	state.mu.RUnlock()

	offsets := make([]int32, len(params.Positions))
	for i, p := range params.Positions {
		offsets[i] = doc.PositionToByte(toDocPosition(p))
	}

	ranges := selection.GetRanges(doc, offsets)
	out := make([]protocol.SelectionRange, len(ranges))
	for i, r := range ranges {
		out[i] = toSelectionRange(doc, r)
	}
	return out, nil
}

func (s *Server) handleSemanticTokensFull(context *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	state, ok := s.getDoc(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	state.mu.RLock()
	version := state.doc.Version
	state.mu.RUnlock()

	v, _, _ := s.group.Do(string(params.TextDocument.URI)+":full:"+strconv.Itoa(int(version)), func() (any, error) {
		state.mu.RLock()
		doc := state.doc
		cache := state.tokens
		state.mu.RUnlock()

		data, id := semtok.Full(doc, cache)
		return &protocol.SemanticTokens{ResultID: &id, Data: data}, nil
	})
	return v.(*protocol.SemanticTokens), nil
}

func (s *Server) handleSemanticTokensFullDelta(context *glsp.Context, params *protocol.SemanticTokensDeltaParams) (any, error) {
	state, ok := s.getDoc(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	state.mu.RLock()
	doc := state.doc
	cache := state.tokens
	state.mu.RUnlock()

	edits, full, newID, ok := semtok.Delta(doc, cache, params.PreviousResultID)
	if !ok {
		return &protocol.SemanticTokens{ResultID: &newID, Data: full}, nil
	}

	out := make([]protocol.SemanticTokensEdit, len(edits))
	for i, e := range edits {
		out[i] = protocol.SemanticTokensEdit{Start: e.Start, DeleteCount: e.DeleteCount, Data: e.Data}
	}
	return &protocol.SemanticTokensDelta{ResultID: &newID, Edits: out}, nil
}

func boolPtr(b bool) *bool { return &b }
