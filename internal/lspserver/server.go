// Package lspserver wires the CST, the C10-C13 services, and
// internal/cssconfig to the Language Server Protocol (spec §6) over
// github.com/tliron/glsp. esbuild has no interactive service layer at
// all — it is a one-shot bundler — so this package is grounded on two
// complete LSP servers that use glsp the same way a CSS language service
// would:
// bennypowers-design-tokens-language-server's internal/lsp (Server struct,
// protocol.Handler wiring, server.NewServer(...).RunStdio()) and
// teemuteemu-caddy-language-server's internal/handler (per-request hover
// dispatch against a document store).
//
// Concurrency follows spec §5: each open document gets its own read-write
// lock. Read-only requests (hover, selectionRange, semanticTokens) take a
// read lock, clone the red-tree handle they need, release, and compute the
// response without holding the lock; edits take the write lock, reparse,
// and publish diagnostics before releasing — so diagnostic publishes for a
// given document are always in edit order.
package lspserver

import (
	"sync"

	"github.com/csslsp/csslsp/internal/cssconfig"
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/semtok"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"golang.org/x/sync/singleflight"
)

const serverName = "csslsp"

var log = commonlog.GetLogger(serverName)

// docState is one open document plus the per-document state services need:
// its own lock (spec §5) and its own bounded semantic-token cache (a client
// diffs tokens against its own prior request, so caches never need to be
// shared across documents).
type docState struct {
	mu     sync.RWMutex
	doc    *cssdoc.Document
	tokens *semtok.Cache
}

// Server is one running language server instance: the open-document table,
// the active configuration, and the glsp transport.
type Server struct {
	glspServer *server.Server

	docsMu sync.RWMutex
	docs   map[protocol.DocumentUri]*docState

	cfgMu sync.RWMutex
	cfg   cssconfig.Config

	// group collapses duplicate concurrent semantic-tokens/full
	// recomputation for the same document version (spec §5's concurrency
	// note), keyed by URI plus version; delta requests are not routed
	// through it.
	group singleflight.Group
}

// NewServer builds a Server with cfg as its initial configuration (before
// any workspace/didChangeConfiguration notification arrives).
func NewServer(cfg cssconfig.Config) *Server {
	s := &Server{
		docs: make(map[protocol.DocumentUri]*docState),
		cfg:  cfg,
	}

	handler := protocol.Handler{
		Initialize:                      s.handleInitialize,
		Initialized:                     s.handleInitialized,
		Shutdown:                        s.handleShutdown,
		WorkspaceDidChangeConfiguration: s.handleDidChangeConfiguration,
		TextDocumentDidOpen:             s.handleDidOpen,
		TextDocumentDidChange:           s.handleDidChange,
		TextDocumentDidSave:             s.handleDidSave,
		TextDocumentDidClose:            s.handleDidClose,
		TextDocumentHover:               s.handleHover,
		TextDocumentSelectionRange:      s.handleSelectionRange,
		TextDocumentSemanticTokensFull:      s.handleSemanticTokensFull,
		TextDocumentSemanticTokensFullDelta: s.handleSemanticTokensFullDelta,
	}

	s.glspServer = server.NewServer(handler, serverName, false)
	return s
}

// RunStdio runs the server over stdio, the transport every LSP client
// speaks by default.
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

func (s *Server) config() cssconfig.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

func (s *Server) setConfig(cfg cssconfig.Config) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

func (s *Server) getDoc(uri protocol.DocumentUri) (*docState, bool) {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()
	d, ok := s.docs[uri]
	return d, ok
}

func (s *Server) putDoc(uri protocol.DocumentUri, d *docState) {
	s.docsMu.Lock()
	s.docs[uri] = d
	s.docsMu.Unlock()
}

func (s *Server) dropDoc(uri protocol.DocumentUri) {
	s.docsMu.Lock()
	delete(s.docs, uri)
	s.docsMu.Unlock()
}
