// Package server implements the language server protocol session layer.
package server

import (
	"context"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/pattyshack/ddlog-lsp/analyzer"
	"github.com/pattyshack/ddlog-lsp/config"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/workspace"
)

const Name = "ddlog-lsp"

var log = commonlog.GetLogger("ddlog-lsp.server")

type Options struct {
	Config  *config.Config
	Version string

	// Parsers and grammars of the languages linked into the binary.
	Parsers  map[grammar.Grammar]syntax.Parser
	Grammars analyzer.Grammars
}

type Server struct {
	cfg      *config.Config
	version  string
	parsers  map[grammar.Grammar]syntax.Parser
	grammars analyzer.Grammars
	index    *workspace.Index

	handler protocol.Handler

	// Cancels workspace scanning and watching.
	ctx    context.Context
	cancel context.CancelFunc

	mutex    sync.Mutex
	sessions map[protocol.DocumentUri]*session
	warned   map[grammar.Grammar]struct{}
}

func New(options Options) *Server {
	cfg := options.Config
	if cfg == nil {
		cfg = config.Default()
	}

	parsers := options.Parsers
	if parsers == nil {
		parsers = map[grammar.Grammar]syntax.Parser{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:      cfg,
		version:  options.Version,
		parsers:  parsers,
		grammars: options.Grammars,
		index:    workspace.NewIndex(cfg, parsers, options.Grammars),
		ctx:      ctx,
		cancel:   cancel,
		sessions: map[protocol.DocumentUri]*session{},
		warned:   map[grammar.Grammar]struct{}{},
	}

	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDocumentSymbol: s.documentSymbol,
		WorkspaceSymbol:            s.workspaceSymbol,
	}
	return s
}

func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

func (s *Server) Index() *workspace.Index {
	return s.index
}

// RunStdio serves a single client over stdin / stdout until the client
// disconnects.
func (s *Server) RunStdio() error {
	defer s.cancel()
	return glspserver.NewServer(&s.handler, Name, false).RunStdio()
}

func (s *Server) initialize(
	ctx *glsp.Context,
	params *protocol.InitializeParams,
) (
	any,
	error,
) {
	capabilities := s.handler.CreateServerCapabilities()

	openClose := true
	change := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &change,
	}

	for _, root := range workspaceRoots(params) {
		s.startIndexing(root)
	}

	version := s.version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
	}, nil
}

func workspaceRoots(params *protocol.InitializeParams) []string {
	uris := []protocol.DocumentUri{}
	for _, folder := range params.WorkspaceFolders {
		uris = append(uris, folder.URI)
	}
	if len(uris) == 0 && params.RootURI != nil {
		uris = append(uris, *params.RootURI)
	}

	roots := []string{}
	for _, uri := range uris {
		root, err := workspace.PathFromURI(uri)
		if err != nil {
			log.Warningf("ignoring workspace folder: %s", err)
			continue
		}
		roots = append(roots, root)
	}
	return roots
}

func (s *Server) startIndexing(root string) {
	go func() {
		err := s.index.Scan(s.ctx, root)
		if err != nil {
			log.Errorf("%s", err)
			return
		}

		if !s.cfg.Workspace.Watch {
			return
		}

		err = s.index.Watch(s.ctx, root)
		if err != nil {
			log.Errorf("%s", err)
		}
	}()
}

func (s *Server) initialized(
	ctx *glsp.Context,
	params *protocol.InitializedParams,
) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	s.cancel()
	return nil
}

func (s *Server) setTrace(
	ctx *glsp.Context,
	params *protocol.SetTraceParams,
) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) documentSymbol(
	ctx *glsp.Context,
	params *protocol.DocumentSymbolParams,
) (
	any,
	error,
) {
	return s.index.DocumentSymbols(params.TextDocument.URI), nil
}

func (s *Server) workspaceSymbol(
	ctx *glsp.Context,
	params *protocol.WorkspaceSymbolParams,
) (
	[]protocol.SymbolInformation,
	error,
) {
	return s.index.Symbols(params.Query), nil
}
