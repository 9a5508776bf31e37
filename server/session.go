package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/analyzer"
	"github.com/pattyshack/ddlog-lsp/diagnostic"
	"github.com/pattyshack/ddlog-lsp/document"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/workspace"
)

// session is the server side state of an open document.
type session struct {
	mutex sync.Mutex

	doc  *document.Document
	tree syntax.Tree // nil until the first successful parse
}

func (s *Server) session(uri protocol.DocumentUri) (*session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sess, ok := s.sessions[uri]
	return sess, ok
}

// parser returns g's parser, logging once per grammar when there is none.
func (s *Server) parser(g grammar.Grammar) (syntax.Parser, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	parser, ok := s.parsers[g]
	if ok && s.grammars.Has(g) {
		return parser, true
	}

	if _, ok := s.warned[g]; !ok {
		s.warned[g] = struct{}{}
		log.Warningf("no %s parser linked in; %s documents are not checked", g, g)
	}
	return nil, false
}

func (s *Server) didOpen(
	ctx *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	item := params.TextDocument

	g, ok := s.cfg.GrammarForPath(string(item.URI))
	if !ok {
		log.Debugf("ignoring %s", item.URI)
		return nil
	}

	sess := &session{
		doc: document.New(item.URI, g, item.Version, item.Text),
	}

	s.mutex.Lock()
	s.sessions[item.URI] = sess
	s.mutex.Unlock()

	log.Infof("opened %s (%s)", item.URI, g)

	sess.mutex.Lock()
	defer sess.mutex.Unlock()
	s.refresh(ctx, sess)
	return nil
}

func (s *Server) didChange(
	ctx *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	sess, ok := s.session(params.TextDocument.URI)
	if !ok {
		log.Debugf("change to untracked document %s", params.TextDocument.URI)
		return nil
	}

	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	for _, change := range params.ContentChanges {
		switch event := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			edit, err := sess.doc.ApplyChange(event.Range, event.Text)
			if err != nil {
				return fmt.Errorf("%s: %w", params.TextDocument.URI, err)
			}
			if sess.tree != nil {
				sess.tree.Edit(edit)
			}
		case protocol.TextDocumentContentChangeEventWhole:
			_, err := sess.doc.ApplyChange(nil, event.Text)
			if err != nil {
				return fmt.Errorf("%s: %w", params.TextDocument.URI, err)
			}
			s.dropTree(sess)
		default:
			return fmt.Errorf("unexpected content change %T", change)
		}
	}

	sess.doc.Version = params.TextDocument.Version
	s.refresh(ctx, sess)
	return nil
}

func (s *Server) didClose(
	ctx *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	s.mutex.Lock()
	sess, ok := s.sessions[uri]
	delete(s.sessions, uri)
	s.mutex.Unlock()

	if !ok {
		return nil
	}

	sess.mutex.Lock()
	s.dropTree(sess)
	sess.mutex.Unlock()

	s.index.Close(s.ctx, uri)

	log.Infof("closed %s", uri)
	s.publish(ctx, uri, nil, []protocol.Diagnostic{})
	return nil
}

func (s *Server) dropTree(sess *session) {
	if sess.tree != nil {
		workspace.CloseTree(sess.tree)
		sess.tree = nil
	}
}

// refresh reparses and reanalyzes the session's document, then publishes
// its diagnostics.  The caller must hold sess.mutex.
func (s *Server) refresh(ctx *glsp.Context, sess *session) {
	doc := sess.doc

	parser, ok := s.parser(doc.Grammar)
	if !ok {
		return
	}

	tree, err := parser.Parse(context.Background(), doc.Text(), sess.tree)
	if err != nil {
		log.Errorf("failed to parse %s: %s", doc.URI, err)
		s.dropTree(sess)
		return
	}
	if sess.tree != nil && sess.tree != tree {
		workspace.CloseTree(sess.tree)
	}
	sess.tree = tree

	result := analyzer.Analyze(
		s.grammars,
		&analyzer.Entry{
			Name:    string(doc.URI),
			Grammar: doc.Grammar,
			Source:  doc.Text(),
			Root:    tree.RootNode(),
		})

	s.index.Update(
		doc.URI,
		doc.Grammar,
		doc.Snapshot(),
		result.Identifiers,
		true)

	if !s.cfg.Diagnostics.Enabled {
		return
	}

	limit := s.cfg.Diagnostics.MaxPerDocument
	diagnostics := []protocol.Diagnostic{}
	for _, err := range result.Errors {
		if limit > 0 && len(diagnostics) >= limit {
			break
		}
		diagnostics = append(diagnostics, diagnostic.FromError(doc.URI, doc, err))
	}

	version := protocol.UInteger(doc.Version)
	s.publish(ctx, doc.URI, &version, diagnostics)
}

func (s *Server) publish(
	ctx *glsp.Context,
	uri protocol.DocumentUri,
	version *protocol.UInteger,
	diagnostics []protocol.Diagnostic,
) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(
		protocol.ServerTextDocumentPublishDiagnostics,
		protocol.PublishDiagnosticsParams{
			URI:         uri,
			Version:     version,
			Diagnostics: diagnostics,
		})
}
