// Package workspace maintains the workspace symbol index over every
// program and command script under the workspace root.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/analyzer"
	"github.com/pattyshack/ddlog-lsp/config"
	"github.com/pattyshack/ddlog-lsp/diagnostic"
	"github.com/pattyshack/ddlog-lsp/document"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/symbol"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

var log = commonlog.GetLogger("ddlog-lsp.workspace")

type file struct {
	text    diagnostic.Text
	symbols []symbol.Identifier

	// Open files are owned by the editor; disk changes are ignored until
	// the file is closed.
	open bool
}

type Index struct {
	cfg      *config.Config
	parsers  map[grammar.Grammar]syntax.Parser
	grammars analyzer.Grammars

	mutex sync.RWMutex
	files map[protocol.DocumentUri]*file
}

func NewIndex(
	cfg *config.Config,
	parsers map[grammar.Grammar]syntax.Parser,
	grammars analyzer.Grammars,
) *Index {
	return &Index{
		cfg:      cfg,
		parsers:  parsers,
		grammars: grammars,
		files:    map[protocol.DocumentUri]*file{},
	}
}

func URIFromPath(path string) protocol.DocumentUri {
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	return protocol.DocumentUri(
		(&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String())
}

func PathFromURI(uri protocol.DocumentUri) (string, error) {
	parsed, err := url.Parse(string(uri))
	if err != nil {
		return "", fmt.Errorf("invalid uri %s: %w", uri, err)
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri scheme %q", parsed.Scheme)
	}
	return filepath.FromSlash(parsed.Path), nil
}

// Update replaces uri's symbols with the exported subset of identifiers.
// open marks the entry as owned by the editor.  Disk updates (open == false)
// never replace an entry the editor owns.
func (index *Index) Update(
	uri protocol.DocumentUri,
	g grammar.Grammar,
	text diagnostic.Text,
	identifiers []symbol.Identifier,
	open bool,
) {
	index.mutex.Lock()
	defer index.mutex.Unlock()

	if !open {
		existing, ok := index.files[uri]
		if ok && existing.open {
			return
		}
	}

	index.files[uri] = &file{
		text:    text,
		symbols: Exported(g, identifiers),
		open:    open,
	}
}

func (index *Index) Remove(uri protocol.DocumentUri) {
	index.mutex.Lock()
	defer index.mutex.Unlock()

	delete(index.files, uri)
}

// removeClosed drops uri unless the editor owns it.
func (index *Index) removeClosed(uri protocol.DocumentUri) {
	index.mutex.Lock()
	defer index.mutex.Unlock()

	entry, ok := index.files[uri]
	if ok && !entry.open {
		delete(index.files, uri)
	}
}

// Close hands uri back to the disk copy.
func (index *Index) Close(ctx context.Context, uri protocol.DocumentUri) {
	index.mutex.Lock()
	entry, ok := index.files[uri]
	if ok {
		entry.open = false
	}
	index.mutex.Unlock()

	path, err := PathFromURI(uri)
	if err != nil {
		index.removeClosed(uri)
		return
	}

	err = index.IndexFile(ctx, path)
	if err != nil {
		log.Debugf("dropping %s: %s", uri, err)
		index.removeClosed(uri)
	}
}

func (index *Index) isOpen(uri protocol.DocumentUri) bool {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	entry, ok := index.files[uri]
	return ok && entry.open
}

func (index *Index) load(
	ctx context.Context,
	path string,
) (
	*analyzer.Entry,
	*document.Document,
	syntax.Tree,
	error,
) {
	g, ok := index.cfg.GrammarForPath(path)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%s: unknown file extension", path)
	}

	parser, ok := index.parsers[g]
	if !ok || !index.grammars.Has(g) {
		return nil, nil, nil, fmt.Errorf("%s: no %s parser", path, g)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tree, err := parser.Parse(ctx, content, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	uri := URIFromPath(path)
	entry := &analyzer.Entry{
		Name:    string(uri),
		Grammar: g,
		Source:  content,
		Root:    tree.RootNode(),
	}
	return entry, document.New(uri, g, 0, string(content)), tree, nil
}

// CloseTree releases trees that hold parser memory.
func CloseTree(tree syntax.Tree) {
	closer, ok := tree.(interface{ Close() })
	if ok {
		closer.Close()
	}
}

// IndexFile (re)indexes the file at path unless the editor has it open.
func (index *Index) IndexFile(ctx context.Context, path string) error {
	uri := URIFromPath(path)
	if index.isOpen(uri) {
		return nil
	}

	entry, doc, tree, err := index.load(ctx, path)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(index.grammars, entry)
	CloseTree(tree)
	index.Update(uri, entry.Grammar, doc, result.Identifiers, false)
	return nil
}

// Scan indexes every file under root with a configured extension.  Files
// that fail to load are logged and skipped.
func (index *Index) Scan(ctx context.Context, root string) error {
	paths := []string{}
	err := filepath.WalkDir(
		root,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				if path != root && strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := index.cfg.GrammarForPath(path); ok {
				paths = append(paths, path)
			}
			return ctx.Err()
		})
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	entries := []*analyzer.Entry{}
	docs := []*document.Document{}
	trees := []syntax.Tree{}
	for _, path := range paths {
		if index.isOpen(URIFromPath(path)) {
			continue
		}

		entry, doc, tree, err := index.load(ctx, path)
		if err != nil {
			log.Warningf("skipping %s", err)
			continue
		}
		entries = append(entries, entry)
		docs = append(docs, doc)
		trees = append(trees, tree)
	}

	results := analyzer.AnalyzeAll(index.grammars, entries)
	for _, tree := range trees {
		CloseTree(tree)
	}
	for idx, result := range results {
		index.Update(
			docs[idx].URI,
			entries[idx].Grammar,
			docs[idx],
			result.Identifiers,
			false)
	}

	log.Infof("indexed %d files under %s", len(entries), root)
	return nil
}

// DocumentSymbols returns uri's exported symbols in document order.
func (index *Index) DocumentSymbols(
	uri protocol.DocumentUri,
) []protocol.SymbolInformation {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	result := []protocol.SymbolInformation{}
	entry, ok := index.files[uri]
	if !ok {
		return result
	}
	for _, identifier := range entry.symbols {
		result = append(result, SymbolInformation(uri, entry.text, identifier))
	}
	return result
}

// Symbols returns every symbol whose name contains query, ignoring case,
// sorted by name then uri.
func (index *Index) Symbols(query string) []protocol.SymbolInformation {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	query = strings.ToLower(query)
	result := []protocol.SymbolInformation{}
	for uri, entry := range index.files {
		for _, identifier := range entry.symbols {
			if !strings.Contains(strings.ToLower(identifier.Name), query) {
				continue
			}
			result = append(result, SymbolInformation(uri, entry.text, identifier))
		}
	}

	sort.SliceStable(result, func(i int, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		if result[i].Location.URI != result[j].Location.URI {
			return result[i].Location.URI < result[j].Location.URI
		}
		return result[i].Location.Range.Start.Line <
			result[j].Location.Range.Start.Line
	})
	return result
}
