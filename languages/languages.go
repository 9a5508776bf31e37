// Package languages links compiled tree-sitter grammars into the binaries.
//
// The DDlog tree-sitter bindings are not part of this module.  A build that
// links them registers each language from an init function:
//
//	func init() {
//		languages.Register(grammar.DL, tree_sitter_ddlog_dl.Language)
//	}
//
// Grammars with no registered language are tracked but never checked.
package languages

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/pattyshack/ddlog-lsp/analyzer"
	"github.com/pattyshack/ddlog-lsp/dat"
	"github.com/pattyshack/ddlog-lsp/dl"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/syntax/treesitter"
)

var (
	mutex    sync.Mutex
	bindings = map[grammar.Grammar]func() unsafe.Pointer{}
)

// Register makes g's compiled language available to Link.
func Register(g grammar.Grammar, language func() unsafe.Pointer) {
	mutex.Lock()
	defer mutex.Unlock()

	bindings[g] = language
}

func Registered() []grammar.Grammar {
	mutex.Lock()
	defer mutex.Unlock()

	result := []grammar.Grammar{}
	for _, g := range grammar.Grammars {
		if _, ok := bindings[g]; ok {
			result = append(result, g)
		}
	}
	return result
}

type Linked struct {
	Languages map[grammar.Grammar]syntax.Language
	Parsers   map[grammar.Grammar]syntax.Parser
	Grammars  analyzer.Grammars

	parsers []*treesitter.Parser
}

// Link builds a parser and loads the validation grammar for every
// registered language.
func Link() (*Linked, error) {
	mutex.Lock()
	defer mutex.Unlock()

	linked := &Linked{
		Languages: map[grammar.Grammar]syntax.Language{},
		Parsers:   map[grammar.Grammar]syntax.Parser{},
	}

	for _, g := range grammar.Grammars {
		binding, ok := bindings[g]
		if !ok {
			continue
		}

		lang := treesitter.NewLanguage(tree_sitter.NewLanguage(binding()))
		err := linked.load(g, lang)
		if err != nil {
			linked.Close()
			return nil, err
		}

		parser, err := treesitter.NewParser(lang)
		if err != nil {
			linked.Close()
			return nil, fmt.Errorf("%s: %w", g, err)
		}

		linked.Languages[g] = lang
		linked.Parsers[g] = parser
		linked.parsers = append(linked.parsers, parser)
	}

	return linked, nil
}

func (linked *Linked) load(g grammar.Grammar, lang syntax.Language) error {
	var err error
	switch g {
	case grammar.DL:
		linked.Grammars.DL, err = dl.Load(lang)
	case grammar.DAT:
		linked.Grammars.DAT, err = dat.Load(lang)
	default:
		err = errors.New("unsupported grammar")
	}
	if err != nil {
		return fmt.Errorf("failed to load %s grammar: %w", g, err)
	}
	return nil
}

func (linked *Linked) Close() {
	for _, parser := range linked.parsers {
		parser.Close()
	}
	linked.parsers = nil
}
