package analyzer

import (
	"fmt"

	"github.com/pattyshack/ddlog-lsp/dat"
	"github.com/pattyshack/ddlog-lsp/dl"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

// Entry is one parsed document.  The tree is shared read-only by every
// pass; each pass walks it with its own walker.
type Entry struct {
	Name    string // uri or file path
	Grammar grammar.Grammar
	Source  []byte
	Root    syntax.Node
}

// Grammars holds the loaded grammar of every language the binary has a
// parser for.  Either may be nil.
type Grammars struct {
	DL  *dl.Grammar
	DAT *dat.Grammar
}

func (grammars Grammars) Has(g grammar.Grammar) bool {
	switch g {
	case grammar.DL:
		return grammars.DL != nil
	case grammar.DAT:
		return grammars.DAT != nil
	default:
		return false
	}
}

func (grammars Grammars) missing(entry *Entry) error {
	return fmt.Errorf("%s: no %s grammar loaded", entry.Name, entry.Grammar)
}
