package analyzer

import (
	"github.com/pattyshack/ddlog-lsp/dat"
	"github.com/pattyshack/ddlog-lsp/dl"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/symbol"
)

// IdentifierCollector records the identifiers of an entry.  Validation
// failures are ignored: identifiers before the first syntax error are
// still collected.
type IdentifierCollector struct {
	grammars    Grammars
	identifiers []symbol.Identifier
}

func CollectIdentifiers(grammars Grammars) *IdentifierCollector {
	return &IdentifierCollector{
		grammars: grammars,
	}
}

func (collector *IdentifierCollector) Process(entry *Entry) {
	if !collector.grammars.Has(entry.Grammar) {
		return
	}

	switch entry.Grammar {
	case grammar.DL:
		recorder := dl.NewIdentifierRecorder(
			collector.grammars.DL,
			entry.Root,
			entry.Source)
		_ = recorder.Visit()
		collector.identifiers = recorder.Identifiers()
	case grammar.DAT:
		recorder := dat.NewIdentifierRecorder(
			collector.grammars.DAT,
			entry.Root,
			entry.Source)
		_ = recorder.Visit()
		collector.identifiers = recorder.Identifiers()
	}
}

func (collector *IdentifierCollector) Identifiers() []symbol.Identifier {
	return collector.identifiers
}
