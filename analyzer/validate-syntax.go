package analyzer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/ddlog-lsp/dat"
	"github.com/pattyshack/ddlog-lsp/dl"
	"github.com/pattyshack/ddlog-lsp/grammar"
)

type syntaxValidator struct {
	*parseutil.Emitter
	grammars Grammars
}

func ValidateSyntax(
	grammars Grammars,
	emitter *parseutil.Emitter,
) Pass[*Entry] {
	return syntaxValidator{
		Emitter:  emitter,
		grammars: grammars,
	}
}

func (validator syntaxValidator) Process(entry *Entry) {
	if !validator.grammars.Has(entry.Grammar) {
		validator.EmitErrors(validator.grammars.missing(entry))
		return
	}

	var err error
	switch entry.Grammar {
	case grammar.DL:
		err = dl.Validate(validator.grammars.DL, entry.Root)
	case grammar.DAT:
		err = dat.Validate(validator.grammars.DAT, entry.Root)
	}

	if err != nil {
		validator.EmitErrors(err)
	}
}
